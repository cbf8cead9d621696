package match

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Match is a directional edge from the user who acted (UserAID) to the
// target (UserBID). It is created by exactly one like or skip and is never
// deleted; the only in-place mutation is pending -> accepted when the
// target likes back.
type Match struct {
	ID                 uuid.UUID
	UserAID            uuid.UUID
	UserBID            uuid.UUID
	Status             Status
	CompatibilityScore int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// OtherUserID returns the participant that is not userID.
func (m Match) OtherUserID(userID uuid.UUID) uuid.UUID {
	if m.UserAID == userID {
		return m.UserBID
	}
	return m.UserAID
}
