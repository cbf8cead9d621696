package dto

import (
	"time"

	"github.com/google/uuid"
)

// DiscoverItemResponse is a candidate profile annotated with the score the
// requester would have with it.
type DiscoverItemResponse struct {
	UserResponse
	CompatibilityScore int `json:"compatibilityScore"`
}

type LikeResponse struct {
	MatchStatus string    `json:"matchStatus"`
	MatchID     uuid.UUID `json:"matchId"`
}

type SkipResponse struct {
	Status string `json:"status"`
}

// MatchItemResponse is one accepted match seen from the requester's side:
// the partner's profile plus the record's metadata.
type MatchItemResponse struct {
	MatchID            uuid.UUID    `json:"matchId"`
	User               UserResponse `json:"user"`
	Status             string       `json:"status"`
	CompatibilityScore int          `json:"compatibilityScore"`
	CreatedAt          time.Time    `json:"createdAt"`
}

type CompatibilityResponse struct {
	CompatibilityScore int `json:"compatibilityScore"`
}

type MatchStatsResponse struct {
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}
