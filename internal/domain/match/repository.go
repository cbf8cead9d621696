package match

import (
	"context"
	"errors"

	"fitpartner/internal/domain/user"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("match not found")

// AcceptedMatch is an accepted record joined with the other participant's
// profile, seen from the perspective of the querying user.
type AcceptedMatch struct {
	Match   Match
	Partner user.User
}

type Stats struct {
	Pending  int
	Accepted int
	Rejected int
}

type Repository interface {
	Create(ctx context.Context, m Match) error

	// FindPendingFrom looks up the pending edge initiator -> target.
	FindPendingFrom(ctx context.Context, initiatorID, targetID uuid.UUID) (Match, error)

	// Accept flips a record to accepted in place.
	Accept(ctx context.Context, id uuid.UUID) error

	// PartnerIDs returns every user connected to userID by a record in
	// either direction, regardless of status.
	PartnerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// ListAcceptedByUser returns accepted records involving userID joined
	// with the other profile. Records whose profile row is gone are omitted.
	ListAcceptedByUser(ctx context.Context, userID uuid.UUID) ([]AcceptedMatch, error)

	StatsByUser(ctx context.Context, userID uuid.UUID) (Stats, error)
}
