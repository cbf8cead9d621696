package usecase

import (
	"context"
	"errors"
	"sort"

	"fitpartner/internal/domain/match"
	"fitpartner/internal/domain/matching"
	"fitpartner/internal/domain/user"
	"fitpartner/internal/ws"

	"github.com/google/uuid"
)

const discoverLimit = 10

// Candidate is a discoverable profile annotated with its compatibility
// score against the requesting user.
type Candidate struct {
	User               user.User
	CompatibilityScore int
}

type LikeResult struct {
	MatchStatus match.Status
	MatchID     uuid.UUID
}

type MatchUsecase interface {
	Discover(ctx context.Context, userID uuid.UUID) ([]Candidate, error)
	Like(ctx context.Context, userID, targetID uuid.UUID) (LikeResult, error)
	Skip(ctx context.Context, userID, targetID uuid.UUID) error
	ListMatches(ctx context.Context, userID uuid.UUID) ([]match.AcceptedMatch, error)
	Compatibility(ctx context.Context, userID, targetID uuid.UUID) (int, error)
	Stats(ctx context.Context, userID uuid.UUID) (match.Stats, error)
}

type Match struct {
	users   user.Repository
	matches match.Repository
}

func NewMatchUsecase(users user.Repository, matches match.Repository) *Match {
	return &Match{users: users, matches: matches}
}

// Discover returns up to 10 profiles the user has never interacted with,
// ranked by descending compatibility score. The sort is stable, so equal
// scores keep the store's retrieval order.
func (u *Match) Discover(ctx context.Context, userID uuid.UUID) ([]Candidate, error) {
	current, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, ErrInternal
	}

	partnerIDs, err := u.matches.PartnerIDs(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	exclude := append([]uuid.UUID{userID}, partnerIDs...)
	candidates, err := u.users.ListExcluding(ctx, exclude, discoverLimit)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, Candidate{
			User:               c,
			CompatibilityScore: score(current, c),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompatibilityScore > out[j].CompatibilityScore
	})
	return out, nil
}

// Like records a directional like. If the target already has a pending like
// toward the initiator, that record is flipped to accepted and its id is
// reused; the stored score is not recomputed. Otherwise a new pending
// record is inserted with the score between the two profiles.
//
// Only an exact target->initiator pending edge completes a match: two
// concurrent mutual likes can each miss the other's row and leave two
// independent pending records.
func (u *Match) Like(ctx context.Context, userID, targetID uuid.UUID) (LikeResult, error) {
	reverse, err := u.matches.FindPendingFrom(ctx, targetID, userID)
	if err == nil {
		if err := u.matches.Accept(ctx, reverse.ID); err != nil {
			return LikeResult{}, ErrInternal
		}
		ws.NotifyMatchAccepted(reverse.ID, reverse.UserAID, reverse.UserBID)
		return LikeResult{MatchStatus: match.StatusAccepted, MatchID: reverse.ID}, nil
	}
	if !errors.Is(err, match.ErrNotFound) {
		return LikeResult{}, ErrInternal
	}

	current, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return LikeResult{}, ErrUnauthorized
		}
		return LikeResult{}, ErrInternal
	}

	target, err := u.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return LikeResult{}, ErrUserNotFound
		}
		return LikeResult{}, ErrInternal
	}

	m := match.Match{
		ID:                 uuid.New(),
		UserAID:            userID,
		UserBID:            targetID,
		Status:             match.StatusPending,
		CompatibilityScore: score(current, target),
	}
	if err := u.matches.Create(ctx, m); err != nil {
		return LikeResult{}, ErrInternal
	}
	return LikeResult{MatchStatus: match.StatusPending, MatchID: m.ID}, nil
}

// Skip records a rejected edge so the target never reappears in the
// initiator's feed. The target is deliberately not validated.
func (u *Match) Skip(ctx context.Context, userID, targetID uuid.UUID) error {
	m := match.Match{
		ID:      uuid.New(),
		UserAID: userID,
		UserBID: targetID,
		Status:  match.StatusRejected,
	}
	if err := u.matches.Create(ctx, m); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Match) ListMatches(ctx context.Context, userID uuid.UUID) ([]match.AcceptedMatch, error) {
	out, err := u.matches.ListAcceptedByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Match) Compatibility(ctx context.Context, userID, targetID uuid.UUID) (int, error) {
	current, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return 0, ErrUnauthorized
		}
		return 0, ErrInternal
	}

	target, err := u.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, ErrInternal
	}

	return score(current, target), nil
}

func (u *Match) Stats(ctx context.Context, userID uuid.UUID) (match.Stats, error) {
	st, err := u.matches.StatsByUser(ctx, userID)
	if err != nil {
		return match.Stats{}, ErrInternal
	}
	return st, nil
}

func score(a, b user.User) int {
	return matching.Score(
		matching.Profile{Height: a.Height, Weight: a.Weight, Goal: a.GoalText()},
		matching.Profile{Height: b.Height, Weight: b.Weight, Goal: b.GoalText()},
	)
}
