package usecase

import (
	"context"
	"errors"
	"testing"

	"fitpartner/internal/domain/match"
	"fitpartner/internal/domain/user"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	users map[uuid.UUID]user.User
	list  []user.User
	err   error
}

func (m *mockUserRepo) Create(context.Context, user.User) error { return m.err }

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (m *mockUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (m *mockUserRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.users[id]
	return ok, nil
}
func (m *mockUserRepo) Update(context.Context, user.User) error { return m.err }

func (m *mockUserRepo) ListExcluding(_ context.Context, exclude []uuid.UUID, limit int) ([]user.User, error) {
	excluded := make(map[uuid.UUID]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}
	out := make([]user.User, 0)
	for _, u := range m.list {
		if excluded[u.ID] {
			continue
		}
		out = append(out, u)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type mockMatchRepo struct {
	records  []match.Match
	created  []match.Match
	accepted []uuid.UUID
	err      error
}

func (m *mockMatchRepo) Create(_ context.Context, rec match.Match) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, rec)
	m.records = append(m.records, rec)
	return nil
}

func (m *mockMatchRepo) FindPendingFrom(_ context.Context, initiatorID, targetID uuid.UUID) (match.Match, error) {
	if m.err != nil {
		return match.Match{}, m.err
	}
	for _, r := range m.records {
		if r.UserAID == initiatorID && r.UserBID == targetID && r.Status == match.StatusPending {
			return r, nil
		}
	}
	return match.Match{}, match.ErrNotFound
}

func (m *mockMatchRepo) Accept(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.records {
		if m.records[i].ID == id {
			m.records[i].Status = match.StatusAccepted
			m.accepted = append(m.accepted, id)
			return nil
		}
	}
	return match.ErrNotFound
}

func (m *mockMatchRepo) PartnerIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]uuid.UUID, 0)
	for _, r := range m.records {
		if r.UserAID == userID {
			out = append(out, r.UserBID)
		} else if r.UserBID == userID {
			out = append(out, r.UserAID)
		}
	}
	return out, nil
}

func (m *mockMatchRepo) ListAcceptedByUser(_ context.Context, userID uuid.UUID) ([]match.AcceptedMatch, error) {
	out := make([]match.AcceptedMatch, 0)
	for _, r := range m.records {
		if r.Status == match.StatusAccepted && (r.UserAID == userID || r.UserBID == userID) {
			out = append(out, match.AcceptedMatch{Match: r})
		}
	}
	return out, nil
}

func (m *mockMatchRepo) StatsByUser(_ context.Context, userID uuid.UUID) (match.Stats, error) {
	var st match.Stats
	for _, r := range m.records {
		if r.UserAID != userID && r.UserBID != userID {
			continue
		}
		switch r.Status {
		case match.StatusPending:
			st.Pending++
		case match.StatusAccepted:
			st.Accepted++
		case match.StatusRejected:
			st.Rejected++
		}
	}
	return st, nil
}

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

func testUser(name string, height, weight int, goal string) user.User {
	return user.User{
		ID:     uuid.New(),
		Name:   name,
		Email:  name + "@example.com",
		Height: intp(height),
		Weight: intp(weight),
		Goal:   strp(goal),
	}
}

func TestLike_NoPriorRecordCreatesPending(t *testing.T) {
	x := testUser("x", 170, 70, "lose weight")
	y := testUser("y", 172, 68, "weight loss")

	users := &mockUserRepo{users: map[uuid.UUID]user.User{x.ID: x, y.ID: y}}
	matches := &mockMatchRepo{}
	uc := NewMatchUsecase(users, matches)

	res, err := uc.Like(context.Background(), x.ID, y.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.MatchStatus != match.StatusPending {
		t.Fatalf("expected pending, got %s", res.MatchStatus)
	}
	if len(matches.created) != 1 {
		t.Fatalf("expected 1 created record, got %d", len(matches.created))
	}
	if matches.created[0].CompatibilityScore != 85 {
		t.Fatalf("expected score 85, got %d", matches.created[0].CompatibilityScore)
	}
	if res.MatchID != matches.created[0].ID {
		t.Fatalf("result id does not match created record")
	}
}

func TestLike_ReciprocalFlipsToAccepted(t *testing.T) {
	x := testUser("x", 170, 70, "lose weight")
	y := testUser("y", 172, 68, "weight loss")

	users := &mockUserRepo{users: map[uuid.UUID]user.User{x.ID: x, y.ID: y}}
	matches := &mockMatchRepo{}
	uc := NewMatchUsecase(users, matches)

	first, err := uc.Like(context.Background(), x.ID, y.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	second, err := uc.Like(context.Background(), y.ID, x.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if second.MatchStatus != match.StatusAccepted {
		t.Fatalf("expected accepted, got %s", second.MatchStatus)
	}
	if second.MatchID != first.MatchID {
		t.Fatalf("expected the original record id to be reused")
	}
	if len(matches.created) != 1 {
		t.Fatalf("expected no duplicate row, got %d created", len(matches.created))
	}
}

func TestLike_TargetMissingIsNotFound(t *testing.T) {
	x := testUser("x", 170, 70, "")
	users := &mockUserRepo{users: map[uuid.UUID]user.User{x.ID: x}}
	uc := NewMatchUsecase(users, &mockMatchRepo{})

	_, err := uc.Like(context.Background(), x.ID, uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSkip_AlwaysCreatesRejected(t *testing.T) {
	x := testUser("x", 170, 70, "")
	users := &mockUserRepo{users: map[uuid.UUID]user.User{x.ID: x}}
	matches := &mockMatchRepo{}
	uc := NewMatchUsecase(users, matches)

	// Target does not exist; skip must still succeed.
	if err := uc.Skip(context.Background(), x.ID, uuid.New()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches.created) != 1 {
		t.Fatalf("expected 1 created record, got %d", len(matches.created))
	}
	rec := matches.created[0]
	if rec.Status != match.StatusRejected {
		t.Fatalf("expected rejected, got %s", rec.Status)
	}
	if rec.CompatibilityScore != 0 {
		t.Fatalf("expected score 0, got %d", rec.CompatibilityScore)
	}
}

func TestDiscover_ExcludesSelfAndAnyExistingRecord(t *testing.T) {
	me := testUser("me", 170, 70, "cardio")
	liked := testUser("liked", 170, 70, "cardio")
	likedBy := testUser("likedby", 170, 70, "cardio")
	skipped := testUser("skipped", 170, 70, "cardio")
	fresh := testUser("fresh", 170, 70, "cardio")

	users := &mockUserRepo{
		users: map[uuid.UUID]user.User{me.ID: me},
		list:  []user.User{me, liked, likedBy, skipped, fresh},
	}
	matches := &mockMatchRepo{records: []match.Match{
		{ID: uuid.New(), UserAID: me.ID, UserBID: liked.ID, Status: match.StatusPending},
		{ID: uuid.New(), UserAID: likedBy.ID, UserBID: me.ID, Status: match.StatusAccepted},
		{ID: uuid.New(), UserAID: me.ID, UserBID: skipped.ID, Status: match.StatusRejected},
	}}
	uc := NewMatchUsecase(users, matches)

	out, err := uc.Discover(context.Background(), me.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(out))
	}
	if out[0].User.ID != fresh.ID {
		t.Fatalf("expected only the fresh profile")
	}
}

func TestDiscover_SortedByScoreDescending(t *testing.T) {
	me := testUser("me", 170, 70, "lose weight")
	far := testUser("far", 220, 140, "chess")
	close1 := testUser("close", 171, 71, "lose weight now")
	mid := testUser("mid", 185, 85, "lose weight now")

	users := &mockUserRepo{
		users: map[uuid.UUID]user.User{me.ID: me},
		list:  []user.User{far, close1, mid},
	}
	uc := NewMatchUsecase(users, &mockMatchRepo{})

	out, err := uc.Discover(context.Background(), me.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].CompatibilityScore < out[i].CompatibilityScore {
			t.Fatalf("feed not sorted descending at %d: %d < %d", i, out[i-1].CompatibilityScore, out[i].CompatibilityScore)
		}
	}
	if out[0].User.ID != close1.ID {
		t.Fatalf("expected closest profile first")
	}
}

func TestDiscover_StableOnTies(t *testing.T) {
	me := testUser("me", 170, 70, "")
	a := testUser("a", 170, 70, "")
	b := testUser("b", 170, 70, "")
	c := testUser("c", 170, 70, "")

	users := &mockUserRepo{
		users: map[uuid.UUID]user.User{me.ID: me},
		list:  []user.User{a, b, c},
	}
	uc := NewMatchUsecase(users, &mockMatchRepo{})

	out, err := uc.Discover(context.Background(), me.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []uuid.UUID{a.ID, b.ID, c.ID}
	for i, w := range want {
		if out[i].User.ID != w {
			t.Fatalf("tie order changed at position %d", i)
		}
	}
}

func TestDiscover_UnknownRequesterIsUnauthorized(t *testing.T) {
	uc := NewMatchUsecase(&mockUserRepo{users: map[uuid.UUID]user.User{}}, &mockMatchRepo{})
	_, err := uc.Discover(context.Background(), uuid.New())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestListMatches_OnlyAccepted(t *testing.T) {
	me := testUser("me", 170, 70, "")
	other := testUser("other", 170, 70, "")

	matches := &mockMatchRepo{records: []match.Match{
		{ID: uuid.New(), UserAID: me.ID, UserBID: other.ID, Status: match.StatusAccepted, CompatibilityScore: 80},
		{ID: uuid.New(), UserAID: me.ID, UserBID: uuid.New(), Status: match.StatusPending},
		{ID: uuid.New(), UserAID: uuid.New(), UserBID: me.ID, Status: match.StatusRejected},
	}}
	uc := NewMatchUsecase(&mockUserRepo{users: map[uuid.UUID]user.User{me.ID: me}}, matches)

	out, err := uc.ListMatches(context.Background(), me.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 accepted match, got %d", len(out))
	}
	if out[0].Match.Status != match.StatusAccepted {
		t.Fatalf("expected accepted status")
	}
}

func TestCompatibility_TargetMissing(t *testing.T) {
	me := testUser("me", 170, 70, "")
	uc := NewMatchUsecase(&mockUserRepo{users: map[uuid.UUID]user.User{me.ID: me}}, &mockMatchRepo{})

	_, err := uc.Compatibility(context.Background(), me.ID, uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestStats_CountsByStatus(t *testing.T) {
	me := testUser("me", 170, 70, "")
	matches := &mockMatchRepo{records: []match.Match{
		{ID: uuid.New(), UserAID: me.ID, UserBID: uuid.New(), Status: match.StatusPending},
		{ID: uuid.New(), UserAID: me.ID, UserBID: uuid.New(), Status: match.StatusPending},
		{ID: uuid.New(), UserAID: uuid.New(), UserBID: me.ID, Status: match.StatusAccepted},
		{ID: uuid.New(), UserAID: uuid.New(), UserBID: uuid.New(), Status: match.StatusAccepted},
	}}
	uc := NewMatchUsecase(&mockUserRepo{users: map[uuid.UUID]user.User{me.ID: me}}, matches)

	st, err := uc.Stats(context.Background(), me.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if st.Pending != 2 || st.Accepted != 1 || st.Rejected != 0 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}
