package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fitpartner/internal/domain/preference"
	"fitpartner/internal/infrastructure/cache"

	"github.com/google/uuid"
)

type mockPrefRepo struct {
	items []preference.WorkoutPreference
	calls int
	err   error
}

func (m *mockPrefRepo) ListAll(context.Context) ([]preference.WorkoutPreference, error) {
	m.calls++
	return m.items, m.err
}

func (m *mockPrefRepo) ListByUser(context.Context, uuid.UUID) ([]preference.WorkoutPreference, error) {
	return nil, nil
}

func (m *mockPrefRepo) ReplaceForUser(context.Context, uuid.UUID, []uuid.UUID) error {
	return nil
}

type mapCache struct {
	data map[string][]byte
}

func newMapCache() *mapCache { return &mapCache{data: map[string][]byte{}} }

func (c *mapCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *mapCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func TestListCatalog_PopulatesAndServesCache(t *testing.T) {
	repo := &mockPrefRepo{items: []preference.WorkoutPreference{
		{ID: uuid.New(), Name: "Cardio"},
		{ID: uuid.New(), Name: "Yoga"},
	}}
	c := newMapCache()
	uc := NewPreferenceUsecase(repo, c)

	first, err := uc.ListCatalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 items, got %d", len(first))
	}
	if _, ok := c.data[cache.KeyWorkoutPreferences]; !ok {
		t.Fatalf("expected cache to be populated")
	}

	second, err := uc.ListCatalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("expected repo hit once, got %d", repo.calls)
	}
	if len(second) != 2 || second[0].Name != "Cardio" {
		t.Fatalf("cached catalog differs: %+v", second)
	}
}

func TestListCatalog_NilCacheGoesToStore(t *testing.T) {
	repo := &mockPrefRepo{items: []preference.WorkoutPreference{{ID: uuid.New(), Name: "Cardio"}}}
	uc := NewPreferenceUsecase(repo, nil)

	out, err := uc.ListCatalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out))
	}
}

func TestListCatalog_StoreError(t *testing.T) {
	repo := &mockPrefRepo{err: errors.New("boom")}
	uc := NewPreferenceUsecase(repo, nil)

	if _, err := uc.ListCatalog(context.Background()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
