package usecase

import (
	"context"
	"time"

	"fitpartner/internal/domain/preference"
	"fitpartner/internal/infrastructure/cache"
)

// PreferenceCache is the slice of the cache wrapper the catalog needs.
type PreferenceCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type PreferenceUsecase interface {
	ListCatalog(ctx context.Context) ([]preference.WorkoutPreference, error)
}

type Preference struct {
	prefs preference.Repository
	cache PreferenceCache
}

func NewPreferenceUsecase(prefs preference.Repository, c PreferenceCache) *Preference {
	return &Preference{prefs: prefs, cache: c}
}

// ListCatalog serves the reference catalog through the cache. The catalog
// only changes when the seeder runs, so a cache miss falling back to the
// store is always correct.
func (u *Preference) ListCatalog(ctx context.Context) ([]preference.WorkoutPreference, error) {
	if u.cache != nil {
		var cached []preference.WorkoutPreference
		hit, err := u.cache.GetJSON(ctx, cache.KeyWorkoutPreferences, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	out, err := u.prefs.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cache.KeyWorkoutPreferences, out, 0)
	}
	return out, nil
}
