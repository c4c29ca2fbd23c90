package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"espoir/internal/models"
	"espoir/internal/shared"
)

// Logical key namespace. The strings are the on-disk keys and must stay stable.
const (
	KeyUserSession = "user-session"
	KeyFavorites   = "favorites-set"
	KeyTheme       = "theme-mode"
	KeyDeviceID    = "device-id"
)

// Gateway is the typed persistence boundary used by the state stores. It
// owns the JSON encoding of every persisted value; callers never touch raw
// bytes or key strings.
//
// Load methods report absence as a zero result with a nil error. Write
// failures are wrapped in [shared.ErrPersistence] so stores can decide
// whether a failed write is fatal for the operation.
type Gateway struct {
	kv KV
}

// NewGateway creates a Gateway over the given KV store.
func NewGateway(kv KV) *Gateway {
	return &Gateway{kv: kv}
}

// SaveUser persists the session user under the user-session key.
func (g *Gateway) SaveUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("%w: nil user", shared.ErrInvalidInput)
	}
	return g.set(ctx, KeyUserSession, user)
}

// LoadUser restores the persisted session user. Returns (nil, nil) when no
// session is stored.
func (g *Gateway) LoadUser(ctx context.Context) (*models.User, error) {
	var user models.User
	ok, err := g.get(ctx, KeyUserSession, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

// RemoveUser deletes the persisted session.
func (g *Gateway) RemoveUser(ctx context.Context) error {
	if err := g.kv.Remove(ctx, KeyUserSession); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrPersistence, err)
	}
	return nil
}

// SaveFavorites replaces the persisted favorite set wholesale. The slice
// order is the display order and is preserved.
func (g *Gateway) SaveFavorites(ctx context.Context, favorites []models.Movie) error {
	if favorites == nil {
		favorites = []models.Movie{}
	}
	return g.set(ctx, KeyFavorites, favorites)
}

// LoadFavorites restores the persisted favorite set. Returns an empty slice
// when nothing is stored.
func (g *Gateway) LoadFavorites(ctx context.Context) ([]models.Movie, error) {
	var favorites []models.Movie
	ok, err := g.get(ctx, KeyFavorites, &favorites)
	if err != nil {
		return nil, err
	}
	if !ok || favorites == nil {
		return []models.Movie{}, nil
	}
	return favorites, nil
}

// SaveTheme persists the theme preference. Stored as the dark boolean for
// compatibility with earlier client versions.
func (g *Gateway) SaveTheme(ctx context.Context, mode models.ThemeMode) error {
	return g.set(ctx, KeyTheme, mode.IsDark())
}

// LoadTheme restores the persisted theme preference, defaulting to light.
func (g *Gateway) LoadTheme(ctx context.Context) (models.ThemeMode, error) {
	var dark bool
	ok, err := g.get(ctx, KeyTheme, &dark)
	if err != nil || !ok {
		return models.ThemeLight, err
	}
	return models.ThemeFromDark(dark), nil
}

// DeviceID returns the install-scoped identifier, generating and persisting
// one on first use.
func (g *Gateway) DeviceID(ctx context.Context) (string, error) {
	var id string
	ok, err := g.get(ctx, KeyDeviceID, &id)
	if err != nil {
		return "", err
	}
	if ok && id != "" {
		return id, nil
	}

	id = shared.GenerateID()
	if err := g.set(ctx, KeyDeviceID, id); err != nil {
		return "", err
	}
	return id, nil
}

func (g *Gateway) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: failed to encode %s: %v", shared.ErrPersistence, key, err)
	}
	if err := g.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrPersistence, err)
	}
	return nil
}

// get decodes the stored value into out, reporting presence.
func (g *Gateway) get(ctx context.Context, key string, out any) (bool, error) {
	data, err := g.kv.Get(ctx, key)
	if errors.Is(err, shared.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", shared.ErrPersistence, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("%w: failed to decode %s: %v", shared.ErrPersistence, key, err)
	}
	return true, nil
}
