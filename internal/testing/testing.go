// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"espoir/internal/models"
)

// CatalogStub is a function-field test double for services.Catalog. Unset
// fields return empty results, so tests only wire the endpoints they gate.
type CatalogStub struct {
	TrendingFn func(ctx context.Context) ([]models.Movie, error)
	PopularFn  func(ctx context.Context) ([]models.Movie, error)
	DetailsFn  func(ctx context.Context, movieID int) (*models.Movie, error)
	SearchFn   func(ctx context.Context, query string) ([]models.Movie, error)
}

func (s *CatalogStub) Trending(ctx context.Context) ([]models.Movie, error) {
	if s.TrendingFn == nil {
		return []models.Movie{}, nil
	}
	return s.TrendingFn(ctx)
}

func (s *CatalogStub) Popular(ctx context.Context) ([]models.Movie, error) {
	if s.PopularFn == nil {
		return []models.Movie{}, nil
	}
	return s.PopularFn(ctx)
}

func (s *CatalogStub) Details(ctx context.Context, movieID int) (*models.Movie, error) {
	if s.DetailsFn == nil {
		return &models.Movie{ID: movieID}, nil
	}
	return s.DetailsFn(ctx, movieID)
}

func (s *CatalogStub) Search(ctx context.Context, query string) ([]models.Movie, error) {
	if s.SearchFn == nil {
		return []models.Movie{}, nil
	}
	return s.SearchFn(ctx, query)
}

// AuthStub is a function-field test double for services.Authenticator.
type AuthStub struct {
	LoginFn    func(ctx context.Context, email, password string) (*models.User, error)
	RegisterFn func(ctx context.Context, username, email, password string) (*models.User, error)
}

func (s *AuthStub) Login(ctx context.Context, email, password string) (*models.User, error) {
	if s.LoginFn == nil {
		return &models.User{ID: "1", Username: "stub", Email: email, Token: "stub-token"}, nil
	}
	return s.LoginFn(ctx, email, password)
}

func (s *AuthStub) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if s.RegisterFn == nil {
		return &models.User{ID: "1", Username: username, Email: email, Token: "stub-token"}, nil
	}
	return s.RegisterFn(ctx, username, email, password)
}

// MemoryKV is an in-memory storage.KV with per-operation failure toggles,
// used where spinning up sqlite is overkill or a write failure is needed.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string][]byte

	FailGet    bool
	FailSet    bool
	FailRemove bool

	// NotFoundErr is returned wrapped when a key is absent; wire it to
	// shared.ErrKeyNotFound so gateway absence detection works.
	NotFoundErr error

	SetCalls int
}

func NewMemoryKV(notFound error) *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte), NotFoundErr: notFound}
}

func (m *MemoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet {
		return nil, errors.New("kv get failed")
	}
	value, ok := m.data[key]
	if !ok {
		return nil, m.NotFoundErr
	}
	dup := make([]byte, len(value))
	copy(dup, value)
	return dup, nil
}

func (m *MemoryKV) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	if m.FailSet {
		return errors.New("kv set failed")
	}
	dup := make([]byte, len(value))
	copy(dup, value)
	m.data[key] = dup
	return nil
}

func (m *MemoryKV) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailRemove {
		return errors.New("kv remove failed")
	}
	delete(m.data, key)
	return nil
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
