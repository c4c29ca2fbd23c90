package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"espoir/internal/models"
	"espoir/internal/shared"
	tu "espoir/internal/testing"
)

func newAuthTest(t *testing.T, deviceID string, handler http.HandlerFunc) *AuthService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAuthService(server.URL, deviceID, server.Client())
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()

	t.Run("Login", func(t *testing.T) {
		t.Run("Posts Credentials And Decodes The User", func(t *testing.T) {
			svc := newAuthTest(t, "device-1", func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
					t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
				}
				if got := r.Header.Get("X-Device-ID"); got != "device-1" {
					t.Errorf("expected device header, got %q", got)
				}

				var req loginRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Fatalf("failed to decode request: %v", err)
				}
				if req.Email != "jess@example.com" || req.Password != "hunter2" {
					t.Errorf("unexpected credentials %+v", req)
				}

				json.NewEncoder(w).Encode(models.User{
					ID:       "u1",
					Username: "jess",
					Email:    req.Email,
					Token:    "session-token",
				})
			})

			user, err := svc.Login(ctx, "jess@example.com", "hunter2")
			if err != nil {
				t.Fatalf("login failed: %v", err)
			}
			if user.ID != "u1" || user.Token != "session-token" {
				t.Errorf("unexpected user %+v", user)
			}
		})

		t.Run("Unauthorized Wraps ErrAuthFailed", func(t *testing.T) {
			svc := newAuthTest(t, "", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			})

			_, err := svc.Login(ctx, "jess@example.com", "wrong")
			if !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
		})

		t.Run("Server Error Wraps ErrAPIRequest", func(t *testing.T) {
			svc := newAuthTest(t, "", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			})

			_, err := svc.Login(ctx, "jess@example.com", "hunter2")
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})

		t.Run("Invalid User Payload Wraps ErrAuthFailed", func(t *testing.T) {
			svc := newAuthTest(t, "", func(w http.ResponseWriter, r *http.Request) {
				// No token in the response body.
				json.NewEncoder(w).Encode(models.User{ID: "u1", Username: "jess"})
			})

			_, err := svc.Login(ctx, "jess@example.com", "hunter2")
			if !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
		})

		t.Run("Transport Failure Wraps ErrAPIRequest", func(t *testing.T) {
			client := &http.Client{
				Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused")),
			}
			svc := NewAuthService("http://localhost:0", "", client)

			_, err := svc.Login(ctx, "jess@example.com", "hunter2")
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})
	})

	t.Run("Register", func(t *testing.T) {
		t.Run("Posts The Full Registration", func(t *testing.T) {
			svc := newAuthTest(t, "device-1", func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/auth/register" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}

				var req registerRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Fatalf("failed to decode request: %v", err)
				}
				if req.Username != "jess" || req.Email != "jess@example.com" {
					t.Errorf("unexpected registration %+v", req)
				}

				json.NewEncoder(w).Encode(models.User{
					ID:       "u2",
					Username: req.Username,
					Email:    req.Email,
					Token:    "fresh-token",
				})
			})

			user, err := svc.Register(ctx, "jess", "jess@example.com", "hunter2")
			if err != nil {
				t.Fatalf("register failed: %v", err)
			}
			if user.ID != "u2" || user.Username != "jess" {
				t.Errorf("unexpected user %+v", user)
			}
		})

		t.Run("Conflict Wraps ErrAPIRequest", func(t *testing.T) {
			svc := newAuthTest(t, "", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
			})

			_, err := svc.Register(ctx, "jess", "jess@example.com", "hunter2")
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})
	})
}
