// Account API implementation of [Authenticator]
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"espoir/internal/models"
	"espoir/internal/shared"
)

// AuthService implements [Authenticator] against the account API. Credentials
// travel as plain JSON; the response body is the authenticated user record
// with its session token.
type AuthService struct {
	baseURL    string
	deviceID   string
	httpClient *http.Client
}

// NewAuthService creates an account API client. deviceID is the
// install-scoped identifier attached to every request.
func NewAuthService(baseURL, deviceID string, client *http.Client) *AuthService {
	if client == nil {
		client = http.DefaultClient
	}
	return &AuthService{
		baseURL:    baseURL,
		deviceID:   deviceID,
		httpClient: client,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for an authenticated user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	return s.postCredentials(ctx, "/auth/login", loginRequest{Email: email, Password: password})
}

// Register creates an account and returns the authenticated user.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	return s.postCredentials(ctx, "/auth/register", registerRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
}

func (s *AuthService) postCredentials(ctx context.Context, endpoint string, payload any) (*models.User, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.deviceID != "" {
		req.Header.Set("X-Device-ID", s.deviceID)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: status %d", shared.ErrAuthFailed, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: auth status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	return &user, nil
}
