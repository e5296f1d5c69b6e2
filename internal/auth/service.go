package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restofresh-web/internal/clientstate"
	"restofresh-web/internal/logger"
	"restofresh-web/internal/restapi"

	"go.uber.org/zap"
)

var (
	ErrMissingEmail    = errors.New("email is required")
	ErrMissingPassword = errors.New("password is required")
)

// LoginResponse mirrors the upstream auth payload.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Service authenticates against the remote API and keeps the bearer token in
// the client state. Credentials are verified upstream only; nothing is
// checked locally.
type Service struct {
	api   *restapi.Client
	state *clientstate.Store
}

func NewService(api *restapi.Client, state *clientstate.Store) *Service {
	return &Service{api: api, state: state}
}

// Login exchanges credentials for a bearer token and persists it together
// with the user data.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrMissingEmail
	}
	if strings.TrimSpace(password) == "" {
		return nil, ErrMissingPassword
	}

	var resp LoginResponse
	if err := s.api.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	user := clientstate.UserData{UserID: resp.UserID, Role: resp.Role}
	if err := s.state.SetAuth(resp.AccessToken, user); err != nil {
		return nil, fmt.Errorf("store credentials: %w", err)
	}

	logger.FromCtx(ctx).Info("user logged in",
		zap.String("user_id", resp.UserID),
		zap.String("role", resp.Role),
	)
	return &resp, nil
}

// Logout drops the stored credentials.
func (s *Service) Logout() {
	s.state.ClearAuth()
}

// IsAuthenticated reports whether a token is stored locally. The token may
// still be rejected upstream; a 401 then clears it.
func (s *Service) IsAuthenticated() bool {
	return s.state.Token() != ""
}

// IsAdmin reports whether the stored user data carries the admin role.
func (s *Service) IsAdmin() bool {
	user, ok := s.state.User()
	return ok && user.Role == "admin"
}
