package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/saadistik/Bashir.inc/internal/access"
	"github.com/saadistik/Bashir.inc/internal/auth"
	"github.com/saadistik/Bashir.inc/internal/middleware"
	"github.com/saadistik/Bashir.inc/internal/storage"
	"github.com/saadistik/Bashir.inc/pkg/api"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	store         storage.Store
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, store storage.Store) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		store:         store,
	}
}

// Login authenticates a user and returns a JWT token and the user's landing screen.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	slog.Info("Login request received", "username", req.Msg.Username)

	if req.Msg.Username == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	identity, err := s.authenticator.Authenticate(ctx, req.Msg.Username, req.Msg.Password)
	if err != nil {
		slog.Warn("Login failed", "username", req.Msg.Username, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	profile, err := s.store.GetProfile(ctx, identity.ID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && !profile.Role.Valid()) {
		slog.Warn("Login without usable profile", "user_id", identity.ID)
		return nil, connect.NewError(connect.CodeUnauthenticated, ErrNoProfile)
	}
	if err != nil {
		return nil, storeError("Login", err)
	}

	token, err := s.jwtManager.Generate(identity)
	if err != nil {
		slog.Error("Failed to generate token", "user_id", identity.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("User logged in", "user_id", identity.ID, "role", profile.Role)
	return connect.NewResponse(&api.LoginResponse{
		User:  toAPIUser(profile),
		Token: token,
		Home:  access.HomeFor(profile.Role),
	}), nil
}

// Logout acknowledges a sign-out. Tokens are stateless; the client drops its
// token and clears its session.
func (s *AuthService) Logout(ctx context.Context, req *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	slog.Info("Logout request received", "user_id", middleware.GetUserID(ctx))
	return connect.NewResponse(&api.LogoutResponse{}), nil
}

// GetCurrentUser returns the signed-in user's profile.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	snap := middleware.GetSession(ctx).Snapshot()
	if !snap.Authenticated() {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	if snap.Profile == nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, ErrNoProfile)
	}

	return connect.NewResponse(&api.GetCurrentUserResponse{
		User: toAPIUser(snap.Profile),
	}), nil
}
