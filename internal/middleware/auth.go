package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"connectrpc.com/connect"

	"github.com/saadistik/Bashir.inc/internal/auth"
	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/session"
	"github.com/saadistik/Bashir.inc/internal/storage"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// SessionKey is the context key for the request's *session.Session.
const SessionKey contextKey = "session"

// ErrNoProfile is returned when a valid token belongs to an identity without
// a usable profile.
var ErrNoProfile = errors.New("no profile for this account")

// ProfileStore resolves the profile behind an authenticated identity.
type ProfileStore interface {
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
}

// WithSession returns a context carrying s.
func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, SessionKey, s)
}

// GetSession extracts the session from the context.
// Returns nil if not found; a nil session reads as signed out.
func GetSession(ctx context.Context) *session.Session {
	s, _ := ctx.Value(SessionKey).(*session.Session)
	return s
}

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	return GetSession(ctx).Snapshot().UserID()
}

// GetProfile extracts the resolved profile from the context, or nil.
func GetProfile(ctx context.Context) *models.Profile {
	return GetSession(ctx).Snapshot().Profile
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", auth.ErrMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}

// authenticate validates the bearer token and resolves the caller's profile.
// A missing profile or an unknown role resolves to a nil profile.
func authenticate(ctx context.Context, header string, jwtManager *auth.JWTManager, profiles ProfileStore) (*session.Session, error) {
	token, err := bearerToken(header)
	if err != nil {
		return nil, err
	}
	claims, err := jwtManager.Validate(token)
	if err != nil {
		return nil, err
	}

	s := session.New()
	s.Begin(session.Identity{UserID: claims.UserID, Username: claims.Username})

	profile, err := profiles.GetProfile(ctx, claims.UserID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		profile = nil
	case err != nil:
		return nil, fmt.Errorf("failed to load profile: %w", err)
	case !profile.Role.Valid():
		profile = nil
	}
	s.Resolve(profile)
	return s, nil
}

// RequireAuth returns a middleware that validates JWT tokens and requires an
// identity with a usable profile. The resolved session is added to the
// request context.
func RequireAuth(jwtManager *auth.JWTManager, profiles ProfileStore) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			s, err := authenticate(ctx, req.Header().Get("Authorization"), jwtManager, profiles)
			if errors.Is(err, auth.ErrMissingToken) || errors.Is(err, auth.ErrInvalidToken) {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			if err != nil {
				return nil, connect.NewError(connect.CodeInternal, err)
			}
			if s.Snapshot().Profile == nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, ErrNoProfile)
			}

			// Call the next handler with enriched context
			return next(WithSession(ctx, s), req)
		}
	}
}

// OptionalAuth returns a middleware that validates JWT tokens if present, but allows
// requests without authentication. The context always carries a session,
// signed out when the token is absent or invalid.
func OptionalAuth(jwtManager *auth.JWTManager, profiles ProfileStore) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			s, err := authenticate(ctx, req.Header().Get("Authorization"), jwtManager, profiles)
			switch {
			case errors.Is(err, auth.ErrMissingToken) || errors.Is(err, auth.ErrInvalidToken):
				s = session.New()
			case err != nil:
				return nil, connect.NewError(connect.CodeInternal, err)
			}

			// Call the next handler (with or without user context)
			return next(WithSession(ctx, s), req)
		}
	}
}
