package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/saadistik/Bashir.inc/internal/models"
)

// IdentityCounter reports how many identities exist.
type IdentityCounter interface {
	CountIdentities(ctx context.Context) (int, error)
}

// EnsureOwner registers the owner account when the store has no identities
// yet. It returns whether an account was created.
func EnsureOwner(ctx context.Context, counter IdentityCounter, authenticator Authenticator, owner Account) (bool, error) {
	n, err := counter.CountIdentities(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count identities: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	if owner.Username == "" || owner.Password == "" {
		slog.Warn("No identities exist and no owner credentials are configured; nobody can sign in")
		return false, nil
	}

	owner.Role = models.RoleOwner
	profile, err := authenticator.Register(ctx, owner)
	if err != nil {
		return false, fmt.Errorf("failed to register owner: %w", err)
	}

	slog.Info("Owner account created", "username", profile.Username, "user_id", profile.ID)
	return true, nil
}
