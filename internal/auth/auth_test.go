package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/storage"
)

type memoryStorage struct {
	identities map[string]*models.Identity
	profiles   map[string]*models.Profile
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{
		identities: make(map[string]*models.Identity),
		profiles:   make(map[string]*models.Profile),
	}
}

func (m *memoryStorage) CreateIdentity(_ context.Context, identity *models.Identity, profile *models.Profile) error {
	if _, ok := m.identities[identity.Username]; ok {
		return fmt.Errorf("%w: %s", storage.ErrUsernameTaken, identity.Username)
	}
	identity.ID = fmt.Sprintf("id-%d", len(m.identities)+1)
	profile.ID = identity.ID
	m.identities[identity.Username] = identity
	m.profiles[identity.ID] = profile
	return nil
}

func (m *memoryStorage) GetIdentityByUsername(_ context.Context, username string) (*models.Identity, error) {
	identity, ok := m.identities[username]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return identity, nil
}

func (m *memoryStorage) CountIdentities(context.Context) (int, error) {
	return len(m.identities), nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(newMemoryStorage())

	profile, err := a.Register(ctx, Account{
		Username: "  Ali ",
		Password: "secret",
		FullName: "Ali Khan",
		Role:     models.RoleEmployee,
		Salary:   decimal.NewNullDecimal(decimal.NewFromInt(30000)),
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if profile.Username != "ali" || profile.ID == "" {
		t.Errorf("Unexpected profile: %+v", profile)
	}

	identity, err := a.Authenticate(ctx, "ALI", "secret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if identity.ID != profile.ID {
		t.Errorf("Expected identity %s, got %s", profile.ID, identity.ID)
	}

	// Unknown user and wrong password must be indistinguishable.
	_, errUnknown := a.Authenticate(ctx, "nobody", "secret")
	_, errWrong := a.Authenticate(ctx, "ali", "wrong-password")
	if !errors.Is(errUnknown, ErrInvalidCredentials) || !errors.Is(errWrong, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for both, got %v and %v", errUnknown, errWrong)
	}
	if errUnknown.Error() != errWrong.Error() {
		t.Errorf("Error messages differ: %q vs %q", errUnknown, errWrong)
	}
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(newMemoryStorage())
	if _, err := a.Register(ctx, Account{Username: "taken", Password: "123456", Role: models.RoleEmployee}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name    string
		account Account
		wantErr error
	}{
		{"short password", Account{Username: "bob", Password: "12345", Role: models.RoleEmployee}, ErrWeakPassword},
		{"empty username", Account{Username: "  ", Password: "123456", Role: models.RoleEmployee}, ErrInvalidUsername},
		{"username with space", Account{Username: "bob smith", Password: "123456", Role: models.RoleEmployee}, ErrInvalidUsername},
		{"unknown role", Account{Username: "bob", Password: "123456", Role: "admin"}, ErrInvalidRole},
		{"duplicate", Account{Username: "Taken", Password: "123456", Role: models.RoleEmployee}, ErrUsernameExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Register(ctx, tt.account)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEnsureOwner(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStorage()
	a := NewPasswordAuthenticator(store)
	owner := Account{Username: "bashir", Password: "owner-pass", FullName: "Bashir", Role: models.RoleEmployee}

	created, err := EnsureOwner(ctx, store, a, owner)
	if err != nil {
		t.Fatalf("EnsureOwner failed: %v", err)
	}
	if !created {
		t.Fatal("Expected owner to be created on empty store")
	}
	p := store.profiles[store.identities["bashir"].ID]
	if !p.IsOwner() {
		t.Errorf("Expected owner role, got %s", p.Role)
	}

	created, err = EnsureOwner(ctx, store, a, owner)
	if err != nil {
		t.Fatalf("EnsureOwner failed: %v", err)
	}
	if created {
		t.Error("Expected no second owner")
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	identity := &models.Identity{ID: "user-1", Username: "ali"}

	token, err := m.Generate(identity)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Username != "ali" {
		t.Errorf("Unexpected claims: %+v", claims)
	}

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewJWTManager("other", time.Hour).Validate(token)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := NewJWTManager("test-secret", -time.Minute).Generate(identity)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := m.Validate(expired); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("foreign issuer", func(t *testing.T) {
		foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			UserID: "user-1",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("SignedString failed: %v", err)
		}
		if _, err := m.Validate(foreign); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := m.Validate(""); !errors.Is(err, ErrMissingToken) {
			t.Errorf("Expected ErrMissingToken, got %v", err)
		}
	})
}
