package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/storage"
)

// CreateIdentity inserts a login handle and its profile in one transaction.
func (s *SQLiteStore) CreateIdentity(ctx context.Context, identity *models.Identity, profile *models.Profile) error {
	if identity.ID == "" {
		identity.ID = newID()
	}
	identity.CreatedAt = stamp(identity.CreatedAt)
	profile.ID = identity.ID
	if profile.Username == "" {
		profile.Username = identity.Username
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO identities (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)`,
			identity.ID, identity.Username, identity.PasswordHash, toUnix(identity.CreatedAt),
		)
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", storage.ErrUsernameTaken, identity.Username)
		}
		if err != nil {
			return fmt.Errorf("failed to insert identity: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO profiles (id, username, full_name, role, salary, id_card) VALUES (?, ?, ?, ?, ?, ?)`,
			profile.ID, profile.Username, profile.FullName, string(profile.Role), profile.Salary, nullString(profile.IDCard),
		)
		if err != nil {
			return fmt.Errorf("failed to insert profile: %w", err)
		}
		return nil
	})
}

// GetIdentityByUsername retrieves a login handle by username.
func (s *SQLiteStore) GetIdentityByUsername(ctx context.Context, username string) (*models.Identity, error) {
	identity := &models.Identity{}
	var createdAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM identities WHERE username = ?`,
		username,
	).Scan(&identity.ID, &identity.Username, &identity.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("identity", username)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}
	identity.CreatedAt = fromUnix(createdAt)
	return identity, nil
}

// CountIdentities returns the number of login handles.
func (s *SQLiteStore) CountIdentities(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM identities`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count identities: %w", err)
	}
	return n, nil
}

const profileColumns = `id, username, full_name, role, salary, id_card`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var (
		p      models.Profile
		role   string
		salary decimal.NullDecimal
		idCard sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Username, &p.FullName, &role, &salary, &idCard); err != nil {
		return p, err
	}
	p.Role = models.Role(role)
	p.Salary = salary
	p.IDCard = stringOrEmpty(idCard)
	return p, nil
}

// GetProfile retrieves a profile by identity ID.
func (s *SQLiteStore) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	p, err := scanProfile(s.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("profile", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// ListProfiles retrieves profiles by role ordered by full name.
func (s *SQLiteStore) ListProfiles(ctx context.Context, role models.Role) ([]models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles`
	var args []any
	if role != "" {
		query += ` WHERE role = ?`
		args = append(args, string(role))
	}
	query += ` ORDER BY full_name, username`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}
	return profiles, nil
}
