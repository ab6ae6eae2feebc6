package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/storage"
)

// CreateCompany persists a new company.
func (s *SQLiteStore) CreateCompany(ctx context.Context, company *models.Company) error {
	if company.ID == "" {
		company.ID = newID()
	}
	company.CreatedAt = stamp(company.CreatedAt)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO companies (id, name, logo_url, created_at) VALUES (?, ?, ?, ?)`,
		company.ID, company.Name, nullString(company.LogoURL), toUnix(company.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert company: %w", err)
	}
	return nil
}

const companyColumns = `id, name, logo_url, created_at`

func scanCompany(row rowScanner) (*models.Company, error) {
	var (
		c         models.Company
		logo      sql.NullString
		createdAt int64
	)
	if err := row.Scan(&c.ID, &c.Name, &logo, &createdAt); err != nil {
		return nil, err
	}
	c.LogoURL = stringOrEmpty(logo)
	c.CreatedAt = fromUnix(createdAt)
	return &c, nil
}

// GetCompany retrieves a company by ID.
func (s *SQLiteStore) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	c, err := scanCompany(s.db.QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("company", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return c, nil
}

// ListCompanies retrieves all companies ordered by name.
func (s *SQLiteStore) ListCompanies(ctx context.Context, withTussles bool) ([]*models.Company, error) {
	companies, err := s.queryCompanies(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	if !withTussles || len(companies) == 0 {
		return companies, nil
	}

	tussles, err := s.ListTussles(ctx, storage.TussleQuery{OrderBy: storage.OrderByCreatedAt, Descending: true})
	if err != nil {
		return nil, err
	}
	byCompany := make(map[string]*models.Company, len(companies))
	for _, c := range companies {
		byCompany[c.ID] = c
	}
	for _, t := range tussles {
		if c, ok := byCompany[t.CompanyID]; ok {
			c.Tussles = append(c.Tussles, t)
		}
	}
	return companies, nil
}

// SearchCompanies finds companies whose name contains term, ignoring case.
// Matches come back oldest first.
func (s *SQLiteStore) SearchCompanies(ctx context.Context, term string, limit int) ([]*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies
		WHERE casefold(name) LIKE '%' || casefold(?) || '%' ESCAPE '\'
		ORDER BY created_at, id`
	args := []any{escapeLike(term)}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.queryCompanies(ctx, query, args...)
}

func (s *SQLiteStore) queryCompanies(ctx context.Context, query string, args ...any) ([]*models.Company, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate companies: %w", err)
	}
	return companies, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user input literal.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
