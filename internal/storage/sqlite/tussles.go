package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/storage"
)

// CreateTussle persists a new tussle for an existing company.
func (s *SQLiteStore) CreateTussle(ctx context.Context, tussle *models.Tussle) error {
	if tussle.ID == "" {
		tussle.ID = newID()
	}
	if tussle.Status == "" {
		tussle.Status = models.StatusPending
	}
	tussle.CreatedAt = stamp(tussle.CreatedAt)

	ok, err := exists(ctx, s.db, "companies", tussle.CompanyID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("company", tussle.CompanyID)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO tussles (id, company_id, name, sell_price, due_date, status, image_url, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tussle.ID, tussle.CompanyID, tussle.Name, tussle.SellPrice, nullString(tussle.DueDate),
		string(tussle.Status), nullString(tussle.ImageURL), nullString(tussle.Notes), toUnix(tussle.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert tussle: %w", err)
	}
	return nil
}

const tussleColumns = `t.id, t.company_id, t.name, t.sell_price, t.due_date, t.status, t.image_url, t.notes, t.created_at`

// scanTussle scans tussle columns, optionally followed by company columns.
func scanTussle(row rowScanner, withCompany bool) (models.Tussle, error) {
	var (
		t         models.Tussle
		price     decimal.NullDecimal
		due       sql.NullString
		status    string
		image     sql.NullString
		notes     sql.NullString
		createdAt int64

		companyID        sql.NullString
		companyName      sql.NullString
		companyLogo      sql.NullString
		companyCreatedAt sql.NullInt64
	)
	dest := []any{&t.ID, &t.CompanyID, &t.Name, &price, &due, &status, &image, &notes, &createdAt}
	if withCompany {
		dest = append(dest, &companyID, &companyName, &companyLogo, &companyCreatedAt)
	}
	if err := row.Scan(dest...); err != nil {
		return t, err
	}

	t.SellPrice = price.Decimal
	t.DueDate = stringOrEmpty(due)
	t.Status = models.TussleStatus(status)
	t.ImageURL = stringOrEmpty(image)
	t.Notes = stringOrEmpty(notes)
	t.CreatedAt = fromUnix(createdAt)

	if withCompany && companyID.Valid {
		t.Company = &models.Company{
			ID:        companyID.String,
			Name:      companyName.String,
			LogoURL:   stringOrEmpty(companyLogo),
			CreatedAt: fromUnix(companyCreatedAt.Int64),
		}
	}
	return t, nil
}

// GetTussle retrieves a tussle with its company, allocations and assignments.
func (s *SQLiteStore) GetTussle(ctx context.Context, id string) (*models.Tussle, error) {
	t, err := scanTussle(s.db.QueryRowContext(ctx,
		`SELECT `+tussleColumns+`, c.id, c.name, c.logo_url, c.created_at
		 FROM tussles t LEFT JOIN companies c ON c.id = t.company_id
		 WHERE t.id = ?`, id), true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("tussle", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tussle: %w", err)
	}

	tussles := []models.Tussle{t}
	if err := s.embedCosts(ctx, tussles); err != nil {
		return nil, err
	}
	return &tussles[0], nil
}

// ListTussles retrieves tussles matching q.
func (s *SQLiteStore) ListTussles(ctx context.Context, q storage.TussleQuery) ([]models.Tussle, error) {
	var (
		sb    strings.Builder
		where []string
		args  []any
	)

	sb.WriteString(`SELECT ` + tussleColumns)
	if q.WithCompany {
		sb.WriteString(`, c.id, c.name, c.logo_url, c.created_at FROM tussles t LEFT JOIN companies c ON c.id = t.company_id`)
	} else {
		sb.WriteString(` FROM tussles t`)
	}

	if q.CompanyID != "" {
		where = append(where, `t.company_id = ?`)
		args = append(args, q.CompanyID)
	}
	if q.Status != "" {
		where = append(where, `t.status = ?`)
		args = append(args, string(q.Status))
	}
	if q.WithDueDate {
		where = append(where, `t.due_date IS NOT NULL`)
	}
	if len(where) > 0 {
		sb.WriteString(` WHERE ` + strings.Join(where, ` AND `))
	}

	col, err := orderColumn(q.OrderBy)
	if err != nil {
		return nil, err
	}
	dir := `ASC`
	if q.Descending {
		dir = `DESC`
	}
	// NULLs sort last in either direction.
	fmt.Fprintf(&sb, ` ORDER BY %s IS NULL, %s %s, t.created_at, t.id`, col, col, dir)

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tussles: %w", err)
	}
	defer rows.Close()

	var tussles []models.Tussle
	for rows.Next() {
		t, err := scanTussle(rows, q.WithCompany)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tussle: %w", err)
		}
		tussles = append(tussles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tussles: %w", err)
	}
	rows.Close()

	if q.WithCosts {
		if err := s.embedCosts(ctx, tussles); err != nil {
			return nil, err
		}
	}
	return tussles, nil
}

func orderColumn(o storage.TussleOrder) (string, error) {
	switch o {
	case "", storage.OrderByCreatedAt:
		return "t.created_at", nil
	case storage.OrderByDueDate:
		return "t.due_date", nil
	case storage.OrderByName:
		return "t.name", nil
	default:
		return "", fmt.Errorf("unsupported tussle order %q", o)
	}
}

// UpdateTussleStatus overwrites a tussle's status.
func (s *SQLiteStore) UpdateTussleStatus(ctx context.Context, id string, status models.TussleStatus) error {
	res, err := s.db.ExecContext(ctx, `UPDATE tussles SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update tussle status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound("tussle", id)
	}
	return nil
}

// embedCosts loads allocations and assignments for every tussle in place.
func (s *SQLiteStore) embedCosts(ctx context.Context, tussles []models.Tussle) error {
	if len(tussles) == 0 {
		return nil
	}
	ids := make([]string, len(tussles))
	index := make(map[string]int, len(tussles))
	for i, t := range tussles {
		ids[i] = t.ID
		index[t.ID] = i
	}

	allocations, err := s.queryAllocations(ctx,
		`WHERE a.tussle_id IN (`+placeholders(len(ids))+`)`, stringArgs(ids)...)
	if err != nil {
		return err
	}
	for _, a := range allocations {
		i := index[a.TussleID]
		tussles[i].ExpenseAllocations = append(tussles[i].ExpenseAllocations, a)
	}

	assignments, err := s.queryAssignments(ctx,
		`WHERE wa.tussle_id IN (`+placeholders(len(ids))+`)`, stringArgs(ids)...)
	if err != nil {
		return err
	}
	for _, a := range assignments {
		i := index[a.TussleID]
		tussles[i].WorkAssignments = append(tussles[i].WorkAssignments, a)
	}
	return nil
}
