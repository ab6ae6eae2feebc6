package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/saadistik/Bashir.inc/internal/models"
)

// CreateEvent persists a calendar event.
func (s *SQLiteStore) CreateEvent(ctx context.Context, event *models.CalendarEvent) error {
	if event.ID == "" {
		event.ID = newID()
	}
	event.CreatedAt = stamp(event.CreatedAt)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO calendar_events (id, date, title, type, created_at) VALUES (?, ?, ?, ?, ?)`,
		event.ID, event.Date, event.Title, nullString(event.Type), toUnix(event.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert calendar event: %w", err)
	}
	return nil
}

// ListEvents retrieves events between from and to inclusive.
func (s *SQLiteStore) ListEvents(ctx context.Context, from, to string) ([]models.CalendarEvent, error) {
	var (
		where []string
		args  []any
	)
	if from != "" {
		where = append(where, `date >= ?`)
		args = append(args, from)
	}
	if to != "" {
		where = append(where, `date <= ?`)
		args = append(args, to)
	}
	query := `SELECT id, date, title, type, created_at FROM calendar_events`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY date, created_at, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	defer rows.Close()

	var events []models.CalendarEvent
	for rows.Next() {
		var (
			e         models.CalendarEvent
			typ       sql.NullString
			createdAt int64
		)
		if err := rows.Scan(&e.ID, &e.Date, &e.Title, &typ, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan calendar event: %w", err)
		}
		e.Type = stringOrEmpty(typ)
		e.CreatedAt = fromUnix(createdAt)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate calendar events: %w", err)
	}
	return events, nil
}
