package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/saadistik/Bashir.inc/internal/models"
)

// CreateWorker persists a new roster entry.
func (s *SQLiteStore) CreateWorker(ctx context.Context, worker *models.Worker) error {
	if worker.ID == "" {
		worker.ID = newID()
	}
	worker.CreatedAt = stamp(worker.CreatedAt)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO workers (id, name, specialty, phone, created_at) VALUES (?, ?, ?, ?, ?)`,
		worker.ID, worker.Name, nullString(worker.Specialty), nullString(worker.Phone), toUnix(worker.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert worker: %w", err)
	}
	return nil
}

const workerColumns = `id, name, specialty, phone, created_at`

func scanWorker(row rowScanner) (*models.Worker, error) {
	var (
		w         models.Worker
		specialty sql.NullString
		phone     sql.NullString
		createdAt int64
	)
	if err := row.Scan(&w.ID, &w.Name, &specialty, &phone, &createdAt); err != nil {
		return nil, err
	}
	w.Specialty = stringOrEmpty(specialty)
	w.Phone = stringOrEmpty(phone)
	w.CreatedAt = fromUnix(createdAt)
	return &w, nil
}

// GetWorker retrieves a worker by ID.
func (s *SQLiteStore) GetWorker(ctx context.Context, id string) (*models.Worker, error) {
	w, err := scanWorker(s.db.QueryRowContext(ctx,
		`SELECT `+workerColumns+` FROM workers WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("worker", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	return w, nil
}

// ListWorkers retrieves every worker ordered by name.
func (s *SQLiteStore) ListWorkers(ctx context.Context, withAssignments bool) ([]*models.Worker, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+workerColumns+` FROM workers ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []*models.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workers: %w", err)
	}
	rows.Close()

	if !withAssignments || len(workers) == 0 {
		return workers, nil
	}

	assignments, err := s.queryAssignments(ctx, "")
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Worker, len(workers))
	for _, w := range workers {
		byID[w.ID] = w
	}
	for _, a := range assignments {
		if w, ok := byID[a.WorkerID]; ok {
			a.Worker = nil
			w.WorkAssignments = append(w.WorkAssignments, a)
		}
	}
	return workers, nil
}

// CreateAssignment persists a work assignment. TotalPay is stored as given;
// it is never recomputed from quantity and rate afterwards.
func (s *SQLiteStore) CreateAssignment(ctx context.Context, assignment *models.WorkAssignment) error {
	if assignment.ID == "" {
		assignment.ID = newID()
	}
	if assignment.Status == "" {
		assignment.Status = models.StatusPending
	}
	assignment.CreatedAt = stamp(assignment.CreatedAt)

	for table, id := range map[string]string{"tussles": assignment.TussleID, "workers": assignment.WorkerID} {
		ok, err := exists(ctx, s.db, table, id)
		if err != nil {
			return err
		}
		if !ok {
			return notFound(table[:len(table)-1], id)
		}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO work_assignments (id, tussle_id, worker_id, quantity, rate, total_pay, due_date, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		assignment.ID, assignment.TussleID, assignment.WorkerID, assignment.Quantity, assignment.Rate,
		assignment.TotalPay, nullString(assignment.DueDate), string(assignment.Status), toUnix(assignment.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert work assignment: %w", err)
	}
	return nil
}

// ListAssignments retrieves a tussle's assignments oldest first.
func (s *SQLiteStore) ListAssignments(ctx context.Context, tussleID string) ([]models.WorkAssignment, error) {
	return s.queryAssignments(ctx, `WHERE wa.tussle_id = ?`, tussleID)
}

func (s *SQLiteStore) queryAssignments(ctx context.Context, where string, args ...any) ([]models.WorkAssignment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT wa.id, wa.tussle_id, wa.worker_id, wa.quantity, wa.rate, wa.total_pay, wa.due_date, wa.status, wa.created_at,
		        wk.id, wk.name, wk.specialty, wk.phone, wk.created_at
		 FROM work_assignments wa LEFT JOIN workers wk ON wk.id = wa.worker_id
		 `+where+` ORDER BY wa.created_at, wa.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work assignments: %w", err)
	}
	defer rows.Close()

	var assignments []models.WorkAssignment
	for rows.Next() {
		var (
			a         models.WorkAssignment
			rate      decimal.NullDecimal
			totalPay  decimal.NullDecimal
			due       sql.NullString
			status    string
			createdAt int64

			workerID        sql.NullString
			workerName      sql.NullString
			workerSpecialty sql.NullString
			workerPhone     sql.NullString
			workerCreatedAt sql.NullInt64
		)
		if err := rows.Scan(&a.ID, &a.TussleID, &a.WorkerID, &a.Quantity, &rate, &totalPay, &due, &status, &createdAt,
			&workerID, &workerName, &workerSpecialty, &workerPhone, &workerCreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan work assignment: %w", err)
		}
		a.Rate = rate.Decimal
		a.TotalPay = totalPay.Decimal
		a.DueDate = stringOrEmpty(due)
		a.Status = models.TussleStatus(status)
		a.CreatedAt = fromUnix(createdAt)
		if workerID.Valid {
			a.Worker = &models.Worker{
				ID:        workerID.String,
				Name:      workerName.String,
				Specialty: stringOrEmpty(workerSpecialty),
				Phone:     stringOrEmpty(workerPhone),
				CreatedAt: fromUnix(workerCreatedAt.Int64),
			}
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work assignments: %w", err)
	}
	return assignments, nil
}
