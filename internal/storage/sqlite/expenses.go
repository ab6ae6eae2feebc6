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

// CreateReceipt persists a receipt that is not yet allocated to any tussle.
func (s *SQLiteStore) CreateReceipt(ctx context.Context, receipt *models.Receipt) error {
	return insertReceipt(ctx, s.db, receipt)
}

func insertReceipt(ctx context.Context, q queryer, receipt *models.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = newID()
	}
	receipt.UploadedAt = stamp(receipt.UploadedAt)

	_, err := q.ExecContext(ctx,
		`INSERT INTO receipts (id, image_url, total_amount, uploaded_at) VALUES (?, ?, ?, ?)`,
		receipt.ID, receipt.ImageURL, receipt.TotalAmount, toUnix(receipt.UploadedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", err)
	}
	return nil
}

const receiptColumns = `id, image_url, total_amount, uploaded_at`

func scanReceipt(row rowScanner) (*models.Receipt, error) {
	var (
		r          models.Receipt
		total      decimal.NullDecimal
		uploadedAt int64
	)
	if err := row.Scan(&r.ID, &r.ImageURL, &total, &uploadedAt); err != nil {
		return nil, err
	}
	r.TotalAmount = total.Decimal
	r.UploadedAt = fromUnix(uploadedAt)
	return &r, nil
}

// GetReceipt retrieves a receipt by ID with Allocated filled in.
func (s *SQLiteStore) GetReceipt(ctx context.Context, id string) (*models.Receipt, error) {
	return getReceipt(ctx, s.db, id)
}

func getReceipt(ctx context.Context, q queryer, id string) (*models.Receipt, error) {
	r, err := scanReceipt(q.QueryRowContext(ctx,
		`SELECT `+receiptColumns+` FROM receipts WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("receipt", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	allocated, err := allocatedByReceipt(ctx, q, `WHERE receipt_id = ?`, id)
	if err != nil {
		return nil, err
	}
	r.Allocated = allocated[r.ID]
	return r, nil
}

// ListReceipts retrieves every receipt newest first.
func (s *SQLiteStore) ListReceipts(ctx context.Context) ([]*models.Receipt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+receiptColumns+` FROM receipts ORDER BY uploaded_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	var receipts []*models.Receipt
	for rows.Next() {
		r, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		receipts = append(receipts, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}
	rows.Close()

	allocated, err := allocatedByReceipt(ctx, s.db, "")
	if err != nil {
		return nil, err
	}
	for _, r := range receipts {
		r.Allocated = allocated[r.ID]
	}
	return receipts, nil
}

// allocatedByReceipt sums allocated amounts per receipt. Sums are done here
// rather than in SQL so decimal amounts stay exact.
func allocatedByReceipt(ctx context.Context, q queryer, where string, args ...any) (map[string]decimal.Decimal, error) {
	rows, err := q.QueryContext(ctx, `SELECT receipt_id, allocated_amount FROM expense_allocations `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load allocations: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]decimal.Decimal)
	for rows.Next() {
		var (
			receiptID string
			amount    decimal.NullDecimal
		)
		if err := rows.Scan(&receiptID, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan allocation: %w", err)
		}
		sums[receiptID] = sums[receiptID].Add(amount.Decimal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate allocations: %w", err)
	}
	return sums, nil
}

// AllocateReceipt charges part of a receipt to a tussle. The balance check
// and the insert run in one transaction.
func (s *SQLiteStore) AllocateReceipt(ctx context.Context, allocation *models.ExpenseAllocation) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		receipt, err := getReceipt(ctx, tx, allocation.ReceiptID)
		if err != nil {
			return err
		}
		if allocation.AllocatedAmount.GreaterThan(receipt.Remaining()) {
			return fmt.Errorf("%w: receipt %s has %s left, %s requested",
				storage.ErrOverAllocated, receipt.ID, receipt.Remaining(), allocation.AllocatedAmount)
		}
		return insertAllocation(ctx, tx, allocation)
	})
}

// CreateExpense stores a new receipt and allocates (part of) it to a tussle.
func (s *SQLiteStore) CreateExpense(ctx context.Context, receipt *models.Receipt, allocation *models.ExpenseAllocation) error {
	if allocation.AllocatedAmount.GreaterThan(receipt.TotalAmount) {
		return fmt.Errorf("%w: receipt total %s, %s requested",
			storage.ErrOverAllocated, receipt.TotalAmount, allocation.AllocatedAmount)
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := insertReceipt(ctx, tx, receipt); err != nil {
			return err
		}
		allocation.ReceiptID = receipt.ID
		return insertAllocation(ctx, tx, allocation)
	})
}

func insertAllocation(ctx context.Context, q queryer, allocation *models.ExpenseAllocation) error {
	ok, err := exists(ctx, q, "tussles", allocation.TussleID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("tussle", allocation.TussleID)
	}

	if allocation.ID == "" {
		allocation.ID = newID()
	}
	allocation.CreatedAt = stamp(allocation.CreatedAt)

	_, err = q.ExecContext(ctx,
		`INSERT INTO expense_allocations (id, tussle_id, receipt_id, allocated_amount, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		allocation.ID, allocation.TussleID, allocation.ReceiptID, allocation.AllocatedAmount, toUnix(allocation.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense allocation: %w", err)
	}
	return nil
}

// ListAllocations retrieves a tussle's allocations oldest first.
func (s *SQLiteStore) ListAllocations(ctx context.Context, tussleID string) ([]models.ExpenseAllocation, error) {
	return s.queryAllocations(ctx, `WHERE a.tussle_id = ?`, tussleID)
}

func (s *SQLiteStore) queryAllocations(ctx context.Context, where string, args ...any) ([]models.ExpenseAllocation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT a.id, a.tussle_id, a.receipt_id, a.allocated_amount, a.created_at,
		        r.id, r.image_url, r.total_amount, r.uploaded_at
		 FROM expense_allocations a LEFT JOIN receipts r ON r.id = a.receipt_id
		 `+where+` ORDER BY a.created_at, a.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense allocations: %w", err)
	}
	defer rows.Close()

	var allocations []models.ExpenseAllocation
	for rows.Next() {
		var (
			a          models.ExpenseAllocation
			amount     decimal.NullDecimal
			createdAt  int64
			receiptID  sql.NullString
			imageURL   sql.NullString
			total      decimal.NullDecimal
			uploadedAt sql.NullInt64
		)
		if err := rows.Scan(&a.ID, &a.TussleID, &a.ReceiptID, &amount, &createdAt,
			&receiptID, &imageURL, &total, &uploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense allocation: %w", err)
		}
		a.AllocatedAmount = amount.Decimal
		a.CreatedAt = fromUnix(createdAt)
		if receiptID.Valid {
			a.Receipt = &models.Receipt{
				ID:          receiptID.String,
				ImageURL:    imageURL.String,
				TotalAmount: total.Decimal,
				UploadedAt:  fromUnix(uploadedAt.Int64),
			}
		}
		allocations = append(allocations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense allocations: %w", err)
	}
	return allocations, nil
}
