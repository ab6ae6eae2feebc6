package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worker is an independent roster entry. Workers are referenced, not owned,
// by work assignments.
type Worker struct {
	ID        string
	Name      string
	Specialty string
	Phone     string
	CreatedAt time.Time

	// WorkAssignments is populated only when the query embeds them.
	WorkAssignments []WorkAssignment
}

// WorkAssignment records piecework done by a worker on a tussle.
type WorkAssignment struct {
	ID       string
	TussleID string
	WorkerID string

	// Quantity is the number of pieces, always > 0.
	Quantity int64

	// Rate is the pay per piece.
	Rate decimal.Decimal

	// TotalPay is Quantity × Rate, fixed when the assignment is created.
	TotalPay decimal.Decimal

	DueDate   string
	Status    TussleStatus
	CreatedAt time.Time

	// Worker is populated only when the query embeds it.
	Worker *Worker
}

// NewWorkAssignment builds a pending assignment with TotalPay computed from
// quantity and rate.
func NewWorkAssignment(tussleID, workerID string, quantity int64, rate decimal.Decimal, dueDate string) *WorkAssignment {
	return &WorkAssignment{
		TussleID: tussleID,
		WorkerID: workerID,
		Quantity: quantity,
		Rate:     rate,
		TotalPay: rate.Mul(decimal.NewFromInt(quantity)),
		DueDate:  dueDate,
		Status:   StatusPending,
	}
}
