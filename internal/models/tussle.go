package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the storage and wire format of due dates and calendar days.
const DateLayout = "2006-01-02"

// TussleStatus is the two-state progress flag of a tussle.
type TussleStatus string

const (
	StatusPending   TussleStatus = "pending"
	StatusCompleted TussleStatus = "completed"
)

// Valid reports whether s is pending or completed.
func (s TussleStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Toggled returns the opposite status.
func (s TussleStatus) Toggled() TussleStatus {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// Tussle is a manufacturing work order for a company.
// It is the aggregation root for cost: expense allocations and work
// assignments point back at it by TussleID.
type Tussle struct {
	// ID is the unique identifier for the tussle (UUID format).
	ID string

	// CompanyID is the owning company.
	CompanyID string

	Name string

	// SellPrice is the revenue the tussle brings in.
	SellPrice decimal.Decimal

	// DueDate is "YYYY-MM-DD" or empty when there is no deadline.
	DueDate string

	// Status only changes through an explicit toggle; it is never derived.
	Status TussleStatus

	ImageURL string
	Notes    string

	CreatedAt time.Time

	// Company is populated only when the query embeds it.
	Company *Company

	// ExpenseAllocations and WorkAssignments are populated only when the
	// query embeds the tussle's cost records.
	ExpenseAllocations []ExpenseAllocation
	WorkAssignments    []WorkAssignment
}

// HasDueDate reports whether the tussle has a deadline.
func (t *Tussle) HasDueDate() bool {
	return t.DueDate != ""
}
