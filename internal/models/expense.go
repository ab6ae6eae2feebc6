package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is one proof of purchase. It is independent of any tussle until
// part of it is allocated, and may be shared between several tussles.
type Receipt struct {
	ID          string
	ImageURL    string
	TotalAmount decimal.Decimal
	UploadedAt  time.Time

	// Allocated is the sum of all allocations referencing this receipt.
	// Populated only by listings that compute it.
	Allocated decimal.Decimal
}

// Remaining is the part of the receipt not yet allocated to any tussle.
func (r *Receipt) Remaining() decimal.Decimal {
	return r.TotalAmount.Sub(r.Allocated)
}

// ExpenseAllocation charges a portion of a receipt to a tussle.
type ExpenseAllocation struct {
	ID              string
	TussleID        string
	ReceiptID       string
	AllocatedAmount decimal.Decimal
	CreatedAt       time.Time

	// Receipt is populated only when the query embeds it.
	Receipt *Receipt
}
