// Package api defines the wire messages of the bashir.v1 RPC services.
//
// Messages are plain structs encoded as JSON. Money fields are
// decimal.Decimal and travel as quoted strings so no precision is lost.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a profile as seen by clients.
type User struct {
	ID       string              `json:"id"`
	Username string              `json:"username"`
	FullName string              `json:"full_name"`
	Role     string              `json:"role"`
	Salary   decimal.NullDecimal `json:"salary"`
	IDCard   string              `json:"id_card,omitempty"`
}

type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Tussle struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Name      string          `json:"name"`
	SellPrice decimal.Decimal `json:"sell_price"`
	DueDate   string          `json:"due_date,omitempty"`
	Status    string          `json:"status"`
	ImageURL  string          `json:"image_url,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`

	// Company is set on reads that embed it.
	Company *Company `json:"company,omitempty"`
}

// Costs is the financial breakdown of one or more tussles.
type Costs struct {
	Revenue      decimal.Decimal `json:"revenue"`
	MaterialCost decimal.Decimal `json:"material_cost"`
	LaborCost    decimal.Decimal `json:"labor_cost"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	Profit       decimal.Decimal `json:"profit"`
	// MarginPercent is profit / revenue × 100 rounded to one decimal, 0
	// when revenue is 0.
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

// TussleSummary is a tussle with its computed costs.
type TussleSummary struct {
	Tussle Tussle `json:"tussle"`
	Costs  Costs  `json:"costs"`
}

type Receipt struct {
	ID          string          `json:"id"`
	ImageURL    string          `json:"image_url"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Allocated   decimal.Decimal `json:"allocated"`
	Remaining   decimal.Decimal `json:"remaining"`
	UploadedAt  time.Time       `json:"uploaded_at"`
}

type ExpenseAllocation struct {
	ID              string          `json:"id"`
	TussleID        string          `json:"tussle_id"`
	ReceiptID       string          `json:"receipt_id"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	Receipt         *Receipt        `json:"receipt,omitempty"`
}

type Worker struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type WorkAssignment struct {
	ID        string          `json:"id"`
	TussleID  string          `json:"tussle_id"`
	WorkerID  string          `json:"worker_id"`
	Quantity  int64           `json:"quantity"`
	Rate      decimal.Decimal `json:"rate"`
	TotalPay  decimal.Decimal `json:"total_pay"`
	DueDate   string          `json:"due_date,omitempty"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	Worker    *Worker         `json:"worker,omitempty"`
}

type CalendarEvent struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Title     string    `json:"title"`
	Type      string    `json:"type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusTally counts tussles by status.
type StatusTally struct {
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

type TrendPoint struct {
	Label   string          `json:"label"`
	Start   time.Time       `json:"start"`
	End     time.Time       `json:"end"`
	Revenue decimal.Decimal `json:"revenue"`
	Costs   decimal.Decimal `json:"costs"`
	Profit  decimal.Decimal `json:"profit"`
}
