// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/saadistik/Bashir.inc/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken is returned when creating an identity whose username exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrOverAllocated is returned when an allocation would push the sum of
	// allocations against a receipt above the receipt total.
	ErrOverAllocated = errors.New("allocation exceeds remaining receipt balance")
)

// TussleOrder is a column tussle listings can be sorted by.
type TussleOrder string

const (
	OrderByCreatedAt TussleOrder = "created_at"
	OrderByDueDate   TussleOrder = "due_date"
	OrderByName      TussleOrder = "name"
)

// TussleQuery filters, orders and embeds relations for ListTussles.
// Zero values mean "no filter".
type TussleQuery struct {
	CompanyID string
	Status    models.TussleStatus

	// WithDueDate keeps only tussles whose due date is set.
	WithDueDate bool

	OrderBy    TussleOrder
	Descending bool

	// WithCompany embeds the owning company.
	WithCompany bool

	// WithCosts embeds expense allocations and work assignments.
	WithCosts bool
}

// Store defines the record store the services run on.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateIdentity persists a login handle together with its profile.
	// Returns ErrUsernameTaken if the username exists.
	CreateIdentity(ctx context.Context, identity *models.Identity, profile *models.Profile) error
	GetIdentityByUsername(ctx context.Context, username string) (*models.Identity, error)
	CountIdentities(ctx context.Context) (int, error)

	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	// ListProfiles returns profiles with the given role, or all when role is empty.
	ListProfiles(ctx context.Context, role models.Role) ([]models.Profile, error)

	CreateCompany(ctx context.Context, company *models.Company) error
	GetCompany(ctx context.Context, id string) (*models.Company, error)
	// ListCompanies returns companies ordered by name, optionally embedding their tussles.
	ListCompanies(ctx context.Context, withTussles bool) ([]*models.Company, error)
	// SearchCompanies matches term as a case-insensitive substring of the name.
	SearchCompanies(ctx context.Context, term string, limit int) ([]*models.Company, error)

	CreateTussle(ctx context.Context, tussle *models.Tussle) error
	// GetTussle returns the tussle with its company and cost records embedded.
	GetTussle(ctx context.Context, id string) (*models.Tussle, error)
	ListTussles(ctx context.Context, q TussleQuery) ([]models.Tussle, error)
	// UpdateTussleStatus overwrites the status. Last write wins.
	UpdateTussleStatus(ctx context.Context, id string, status models.TussleStatus) error

	CreateReceipt(ctx context.Context, receipt *models.Receipt) error
	GetReceipt(ctx context.Context, id string) (*models.Receipt, error)
	// ListReceipts returns receipts newest first with Allocated filled in.
	ListReceipts(ctx context.Context) ([]*models.Receipt, error)

	// AllocateReceipt charges part of an existing receipt to a tussle.
	// Returns ErrOverAllocated if the receipt's remaining balance is too small.
	AllocateReceipt(ctx context.Context, allocation *models.ExpenseAllocation) error
	// CreateExpense stores a new receipt and its first allocation atomically.
	CreateExpense(ctx context.Context, receipt *models.Receipt, allocation *models.ExpenseAllocation) error
	// ListAllocations returns a tussle's allocations with their receipts embedded.
	ListAllocations(ctx context.Context, tussleID string) ([]models.ExpenseAllocation, error)

	CreateWorker(ctx context.Context, worker *models.Worker) error
	GetWorker(ctx context.Context, id string) (*models.Worker, error)
	// ListWorkers returns workers ordered by name, optionally embedding their assignments.
	ListWorkers(ctx context.Context, withAssignments bool) ([]*models.Worker, error)

	CreateAssignment(ctx context.Context, assignment *models.WorkAssignment) error
	// ListAssignments returns a tussle's assignments with their workers embedded.
	ListAssignments(ctx context.Context, tussleID string) ([]models.WorkAssignment, error)

	CreateEvent(ctx context.Context, event *models.CalendarEvent) error
	// ListEvents returns events with from <= date <= to ordered by date.
	// Empty bounds are open.
	ListEvents(ctx context.Context, from, to string) ([]models.CalendarEvent, error)

	// Close releases any resources held by the store.
	Close() error
}
