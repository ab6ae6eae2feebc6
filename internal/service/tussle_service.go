package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/saadistik/Bashir.inc/internal/calculator"
	"github.com/saadistik/Bashir.inc/internal/intake"
	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/objectstore"
	"github.com/saadistik/Bashir.inc/internal/storage"
	"github.com/saadistik/Bashir.inc/pkg/api"
)

// TussleService implements the TussleService RPC interface.
type TussleService struct {
	store    storage.Store
	resolver *intake.Resolver
	objects  *objectstore.Store
}

// NewTussleService creates a new TussleService.
func NewTussleService(store storage.Store, resolver *intake.Resolver, objects *objectstore.Store) *TussleService {
	return &TussleService{store: store, resolver: resolver, objects: objects}
}

// uploadError maps object store failures. Rejected content is a validation
// error.
func uploadError(err error) error {
	if errors.Is(err, objectstore.ErrNotImage) || errors.Is(err, objectstore.ErrTooLarge) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	slog.Error("Upload failed", "error", err)
	return connect.NewError(connect.CodeInternal, err)
}

// discard removes an uploaded object whose record could not be written.
func (s *TussleService) discard(ctx context.Context, bucket, url string) {
	if err := s.objects.DeleteURL(ctx, bucket, url); err != nil {
		slog.Warn("Failed to remove orphaned upload", "url", url, "error", err)
	}
}

// CreateTussle starts a new order for an existing company or for a client
// name resolved through the intake resolver.
func (s *TussleService) CreateTussle(ctx context.Context, req *connect.Request[api.CreateTussleRequest]) (*connect.Response[api.CreateTussleResponse], error) {
	slog.Info("CreateTussle request received",
		"company_id", req.Msg.CompanyID,
		"client_name", req.Msg.ClientName,
		"name", req.Msg.Name,
	)

	// Validate everything before the first write.
	name, err := required("tussle name", req.Msg.Name)
	if err != nil {
		return nil, err
	}
	if err := nonNegative("sell price", req.Msg.SellPrice); err != nil {
		return nil, err
	}
	dueDate, err := optionalDate("due date", req.Msg.DueDate)
	if err != nil {
		return nil, err
	}
	if req.Msg.CompanyID == "" && req.Msg.ClientName == "" {
		return nil, invalid("company id or client name is required")
	}
	if len(req.Msg.Image) > 0 {
		if _, err := objectstore.Validate(req.Msg.Image); err != nil {
			return nil, uploadError(err)
		}
	}

	var (
		company *models.Company
		created bool
	)
	if req.Msg.CompanyID != "" {
		company, err = s.store.GetCompany(ctx, req.Msg.CompanyID)
		if err != nil {
			return nil, storeError("CreateTussle", err)
		}
	} else {
		res, err := resolveClient(ctx, s.resolver, req.Msg.ClientName)
		if err != nil {
			return nil, err
		}
		company, created = res.Company, res.Created
	}

	tussle := &models.Tussle{
		CompanyID: company.ID,
		Name:      name,
		SellPrice: req.Msg.SellPrice,
		DueDate:   dueDate,
		Status:    models.StatusPending,
		Notes:     req.Msg.Notes,
	}
	if len(req.Msg.Image) > 0 {
		url, err := s.objects.Upload(ctx, objectstore.BucketTussleImages, req.Msg.ImageName, req.Msg.Image)
		if err != nil {
			return nil, uploadError(err)
		}
		tussle.ImageURL = url
	}

	if err := s.store.CreateTussle(ctx, tussle); err != nil {
		if tussle.ImageURL != "" {
			s.discard(ctx, objectstore.BucketTussleImages, tussle.ImageURL)
		}
		return nil, storeError("CreateTussle", err)
	}
	tussle.Company = company

	slog.Info("Tussle created", "tussle_id", tussle.ID, "company_id", company.ID, "company_created", created)
	return connect.NewResponse(&api.CreateTussleResponse{
		Tussle:         toAPITussle(tussle),
		CompanyCreated: created,
	}), nil
}

// GetTussle returns a tussle with its company, cost records and breakdown.
func (s *TussleService) GetTussle(ctx context.Context, req *connect.Request[api.GetTussleRequest]) (*connect.Response[api.GetTussleResponse], error) {
	slog.Info("GetTussle request received", "tussle_id", req.Msg.ID)

	tussle, err := s.store.GetTussle(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("GetTussle", err)
	}

	return connect.NewResponse(&api.GetTussleResponse{
		Tussle:      toAPITussle(tussle),
		Costs:       toAPICosts(calculator.TussleCosts(tussle)),
		Expenses:    toAPIAllocations(tussle.ExpenseAllocations),
		Assignments: toAPIAssignments(tussle.WorkAssignments),
	}), nil
}

// ListTussles returns tussles matching the filters with their costs.
func (s *TussleService) ListTussles(ctx context.Context, req *connect.Request[api.ListTusslesRequest]) (*connect.Response[api.ListTusslesResponse], error) {
	slog.Info("ListTussles request received",
		"company_id", req.Msg.CompanyID,
		"status", req.Msg.Status,
		"order_by", req.Msg.OrderBy,
	)

	q := storage.TussleQuery{
		CompanyID:   req.Msg.CompanyID,
		Status:      models.TussleStatus(req.Msg.Status),
		WithDueDate: req.Msg.WithDueDate,
		OrderBy:     storage.TussleOrder(req.Msg.OrderBy),
		Descending:  req.Msg.Descending,
		WithCompany: true,
		WithCosts:   true,
	}
	if q.Status != "" && !q.Status.Valid() {
		return nil, invalid("unknown status %q", req.Msg.Status)
	}
	switch q.OrderBy {
	case "", storage.OrderByCreatedAt, storage.OrderByDueDate, storage.OrderByName:
	default:
		return nil, invalid("unknown order %q", req.Msg.OrderBy)
	}

	tussles, err := s.store.ListTussles(ctx, q)
	if err != nil {
		return nil, storeError("ListTussles", err)
	}

	slog.Info("ListTussles successful", "count", len(tussles))
	return connect.NewResponse(&api.ListTusslesResponse{Tussles: toAPISummaries(tussles)}), nil
}

// ToggleTussleStatus flips a tussle between pending and completed.
// Concurrent toggles are last-write-wins.
func (s *TussleService) ToggleTussleStatus(ctx context.Context, req *connect.Request[api.ToggleTussleStatusRequest]) (*connect.Response[api.ToggleTussleStatusResponse], error) {
	slog.Info("ToggleTussleStatus request received", "tussle_id", req.Msg.ID)

	tussle, err := s.store.GetTussle(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("ToggleTussleStatus", err)
	}
	next := tussle.Status.Toggled()
	if err := s.store.UpdateTussleStatus(ctx, tussle.ID, next); err != nil {
		return nil, storeError("ToggleTussleStatus", err)
	}
	tussle.Status = next

	slog.Info("Tussle status changed", "tussle_id", tussle.ID, "status", next)
	return connect.NewResponse(&api.ToggleTussleStatusResponse{Tussle: toAPITussle(tussle)}), nil
}

// AddExpense charges material cost to a tussle, either from an existing
// receipt or from a newly uploaded one.
func (s *TussleService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	slog.Info("AddExpense request received",
		"tussle_id", req.Msg.TussleID,
		"receipt_id", req.Msg.ReceiptID,
		"amount", req.Msg.Amount,
	)

	tussleID, err := required("tussle id", req.Msg.TussleID)
	if err != nil {
		return nil, err
	}
	if err := positive("amount", req.Msg.Amount); err != nil {
		return nil, err
	}

	allocation := &models.ExpenseAllocation{
		TussleID:        tussleID,
		ReceiptID:       req.Msg.ReceiptID,
		AllocatedAmount: req.Msg.Amount,
	}

	if req.Msg.ReceiptID != "" {
		if err := s.store.AllocateReceipt(ctx, allocation); err != nil {
			return nil, storeError("AddExpense", err)
		}
	} else {
		if len(req.Msg.ReceiptImage) == 0 {
			return nil, invalid("receipt id or receipt image is required")
		}
		total := req.Msg.Amount
		if req.Msg.ReceiptTotal.Valid {
			total = req.Msg.ReceiptTotal.Decimal
		}
		if err := positive("receipt total", total); err != nil {
			return nil, err
		}
		if req.Msg.Amount.GreaterThan(total) {
			return nil, invalid("amount %s exceeds receipt total %s", req.Msg.Amount, total)
		}
		if _, err := objectstore.Validate(req.Msg.ReceiptImage); err != nil {
			return nil, uploadError(err)
		}

		url, err := s.objects.Upload(ctx, objectstore.BucketReceipts, req.Msg.ReceiptName, req.Msg.ReceiptImage)
		if err != nil {
			return nil, uploadError(err)
		}
		receipt := &models.Receipt{ImageURL: url, TotalAmount: total}
		if err := s.store.CreateExpense(ctx, receipt, allocation); err != nil {
			s.discard(ctx, objectstore.BucketReceipts, url)
			return nil, storeError("AddExpense", err)
		}
		receipt.Allocated = allocation.AllocatedAmount
		allocation.Receipt = receipt
	}

	slog.Info("Expense added", "tussle_id", tussleID, "receipt_id", allocation.ReceiptID, "allocation_id", allocation.ID)
	return connect.NewResponse(&api.AddExpenseResponse{Expense: toAPIAllocation(allocation)}), nil
}

// ListExpenses returns a tussle's allocations and their total.
func (s *TussleService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received", "tussle_id", req.Msg.TussleID)

	allocations, err := s.store.ListAllocations(ctx, req.Msg.TussleID)
	if err != nil {
		return nil, storeError("ListExpenses", err)
	}
	return connect.NewResponse(&api.ListExpensesResponse{
		Expenses: toAPIAllocations(allocations),
		Total:    calculator.MaterialCost(allocations),
	}), nil
}

// AssignWorker records piecework on a tussle. Total pay is computed here
// from quantity and rate and never changes afterwards.
func (s *TussleService) AssignWorker(ctx context.Context, req *connect.Request[api.AssignWorkerRequest]) (*connect.Response[api.AssignWorkerResponse], error) {
	slog.Info("AssignWorker request received",
		"tussle_id", req.Msg.TussleID,
		"worker_id", req.Msg.WorkerID,
		"quantity", req.Msg.Quantity,
		"rate", req.Msg.Rate,
	)

	tussleID, err := required("tussle id", req.Msg.TussleID)
	if err != nil {
		return nil, err
	}
	workerID, err := required("worker id", req.Msg.WorkerID)
	if err != nil {
		return nil, err
	}
	if req.Msg.Quantity <= 0 {
		return nil, invalid("quantity must be greater than zero")
	}
	if err := nonNegative("rate", req.Msg.Rate); err != nil {
		return nil, err
	}
	dueDate, err := optionalDate("due date", req.Msg.DueDate)
	if err != nil {
		return nil, err
	}

	assignment := models.NewWorkAssignment(tussleID, workerID, req.Msg.Quantity, req.Msg.Rate, dueDate)
	if err := s.store.CreateAssignment(ctx, assignment); err != nil {
		return nil, storeError("AssignWorker", err)
	}

	slog.Info("Worker assigned", "assignment_id", assignment.ID, "total_pay", assignment.TotalPay)
	return connect.NewResponse(&api.AssignWorkerResponse{Assignment: toAPIAssignment(assignment)}), nil
}

// ListAssignments returns a tussle's work assignments and their total pay.
func (s *TussleService) ListAssignments(ctx context.Context, req *connect.Request[api.ListAssignmentsRequest]) (*connect.Response[api.ListAssignmentsResponse], error) {
	slog.Info("ListAssignments request received", "tussle_id", req.Msg.TussleID)

	assignments, err := s.store.ListAssignments(ctx, req.Msg.TussleID)
	if err != nil {
		return nil, storeError("ListAssignments", err)
	}
	return connect.NewResponse(&api.ListAssignmentsResponse{
		Assignments: toAPIAssignments(assignments),
		Total:       calculator.LaborCost(assignments),
	}), nil
}
