package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/saadistik/Bashir.inc/internal/calculator"
	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/storage"
	"github.com/saadistik/Bashir.inc/pkg/api"
)

// WorkerService implements the WorkerService RPC interface.
type WorkerService struct {
	store storage.Store
}

// NewWorkerService creates a new WorkerService.
func NewWorkerService(store storage.Store) *WorkerService {
	return &WorkerService{store: store}
}

// ListWorkers returns the roster with each worker's earnings.
func (s *WorkerService) ListWorkers(ctx context.Context, req *connect.Request[api.ListWorkersRequest]) (*connect.Response[api.ListWorkersResponse], error) {
	slog.Info("ListWorkers request received")

	workers, err := s.store.ListWorkers(ctx, true)
	if err != nil {
		return nil, storeError("ListWorkers", err)
	}

	summaries := make([]api.WorkerSummary, len(workers))
	for i, w := range workers {
		e := calculator.Earnings(w)
		summaries[i] = api.WorkerSummary{
			Worker:             toAPIWorker(w),
			Assignments:        e.Assignments,
			PendingAssignments: e.Pending,
			TotalPay:           e.TotalPay,
			PendingPay:         e.PendingPay,
		}
	}
	return connect.NewResponse(&api.ListWorkersResponse{Workers: summaries}), nil
}

// CreateWorker adds a worker to the roster.
func (s *WorkerService) CreateWorker(ctx context.Context, req *connect.Request[api.CreateWorkerRequest]) (*connect.Response[api.CreateWorkerResponse], error) {
	slog.Info("CreateWorker request received", "name", req.Msg.Name)

	name, err := required("worker name", req.Msg.Name)
	if err != nil {
		return nil, err
	}

	worker := &models.Worker{
		Name:      name,
		Specialty: strings.TrimSpace(req.Msg.Specialty),
		Phone:     strings.TrimSpace(req.Msg.Phone),
	}
	if err := s.store.CreateWorker(ctx, worker); err != nil {
		return nil, storeError("CreateWorker", err)
	}

	slog.Info("Worker created", "worker_id", worker.ID)
	return connect.NewResponse(&api.CreateWorkerResponse{Worker: toAPIWorker(worker)}), nil
}
