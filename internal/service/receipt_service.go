package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/saadistik/Bashir.inc/internal/storage"
	"github.com/saadistik/Bashir.inc/pkg/api"
)

// ReceiptService implements the ReceiptService RPC interface.
type ReceiptService struct {
	store storage.Store
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(store storage.Store) *ReceiptService {
	return &ReceiptService{store: store}
}

// ListReceipts returns receipts newest first with what is left to allocate.
func (s *ReceiptService) ListReceipts(ctx context.Context, req *connect.Request[api.ListReceiptsRequest]) (*connect.Response[api.ListReceiptsResponse], error) {
	slog.Info("ListReceipts request received")

	receipts, err := s.store.ListReceipts(ctx)
	if err != nil {
		return nil, storeError("ListReceipts", err)
	}

	out := make([]api.Receipt, len(receipts))
	for i, r := range receipts {
		out[i] = toAPIReceipt(r)
	}
	return connect.NewResponse(&api.ListReceiptsResponse{Receipts: out}), nil
}
