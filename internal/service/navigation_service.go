package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/saadistik/Bashir.inc/internal/access"
	"github.com/saadistik/Bashir.inc/internal/middleware"
	"github.com/saadistik/Bashir.inc/pkg/api"
)

// NavigationService exposes the access policy: given the caller's session
// and a requested path it answers which screen renders.
type NavigationService struct{}

// NewNavigationService creates a new NavigationService.
func NewNavigationService() *NavigationService {
	return &NavigationService{}
}

// Navigate decides the requested path and follows redirects to the screen
// that finally renders.
func (s *NavigationService) Navigate(ctx context.Context, req *connect.Request[api.NavigateRequest]) (*connect.Response[api.NavigateResponse], error) {
	snap := middleware.GetSession(ctx).Snapshot()
	slog.Debug("Navigate request received", "path", req.Msg.Path, "user_id", snap.UserID())

	decision := access.Decide(snap, req.Msg.Path)
	result, err := access.Resolve(snap, req.Msg.Path)
	if err != nil {
		slog.Error("Navigation did not settle", "path", req.Msg.Path, "chain", result.Chain, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &api.NavigateResponse{
		Decision: decision.Kind.String(),
		Location: decision.Location,
		Chain:    make([]string, len(result.Chain)),
	}
	for i, d := range result.Chain {
		resp.Chain[i] = d.Path
	}
	if !result.Pending {
		resp.Screen = result.Terminal
	}
	return connect.NewResponse(resp), nil
}
