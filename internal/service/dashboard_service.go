package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/sync/errgroup"

	"github.com/saadistik/Bashir.inc/internal/calculator"
	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/storage"
	"github.com/saadistik/Bashir.inc/pkg/api"
)

// upcomingLimit is how many deadlines the home screen shows.
const upcomingLimit = 5

// DashboardService implements the DashboardService RPC interface.
type DashboardService struct {
	store storage.Store
	now   func() time.Time
}

// NewDashboardService creates a new DashboardService. now anchors the trend
// buckets.
func NewDashboardService(store storage.Store, now func() time.Time) *DashboardService {
	return &DashboardService{store: store, now: now}
}

// GetDashboard returns the business-wide figures. Owner only.
func (s *DashboardService) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	slog.Info("GetDashboard request received", "granularity", req.Msg.Granularity)
	if err := requireOwner(ctx); err != nil {
		return nil, err
	}

	granularity, err := calculator.ParseGranularity(req.Msg.Granularity)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	var (
		tussles   []models.Tussle
		profiles  []models.Profile
		companies []*models.Company
		workers   []*models.Worker
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tussles, err = s.store.ListTussles(gctx, storage.TussleQuery{WithCosts: true})
		return err
	})
	g.Go(func() (err error) {
		profiles, err = s.store.ListProfiles(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		companies, err = s.store.ListCompanies(gctx, false)
		return err
	})
	g.Go(func() (err error) {
		workers, err = s.store.ListWorkers(gctx, false)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeError("GetDashboard", err)
	}

	summary := calculator.BusinessCosts(tussles, profiles)
	return connect.NewResponse(&api.GetDashboardResponse{
		Summary: api.BusinessSummary{
			Orders:           toAPICosts(summary.Orders),
			EmployeeSalaries: summary.EmployeeSalaries,
			Profit:           summary.Profit,
		},
		Trend:        toAPITrend(calculator.Trend(tussles, granularity, s.now())),
		Tally:        toAPITally(calculator.Tally(tussles)),
		CompanyCount: len(companies),
		WorkerCount:  len(workers),
	}), nil
}

// GetHome returns order counts and the nearest pending deadlines.
func (s *DashboardService) GetHome(ctx context.Context, req *connect.Request[api.GetHomeRequest]) (*connect.Response[api.GetHomeResponse], error) {
	slog.Info("GetHome request received")

	var (
		tussles   []models.Tussle
		companies []*models.Company
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tussles, err = s.store.ListTussles(gctx, storage.TussleQuery{WithCompany: true})
		return err
	})
	g.Go(func() (err error) {
		companies, err = s.store.ListCompanies(gctx, false)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeError("GetHome", err)
	}

	return connect.NewResponse(&api.GetHomeResponse{
		Tally:        toAPITally(calculator.Tally(tussles)),
		TotalTussles: len(tussles),
		CompanyCount: len(companies),
		Upcoming:     toAPITussles(calculator.UpcomingDeadlines(tussles, upcomingLimit)),
	}), nil
}
