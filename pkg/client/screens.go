package client

import (
	"context"

	"connectrpc.com/connect"
	"golang.org/x/sync/errgroup"

	"github.com/saadistik/Bashir.inc/internal/calculator"
	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/pkg/api"
)

// upcomingLimit is how many deadlines the dashboard lists.
const upcomingLimit = 5

// TussleScreen is everything the tussle detail screen shows.
type TussleScreen struct {
	Tussle      api.Tussle
	Expenses    []api.ExpenseAllocation
	Assignments []api.WorkAssignment
	Costs       calculator.Breakdown
}

// CompanyScreen is a company with its orders and their combined costs.
type CompanyScreen struct {
	Company api.Company
	Tussles []api.TussleSummary
	Totals  calculator.Breakdown
	Tally   calculator.StatusTally
}

// DashboardScreen is the owner's overview.
type DashboardScreen struct {
	Summary   api.BusinessSummary
	Trend     []api.TrendPoint
	Tally     api.StatusTally
	Companies []api.CompanySummary
	Upcoming  []api.Tussle
}

// TussleScreen loads a tussle and its cost records concurrently and
// computes the breakdown from the records it received.
func (c *Client) TussleScreen(ctx context.Context, id string) (*TussleScreen, error) {
	ticket := c.guard.Enter("tussle:" + id)

	var (
		tussle      *api.GetTussleResponse
		expenses    *api.ListExpensesResponse
		assignments *api.ListAssignmentsResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := c.tussles.GetTussle(gctx, connect.NewRequest(&api.GetTussleRequest{ID: id}))
		if err == nil {
			tussle = resp.Msg
		}
		return err
	})
	g.Go(func() error {
		resp, err := c.tussles.ListExpenses(gctx, connect.NewRequest(&api.ListExpensesRequest{TussleID: id}))
		if err == nil {
			expenses = resp.Msg
		}
		return err
	})
	g.Go(func() error {
		resp, err := c.tussles.ListAssignments(gctx, connect.NewRequest(&api.ListAssignmentsRequest{TussleID: id}))
		if err == nil {
			assignments = resp.Msg
		}
		return err
	})
	if err := c.settle(ticket, g.Wait()); err != nil {
		return nil, err
	}

	t := toTussle(tussle.Tussle)
	for _, e := range expenses.Expenses {
		t.ExpenseAllocations = append(t.ExpenseAllocations, models.ExpenseAllocation{
			ID:              e.ID,
			TussleID:        e.TussleID,
			ReceiptID:       e.ReceiptID,
			AllocatedAmount: e.AllocatedAmount,
		})
	}
	for _, a := range assignments.Assignments {
		t.WorkAssignments = append(t.WorkAssignments, models.WorkAssignment{
			ID:       a.ID,
			TussleID: a.TussleID,
			WorkerID: a.WorkerID,
			Quantity: a.Quantity,
			Rate:     a.Rate,
			TotalPay: a.TotalPay,
		})
	}

	return &TussleScreen{
		Tussle:      tussle.Tussle,
		Expenses:    expenses.Expenses,
		Assignments: assignments.Assignments,
		Costs:       calculator.TussleCosts(&t),
	}, nil
}

// CompanyScreen loads a company and its orders concurrently and sums the
// per-order costs.
func (c *Client) CompanyScreen(ctx context.Context, id string) (*CompanyScreen, error) {
	ticket := c.guard.Enter("company:" + id)

	var (
		company *api.GetCompanyResponse
		tussles *api.ListTusslesResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := c.companies.GetCompany(gctx, connect.NewRequest(&api.GetCompanyRequest{ID: id}))
		if err == nil {
			company = resp.Msg
		}
		return err
	})
	g.Go(func() error {
		resp, err := c.tussles.ListTussles(gctx, connect.NewRequest(&api.ListTusslesRequest{
			CompanyID:  id,
			OrderBy:    "created_at",
			Descending: true,
		}))
		if err == nil {
			tussles = resp.Msg
		}
		return err
	})
	if err := c.settle(ticket, g.Wait()); err != nil {
		return nil, err
	}

	screen := &CompanyScreen{
		Company: company.Company,
		Tussles: tussles.Tussles,
		Totals:  calculator.CompanyCosts(nil),
	}
	list := make([]models.Tussle, 0, len(tussles.Tussles))
	for _, s := range tussles.Tussles {
		screen.Totals = screen.Totals.Add(toBreakdown(s.Costs))
		list = append(list, toTussle(s.Tussle))
	}
	screen.Tally = calculator.Tally(list)
	return screen, nil
}

// Dashboard loads the owner's figures, the company list and the pending
// orders concurrently.
func (c *Client) Dashboard(ctx context.Context, granularity string) (*DashboardScreen, error) {
	ticket := c.guard.Enter("dashboard")

	var (
		dashboard *api.GetDashboardResponse
		companies *api.ListCompaniesResponse
		pending   *api.ListTusslesResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := c.dashboard.GetDashboard(gctx, connect.NewRequest(&api.GetDashboardRequest{Granularity: granularity}))
		if err == nil {
			dashboard = resp.Msg
		}
		return err
	})
	g.Go(func() error {
		resp, err := c.companies.ListCompanies(gctx, connect.NewRequest(&api.ListCompaniesRequest{}))
		if err == nil {
			companies = resp.Msg
		}
		return err
	})
	g.Go(func() error {
		resp, err := c.tussles.ListTussles(gctx, connect.NewRequest(&api.ListTusslesRequest{
			Status:      string(models.StatusPending),
			WithDueDate: true,
		}))
		if err == nil {
			pending = resp.Msg
		}
		return err
	})
	if err := c.settle(ticket, g.Wait()); err != nil {
		return nil, err
	}

	byID := make(map[string]api.Tussle, len(pending.Tussles))
	list := make([]models.Tussle, 0, len(pending.Tussles))
	for _, s := range pending.Tussles {
		byID[s.Tussle.ID] = s.Tussle
		list = append(list, toTussle(s.Tussle))
	}
	screen := &DashboardScreen{
		Summary:   dashboard.Summary,
		Trend:     dashboard.Trend,
		Tally:     dashboard.Tally,
		Companies: companies.Companies,
	}
	for _, t := range calculator.UpcomingDeadlines(list, upcomingLimit) {
		screen.Upcoming = append(screen.Upcoming, byID[t.ID])
	}
	return screen, nil
}

// settle reports ErrStaleScope for a superseded load whatever its fetches
// returned, and the fetch error otherwise.
func (c *Client) settle(ticket Ticket, fetchErr error) error {
	if err := c.guard.Check(ticket); err != nil {
		return err
	}
	return fetchErr
}

func toTussle(t api.Tussle) models.Tussle {
	return models.Tussle{
		ID:        t.ID,
		CompanyID: t.CompanyID,
		Name:      t.Name,
		SellPrice: t.SellPrice,
		DueDate:   t.DueDate,
		Status:    models.TussleStatus(t.Status),
		CreatedAt: t.CreatedAt,
	}
}

func toBreakdown(c api.Costs) calculator.Breakdown {
	return calculator.Breakdown{
		Revenue:      c.Revenue,
		MaterialCost: c.MaterialCost,
		LaborCost:    c.LaborCost,
		TotalCost:    c.TotalCost,
		Profit:       c.Profit,
	}
}
