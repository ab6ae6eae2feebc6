package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/google/go-cmp/cmp"

	"github.com/saadistik/Bashir.inc/pkg/api"
)

// seedOrders creates three orders for two clients and charges costs to the
// first one.
func seedOrders(t *testing.T, env *testEnv) []api.Tussle {
	t.Helper()
	ctx := context.Background()
	token := env.employeeToken

	var tussles []api.Tussle
	for _, r := range []*api.CreateTussleRequest{
		{ClientName: "Acme", Name: "Jackets", SellPrice: dec("100000"), DueDate: "2026-11-20"},
		{ClientName: "Globex", Name: "Caps", SellPrice: dec("20000"), DueDate: "2026-11-03"},
		{ClientName: "Acme", Name: "Gloves", SellPrice: dec("5000"), DueDate: "2026-11-10"},
	} {
		resp, err := env.tussles.CreateTussle(ctx, authed(token, r))
		if err != nil {
			t.Fatalf("CreateTussle(%s) failed: %v", r.Name, err)
		}
		tussles = append(tussles, resp.Msg.Tussle)
	}

	if _, err := env.tussles.AddExpense(ctx, authed(token, &api.AddExpenseRequest{
		TussleID: tussles[0].ID, Amount: dec("20000"), ReceiptImage: pngImage,
	})); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	worker, err := env.workers.CreateWorker(ctx, authed(token, &api.CreateWorkerRequest{Name: "Hamid"}))
	if err != nil {
		t.Fatalf("CreateWorker failed: %v", err)
	}
	if _, err := env.tussles.AssignWorker(ctx, authed(token, &api.AssignWorkerRequest{
		TussleID: tussles[0].ID, WorkerID: worker.Msg.Worker.ID, Quantity: 50, Rate: dec("200"),
	})); err != nil {
		t.Fatalf("AssignWorker failed: %v", err)
	}

	// Caps ship first.
	if _, err := env.tussles.ToggleTussleStatus(ctx, authed(token, &api.ToggleTussleStatusRequest{ID: tussles[1].ID})); err != nil {
		t.Fatalf("ToggleTussleStatus failed: %v", err)
	}
	return tussles
}

func TestGetDashboard(t *testing.T) {
	env := setupTestServer(t)
	seedOrders(t, env)

	resp, err := env.dashboard.GetDashboard(context.Background(), authed(env.ownerToken, &api.GetDashboardRequest{}))
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}
	summary := resp.Msg.Summary

	// Orders: revenue 125000, costs 30000. Salaries 30000.
	if !summary.Orders.Revenue.Equal(dec("125000")) || !summary.Orders.TotalCost.Equal(dec("30000")) {
		t.Errorf("unexpected order totals: %+v", summary.Orders)
	}
	if !summary.Orders.Profit.Equal(dec("95000")) {
		t.Errorf("expected orders profit 95000, got %s", summary.Orders.Profit)
	}
	if !summary.EmployeeSalaries.Equal(dec("30000")) || !summary.Profit.Equal(dec("65000")) {
		t.Errorf("expected salaries 30000 and net profit 65000, got %s and %s",
			summary.EmployeeSalaries, summary.Profit)
	}

	if diff := cmp.Diff(api.StatusTally{Pending: 2, Completed: 1}, resp.Msg.Tally); diff != "" {
		t.Errorf("tally mismatch (-want +got):\n%s", diff)
	}
	if resp.Msg.CompanyCount != 2 || resp.Msg.WorkerCount != 1 {
		t.Errorf("expected 2 companies and 1 worker, got %d and %d", resp.Msg.CompanyCount, resp.Msg.WorkerCount)
	}

	if len(resp.Msg.Trend) != 7 {
		t.Fatalf("expected 7 weekly points, got %d", len(resp.Msg.Trend))
	}
	// Everything was created just now, so it lands in the current week.
	current := resp.Msg.Trend[6]
	if !current.Revenue.Equal(dec("125000")) || !current.Costs.Equal(dec("30000")) {
		t.Errorf("unexpected current week: %+v", current)
	}
	for _, p := range resp.Msg.Trend[:6] {
		if !p.Revenue.IsZero() || !p.Costs.IsZero() {
			t.Errorf("expected empty week %s, got %+v", p.Label, p)
		}
	}

	monthly, err := env.dashboard.GetDashboard(context.Background(), authed(env.ownerToken, &api.GetDashboardRequest{
		Granularity: "monthly",
	}))
	if err != nil {
		t.Fatalf("GetDashboard(monthly) failed: %v", err)
	}
	if len(monthly.Msg.Trend) != 6 {
		t.Errorf("expected 6 monthly points, got %d", len(monthly.Msg.Trend))
	}

	_, err = env.dashboard.GetDashboard(context.Background(), authed(env.ownerToken, &api.GetDashboardRequest{
		Granularity: "daily",
	}))
	expectCode(t, err, connect.CodeInvalidArgument)
}

func TestGetHome(t *testing.T) {
	env := setupTestServer(t)
	seedOrders(t, env)

	resp, err := env.dashboard.GetHome(context.Background(), authed(env.employeeToken, &api.GetHomeRequest{}))
	if err != nil {
		t.Fatalf("GetHome failed: %v", err)
	}
	if resp.Msg.TotalTussles != 3 || resp.Msg.CompanyCount != 2 {
		t.Errorf("expected 3 tussles across 2 companies, got %d and %d", resp.Msg.TotalTussles, resp.Msg.CompanyCount)
	}

	var upcoming []string
	for _, u := range resp.Msg.Upcoming {
		upcoming = append(upcoming, u.Name)
	}
	if diff := cmp.Diff([]string{"Gloves", "Jackets"}, upcoming); diff != "" {
		t.Errorf("upcoming mismatch (-want +got):\n%s", diff)
	}
}

func TestCalendarMonth(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	seedOrders(t, env)

	for _, e := range []*api.CreateEventRequest{
		{Date: "2026-11-10", Title: "Fabric delivery", Type: "delivery"},
		{Date: "2026-11-28", Title: "Inventory"},
		{Date: "2026-12-01", Title: "Next month"},
	} {
		if _, err := env.calendar.CreateEvent(ctx, authed(env.employeeToken, e)); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
	}

	resp, err := env.calendar.GetMonth(ctx, authed(env.employeeToken, &api.GetMonthRequest{Year: 2026, Month: 11}))
	if err != nil {
		t.Fatalf("GetMonth failed: %v", err)
	}

	type day struct {
		Date      string
		Events    int
		Deadlines int
	}
	var got []day
	for _, d := range resp.Msg.Days {
		got = append(got, day{d.Date, len(d.Events), len(d.Deadlines)})
	}
	want := []day{
		{"2026-11-03", 0, 1},
		{"2026-11-10", 1, 1},
		{"2026-11-20", 0, 1},
		{"2026-11-28", 1, 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("days mismatch (-want +got):\n%s", diff)
	}

	t.Run("validation", func(t *testing.T) {
		_, err := env.calendar.GetMonth(ctx, authed(env.employeeToken, &api.GetMonthRequest{Year: 2026, Month: 13}))
		expectCode(t, err, connect.CodeInvalidArgument)

		_, err = env.calendar.CreateEvent(ctx, authed(env.employeeToken, &api.CreateEventRequest{Title: "No date"}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestGetCompany(t *testing.T) {
	env := setupTestServer(t)
	tussles := seedOrders(t, env)

	resp, err := env.companies.GetCompany(context.Background(), authed(env.employeeToken, &api.GetCompanyRequest{
		ID: tussles[0].CompanyID,
	}))
	if err != nil {
		t.Fatalf("GetCompany failed: %v", err)
	}
	if resp.Msg.Company.Name != "Acme" || len(resp.Msg.Tussles) != 2 {
		t.Fatalf("expected Acme with 2 tussles, got %s with %d", resp.Msg.Company.Name, len(resp.Msg.Tussles))
	}
	if !resp.Msg.Totals.Revenue.Equal(dec("105000")) || !resp.Msg.Totals.Profit.Equal(dec("75000")) {
		t.Errorf("unexpected totals: %+v", resp.Msg.Totals)
	}

	_, err = env.companies.GetCompany(context.Background(), authed(env.employeeToken, &api.GetCompanyRequest{ID: "missing"}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestResolveClient(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	created, err := env.companies.CreateCompany(ctx, authed(env.employeeToken, &api.CreateCompanyRequest{Name: " Globex Corp "}))
	if err != nil {
		t.Fatalf("CreateCompany failed: %v", err)
	}
	if created.Msg.Company.Name != "Globex Corp" {
		t.Errorf("expected trimmed name, got %q", created.Msg.Company.Name)
	}

	tests := []struct {
		name    string
		input   string
		created bool
		company string
	}{
		{"substring match", "globex", false, "Globex Corp"},
		{"no match creates", "  Initech ", true, "Initech"},
		{"created company is found next time", "INITECH", false, "Initech"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := env.companies.ResolveClient(ctx, authed(env.employeeToken, &api.ResolveClientRequest{Name: tt.input}))
			if err != nil {
				t.Fatalf("ResolveClient failed: %v", err)
			}
			if resp.Msg.Created != tt.created || resp.Msg.Company.Name != tt.company {
				t.Errorf("expected %s (created=%v), got %s (created=%v)",
					tt.company, tt.created, resp.Msg.Company.Name, resp.Msg.Created)
			}
		})
	}

	_, err = env.companies.ResolveClient(ctx, authed(env.employeeToken, &api.ResolveClientRequest{Name: "   "}))
	expectCode(t, err, connect.CodeInvalidArgument)
	_, err = env.companies.CreateCompany(ctx, authed(env.employeeToken, &api.CreateCompanyRequest{}))
	expectCode(t, err, connect.CodeInvalidArgument)
}
