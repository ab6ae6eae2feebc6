package calculator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/saadistik/Bashir.inc/internal/models"
)

func TestTally(t *testing.T) {
	tussles := []models.Tussle{
		{Status: models.StatusPending},
		{Status: models.StatusCompleted},
		{Status: models.StatusPending},
		{Status: "archived"},
	}
	got := Tally(tussles)
	want := StatusTally{Pending: 2, Completed: 1}
	if got != want {
		t.Errorf("Tally = %+v, want %+v", got, want)
	}
}

func TestCompanyTotals(t *testing.T) {
	c := &models.Company{Tussles: []models.Tussle{{SellPrice: dec("100")}, {SellPrice: dec("250.5")}, {}}}
	got := CompanyTotals(c)
	if got.TussleCount != 3 {
		t.Errorf("TussleCount = %d, want 3", got.TussleCount)
	}
	if !got.Revenue.Equal(dec("350.5")) {
		t.Errorf("Revenue = %s, want 350.5", got.Revenue)
	}

	if empty := CompanyTotals(nil); empty.TussleCount != 0 || !empty.Revenue.IsZero() {
		t.Errorf("CompanyTotals(nil) = %+v", empty)
	}
}

func TestEarnings(t *testing.T) {
	w := &models.Worker{WorkAssignments: []models.WorkAssignment{
		{Status: models.StatusPending, TotalPay: dec("100")},
		{Status: models.StatusCompleted, TotalPay: dec("40")},
		{Status: models.StatusPending, TotalPay: dec("2.5")},
	}}
	got := Earnings(w)
	if got.Assignments != 3 || got.Pending != 2 {
		t.Errorf("counts = %d/%d, want 3/2", got.Assignments, got.Pending)
	}
	if !got.TotalPay.Equal(dec("142.5")) {
		t.Errorf("TotalPay = %s", got.TotalPay)
	}
	if !got.PendingPay.Equal(dec("102.5")) {
		t.Errorf("PendingPay = %s", got.PendingPay)
	}
}

func TestUpcomingDeadlines(t *testing.T) {
	tussles := []models.Tussle{
		{ID: "late", Status: models.StatusPending, DueDate: "2026-12-01"},
		{ID: "done", Status: models.StatusCompleted, DueDate: "2026-10-16"},
		{ID: "none", Status: models.StatusPending},
		{ID: "soon", Status: models.StatusPending, DueDate: "2026-10-20"},
		{ID: "sooner", Status: models.StatusPending, DueDate: "2026-10-18"},
	}

	var ids []string
	for _, tu := range UpcomingDeadlines(tussles, 2) {
		ids = append(ids, tu.ID)
	}
	if diff := cmp.Diff([]string{"sooner", "soon"}, ids); diff != "" {
		t.Errorf("deadlines mismatch (-want +got):\n%s", diff)
	}
	if tussles[0].ID != "late" {
		t.Error("input order was modified")
	}
}

func TestReceiptBalance(t *testing.T) {
	got := ReceiptBalance(dec("1000"), []decimal.Decimal{dec("250"), dec("700.01")})
	if !got.Equal(dec("49.99")) {
		t.Errorf("ReceiptBalance = %s, want 49.99", got)
	}
	if over := ReceiptBalance(dec("10"), []decimal.Decimal{dec("11")}); !over.IsNegative() {
		t.Errorf("expected negative balance, got %s", over)
	}
}
