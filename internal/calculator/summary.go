package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/saadistik/Bashir.inc/internal/models"
)

// StatusTally counts tussles by status.
type StatusTally struct {
	Pending   int
	Completed int
}

// Tally counts pending and completed tussles in the given set.
func Tally(tussles []models.Tussle) StatusTally {
	var t StatusTally
	for _, tu := range tussles {
		switch tu.Status {
		case models.StatusPending:
			t.Pending++
		case models.StatusCompleted:
			t.Completed++
		}
	}
	return t
}

// Revenue sums the sell price of the given tussles.
func Revenue(tussles []models.Tussle) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range tussles {
		sum = sum.Add(t.SellPrice)
	}
	return sum
}

// CompanyRevenue is the order count and revenue of one company.
type CompanyRevenue struct {
	TussleCount int
	Revenue     decimal.Decimal
}

// CompanyTotals computes CompanyRevenue from a company's embedded tussles.
func CompanyTotals(c *models.Company) CompanyRevenue {
	if c == nil {
		return CompanyRevenue{Revenue: decimal.Zero}
	}
	return CompanyRevenue{
		TussleCount: len(c.Tussles),
		Revenue:     Revenue(c.Tussles),
	}
}

// WorkerEarnings summarizes a worker's assignments.
type WorkerEarnings struct {
	Assignments int
	Pending     int
	TotalPay    decimal.Decimal
	PendingPay  decimal.Decimal
}

// Earnings computes WorkerEarnings from a worker's embedded assignments.
func Earnings(w *models.Worker) WorkerEarnings {
	e := WorkerEarnings{TotalPay: decimal.Zero, PendingPay: decimal.Zero}
	if w == nil {
		return e
	}
	for _, a := range w.WorkAssignments {
		e.Assignments++
		e.TotalPay = e.TotalPay.Add(a.TotalPay)
		if a.Status == models.StatusPending {
			e.Pending++
			e.PendingPay = e.PendingPay.Add(a.TotalPay)
		}
	}
	return e
}

// UpcomingDeadlines returns up to limit pending tussles that have a due date,
// soonest first. The input is not modified.
func UpcomingDeadlines(tussles []models.Tussle, limit int) []models.Tussle {
	var out []models.Tussle
	for _, t := range tussles {
		if t.Status == models.StatusPending && t.HasDueDate() {
			out = append(out, t)
		}
	}
	// DateLayout sorts lexically in date order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate < out[j].DueDate })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ReceiptBalance returns how much of a receipt is still unallocated given
// the amounts already allocated against it. Negative means over-allocated.
func ReceiptBalance(total decimal.Decimal, allocated []decimal.Decimal) decimal.Decimal {
	remaining := total
	for _, a := range allocated {
		remaining = remaining.Sub(a)
	}
	return remaining
}
