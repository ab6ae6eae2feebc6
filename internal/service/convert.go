package service

import (
	"github.com/saadistik/Bashir.inc/internal/calculator"
	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/pkg/api"
)

func toAPIUser(p *models.Profile) api.User {
	return api.User{
		ID:       p.ID,
		Username: p.Username,
		FullName: p.FullName,
		Role:     string(p.Role),
		Salary:   p.Salary,
		IDCard:   p.IDCard,
	}
}

func toAPICompany(c *models.Company) api.Company {
	return api.Company{
		ID:        c.ID,
		Name:      c.Name,
		LogoURL:   c.LogoURL,
		CreatedAt: c.CreatedAt,
	}
}

func toAPITussle(t *models.Tussle) api.Tussle {
	out := api.Tussle{
		ID:        t.ID,
		CompanyID: t.CompanyID,
		Name:      t.Name,
		SellPrice: t.SellPrice,
		DueDate:   t.DueDate,
		Status:    string(t.Status),
		ImageURL:  t.ImageURL,
		Notes:     t.Notes,
		CreatedAt: t.CreatedAt,
	}
	if t.Company != nil {
		c := toAPICompany(t.Company)
		out.Company = &c
	}
	return out
}

func toAPITussles(tussles []models.Tussle) []api.Tussle {
	out := make([]api.Tussle, len(tussles))
	for i := range tussles {
		out[i] = toAPITussle(&tussles[i])
	}
	return out
}

func toAPICosts(b calculator.Breakdown) api.Costs {
	return api.Costs{
		Revenue:       b.Revenue,
		MaterialCost:  b.MaterialCost,
		LaborCost:     b.LaborCost,
		TotalCost:     b.TotalCost,
		Profit:        b.Profit,
		MarginPercent: b.MarginPercent(),
	}
}

// toAPISummaries pairs each tussle with its cost breakdown. The tussles
// must have their cost records embedded.
func toAPISummaries(tussles []models.Tussle) []api.TussleSummary {
	out := make([]api.TussleSummary, len(tussles))
	for i := range tussles {
		out[i] = api.TussleSummary{
			Tussle: toAPITussle(&tussles[i]),
			Costs:  toAPICosts(calculator.TussleCosts(&tussles[i])),
		}
	}
	return out
}

func toAPIReceipt(r *models.Receipt) api.Receipt {
	return api.Receipt{
		ID:          r.ID,
		ImageURL:    r.ImageURL,
		TotalAmount: r.TotalAmount,
		Allocated:   r.Allocated,
		Remaining:   r.Remaining(),
		UploadedAt:  r.UploadedAt,
	}
}

func toAPIAllocation(a *models.ExpenseAllocation) api.ExpenseAllocation {
	out := api.ExpenseAllocation{
		ID:              a.ID,
		TussleID:        a.TussleID,
		ReceiptID:       a.ReceiptID,
		AllocatedAmount: a.AllocatedAmount,
		CreatedAt:       a.CreatedAt,
	}
	if a.Receipt != nil {
		r := toAPIReceipt(a.Receipt)
		out.Receipt = &r
	}
	return out
}

func toAPIAllocations(allocations []models.ExpenseAllocation) []api.ExpenseAllocation {
	out := make([]api.ExpenseAllocation, len(allocations))
	for i := range allocations {
		out[i] = toAPIAllocation(&allocations[i])
	}
	return out
}

func toAPIWorker(w *models.Worker) api.Worker {
	return api.Worker{
		ID:        w.ID,
		Name:      w.Name,
		Specialty: w.Specialty,
		Phone:     w.Phone,
		CreatedAt: w.CreatedAt,
	}
}

func toAPIAssignment(a *models.WorkAssignment) api.WorkAssignment {
	out := api.WorkAssignment{
		ID:        a.ID,
		TussleID:  a.TussleID,
		WorkerID:  a.WorkerID,
		Quantity:  a.Quantity,
		Rate:      a.Rate,
		TotalPay:  a.TotalPay,
		DueDate:   a.DueDate,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
	if a.Worker != nil {
		w := toAPIWorker(a.Worker)
		out.Worker = &w
	}
	return out
}

func toAPIAssignments(assignments []models.WorkAssignment) []api.WorkAssignment {
	out := make([]api.WorkAssignment, len(assignments))
	for i := range assignments {
		out[i] = toAPIAssignment(&assignments[i])
	}
	return out
}

func toAPIEvent(e *models.CalendarEvent) api.CalendarEvent {
	return api.CalendarEvent{
		ID:        e.ID,
		Date:      e.Date,
		Title:     e.Title,
		Type:      e.Type,
		CreatedAt: e.CreatedAt,
	}
}

func toAPITally(t calculator.StatusTally) api.StatusTally {
	return api.StatusTally{Pending: t.Pending, Completed: t.Completed}
}

func toAPITrend(points []calculator.TrendPoint) []api.TrendPoint {
	out := make([]api.TrendPoint, len(points))
	for i, p := range points {
		out[i] = api.TrendPoint{
			Label:   p.Label,
			Start:   p.Start,
			End:     p.End,
			Revenue: p.Revenue,
			Costs:   p.Costs,
			Profit:  p.Profit,
		}
	}
	return out
}
