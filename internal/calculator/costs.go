package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/saadistik/Bashir.inc/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Breakdown is the revenue and cost picture of a set of tussles.
type Breakdown struct {
	Revenue      decimal.Decimal
	MaterialCost decimal.Decimal
	LaborCost    decimal.Decimal
	TotalCost    decimal.Decimal
	Profit       decimal.Decimal
}

// Add returns the elementwise sum of b and o.
func (b Breakdown) Add(o Breakdown) Breakdown {
	return Breakdown{
		Revenue:      b.Revenue.Add(o.Revenue),
		MaterialCost: b.MaterialCost.Add(o.MaterialCost),
		LaborCost:    b.LaborCost.Add(o.LaborCost),
		TotalCost:    b.TotalCost.Add(o.TotalCost),
		Profit:       b.Profit.Add(o.Profit),
	}
}

// ProfitMargin is Profit / Revenue, or zero when there is no revenue.
func (b Breakdown) ProfitMargin() decimal.Decimal {
	if b.Revenue.IsZero() {
		return decimal.Zero
	}
	return b.Profit.Div(b.Revenue)
}

// MarginPercent is the profit margin as a percentage rounded to one decimal.
func (b Breakdown) MarginPercent() decimal.Decimal {
	return b.ProfitMargin().Mul(hundred).Round(1)
}

// MaterialCost sums the allocated amounts of a tussle's expense allocations.
func MaterialCost(allocations []models.ExpenseAllocation) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range allocations {
		sum = sum.Add(a.AllocatedAmount)
	}
	return sum
}

// LaborCost sums the total pay of a tussle's work assignments.
func LaborCost(assignments []models.WorkAssignment) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range assignments {
		sum = sum.Add(a.TotalPay)
	}
	return sum
}

// TussleCosts applies the primitive cost rule to one tussle:
//
//	totalCost = materialCost + laborCost
//	profit    = sellPrice - totalCost
//
// The tussle must carry its embedded allocations and assignments; missing
// relations count as no cost. A nil tussle yields a zero breakdown.
func TussleCosts(t *models.Tussle) Breakdown {
	if t == nil {
		return Breakdown{}
	}
	material := MaterialCost(t.ExpenseAllocations)
	labor := LaborCost(t.WorkAssignments)
	total := material.Add(labor)
	return Breakdown{
		Revenue:      t.SellPrice,
		MaterialCost: material,
		LaborCost:    labor,
		TotalCost:    total,
		Profit:       t.SellPrice.Sub(total),
	}
}

// CompanyCosts is the sum of TussleCosts over a company's tussles.
// Salaries are not subtracted at this level.
func CompanyCosts(tussles []models.Tussle) Breakdown {
	var b Breakdown
	for i := range tussles {
		b = b.Add(TussleCosts(&tussles[i]))
	}
	return b
}

// BusinessSummary is the business-wide figure shown on the owner dashboard.
type BusinessSummary struct {
	// Orders is the sum over every tussle, identical to summing CompanyCosts
	// over every company.
	Orders Breakdown

	// EmployeeSalaries is the sum of salaries over employee profiles.
	EmployeeSalaries decimal.Decimal

	// Profit is Orders.Profit minus EmployeeSalaries. Only this figure
	// subtracts salaries; per-tussle and per-company profit never do.
	Profit decimal.Decimal
}

// EmployeeSalaries sums the salary of every employee profile. Owner salaries
// and NULL salaries contribute nothing.
func EmployeeSalaries(profiles []models.Profile) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range profiles {
		if p.Role != models.RoleEmployee || !p.Salary.Valid {
			continue
		}
		sum = sum.Add(p.Salary.Decimal)
	}
	return sum
}

// BusinessCosts aggregates every tussle and subtracts employee salaries as a
// period cost.
func BusinessCosts(tussles []models.Tussle, profiles []models.Profile) BusinessSummary {
	orders := CompanyCosts(tussles)
	salaries := EmployeeSalaries(profiles)
	return BusinessSummary{
		Orders:           orders,
		EmployeeSalaries: salaries,
		Profit:           orders.Profit.Sub(salaries),
	}
}
