package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/saadistik/Bashir.inc/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tussleWithCosts(id, price string, allocations []string, pays []string) models.Tussle {
	t := models.Tussle{ID: id, SellPrice: dec(price), Status: models.StatusPending}
	for _, a := range allocations {
		t.ExpenseAllocations = append(t.ExpenseAllocations, models.ExpenseAllocation{TussleID: id, AllocatedAmount: dec(a)})
	}
	for _, p := range pays {
		t.WorkAssignments = append(t.WorkAssignments, models.WorkAssignment{TussleID: id, TotalPay: dec(p)})
	}
	return t
}

func TestTussleCosts(t *testing.T) {
	tests := []struct {
		name         string
		tussle       *models.Tussle
		wantMaterial string
		wantLabor    string
		wantTotal    string
		wantProfit   string
		wantMargin   string
	}{
		{
			name: "material and labor",
			tussle: func() *models.Tussle {
				tu := models.Tussle{ID: "t1", SellPrice: dec("100000")}
				tu.ExpenseAllocations = []models.ExpenseAllocation{{AllocatedAmount: dec("20000")}}
				tu.WorkAssignments = []models.WorkAssignment{*models.NewWorkAssignment("t1", "w1", 50, dec("200"), "")}
				return &tu
			}(),
			wantMaterial: "20000",
			wantLabor:    "10000",
			wantTotal:    "30000",
			wantProfit:   "70000",
			wantMargin:   "70",
		},
		{
			name:         "no cost records keeps the whole sell price",
			tussle:       &models.Tussle{ID: "t2", SellPrice: dec("4500.50")},
			wantMaterial: "0",
			wantLabor:    "0",
			wantTotal:    "0",
			wantProfit:   "4500.50",
			wantMargin:   "100",
		},
		{
			name:         "zero sell price has zero margin",
			tussle:       &models.Tussle{ID: "t3", WorkAssignments: []models.WorkAssignment{{TotalPay: dec("300")}}},
			wantMaterial: "0",
			wantLabor:    "300",
			wantTotal:    "300",
			wantProfit:   "-300",
			wantMargin:   "0",
		},
		{
			name: "zero-value amounts count as zero",
			tussle: &models.Tussle{
				ID:                 "t4",
				SellPrice:          dec("10"),
				ExpenseAllocations: []models.ExpenseAllocation{{}, {AllocatedAmount: dec("2.5")}},
				WorkAssignments:    []models.WorkAssignment{{}},
			},
			wantMaterial: "2.5",
			wantLabor:    "0",
			wantTotal:    "2.5",
			wantProfit:   "7.5",
			wantMargin:   "75",
		},
		{
			name:         "nil tussle",
			tussle:       nil,
			wantMaterial: "0",
			wantLabor:    "0",
			wantTotal:    "0",
			wantProfit:   "0",
			wantMargin:   "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := TussleCosts(tt.tussle)
			if !b.MaterialCost.Equal(dec(tt.wantMaterial)) {
				t.Errorf("MaterialCost = %s, want %s", b.MaterialCost, tt.wantMaterial)
			}
			if !b.LaborCost.Equal(dec(tt.wantLabor)) {
				t.Errorf("LaborCost = %s, want %s", b.LaborCost, tt.wantLabor)
			}
			if !b.TotalCost.Equal(dec(tt.wantTotal)) {
				t.Errorf("TotalCost = %s, want %s", b.TotalCost, tt.wantTotal)
			}
			if !b.Profit.Equal(dec(tt.wantProfit)) {
				t.Errorf("Profit = %s, want %s", b.Profit, tt.wantProfit)
			}
			if !b.MarginPercent().Equal(dec(tt.wantMargin)) {
				t.Errorf("MarginPercent = %s, want %s", b.MarginPercent(), tt.wantMargin)
			}
		})
	}
}

func TestTussleCosts_NoCostRecordsProfitEqualsSellPrice(t *testing.T) {
	for _, price := range []string{"0", "1", "99.99", "100000", "123456789.01"} {
		tu := models.Tussle{SellPrice: dec(price)}
		if got := TussleCosts(&tu).Profit; !got.Equal(tu.SellPrice) {
			t.Errorf("price %s: profit = %s", price, got)
		}
	}
}

func TestCompanyCosts_Additive(t *testing.T) {
	tussles := []models.Tussle{
		tussleWithCosts("a", "100000", []string{"20000"}, []string{"10000"}),
		tussleWithCosts("b", "15000", []string{"12000.10", "3000"}, []string{"4999.90"}),
		tussleWithCosts("c", "0.30", nil, nil),
		tussleWithCosts("d", "0.10", []string{"0.20"}, nil),
	}

	company := CompanyCosts(tussles)

	sum := decimal.Zero
	for i := range tussles {
		sum = sum.Add(TussleCosts(&tussles[i]).Profit)
	}
	if !company.Profit.Equal(sum) {
		t.Errorf("company profit = %s, sum of tussle profit = %s", company.Profit, sum)
	}
	if !company.Profit.Equal(dec("65000.20")) {
		t.Errorf("company profit = %s, want 65000.20", company.Profit)
	}
	if !company.Revenue.Equal(dec("115000.40")) {
		t.Errorf("company revenue = %s, want 115000.40", company.Revenue)
	}
}

func TestBusinessCosts_SalaryAsymmetry(t *testing.T) {
	tussles := []models.Tussle{
		tussleWithCosts("a", "100000", []string{"20000"}, []string{"10000"}),
		tussleWithCosts("b", "5000", []string{"7000"}, []string{"3000"}),
	}
	profiles := []models.Profile{
		{ID: "o", Role: models.RoleOwner, Salary: decimal.NewNullDecimal(dec("999999"))},
		{ID: "e1", Role: models.RoleEmployee, Salary: decimal.NewNullDecimal(dec("50000"))},
		{ID: "e2", Role: models.RoleEmployee},
	}

	if p := TussleCosts(&tussles[0]).Profit; !p.Equal(dec("70000")) {
		t.Errorf("tussle a profit = %s, want 70000", p)
	}
	if p := TussleCosts(&tussles[1]).Profit; !p.Equal(dec("-5000")) {
		t.Errorf("tussle b profit = %s, want -5000", p)
	}

	biz := BusinessCosts(tussles, profiles)
	if !biz.Orders.Profit.Equal(dec("65000")) {
		t.Errorf("orders profit = %s, want 65000", biz.Orders.Profit)
	}
	if !biz.EmployeeSalaries.Equal(dec("50000")) {
		t.Errorf("salaries = %s, want 50000", biz.EmployeeSalaries)
	}
	if !biz.Profit.Equal(dec("15000")) {
		t.Errorf("business profit = %s, want 15000", biz.Profit)
	}

	// Per-company figures stay salary-free.
	if p := CompanyCosts(tussles).Profit; !p.Equal(dec("65000")) {
		t.Errorf("company profit = %s, want 65000", p)
	}
}

func TestBusinessCosts_SumOfCompanies(t *testing.T) {
	acme := []models.Tussle{
		tussleWithCosts("a1", "1000", []string{"100"}, []string{"50"}),
		tussleWithCosts("a2", "2500", nil, []string{"2600"}),
	}
	globex := []models.Tussle{
		tussleWithCosts("g1", "300.33", []string{"0.33"}, nil),
	}
	all := append(append([]models.Tussle{}, acme...), globex...)

	want := CompanyCosts(acme).Add(CompanyCosts(globex))
	got := BusinessCosts(all, nil)
	if !got.Orders.Profit.Equal(want.Profit) || !got.Orders.Revenue.Equal(want.Revenue) {
		t.Errorf("business orders profit = %s, want %s", got.Orders.Profit, want.Profit)
	}
	if !got.Profit.Equal(want.Profit) {
		t.Errorf("business profit without salaries = %s, want %s", got.Profit, want.Profit)
	}
}

func TestBusinessCosts_Pure(t *testing.T) {
	tussles := []models.Tussle{tussleWithCosts("a", "10", []string{"1"}, []string{"2"})}
	profiles := []models.Profile{{Role: models.RoleEmployee, Salary: decimal.NewNullDecimal(dec("3"))}}

	first := BusinessCosts(tussles, profiles)
	second := BusinessCosts(tussles, profiles)
	if !first.Profit.Equal(second.Profit) || !first.Orders.TotalCost.Equal(second.Orders.TotalCost) {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
	if len(tussles[0].ExpenseAllocations) != 1 || !tussles[0].SellPrice.Equal(dec("10")) {
		t.Error("input was modified")
	}
}
