package api

import "github.com/shopspring/decimal"

// AuthService

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
	// Home is the landing screen for the user's role.
	Home string `json:"home"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User User `json:"user"`
}

// ProfileService

type ListEmployeesRequest struct{}

type ListEmployeesResponse struct {
	Employees []User `json:"employees"`
	// TotalSalaries is the sum of employee salaries.
	TotalSalaries decimal.Decimal `json:"total_salaries"`
}

type CreateEmployeeRequest struct {
	Username string              `json:"username"`
	Password string              `json:"password"`
	FullName string              `json:"full_name"`
	Salary   decimal.NullDecimal `json:"salary"`
	IDCard   string              `json:"id_card,omitempty"`
}

type CreateEmployeeResponse struct {
	Employee User `json:"employee"`
}

// NavigationService

type NavigateRequest struct {
	Path string `json:"path"`
}

type NavigateResponse struct {
	// Decision is "allow", "redirect" or "pending" for the requested path.
	Decision string `json:"decision"`
	// Location is the redirect target when Decision is "redirect".
	Location string `json:"location,omitempty"`
	// Screen is the path that finally renders after following redirects.
	Screen string `json:"screen,omitempty"`
	// Chain lists every path visited, starting with the requested one.
	Chain []string `json:"chain"`
}

// CompanyService

type ListCompaniesRequest struct{}

type CompanySummary struct {
	Company    Company         `json:"company"`
	OrderCount int             `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

type ListCompaniesResponse struct {
	Companies []CompanySummary `json:"companies"`
}

type GetCompanyRequest struct {
	ID string `json:"id"`
}

type GetCompanyResponse struct {
	Company Company         `json:"company"`
	Tussles []TussleSummary `json:"tussles"`
	Totals  Costs           `json:"totals"`
	Tally   StatusTally     `json:"tally"`
}

type CreateCompanyRequest struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

type CreateCompanyResponse struct {
	Company Company `json:"company"`
}

type ResolveClientRequest struct {
	Name string `json:"name"`
}

type ResolveClientResponse struct {
	Company Company `json:"company"`
	Created bool    `json:"created"`
}

// TussleService

type CreateTussleRequest struct {
	// CompanyID selects an existing company. When empty, ClientName is
	// resolved to a company, creating it if needed.
	CompanyID  string          `json:"company_id,omitempty"`
	ClientName string          `json:"client_name,omitempty"`
	Name       string          `json:"name"`
	SellPrice  decimal.Decimal `json:"sell_price"`
	DueDate    string          `json:"due_date,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	Image      []byte          `json:"image,omitempty"`
	ImageName  string          `json:"image_name,omitempty"`
}

type CreateTussleResponse struct {
	Tussle         Tussle `json:"tussle"`
	CompanyCreated bool   `json:"company_created"`
}

type GetTussleRequest struct {
	ID string `json:"id"`
}

type GetTussleResponse struct {
	Tussle      Tussle              `json:"tussle"`
	Costs       Costs               `json:"costs"`
	Expenses    []ExpenseAllocation `json:"expenses"`
	Assignments []WorkAssignment    `json:"assignments"`
}

type ListTusslesRequest struct {
	CompanyID   string `json:"company_id,omitempty"`
	Status      string `json:"status,omitempty"`
	WithDueDate bool   `json:"with_due_date,omitempty"`
	// OrderBy is "created_at" (default), "due_date" or "name".
	OrderBy    string `json:"order_by,omitempty"`
	Descending bool   `json:"descending,omitempty"`
}

type ListTusslesResponse struct {
	Tussles []TussleSummary `json:"tussles"`
}

type ToggleTussleStatusRequest struct {
	ID string `json:"id"`
}

type ToggleTussleStatusResponse struct {
	Tussle Tussle `json:"tussle"`
}

type AddExpenseRequest struct {
	TussleID string          `json:"tussle_id"`
	Amount   decimal.Decimal `json:"amount"`

	// ReceiptID allocates from an existing receipt.
	ReceiptID string `json:"receipt_id,omitempty"`

	// Otherwise a new receipt is uploaded with its total.
	ReceiptImage []byte              `json:"receipt_image,omitempty"`
	ReceiptName  string              `json:"receipt_name,omitempty"`
	ReceiptTotal decimal.NullDecimal `json:"receipt_total"`
}

type AddExpenseResponse struct {
	Expense ExpenseAllocation `json:"expense"`
}

type ListExpensesRequest struct {
	TussleID string `json:"tussle_id"`
}

type ListExpensesResponse struct {
	Expenses []ExpenseAllocation `json:"expenses"`
	Total    decimal.Decimal     `json:"total"`
}

type AssignWorkerRequest struct {
	TussleID string          `json:"tussle_id"`
	WorkerID string          `json:"worker_id"`
	Quantity int64           `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	DueDate  string          `json:"due_date,omitempty"`
}

type AssignWorkerResponse struct {
	Assignment WorkAssignment `json:"assignment"`
}

type ListAssignmentsRequest struct {
	TussleID string `json:"tussle_id"`
}

type ListAssignmentsResponse struct {
	Assignments []WorkAssignment `json:"assignments"`
	Total       decimal.Decimal  `json:"total"`
}

// ReceiptService

type ListReceiptsRequest struct{}

type ListReceiptsResponse struct {
	Receipts []Receipt `json:"receipts"`
}

// WorkerService

type ListWorkersRequest struct{}

type WorkerSummary struct {
	Worker             Worker          `json:"worker"`
	Assignments        int             `json:"assignments"`
	PendingAssignments int             `json:"pending_assignments"`
	TotalPay           decimal.Decimal `json:"total_pay"`
	PendingPay         decimal.Decimal `json:"pending_pay"`
}

type ListWorkersResponse struct {
	Workers []WorkerSummary `json:"workers"`
}

type CreateWorkerRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type CreateWorkerResponse struct {
	Worker Worker `json:"worker"`
}

// CalendarService

type GetMonthRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// CalendarDay merges stored events and tussle deadlines falling on Date.
type CalendarDay struct {
	Date      string          `json:"date"`
	Events    []CalendarEvent `json:"events"`
	Deadlines []Tussle        `json:"deadlines"`
}

type GetMonthResponse struct {
	// Days lists only days that have an event or a deadline, in date order.
	Days []CalendarDay `json:"days"`
}

type CreateEventRequest struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Type  string `json:"type,omitempty"`
}

type CreateEventResponse struct {
	Event CalendarEvent `json:"event"`
}

// DashboardService

type GetDashboardRequest struct {
	// Granularity is "weekly" (default) or "monthly".
	Granularity string `json:"granularity,omitempty"`
}

type BusinessSummary struct {
	Orders           Costs           `json:"orders"`
	EmployeeSalaries decimal.Decimal `json:"employee_salaries"`
	// Profit is orders profit minus employee salaries.
	Profit decimal.Decimal `json:"profit"`
}

type GetDashboardResponse struct {
	Summary      BusinessSummary `json:"summary"`
	Trend        []TrendPoint    `json:"trend"`
	Tally        StatusTally     `json:"tally"`
	CompanyCount int             `json:"company_count"`
	WorkerCount  int             `json:"worker_count"`
}

type GetHomeRequest struct{}

type GetHomeResponse struct {
	Tally        StatusTally `json:"tally"`
	TotalTussles int         `json:"total_tussles"`
	CompanyCount int         `json:"company_count"`
	Upcoming     []Tussle    `json:"upcoming"`
}
