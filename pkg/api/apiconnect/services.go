package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/saadistik/Bashir.inc/pkg/api"
)

// Package is the fully-qualified prefix of every service name.
const Package = "bashir.v1"

// These constants are the fully-qualified names of the services.
const (
	AuthServiceName       = Package + ".AuthService"
	ProfileServiceName    = Package + ".ProfileService"
	NavigationServiceName = Package + ".NavigationService"
	CompanyServiceName    = Package + ".CompanyService"
	TussleServiceName     = Package + ".TussleService"
	ReceiptServiceName    = Package + ".ReceiptService"
	WorkerServiceName     = Package + ".WorkerService"
	CalendarServiceName   = Package + ".CalendarService"
	DashboardServiceName  = Package + ".DashboardService"
)

// These constants are the fully-qualified names of the RPCs, used as the
// URL path of each procedure.
const (
	AuthServiceLoginProcedure          = "/" + AuthServiceName + "/Login"
	AuthServiceLogoutProcedure         = "/" + AuthServiceName + "/Logout"
	AuthServiceGetCurrentUserProcedure = "/" + AuthServiceName + "/GetCurrentUser"

	ProfileServiceListEmployeesProcedure  = "/" + ProfileServiceName + "/ListEmployees"
	ProfileServiceCreateEmployeeProcedure = "/" + ProfileServiceName + "/CreateEmployee"

	NavigationServiceNavigateProcedure = "/" + NavigationServiceName + "/Navigate"

	CompanyServiceListCompaniesProcedure = "/" + CompanyServiceName + "/ListCompanies"
	CompanyServiceGetCompanyProcedure    = "/" + CompanyServiceName + "/GetCompany"
	CompanyServiceCreateCompanyProcedure = "/" + CompanyServiceName + "/CreateCompany"
	CompanyServiceResolveClientProcedure = "/" + CompanyServiceName + "/ResolveClient"

	TussleServiceCreateTussleProcedure       = "/" + TussleServiceName + "/CreateTussle"
	TussleServiceGetTussleProcedure          = "/" + TussleServiceName + "/GetTussle"
	TussleServiceListTusslesProcedure        = "/" + TussleServiceName + "/ListTussles"
	TussleServiceToggleTussleStatusProcedure = "/" + TussleServiceName + "/ToggleTussleStatus"
	TussleServiceAddExpenseProcedure         = "/" + TussleServiceName + "/AddExpense"
	TussleServiceListExpensesProcedure       = "/" + TussleServiceName + "/ListExpenses"
	TussleServiceAssignWorkerProcedure       = "/" + TussleServiceName + "/AssignWorker"
	TussleServiceListAssignmentsProcedure    = "/" + TussleServiceName + "/ListAssignments"

	ReceiptServiceListReceiptsProcedure = "/" + ReceiptServiceName + "/ListReceipts"

	WorkerServiceListWorkersProcedure  = "/" + WorkerServiceName + "/ListWorkers"
	WorkerServiceCreateWorkerProcedure = "/" + WorkerServiceName + "/CreateWorker"

	CalendarServiceGetMonthProcedure    = "/" + CalendarServiceName + "/GetMonth"
	CalendarServiceCreateEventProcedure = "/" + CalendarServiceName + "/CreateEvent"

	DashboardServiceGetDashboardProcedure = "/" + DashboardServiceName + "/GetDashboard"
	DashboardServiceGetHomeProcedure      = "/" + DashboardServiceName + "/GetHome"
)

// route dispatches a service's requests to the per-procedure handlers.
func route(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{WithJSON()}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{WithJSON()}, opts...)
}

// AuthServiceHandler is the server side of AuthService, which handles sign-in and the current user.
type AuthServiceHandler interface {
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	Logout(context.Context, *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + AuthServiceName + "/", route(map[string]http.Handler{
		AuthServiceLoginProcedure:          connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...),
		AuthServiceLogoutProcedure:         connect.NewUnaryHandler(AuthServiceLogoutProcedure, svc.Logout, opts...),
		AuthServiceGetCurrentUserProcedure: connect.NewUnaryHandler(AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...),
	})
}

// AuthServiceClient is a client for AuthService.
type AuthServiceClient interface {
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	Logout(context.Context, *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error)
}

type authServiceClient struct {
	login          *connect.Client[api.LoginRequest, api.LoginResponse]
	logout         *connect.Client[api.LogoutRequest, api.LogoutResponse]
	getCurrentUser *connect.Client[api.GetCurrentUserRequest, api.GetCurrentUserResponse]
}

// NewAuthServiceClient constructs a client for AuthService. baseURL is the
// server root, for example http://localhost:8080.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &authServiceClient{
		login:          connect.NewClient[api.LoginRequest, api.LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		logout:         connect.NewClient[api.LogoutRequest, api.LogoutResponse](httpClient, baseURL+AuthServiceLogoutProcedure, opts...),
		getCurrentUser: connect.NewClient[api.GetCurrentUserRequest, api.GetCurrentUserResponse](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
	}
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) Logout(ctx context.Context, req *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	return c.logout.CallUnary(ctx, req)
}

func (c *authServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// ProfileServiceHandler is the server side of ProfileService, which manages employee accounts.
type ProfileServiceHandler interface {
	ListEmployees(context.Context, *connect.Request[api.ListEmployeesRequest]) (*connect.Response[api.ListEmployeesResponse], error)
	CreateEmployee(context.Context, *connect.Request[api.CreateEmployeeRequest]) (*connect.Response[api.CreateEmployeeResponse], error)
}

// NewProfileServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewProfileServiceHandler(svc ProfileServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + ProfileServiceName + "/", route(map[string]http.Handler{
		ProfileServiceListEmployeesProcedure:  connect.NewUnaryHandler(ProfileServiceListEmployeesProcedure, svc.ListEmployees, opts...),
		ProfileServiceCreateEmployeeProcedure: connect.NewUnaryHandler(ProfileServiceCreateEmployeeProcedure, svc.CreateEmployee, opts...),
	})
}

// ProfileServiceClient is a client for ProfileService.
type ProfileServiceClient interface {
	ListEmployees(context.Context, *connect.Request[api.ListEmployeesRequest]) (*connect.Response[api.ListEmployeesResponse], error)
	CreateEmployee(context.Context, *connect.Request[api.CreateEmployeeRequest]) (*connect.Response[api.CreateEmployeeResponse], error)
}

type profileServiceClient struct {
	listEmployees  *connect.Client[api.ListEmployeesRequest, api.ListEmployeesResponse]
	createEmployee *connect.Client[api.CreateEmployeeRequest, api.CreateEmployeeResponse]
}

// NewProfileServiceClient constructs a client for ProfileService. baseURL is the
// server root, for example http://localhost:8080.
func NewProfileServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ProfileServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &profileServiceClient{
		listEmployees:  connect.NewClient[api.ListEmployeesRequest, api.ListEmployeesResponse](httpClient, baseURL+ProfileServiceListEmployeesProcedure, opts...),
		createEmployee: connect.NewClient[api.CreateEmployeeRequest, api.CreateEmployeeResponse](httpClient, baseURL+ProfileServiceCreateEmployeeProcedure, opts...),
	}
}

func (c *profileServiceClient) ListEmployees(ctx context.Context, req *connect.Request[api.ListEmployeesRequest]) (*connect.Response[api.ListEmployeesResponse], error) {
	return c.listEmployees.CallUnary(ctx, req)
}

func (c *profileServiceClient) CreateEmployee(ctx context.Context, req *connect.Request[api.CreateEmployeeRequest]) (*connect.Response[api.CreateEmployeeResponse], error) {
	return c.createEmployee.CallUnary(ctx, req)
}

// NavigationServiceHandler is the server side of NavigationService, which decides which screen a session may open.
type NavigationServiceHandler interface {
	Navigate(context.Context, *connect.Request[api.NavigateRequest]) (*connect.Response[api.NavigateResponse], error)
}

// NewNavigationServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewNavigationServiceHandler(svc NavigationServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + NavigationServiceName + "/", route(map[string]http.Handler{
		NavigationServiceNavigateProcedure: connect.NewUnaryHandler(NavigationServiceNavigateProcedure, svc.Navigate, opts...),
	})
}

// NavigationServiceClient is a client for NavigationService.
type NavigationServiceClient interface {
	Navigate(context.Context, *connect.Request[api.NavigateRequest]) (*connect.Response[api.NavigateResponse], error)
}

type navigationServiceClient struct {
	navigate *connect.Client[api.NavigateRequest, api.NavigateResponse]
}

// NewNavigationServiceClient constructs a client for NavigationService. baseURL is the
// server root, for example http://localhost:8080.
func NewNavigationServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) NavigationServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &navigationServiceClient{
		navigate: connect.NewClient[api.NavigateRequest, api.NavigateResponse](httpClient, baseURL+NavigationServiceNavigateProcedure, opts...),
	}
}

func (c *navigationServiceClient) Navigate(ctx context.Context, req *connect.Request[api.NavigateRequest]) (*connect.Response[api.NavigateResponse], error) {
	return c.navigate.CallUnary(ctx, req)
}

// CompanyServiceHandler is the server side of CompanyService, which manages client companies.
type CompanyServiceHandler interface {
	ListCompanies(context.Context, *connect.Request[api.ListCompaniesRequest]) (*connect.Response[api.ListCompaniesResponse], error)
	GetCompany(context.Context, *connect.Request[api.GetCompanyRequest]) (*connect.Response[api.GetCompanyResponse], error)
	CreateCompany(context.Context, *connect.Request[api.CreateCompanyRequest]) (*connect.Response[api.CreateCompanyResponse], error)
	ResolveClient(context.Context, *connect.Request[api.ResolveClientRequest]) (*connect.Response[api.ResolveClientResponse], error)
}

// NewCompanyServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewCompanyServiceHandler(svc CompanyServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + CompanyServiceName + "/", route(map[string]http.Handler{
		CompanyServiceListCompaniesProcedure: connect.NewUnaryHandler(CompanyServiceListCompaniesProcedure, svc.ListCompanies, opts...),
		CompanyServiceGetCompanyProcedure:    connect.NewUnaryHandler(CompanyServiceGetCompanyProcedure, svc.GetCompany, opts...),
		CompanyServiceCreateCompanyProcedure: connect.NewUnaryHandler(CompanyServiceCreateCompanyProcedure, svc.CreateCompany, opts...),
		CompanyServiceResolveClientProcedure: connect.NewUnaryHandler(CompanyServiceResolveClientProcedure, svc.ResolveClient, opts...),
	})
}

// CompanyServiceClient is a client for CompanyService.
type CompanyServiceClient interface {
	ListCompanies(context.Context, *connect.Request[api.ListCompaniesRequest]) (*connect.Response[api.ListCompaniesResponse], error)
	GetCompany(context.Context, *connect.Request[api.GetCompanyRequest]) (*connect.Response[api.GetCompanyResponse], error)
	CreateCompany(context.Context, *connect.Request[api.CreateCompanyRequest]) (*connect.Response[api.CreateCompanyResponse], error)
	ResolveClient(context.Context, *connect.Request[api.ResolveClientRequest]) (*connect.Response[api.ResolveClientResponse], error)
}

type companyServiceClient struct {
	listCompanies *connect.Client[api.ListCompaniesRequest, api.ListCompaniesResponse]
	getCompany    *connect.Client[api.GetCompanyRequest, api.GetCompanyResponse]
	createCompany *connect.Client[api.CreateCompanyRequest, api.CreateCompanyResponse]
	resolveClient *connect.Client[api.ResolveClientRequest, api.ResolveClientResponse]
}

// NewCompanyServiceClient constructs a client for CompanyService. baseURL is the
// server root, for example http://localhost:8080.
func NewCompanyServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CompanyServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &companyServiceClient{
		listCompanies: connect.NewClient[api.ListCompaniesRequest, api.ListCompaniesResponse](httpClient, baseURL+CompanyServiceListCompaniesProcedure, opts...),
		getCompany:    connect.NewClient[api.GetCompanyRequest, api.GetCompanyResponse](httpClient, baseURL+CompanyServiceGetCompanyProcedure, opts...),
		createCompany: connect.NewClient[api.CreateCompanyRequest, api.CreateCompanyResponse](httpClient, baseURL+CompanyServiceCreateCompanyProcedure, opts...),
		resolveClient: connect.NewClient[api.ResolveClientRequest, api.ResolveClientResponse](httpClient, baseURL+CompanyServiceResolveClientProcedure, opts...),
	}
}

func (c *companyServiceClient) ListCompanies(ctx context.Context, req *connect.Request[api.ListCompaniesRequest]) (*connect.Response[api.ListCompaniesResponse], error) {
	return c.listCompanies.CallUnary(ctx, req)
}

func (c *companyServiceClient) GetCompany(ctx context.Context, req *connect.Request[api.GetCompanyRequest]) (*connect.Response[api.GetCompanyResponse], error) {
	return c.getCompany.CallUnary(ctx, req)
}

func (c *companyServiceClient) CreateCompany(ctx context.Context, req *connect.Request[api.CreateCompanyRequest]) (*connect.Response[api.CreateCompanyResponse], error) {
	return c.createCompany.CallUnary(ctx, req)
}

func (c *companyServiceClient) ResolveClient(ctx context.Context, req *connect.Request[api.ResolveClientRequest]) (*connect.Response[api.ResolveClientResponse], error) {
	return c.resolveClient.CallUnary(ctx, req)
}

// TussleServiceHandler is the server side of TussleService, which manages tussles and their cost records.
type TussleServiceHandler interface {
	CreateTussle(context.Context, *connect.Request[api.CreateTussleRequest]) (*connect.Response[api.CreateTussleResponse], error)
	GetTussle(context.Context, *connect.Request[api.GetTussleRequest]) (*connect.Response[api.GetTussleResponse], error)
	ListTussles(context.Context, *connect.Request[api.ListTusslesRequest]) (*connect.Response[api.ListTusslesResponse], error)
	ToggleTussleStatus(context.Context, *connect.Request[api.ToggleTussleStatusRequest]) (*connect.Response[api.ToggleTussleStatusResponse], error)
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	AssignWorker(context.Context, *connect.Request[api.AssignWorkerRequest]) (*connect.Response[api.AssignWorkerResponse], error)
	ListAssignments(context.Context, *connect.Request[api.ListAssignmentsRequest]) (*connect.Response[api.ListAssignmentsResponse], error)
}

// NewTussleServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTussleServiceHandler(svc TussleServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + TussleServiceName + "/", route(map[string]http.Handler{
		TussleServiceCreateTussleProcedure:       connect.NewUnaryHandler(TussleServiceCreateTussleProcedure, svc.CreateTussle, opts...),
		TussleServiceGetTussleProcedure:          connect.NewUnaryHandler(TussleServiceGetTussleProcedure, svc.GetTussle, opts...),
		TussleServiceListTusslesProcedure:        connect.NewUnaryHandler(TussleServiceListTusslesProcedure, svc.ListTussles, opts...),
		TussleServiceToggleTussleStatusProcedure: connect.NewUnaryHandler(TussleServiceToggleTussleStatusProcedure, svc.ToggleTussleStatus, opts...),
		TussleServiceAddExpenseProcedure:         connect.NewUnaryHandler(TussleServiceAddExpenseProcedure, svc.AddExpense, opts...),
		TussleServiceListExpensesProcedure:       connect.NewUnaryHandler(TussleServiceListExpensesProcedure, svc.ListExpenses, opts...),
		TussleServiceAssignWorkerProcedure:       connect.NewUnaryHandler(TussleServiceAssignWorkerProcedure, svc.AssignWorker, opts...),
		TussleServiceListAssignmentsProcedure:    connect.NewUnaryHandler(TussleServiceListAssignmentsProcedure, svc.ListAssignments, opts...),
	})
}

// TussleServiceClient is a client for TussleService.
type TussleServiceClient interface {
	CreateTussle(context.Context, *connect.Request[api.CreateTussleRequest]) (*connect.Response[api.CreateTussleResponse], error)
	GetTussle(context.Context, *connect.Request[api.GetTussleRequest]) (*connect.Response[api.GetTussleResponse], error)
	ListTussles(context.Context, *connect.Request[api.ListTusslesRequest]) (*connect.Response[api.ListTusslesResponse], error)
	ToggleTussleStatus(context.Context, *connect.Request[api.ToggleTussleStatusRequest]) (*connect.Response[api.ToggleTussleStatusResponse], error)
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	AssignWorker(context.Context, *connect.Request[api.AssignWorkerRequest]) (*connect.Response[api.AssignWorkerResponse], error)
	ListAssignments(context.Context, *connect.Request[api.ListAssignmentsRequest]) (*connect.Response[api.ListAssignmentsResponse], error)
}

type tussleServiceClient struct {
	createTussle       *connect.Client[api.CreateTussleRequest, api.CreateTussleResponse]
	getTussle          *connect.Client[api.GetTussleRequest, api.GetTussleResponse]
	listTussles        *connect.Client[api.ListTusslesRequest, api.ListTusslesResponse]
	toggleTussleStatus *connect.Client[api.ToggleTussleStatusRequest, api.ToggleTussleStatusResponse]
	addExpense         *connect.Client[api.AddExpenseRequest, api.AddExpenseResponse]
	listExpenses       *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
	assignWorker       *connect.Client[api.AssignWorkerRequest, api.AssignWorkerResponse]
	listAssignments    *connect.Client[api.ListAssignmentsRequest, api.ListAssignmentsResponse]
}

// NewTussleServiceClient constructs a client for TussleService. baseURL is the
// server root, for example http://localhost:8080.
func NewTussleServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TussleServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &tussleServiceClient{
		createTussle:       connect.NewClient[api.CreateTussleRequest, api.CreateTussleResponse](httpClient, baseURL+TussleServiceCreateTussleProcedure, opts...),
		getTussle:          connect.NewClient[api.GetTussleRequest, api.GetTussleResponse](httpClient, baseURL+TussleServiceGetTussleProcedure, opts...),
		listTussles:        connect.NewClient[api.ListTusslesRequest, api.ListTusslesResponse](httpClient, baseURL+TussleServiceListTusslesProcedure, opts...),
		toggleTussleStatus: connect.NewClient[api.ToggleTussleStatusRequest, api.ToggleTussleStatusResponse](httpClient, baseURL+TussleServiceToggleTussleStatusProcedure, opts...),
		addExpense:         connect.NewClient[api.AddExpenseRequest, api.AddExpenseResponse](httpClient, baseURL+TussleServiceAddExpenseProcedure, opts...),
		listExpenses:       connect.NewClient[api.ListExpensesRequest, api.ListExpensesResponse](httpClient, baseURL+TussleServiceListExpensesProcedure, opts...),
		assignWorker:       connect.NewClient[api.AssignWorkerRequest, api.AssignWorkerResponse](httpClient, baseURL+TussleServiceAssignWorkerProcedure, opts...),
		listAssignments:    connect.NewClient[api.ListAssignmentsRequest, api.ListAssignmentsResponse](httpClient, baseURL+TussleServiceListAssignmentsProcedure, opts...),
	}
}

func (c *tussleServiceClient) CreateTussle(ctx context.Context, req *connect.Request[api.CreateTussleRequest]) (*connect.Response[api.CreateTussleResponse], error) {
	return c.createTussle.CallUnary(ctx, req)
}

func (c *tussleServiceClient) GetTussle(ctx context.Context, req *connect.Request[api.GetTussleRequest]) (*connect.Response[api.GetTussleResponse], error) {
	return c.getTussle.CallUnary(ctx, req)
}

func (c *tussleServiceClient) ListTussles(ctx context.Context, req *connect.Request[api.ListTusslesRequest]) (*connect.Response[api.ListTusslesResponse], error) {
	return c.listTussles.CallUnary(ctx, req)
}

func (c *tussleServiceClient) ToggleTussleStatus(ctx context.Context, req *connect.Request[api.ToggleTussleStatusRequest]) (*connect.Response[api.ToggleTussleStatusResponse], error) {
	return c.toggleTussleStatus.CallUnary(ctx, req)
}

func (c *tussleServiceClient) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *tussleServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *tussleServiceClient) AssignWorker(ctx context.Context, req *connect.Request[api.AssignWorkerRequest]) (*connect.Response[api.AssignWorkerResponse], error) {
	return c.assignWorker.CallUnary(ctx, req)
}

func (c *tussleServiceClient) ListAssignments(ctx context.Context, req *connect.Request[api.ListAssignmentsRequest]) (*connect.Response[api.ListAssignmentsResponse], error) {
	return c.listAssignments.CallUnary(ctx, req)
}

// ReceiptServiceHandler is the server side of ReceiptService, which lists material receipts.
type ReceiptServiceHandler interface {
	ListReceipts(context.Context, *connect.Request[api.ListReceiptsRequest]) (*connect.Response[api.ListReceiptsResponse], error)
}

// NewReceiptServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewReceiptServiceHandler(svc ReceiptServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + ReceiptServiceName + "/", route(map[string]http.Handler{
		ReceiptServiceListReceiptsProcedure: connect.NewUnaryHandler(ReceiptServiceListReceiptsProcedure, svc.ListReceipts, opts...),
	})
}

// ReceiptServiceClient is a client for ReceiptService.
type ReceiptServiceClient interface {
	ListReceipts(context.Context, *connect.Request[api.ListReceiptsRequest]) (*connect.Response[api.ListReceiptsResponse], error)
}

type receiptServiceClient struct {
	listReceipts *connect.Client[api.ListReceiptsRequest, api.ListReceiptsResponse]
}

// NewReceiptServiceClient constructs a client for ReceiptService. baseURL is the
// server root, for example http://localhost:8080.
func NewReceiptServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ReceiptServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &receiptServiceClient{
		listReceipts: connect.NewClient[api.ListReceiptsRequest, api.ListReceiptsResponse](httpClient, baseURL+ReceiptServiceListReceiptsProcedure, opts...),
	}
}

func (c *receiptServiceClient) ListReceipts(ctx context.Context, req *connect.Request[api.ListReceiptsRequest]) (*connect.Response[api.ListReceiptsResponse], error) {
	return c.listReceipts.CallUnary(ctx, req)
}

// WorkerServiceHandler is the server side of WorkerService, which manages the worker roster.
type WorkerServiceHandler interface {
	ListWorkers(context.Context, *connect.Request[api.ListWorkersRequest]) (*connect.Response[api.ListWorkersResponse], error)
	CreateWorker(context.Context, *connect.Request[api.CreateWorkerRequest]) (*connect.Response[api.CreateWorkerResponse], error)
}

// NewWorkerServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewWorkerServiceHandler(svc WorkerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + WorkerServiceName + "/", route(map[string]http.Handler{
		WorkerServiceListWorkersProcedure:  connect.NewUnaryHandler(WorkerServiceListWorkersProcedure, svc.ListWorkers, opts...),
		WorkerServiceCreateWorkerProcedure: connect.NewUnaryHandler(WorkerServiceCreateWorkerProcedure, svc.CreateWorker, opts...),
	})
}

// WorkerServiceClient is a client for WorkerService.
type WorkerServiceClient interface {
	ListWorkers(context.Context, *connect.Request[api.ListWorkersRequest]) (*connect.Response[api.ListWorkersResponse], error)
	CreateWorker(context.Context, *connect.Request[api.CreateWorkerRequest]) (*connect.Response[api.CreateWorkerResponse], error)
}

type workerServiceClient struct {
	listWorkers  *connect.Client[api.ListWorkersRequest, api.ListWorkersResponse]
	createWorker *connect.Client[api.CreateWorkerRequest, api.CreateWorkerResponse]
}

// NewWorkerServiceClient constructs a client for WorkerService. baseURL is the
// server root, for example http://localhost:8080.
func NewWorkerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) WorkerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &workerServiceClient{
		listWorkers:  connect.NewClient[api.ListWorkersRequest, api.ListWorkersResponse](httpClient, baseURL+WorkerServiceListWorkersProcedure, opts...),
		createWorker: connect.NewClient[api.CreateWorkerRequest, api.CreateWorkerResponse](httpClient, baseURL+WorkerServiceCreateWorkerProcedure, opts...),
	}
}

func (c *workerServiceClient) ListWorkers(ctx context.Context, req *connect.Request[api.ListWorkersRequest]) (*connect.Response[api.ListWorkersResponse], error) {
	return c.listWorkers.CallUnary(ctx, req)
}

func (c *workerServiceClient) CreateWorker(ctx context.Context, req *connect.Request[api.CreateWorkerRequest]) (*connect.Response[api.CreateWorkerResponse], error) {
	return c.createWorker.CallUnary(ctx, req)
}

// CalendarServiceHandler is the server side of CalendarService, which serves the deadline calendar.
type CalendarServiceHandler interface {
	GetMonth(context.Context, *connect.Request[api.GetMonthRequest]) (*connect.Response[api.GetMonthResponse], error)
	CreateEvent(context.Context, *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error)
}

// NewCalendarServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewCalendarServiceHandler(svc CalendarServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + CalendarServiceName + "/", route(map[string]http.Handler{
		CalendarServiceGetMonthProcedure:    connect.NewUnaryHandler(CalendarServiceGetMonthProcedure, svc.GetMonth, opts...),
		CalendarServiceCreateEventProcedure: connect.NewUnaryHandler(CalendarServiceCreateEventProcedure, svc.CreateEvent, opts...),
	})
}

// CalendarServiceClient is a client for CalendarService.
type CalendarServiceClient interface {
	GetMonth(context.Context, *connect.Request[api.GetMonthRequest]) (*connect.Response[api.GetMonthResponse], error)
	CreateEvent(context.Context, *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error)
}

type calendarServiceClient struct {
	getMonth    *connect.Client[api.GetMonthRequest, api.GetMonthResponse]
	createEvent *connect.Client[api.CreateEventRequest, api.CreateEventResponse]
}

// NewCalendarServiceClient constructs a client for CalendarService. baseURL is the
// server root, for example http://localhost:8080.
func NewCalendarServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CalendarServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &calendarServiceClient{
		getMonth:    connect.NewClient[api.GetMonthRequest, api.GetMonthResponse](httpClient, baseURL+CalendarServiceGetMonthProcedure, opts...),
		createEvent: connect.NewClient[api.CreateEventRequest, api.CreateEventResponse](httpClient, baseURL+CalendarServiceCreateEventProcedure, opts...),
	}
}

func (c *calendarServiceClient) GetMonth(ctx context.Context, req *connect.Request[api.GetMonthRequest]) (*connect.Response[api.GetMonthResponse], error) {
	return c.getMonth.CallUnary(ctx, req)
}

func (c *calendarServiceClient) CreateEvent(ctx context.Context, req *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error) {
	return c.createEvent.CallUnary(ctx, req)
}

// DashboardServiceHandler is the server side of DashboardService, which serves the owner dashboard and the employee home screen.
type DashboardServiceHandler interface {
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
	GetHome(context.Context, *connect.Request[api.GetHomeRequest]) (*connect.Response[api.GetHomeResponse], error)
}

// NewDashboardServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewDashboardServiceHandler(svc DashboardServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + DashboardServiceName + "/", route(map[string]http.Handler{
		DashboardServiceGetDashboardProcedure: connect.NewUnaryHandler(DashboardServiceGetDashboardProcedure, svc.GetDashboard, opts...),
		DashboardServiceGetHomeProcedure:      connect.NewUnaryHandler(DashboardServiceGetHomeProcedure, svc.GetHome, opts...),
	})
}

// DashboardServiceClient is a client for DashboardService.
type DashboardServiceClient interface {
	GetDashboard(context.Context, *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error)
	GetHome(context.Context, *connect.Request[api.GetHomeRequest]) (*connect.Response[api.GetHomeResponse], error)
}

type dashboardServiceClient struct {
	getDashboard *connect.Client[api.GetDashboardRequest, api.GetDashboardResponse]
	getHome      *connect.Client[api.GetHomeRequest, api.GetHomeResponse]
}

// NewDashboardServiceClient constructs a client for DashboardService. baseURL is the
// server root, for example http://localhost:8080.
func NewDashboardServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) DashboardServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &dashboardServiceClient{
		getDashboard: connect.NewClient[api.GetDashboardRequest, api.GetDashboardResponse](httpClient, baseURL+DashboardServiceGetDashboardProcedure, opts...),
		getHome:      connect.NewClient[api.GetHomeRequest, api.GetHomeResponse](httpClient, baseURL+DashboardServiceGetHomeProcedure, opts...),
	}
}

func (c *dashboardServiceClient) GetDashboard(ctx context.Context, req *connect.Request[api.GetDashboardRequest]) (*connect.Response[api.GetDashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}

func (c *dashboardServiceClient) GetHome(ctx context.Context, req *connect.Request[api.GetHomeRequest]) (*connect.Response[api.GetHomeResponse], error) {
	return c.getHome.CallUnary(ctx, req)
}
