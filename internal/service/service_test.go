package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/saadistik/Bashir.inc/internal/auth"
	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/objectstore"
	"github.com/saadistik/Bashir.inc/internal/storage/sqlite"
	"github.com/saadistik/Bashir.inc/pkg/api"
	"github.com/saadistik/Bashir.inc/pkg/api/apiconnect"
)

var pngImage = []byte("\x89PNG\x0D\x0A\x1A\x0A\x00\x00\x00\x0DIHDR")

type testEnv struct {
	store *sqlite.SQLiteStore

	auth       apiconnect.AuthServiceClient
	navigation apiconnect.NavigationServiceClient
	profiles   apiconnect.ProfileServiceClient
	companies  apiconnect.CompanyServiceClient
	tussles    apiconnect.TussleServiceClient
	receipts   apiconnect.ReceiptServiceClient
	workers    apiconnect.WorkerServiceClient
	calendar   apiconnect.CalendarServiceClient
	dashboard  apiconnect.DashboardServiceClient

	ownerToken    string
	employeeToken string
}

// setupTestServer starts every service on a temp database with one owner
// ("bashir") and one employee ("ali") signed in.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "bashir-service-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	objects, err := objectstore.New(filepath.Join(tempDir, "objects"), "")
	if err != nil {
		t.Fatalf("failed to create object store: %v", err)
	}

	authenticator := auth.NewPasswordAuthenticator(store)
	ctx := context.Background()
	if _, err := authenticator.Register(ctx, auth.Account{
		Username: "bashir", Password: "owner-pass", FullName: "Bashir", Role: models.RoleOwner,
	}); err != nil {
		t.Fatalf("failed to register owner: %v", err)
	}
	if _, err := authenticator.Register(ctx, auth.Account{
		Username: "ali", Password: "employee-pass", FullName: "Ali", Role: models.RoleEmployee,
		Salary: decimal.NewNullDecimal(decimal.NewFromInt(30000)),
	}); err != nil {
		t.Fatalf("failed to register employee: %v", err)
	}

	mux := http.NewServeMux()
	Register(mux, Deps{
		Store:         store,
		Authenticator: authenticator,
		JWT:           auth.NewJWTManager("test-secret", time.Hour),
		Objects:       objects,
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	env := &testEnv{
		store:      store,
		auth:       apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		navigation: apiconnect.NewNavigationServiceClient(http.DefaultClient, server.URL),
		profiles:   apiconnect.NewProfileServiceClient(http.DefaultClient, server.URL),
		companies:  apiconnect.NewCompanyServiceClient(http.DefaultClient, server.URL),
		tussles:    apiconnect.NewTussleServiceClient(http.DefaultClient, server.URL),
		receipts:   apiconnect.NewReceiptServiceClient(http.DefaultClient, server.URL),
		workers:    apiconnect.NewWorkerServiceClient(http.DefaultClient, server.URL),
		calendar:   apiconnect.NewCalendarServiceClient(http.DefaultClient, server.URL),
		dashboard:  apiconnect.NewDashboardServiceClient(http.DefaultClient, server.URL),
	}
	env.ownerToken = env.login(t, "bashir", "owner-pass").Token
	env.employeeToken = env.login(t, "ali", "employee-pass").Token
	return env
}

func (e *testEnv) login(t *testing.T, username, password string) *api.LoginResponse {
	t.Helper()
	resp, err := e.auth.Login(context.Background(), connect.NewRequest(&api.LoginRequest{
		Username: username,
		Password: password,
	}))
	if err != nil {
		t.Fatalf("Login(%s) failed: %v", username, err)
	}
	return resp.Msg
}

// authed wraps msg in a request carrying token.
func authed[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	return req
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expectCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got success", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected %v, got %v (%v)", want, got, err)
	}
}

func TestLogin(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	owner := env.login(t, "Bashir", "owner-pass")
	if owner.Home != "/dashboard" || owner.User.Role != "owner" {
		t.Errorf("owner: expected /dashboard, got %s (%s)", owner.Home, owner.User.Role)
	}
	employee := env.login(t, "ali", "employee-pass")
	if employee.Home != "/home" {
		t.Errorf("employee: expected /home, got %s", employee.Home)
	}

	_, errWrong := env.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{Username: "ali", Password: "nope-nope"}))
	expectCode(t, errWrong, connect.CodeUnauthenticated)
	_, errUnknown := env.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{Username: "ghost", Password: "nope-nope"}))
	expectCode(t, errUnknown, connect.CodeUnauthenticated)
	var wrong, unknown *connect.Error
	if !errors.As(errWrong, &wrong) || !errors.As(errUnknown, &unknown) {
		t.Fatalf("expected connect errors, got %T and %T", errWrong, errUnknown)
	}
	if wrong.Message() != unknown.Message() {
		t.Errorf("unknown user and wrong password must read the same: %q vs %q", wrong.Message(), unknown.Message())
	}
}

func TestGetCurrentUser(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	resp, err := env.auth.GetCurrentUser(ctx, authed(env.employeeToken, &api.GetCurrentUserRequest{}))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if resp.Msg.User.Username != "ali" || !resp.Msg.User.Salary.Decimal.Equal(dec("30000")) {
		t.Errorf("unexpected user: %+v", resp.Msg.User)
	}

	_, err = env.auth.GetCurrentUser(ctx, authed("", &api.GetCurrentUserRequest{}))
	expectCode(t, err, connect.CodeUnauthenticated)

	_, err = env.companies.ListCompanies(ctx, authed("garbage", &api.ListCompaniesRequest{}))
	expectCode(t, err, connect.CodeUnauthenticated)
}

func TestNavigate(t *testing.T) {
	env := setupTestServer(t)

	tests := []struct {
		name     string
		token    string
		path     string
		decision string
		screen   string
	}{
		{"anonymous protected", "", "/dashboard", "redirect", "/login"},
		{"anonymous login", "", "/login", "allow", "/login"},
		{"anonymous unknown", "", "/nowhere", "redirect", "/login"},
		{"owner root", env.ownerToken, "/", "redirect", "/dashboard"},
		{"owner employee home", env.ownerToken, "/home", "redirect", "/dashboard"},
		{"employee dashboard", env.employeeToken, "/dashboard", "redirect", "/home"},
		{"employee tussle", env.employeeToken, "/tussles/abc", "allow", "/tussles/abc"},
		{"signed in login", env.employeeToken, "/login", "redirect", "/home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := env.navigation.Navigate(context.Background(), authed(tt.token, &api.NavigateRequest{Path: tt.path}))
			if err != nil {
				t.Fatalf("Navigate failed: %v", err)
			}
			if resp.Msg.Decision != tt.decision || resp.Msg.Screen != tt.screen {
				t.Errorf("expected %s to %s, got %s to %s (chain %v)",
					tt.decision, tt.screen, resp.Msg.Decision, resp.Msg.Screen, resp.Msg.Chain)
			}
		})
	}
}

func TestOwnerOnly(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	_, err := env.dashboard.GetDashboard(ctx, authed(env.employeeToken, &api.GetDashboardRequest{}))
	expectCode(t, err, connect.CodePermissionDenied)

	_, err = env.profiles.ListEmployees(ctx, authed(env.employeeToken, &api.ListEmployeesRequest{}))
	expectCode(t, err, connect.CodePermissionDenied)

	_, err = env.profiles.CreateEmployee(ctx, authed(env.employeeToken, &api.CreateEmployeeRequest{
		Username: "sneaky", Password: "123456", FullName: "Sneaky",
	}))
	expectCode(t, err, connect.CodePermissionDenied)
}

func TestCreateEmployee(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	resp, err := env.profiles.CreateEmployee(ctx, authed(env.ownerToken, &api.CreateEmployeeRequest{
		Username: "hamid",
		Password: "123456",
		FullName: "Hamid",
		Salary:   decimal.NewNullDecimal(dec("25000")),
	}))
	if err != nil {
		t.Fatalf("CreateEmployee failed: %v", err)
	}
	if resp.Msg.Employee.Role != "employee" {
		t.Errorf("expected employee role, got %s", resp.Msg.Employee.Role)
	}

	// The new employee can sign in straight away.
	if home := env.login(t, "hamid", "123456").Home; home != "/home" {
		t.Errorf("expected /home, got %s", home)
	}

	list, err := env.profiles.ListEmployees(ctx, authed(env.ownerToken, &api.ListEmployeesRequest{}))
	if err != nil {
		t.Fatalf("ListEmployees failed: %v", err)
	}
	if len(list.Msg.Employees) != 2 || !list.Msg.TotalSalaries.Equal(dec("55000")) {
		t.Errorf("expected 2 employees totaling 55000, got %d totaling %s",
			len(list.Msg.Employees), list.Msg.TotalSalaries)
	}

	t.Run("validation", func(t *testing.T) {
		_, err := env.profiles.CreateEmployee(ctx, authed(env.ownerToken, &api.CreateEmployeeRequest{
			Username: "short", Password: "12345", FullName: "Short",
		}))
		expectCode(t, err, connect.CodeInvalidArgument)

		_, err = env.profiles.CreateEmployee(ctx, authed(env.ownerToken, &api.CreateEmployeeRequest{
			Username: "hamid", Password: "123456", FullName: "Again",
		}))
		expectCode(t, err, connect.CodeAlreadyExists)
	})
}
