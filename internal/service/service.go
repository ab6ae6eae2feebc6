// Package service implements the bashir.v1 RPC services on top of the
// record store, the object store and the pure domain packages.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/saadistik/Bashir.inc/internal/auth"
	"github.com/saadistik/Bashir.inc/internal/intake"
	"github.com/saadistik/Bashir.inc/internal/middleware"
	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/objectstore"
	"github.com/saadistik/Bashir.inc/internal/storage"
	"github.com/saadistik/Bashir.inc/pkg/api/apiconnect"
)

var (
	ErrOwnerOnly = errors.New("only the owner can do this")
	ErrNoProfile = middleware.ErrNoProfile
)

// Deps are the collaborators the services run on.
type Deps struct {
	Store         storage.Store
	Authenticator auth.Authenticator
	JWT           *auth.JWTManager
	Objects       *objectstore.Store
	// Metrics is optional.
	Metrics *middleware.Metrics
	// Now is optional and defaults to time.Now.
	Now func() time.Time
}

// Register mounts every service on mux. AuthService and NavigationService
// accept anonymous callers; all others require a signed-in user with a
// profile.
func Register(mux *http.ServeMux, deps Deps) {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	resolver := intake.NewResolver(deps.Store)
	withAuth := func(authn connect.UnaryInterceptorFunc) connect.HandlerOption {
		var interceptors []connect.Interceptor
		if deps.Metrics != nil {
			interceptors = append(interceptors, deps.Metrics.Interceptor())
		}
		interceptors = append(interceptors, authn, middleware.LoggingInterceptor())
		return connect.WithInterceptors(interceptors...)
	}
	public := withAuth(middleware.OptionalAuth(deps.JWT, deps.Store))
	private := withAuth(middleware.RequireAuth(deps.JWT, deps.Store))

	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(deps.Authenticator, deps.JWT, deps.Store), public))
	mux.Handle(apiconnect.NewNavigationServiceHandler(NewNavigationService(), public))
	mux.Handle(apiconnect.NewProfileServiceHandler(NewProfileService(deps.Authenticator, deps.Store), private))
	mux.Handle(apiconnect.NewCompanyServiceHandler(NewCompanyService(deps.Store, resolver), private))
	mux.Handle(apiconnect.NewTussleServiceHandler(NewTussleService(deps.Store, resolver, deps.Objects), private))
	mux.Handle(apiconnect.NewReceiptServiceHandler(NewReceiptService(deps.Store), private))
	mux.Handle(apiconnect.NewWorkerServiceHandler(NewWorkerService(deps.Store), private))
	mux.Handle(apiconnect.NewCalendarServiceHandler(NewCalendarService(deps.Store), private))
	mux.Handle(apiconnect.NewDashboardServiceHandler(NewDashboardService(deps.Store, deps.Now), private))
}

// requireOwner fails with PermissionDenied unless the caller is the owner.
func requireOwner(ctx context.Context) error {
	if !middleware.GetProfile(ctx).IsOwner() {
		return connect.NewError(connect.CodePermissionDenied, ErrOwnerOnly)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}

// storeError maps a store failure to a connect error and logs it.
func storeError(op string, err error) error {
	var code connect.Code
	switch {
	case errors.Is(err, storage.ErrNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, storage.ErrOverAllocated):
		code = connect.CodeInvalidArgument
	case errors.Is(err, storage.ErrUsernameTaken):
		code = connect.CodeAlreadyExists
	case errors.Is(err, context.Canceled):
		code = connect.CodeCanceled
	default:
		code = connect.CodeInternal
	}

	if code == connect.CodeInternal {
		slog.Error(op+" failed", "error", err)
	} else {
		slog.Warn(op+" failed", "code", code, "error", err)
	}
	return connect.NewError(code, err)
}

// required trims s and fails when nothing is left.
func required(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalid("%s is required", field)
	}
	return s, nil
}

// optionalDate accepts "" or a YYYY-MM-DD date.
func optionalDate(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if _, err := time.Parse(models.DateLayout, s); err != nil {
		return "", invalid("%s must be a YYYY-MM-DD date, got %q", field, s)
	}
	return s, nil
}

func nonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return invalid("%s must not be negative", field)
	}
	return nil
}

func positive(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return invalid("%s must be greater than zero", field)
	}
	return nil
}
