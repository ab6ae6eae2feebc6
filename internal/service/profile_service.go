package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/saadistik/Bashir.inc/internal/auth"
	"github.com/saadistik/Bashir.inc/internal/calculator"
	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/storage"
	"github.com/saadistik/Bashir.inc/pkg/api"
)

// ProfileService implements the ProfileService RPC interface. Every call is
// owner only.
type ProfileService struct {
	authenticator auth.Authenticator
	store         storage.Store
}

// NewProfileService creates a new ProfileService.
func NewProfileService(authenticator auth.Authenticator, store storage.Store) *ProfileService {
	return &ProfileService{authenticator: authenticator, store: store}
}

// ListEmployees returns employee profiles and their salary total.
func (s *ProfileService) ListEmployees(ctx context.Context, req *connect.Request[api.ListEmployeesRequest]) (*connect.Response[api.ListEmployeesResponse], error) {
	slog.Info("ListEmployees request received")
	if err := requireOwner(ctx); err != nil {
		return nil, err
	}

	profiles, err := s.store.ListProfiles(ctx, models.RoleEmployee)
	if err != nil {
		return nil, storeError("ListEmployees", err)
	}

	employees := make([]api.User, len(profiles))
	for i := range profiles {
		employees[i] = toAPIUser(&profiles[i])
	}
	return connect.NewResponse(&api.ListEmployeesResponse{
		Employees:     employees,
		TotalSalaries: calculator.EmployeeSalaries(profiles),
	}), nil
}

// CreateEmployee opens a login for a new employee.
func (s *ProfileService) CreateEmployee(ctx context.Context, req *connect.Request[api.CreateEmployeeRequest]) (*connect.Response[api.CreateEmployeeResponse], error) {
	slog.Info("CreateEmployee request received", "username", req.Msg.Username)
	if err := requireOwner(ctx); err != nil {
		return nil, err
	}

	fullName, err := required("full name", req.Msg.FullName)
	if err != nil {
		return nil, err
	}
	if req.Msg.Salary.Valid {
		if err := nonNegative("salary", req.Msg.Salary.Decimal); err != nil {
			return nil, err
		}
	}

	profile, err := s.authenticator.Register(ctx, auth.Account{
		Username: req.Msg.Username,
		Password: req.Msg.Password,
		FullName: fullName,
		Role:     models.RoleEmployee,
		Salary:   req.Msg.Salary,
		IDCard:   req.Msg.IDCard,
	})
	switch {
	case errors.Is(err, auth.ErrUsernameExists):
		return nil, connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrInvalidUsername), errors.Is(err, auth.ErrInvalidRole):
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	case err != nil:
		return nil, storeError("CreateEmployee", err)
	}

	slog.Info("Employee created", "user_id", profile.ID, "username", profile.Username)
	return connect.NewResponse(&api.CreateEmployeeResponse{
		Employee: toAPIUser(profile),
	}), nil
}
