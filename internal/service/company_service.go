package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/saadistik/Bashir.inc/internal/calculator"
	"github.com/saadistik/Bashir.inc/internal/intake"
	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/storage"
	"github.com/saadistik/Bashir.inc/pkg/api"
)

// CompanyService implements the CompanyService RPC interface.
type CompanyService struct {
	store    storage.Store
	resolver *intake.Resolver
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(store storage.Store, resolver *intake.Resolver) *CompanyService {
	return &CompanyService{store: store, resolver: resolver}
}

// ListCompanies returns every company with its order count and revenue.
func (s *CompanyService) ListCompanies(ctx context.Context, req *connect.Request[api.ListCompaniesRequest]) (*connect.Response[api.ListCompaniesResponse], error) {
	slog.Info("ListCompanies request received")

	companies, err := s.store.ListCompanies(ctx, true)
	if err != nil {
		return nil, storeError("ListCompanies", err)
	}

	summaries := make([]api.CompanySummary, len(companies))
	for i, c := range companies {
		totals := calculator.CompanyTotals(c)
		summaries[i] = api.CompanySummary{
			Company:    toAPICompany(c),
			OrderCount: totals.TussleCount,
			Revenue:    totals.Revenue,
		}
	}

	slog.Info("ListCompanies successful", "count", len(companies))
	return connect.NewResponse(&api.ListCompaniesResponse{Companies: summaries}), nil
}

// GetCompany returns a company with its tussles and aggregated costs.
func (s *CompanyService) GetCompany(ctx context.Context, req *connect.Request[api.GetCompanyRequest]) (*connect.Response[api.GetCompanyResponse], error) {
	slog.Info("GetCompany request received", "company_id", req.Msg.ID)

	company, err := s.store.GetCompany(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("GetCompany", err)
	}
	tussles, err := s.store.ListTussles(ctx, storage.TussleQuery{
		CompanyID:  company.ID,
		OrderBy:    storage.OrderByCreatedAt,
		Descending: true,
		WithCosts:  true,
	})
	if err != nil {
		return nil, storeError("GetCompany", err)
	}

	return connect.NewResponse(&api.GetCompanyResponse{
		Company: toAPICompany(company),
		Tussles: toAPISummaries(tussles),
		Totals:  toAPICosts(calculator.CompanyCosts(tussles)),
		Tally:   toAPITally(calculator.Tally(tussles)),
	}), nil
}

// CreateCompany adds a company by name.
func (s *CompanyService) CreateCompany(ctx context.Context, req *connect.Request[api.CreateCompanyRequest]) (*connect.Response[api.CreateCompanyResponse], error) {
	slog.Info("CreateCompany request received", "name", req.Msg.Name)

	name, err := required("company name", req.Msg.Name)
	if err != nil {
		return nil, err
	}

	company := &models.Company{Name: name, LogoURL: req.Msg.LogoURL}
	if err := s.store.CreateCompany(ctx, company); err != nil {
		return nil, storeError("CreateCompany", err)
	}

	slog.Info("Company created", "company_id", company.ID)
	return connect.NewResponse(&api.CreateCompanyResponse{Company: toAPICompany(company)}), nil
}

// ResolveClient finds the company matching a typed client name, creating it
// when nothing matches.
func (s *CompanyService) ResolveClient(ctx context.Context, req *connect.Request[api.ResolveClientRequest]) (*connect.Response[api.ResolveClientResponse], error) {
	slog.Info("ResolveClient request received", "name", req.Msg.Name)

	res, err := resolveClient(ctx, s.resolver, req.Msg.Name)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.ResolveClientResponse{
		Company: toAPICompany(res.Company),
		Created: res.Created,
	}), nil
}

func resolveClient(ctx context.Context, resolver *intake.Resolver, name string) (*intake.Resolution, error) {
	res, err := resolver.Resolve(ctx, name)
	if errors.Is(err, intake.ErrEmptyName) {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if err != nil {
		return nil, storeError("ResolveClient", err)
	}
	return res, nil
}
