// Package intake turns the client name typed when a new order is started into
// exactly one company, creating the company when nothing matches.
package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/saadistik/Bashir.inc/internal/models"
)

// ErrEmptyName is returned when the client name is blank after trimming.
var ErrEmptyName = errors.New("client name is required")

// CompanyStore is the part of the record store the resolver needs.
type CompanyStore interface {
	// SearchCompanies returns companies whose name contains term,
	// case-insensitively, in store order, at most limit of them.
	SearchCompanies(ctx context.Context, term string, limit int) ([]*models.Company, error)
	CreateCompany(ctx context.Context, company *models.Company) error
}

// Resolution is the company an order will be created for.
type Resolution struct {
	Company *models.Company

	// Created is true when no company matched and a new one was inserted.
	Created bool
}

// Resolver looks up or creates the company for a new order.
type Resolver struct {
	store CompanyStore
}

// NewResolver creates a Resolver backed by store.
func NewResolver(store CompanyStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve matches name against existing companies and takes the first hit.
// With no hit it creates a company named name (trimmed, otherwise verbatim).
// Store failures abort the call; nothing is retried.
func (r *Resolver) Resolve(ctx context.Context, name string) (*Resolution, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	matches, err := r.store.SearchCompanies(ctx, name, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to search companies: %w", err)
	}
	if len(matches) > 0 {
		slog.Debug("Client name matched existing company", "name", name, "company_id", matches[0].ID)
		return &Resolution{Company: matches[0]}, nil
	}

	company := &models.Company{Name: name}
	if err := r.store.CreateCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	slog.Info("Created company for new client", "name", name, "company_id", company.ID)

	return &Resolution{Company: company, Created: true}, nil
}
