package intake

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/storage/sqlite"
)

type fakeStore struct {
	companies []*models.Company
	creates   int
	searchErr error
	createErr error
}

func (f *fakeStore) SearchCompanies(_ context.Context, term string, limit int) ([]*models.Company, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	var out []*models.Company
	for _, c := range f.companies {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(term)) {
			out = append(out, c)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStore) CreateCompany(_ context.Context, c *models.Company) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.creates++
	c.ID = fmt.Sprintf("c%d", len(f.companies)+1)
	f.companies = append(f.companies, c)
	return nil
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		existing    []string
		input       string
		wantName    string
		wantCreated bool
		wantCreates int
	}{
		{
			name:        "case-insensitive substring match",
			existing:    []string{"ACME Corp"},
			input:       "Acme",
			wantName:    "ACME Corp",
			wantCreated: false,
		},
		{
			name:        "first match wins",
			existing:    []string{"Steel Works North", "Steel Works South"},
			input:       "steel works",
			wantName:    "Steel Works North",
			wantCreated: false,
		},
		{
			name:        "no match creates company with literal name",
			existing:    []string{"ACME Corp"},
			input:       "Brand New Co",
			wantName:    "Brand New Co",
			wantCreated: true,
			wantCreates: 1,
		},
		{
			name:        "surrounding whitespace trimmed, inner kept",
			input:       "  Brand  New Co \t",
			wantName:    "Brand  New Co",
			wantCreated: true,
			wantCreates: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			for i, n := range tt.existing {
				store.companies = append(store.companies, &models.Company{ID: fmt.Sprintf("e%d", i), Name: n})
			}

			res, err := NewResolver(store).Resolve(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if res.Company == nil || res.Company.ID == "" {
				t.Fatal("expected a company with an ID")
			}
			if res.Company.Name != tt.wantName {
				t.Errorf("name = %q, want %q", res.Company.Name, tt.wantName)
			}
			if res.Created != tt.wantCreated {
				t.Errorf("created = %v, want %v", res.Created, tt.wantCreated)
			}
			if store.creates != tt.wantCreates {
				t.Errorf("creates = %d, want %d", store.creates, tt.wantCreates)
			}
		})
	}
}

func TestResolve_EmptyName(t *testing.T) {
	store := &fakeStore{}
	_, err := NewResolver(store).Resolve(context.Background(), "   ")
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
	if store.creates != 0 {
		t.Errorf("creates = %d, want 0", store.creates)
	}
}

func TestResolve_StoreFailureAborts(t *testing.T) {
	boom := errors.New("connection reset")

	store := &fakeStore{searchErr: boom}
	if _, err := NewResolver(store).Resolve(context.Background(), "Acme"); !errors.Is(err, boom) {
		t.Errorf("search failure: got %v", err)
	}
	if store.creates != 0 {
		t.Error("company created after failed search")
	}

	store = &fakeStore{createErr: boom}
	if _, err := NewResolver(store).Resolve(context.Background(), "Acme"); !errors.Is(err, boom) {
		t.Errorf("create failure: got %v", err)
	}
}

func TestResolve_NonASCIIAgainstSQLite(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "intake.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	existing := &models.Company{Name: "ÖZTÜRK Tekstil"}
	if err := store.CreateCompany(ctx, existing); err != nil {
		t.Fatalf("CreateCompany failed: %v", err)
	}

	r := NewResolver(store)
	for _, input := range []string{"öztürk", "  Öztürk tekstil "} {
		res, err := r.Resolve(ctx, input)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", input, err)
		}
		if res.Created || res.Company.ID != existing.ID {
			t.Errorf("Resolve(%q): expected existing company, got %+v (created=%v)", input, res.Company, res.Created)
		}
	}

	all, err := store.ListCompanies(ctx, false)
	if err != nil {
		t.Fatalf("ListCompanies failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected no duplicate company, got %d companies", len(all))
	}
}
