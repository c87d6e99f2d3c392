package roster

import (
	"context"

	"github.com/gestaorh/portal-backend-go/internal/domain/company"
)

// RosterService is the admin browsing surface: companies the caller
// manages and filtered employee rosters within one of them.
type RosterService interface {
	ListManagedCompanies(ctx context.Context) ([]company.CompanyResponse, error)
	ListEmployees(ctx context.Context, companyID string, q Query) ([]Entry, error)
}
