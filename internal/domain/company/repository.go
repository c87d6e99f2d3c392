package company

import "context"

type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (Company, error)
	// ListByIDs returns the matching companies in directory order,
	// skipping unknown ids.
	ListByIDs(ctx context.Context, ids []string) ([]Company, error)
}
