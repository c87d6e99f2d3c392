package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	// Replace swaps the whole canonical record keyed by its ID and bumps
	// the version stamp. Returns the stored record.
	Replace(ctx context.Context, emp Employee) (Employee, error)
}
