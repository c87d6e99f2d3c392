package memory

import (
	"context"

	"github.com/gestaorh/portal-backend-go/internal/domain/company"
)

type CompanyRepository struct {
	dir *Directory
}

func NewCompanyRepository(dir *Directory) company.CompanyRepository {
	return &CompanyRepository{dir: dir}
}

// GetByID implements company.CompanyRepository.
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	r.dir.mu.RLock()
	defer r.dir.mu.RUnlock()

	for _, c := range r.dir.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return company.Company{}, company.ErrCompanyNotFound
}

// ListByIDs implements company.CompanyRepository.
func (r *CompanyRepository) ListByIDs(ctx context.Context, ids []string) ([]company.Company, error) {
	r.dir.mu.RLock()
	defer r.dir.mu.RUnlock()

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	result := make([]company.Company, 0, len(ids))
	for _, c := range r.dir.companies {
		if _, ok := wanted[c.ID]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}
