package memory

import (
	"context"

	"github.com/gestaorh/portal-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	dir *Directory
}

func NewEmployeeRepository(dir *Directory) employee.EmployeeRepository {
	return &EmployeeRepository{dir: dir}
}

// GetByID implements employee.EmployeeRepository.
func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.dir.mu.RLock()
	defer r.dir.mu.RUnlock()

	for _, e := range r.dir.employees {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// GetByCode implements employee.EmployeeRepository. Codes are unique
// across the whole directory, not per company.
func (r *EmployeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	r.dir.mu.RLock()
	defer r.dir.mu.RUnlock()

	for _, e := range r.dir.employees {
		if e.Code == code {
			return e.Clone(), nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// ListByCompanyID implements employee.EmployeeRepository, preserving
// seed insertion order.
func (r *EmployeeRepository) ListByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	r.dir.mu.RLock()
	defer r.dir.mu.RUnlock()

	result := make([]employee.Employee, 0)
	for _, e := range r.dir.employees {
		if e.CompanyID == companyID {
			result = append(result, e.Clone())
		}
	}
	return result, nil
}

// Replace implements employee.EmployeeRepository. The whole record is
// swapped in one step; the stored version stamp always increments past
// whatever the caller held.
func (r *EmployeeRepository) Replace(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.dir.mu.Lock()
	defer r.dir.mu.Unlock()

	for i, e := range r.dir.employees {
		if e.ID == emp.ID {
			stored := emp.Clone()
			stored.Version = e.Version + 1
			r.dir.employees[i] = stored
			return stored.Clone(), nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
