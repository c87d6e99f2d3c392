package roster

import (
	"context"
	"fmt"
	"strings"

	"github.com/gestaorh/portal-backend-go/internal/domain/admin"
	"github.com/gestaorh/portal-backend-go/internal/domain/auth"
	"github.com/gestaorh/portal-backend-go/internal/domain/company"
	"github.com/gestaorh/portal-backend-go/internal/domain/employee"
	"github.com/gestaorh/portal-backend-go/internal/domain/roster"
	"github.com/go-chi/jwtauth/v5"
)

type RosterServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	companyRepo  company.CompanyRepository
	adminRepo    admin.AdminRepository
}

func NewRosterService(employeeRepo employee.EmployeeRepository, companyRepo company.CompanyRepository, adminRepo admin.AdminRepository) roster.RosterService {
	return &RosterServiceImpl{
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		adminRepo:    adminRepo,
	}
}

func (s *RosterServiceImpl) callerAdmin(ctx context.Context) (admin.Admin, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return admin.Admin{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	role, _ := claims["role"].(string)
	if auth.Role(role) != auth.RoleAdmin {
		return admin.Admin{}, auth.ErrForbidden
	}
	subjectID, ok := claims["sub"].(string)
	if !ok || subjectID == "" {
		return admin.Admin{}, fmt.Errorf("sub claim is missing or invalid")
	}

	adm, err := s.adminRepo.GetByID(ctx, subjectID)
	if err != nil {
		return admin.Admin{}, auth.ErrForbidden
	}
	return adm, nil
}

// ListManagedCompanies implements roster.RosterService.
func (s *RosterServiceImpl) ListManagedCompanies(ctx context.Context) ([]company.CompanyResponse, error) {
	adm, err := s.callerAdmin(ctx)
	if err != nil {
		return nil, err
	}

	companies, err := s.companyRepo.ListByIDs(ctx, adm.ManagedCompanies)
	if err != nil {
		return nil, err
	}

	result := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		result = append(result, company.ToResponse(c))
	}
	return result, nil
}

// ListEmployees implements roster.RosterService. Employees are first
// restricted to the selected company, then matched against the query.
func (s *RosterServiceImpl) ListEmployees(ctx context.Context, companyID string, q roster.Query) ([]roster.Entry, error) {
	adm, err := s.callerAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if !adm.Manages(companyID) {
		return nil, auth.ErrForbidden
	}
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	matched := Filter(employees, q)
	entries := make([]roster.Entry, 0, len(matched))
	for _, emp := range matched {
		entries = append(entries, roster.Entry{
			ID:             emp.ID,
			Code:           emp.Code,
			FullName:       emp.FullName,
			BirthDate:      emp.BirthDate,
			BirthState:     emp.BirthState,
			BirthCity:      emp.BirthCity,
			EducationLevel: primaryDegree(emp),
		})
	}
	return entries, nil
}

// Filter returns the employees matching every non-empty term of q as a
// case-insensitive substring, preserving input order. Pure function.
func Filter(employees []employee.Employee, q roster.Query) []employee.Employee {
	if q.IsZero() {
		return employees
	}

	matched := make([]employee.Employee, 0, len(employees))
	for _, emp := range employees {
		if matches(emp, q) {
			matched = append(matched, emp)
		}
	}
	return matched
}

func matches(emp employee.Employee, q roster.Query) bool {
	return containsTerm(emp.Code, q.Code) &&
		containsTerm(emp.FullName, q.FullName) &&
		containsTerm(emp.BirthDate, q.BirthDate) &&
		containsTerm(emp.BirthState, q.BirthState) &&
		containsTerm(emp.BirthCity, q.BirthCity) &&
		containsTerm(primaryDegree(emp), q.EducationLevel)
}

func containsTerm(value, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

// primaryDegree is the derived filterable column: the degree of the
// first main-education entry only, not a search over all of them.
func primaryDegree(emp employee.Employee) string {
	if len(emp.MainEducation) == 0 {
		return ""
	}
	return string(emp.MainEducation[0].Degree)
}
