package roster

import (
	"context"
	"testing"

	"github.com/gestaorh/portal-backend-go/internal/domain/auth"
	"github.com/gestaorh/portal-backend-go/internal/domain/employee"
	"github.com/gestaorh/portal-backend-go/internal/domain/roster"
	"github.com/gestaorh/portal-backend-go/internal/fixtures"
	"github.com/gestaorh/portal-backend-go/internal/repository/memory"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func newTestService() roster.RosterService {
	dir := memory.NewDirectory(fixtures.Companies(), fixtures.Admins(), fixtures.Employees())
	return NewRosterService(
		memory.NewEmployeeRepository(dir),
		memory.NewCompanyRepository(dir),
		memory.NewAdminRepository(dir),
	)
}

func authedContext(t *testing.T, subjectID string, role auth.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte(testSecret), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"sub":  subjectID,
		"role": string(role),
		"type": "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// ===== PURE FILTER =====

func rosterEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID: "r1", Code: "1001", FullName: "Carlos Eduardo Silva",
			BirthDate: "1990-05-15", BirthState: "SP", BirthCity: "São Paulo",
			MainEducation: []employee.MainEducation{{Degree: employee.EducationLevelBachelor}},
		},
		{
			ID: "r2", Code: "1002", FullName: "Ana Maria Oliveira",
			BirthDate: "1995-10-20", BirthState: "RJ", BirthCity: "Rio de Janeiro",
			MainEducation: []employee.MainEducation{
				{Degree: employee.EducationLevelSecondary},
				{Degree: employee.EducationLevelBachelor},
			},
		},
		{
			ID: "r3", Code: "1003", FullName: "Mariana Costa",
			BirthDate: "1992-01-05", BirthState: "SP", BirthCity: "Campinas",
		},
	}
}

func ids(emps []employee.Employee) []string {
	result := make([]string, 0, len(emps))
	for _, e := range emps {
		result = append(result, e.ID)
	}
	return result
}

func TestFilter_EmptyQueryPassesThrough(t *testing.T) {
	emps := rosterEmployees()
	got := Filter(emps, roster.Query{})
	assert.Equal(t, []string{"r1", "r2", "r3"}, ids(got))
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	got := Filter(rosterEmployees(), roster.Query{FullName: "ANA"})
	// "Ana Maria" and "Mariana" both contain "ana"; order preserved.
	assert.Equal(t, []string{"r2", "r3"}, ids(got))
}

func TestFilter_ANDAcrossColumns(t *testing.T) {
	got := Filter(rosterEmployees(), roster.Query{FullName: "ana", BirthState: "sp"})
	assert.Equal(t, []string{"r3"}, ids(got))
}

// The education column reads only the first entry, not every degree
// held.
func TestFilter_EducationLevelFirstEntryOnly(t *testing.T) {
	got := Filter(rosterEmployees(), roster.Query{EducationLevel: "bachelor"})
	assert.Equal(t, []string{"r1"}, ids(got))

	// No entries at all means an empty comparand: matches only empty
	// terms.
	got = Filter(rosterEmployees(), roster.Query{EducationLevel: "primary"})
	assert.Empty(t, ids(got))
}

func TestFilter_CodeColumn(t *testing.T) {
	got := Filter(rosterEmployees(), roster.Query{Code: "100"})
	assert.Len(t, got, 3)

	got = Filter(rosterEmployees(), roster.Query{Code: "1002"})
	assert.Equal(t, []string{"r2"}, ids(got))
}

// ===== SERVICE =====

func TestListEmployees_CompanyScoped(t *testing.T) {
	svc := newTestService()
	ctx := authedContext(t, "a1", auth.RoleAdmin)

	entries, err := svc.ListEmployees(ctx, "c1", roster.Query{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "e1", entries[0].ID)
	assert.Equal(t, "e2", entries[1].ID)
	assert.Equal(t, string(employee.EducationLevelBachelor), entries[0].EducationLevel)
}

func TestListEmployees_FilterByName(t *testing.T) {
	svc := newTestService()
	ctx := authedContext(t, "a1", auth.RoleAdmin)

	entries, err := svc.ListEmployees(ctx, "c1", roster.Query{FullName: "ana"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ana Maria Oliveira", entries[0].FullName)

	// Same term against the other company yields nothing: scoping comes
	// first.
	entries, err = svc.ListEmployees(ctx, "c2", roster.Query{FullName: "ana"})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListEmployees_RequiresAdmin(t *testing.T) {
	svc := newTestService()

	_, err := svc.ListEmployees(authedContext(t, "e1", auth.RoleEmployee), "c1", roster.Query{})
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestListEmployees_UnmanagedCompany(t *testing.T) {
	dir := memory.NewDirectory(
		fixtures.Companies(),
		fixtures.Admins(),
		fixtures.Employees(),
	)
	svc := NewRosterService(
		memory.NewEmployeeRepository(dir),
		memory.NewCompanyRepository(dir),
		memory.NewAdminRepository(dir),
	)
	ctx := authedContext(t, "a1", auth.RoleAdmin)

	_, err := svc.ListEmployees(ctx, "c999", roster.Query{})
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestListManagedCompanies(t *testing.T) {
	svc := newTestService()
	ctx := authedContext(t, "a1", auth.RoleAdmin)

	companies, err := svc.ListManagedCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "Empresa 1 Ltda", companies[0].Name)
	assert.Equal(t, "98.765.432/0001-10", companies[1].CNPJ)
}

func TestListManagedCompanies_RequiresAdmin(t *testing.T) {
	svc := newTestService()

	_, err := svc.ListManagedCompanies(authedContext(t, "e1", auth.RoleEmployee))
	assert.ErrorIs(t, err, auth.ErrForbidden)
}
