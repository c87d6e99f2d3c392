package memory

import (
	"context"
	"testing"

	"github.com/gestaorh/portal-backend-go/internal/domain/employee"
	"github.com/gestaorh/portal-backend-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectory() *Directory {
	return NewDirectory(fixtures.Companies(), fixtures.Admins(), fixtures.Employees())
}

// Login resolution depends on codes being unique across the whole
// directory, not per company.
func TestSeed_EmployeeCodesUnique(t *testing.T) {
	seed := fixtures.Employees()

	seen := make(map[string]string)
	for _, e := range seed {
		prev, dup := seen[e.Code]
		assert.False(t, dup, "code %s shared by %s and %s", e.Code, prev, e.ID)
		seen[e.Code] = e.ID
	}
}

func TestEmployeeRepository_GetByCode(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(newTestDirectory())

	for _, seeded := range fixtures.Employees() {
		emp, err := repo.GetByCode(ctx, seeded.Code)
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, emp.ID)
	}

	_, err := repo.GetByCode(ctx, "9999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_GetByID_ReturnsClone(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(newTestDirectory())

	emp, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	require.NotEmpty(t, emp.Courses)

	// Mutating the returned record must not touch the canonical one.
	emp.FullName = "Someone Else"
	emp.Courses[0].Name = "Changed"

	again, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Carlos Eduardo Silva", again.FullName)
	assert.Equal(t, "Software Architecture", again.Courses[0].Name)
}

func TestEmployeeRepository_Replace(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(newTestDirectory())

	emp, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)

	emp.FullName = "Carlos E. Silva"
	emp.Email = "cadu@techsolutions.com"
	stored, err := repo.Replace(ctx, emp)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Version)

	// Both fields land in one step.
	again, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Carlos E. Silva", again.FullName)
	assert.Equal(t, "cadu@techsolutions.com", again.Email)

	// Other records are untouched.
	other, err := repo.GetByID(ctx, "e2")
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria Oliveira", other.FullName)
	assert.Equal(t, int64(0), other.Version)
}

func TestEmployeeRepository_Replace_UnknownID(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(newTestDirectory())

	_, err := repo.Replace(ctx, employee.Employee{ID: "ghost"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_ListByCompanyID_Order(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(newTestDirectory())

	emps, err := repo.ListByCompanyID(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, emps, 2)
	assert.Equal(t, "e1", emps[0].ID)
	assert.Equal(t, "e2", emps[1].ID)
}

func TestCompanyRepository_ListByIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewCompanyRepository(newTestDirectory())

	companies, err := repo.ListByIDs(ctx, []string{"c2", "c1", "ghost"})
	require.NoError(t, err)
	require.Len(t, companies, 2)
	// Directory order, not request order.
	assert.Equal(t, "c1", companies[0].ID)
	assert.Equal(t, "c2", companies[1].ID)
}

func TestAdminRepository_GetByUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminRepository(newTestDirectory())

	adm, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "a1", adm.ID)
	assert.True(t, adm.Manages("c1"))
	assert.True(t, adm.Manages("c2"))
}
