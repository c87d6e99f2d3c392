// Package memory implements the repositories over a single in-process
// directory seeded once at startup. There is no persistence: a restart
// resets everything to the seed set.
package memory

import (
	"sync"

	"github.com/gestaorh/portal-backend-go/internal/domain/admin"
	"github.com/gestaorh/portal-backend-go/internal/domain/company"
	"github.com/gestaorh/portal-backend-go/internal/domain/employee"
)

// Directory owns the seeded collections. All repository access goes
// through its lock; employees are the only mutable collection.
type Directory struct {
	mu        sync.RWMutex
	companies []company.Company
	admins    []admin.Admin
	employees []employee.Employee
}

func NewDirectory(companies []company.Company, admins []admin.Admin, employees []employee.Employee) *Directory {
	d := &Directory{
		companies: append([]company.Company(nil), companies...),
		admins:    append([]admin.Admin(nil), admins...),
	}
	d.employees = make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		d.employees = append(d.employees, e.Clone())
	}
	return d
}
