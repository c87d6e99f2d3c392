package admin

type Admin struct {
	ID               string
	Username         string
	Password         string
	ManagedCompanies []string
}

// Manages reports whether the admin may browse the given company.
func (a Admin) Manages(companyID string) bool {
	for _, id := range a.ManagedCompanies {
		if id == companyID {
			return true
		}
	}
	return false
}
