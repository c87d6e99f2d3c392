package auth

import (
	"github.com/gestaorh/portal-backend-go/internal/domain/employee"
	"github.com/gestaorh/portal-backend-go/internal/pkg/validator"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

type LoginEmployeeRequest struct {
	Code     string `json:"code"`
	Password string `json:"password"`
}

func (r *LoginEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginAdminRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdminResponse struct {
	ID               string   `json:"id"`
	Username         string   `json:"username"`
	ManagedCompanies []string `json:"managed_companies"`
}

// SessionResponse is the role-tagged session handed back on login.
// Exactly one of Employee/Admin is set, matching Role.
type SessionResponse struct {
	Role        Role                       `json:"role"`
	Employee    *employee.EmployeeResponse `json:"employee,omitempty"`
	Admin       *AdminResponse             `json:"admin,omitempty"`
	AccessToken string                     `json:"access_token"`
	ExpiresAt   int64                      `json:"expires_at"`
}
