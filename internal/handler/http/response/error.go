package response

import (
	"errors"
	"net/http"

	"github.com/gestaorh/portal-backend-go/internal/domain/admin"
	"github.com/gestaorh/portal-backend-go/internal/domain/auth"
	"github.com/gestaorh/portal-backend-go/internal/domain/company"
	"github.com/gestaorh/portal-backend-go/internal/domain/employee"
	"github.com/gestaorh/portal-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "Insufficient permissions")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "Unauthorized to access this employee")
	case errors.Is(err, employee.ErrCommitNotAllowed):
		Forbidden(w, "Profile commit requires edit permission")
	case errors.Is(err, employee.ErrNoDraft):
		Conflict(w, "No draft selected for this employee")
	case errors.Is(err, employee.ErrVersionConflict):
		Conflict(w, "Employee record changed since the draft was taken")

	// Directory lookups
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, admin.ErrAdminNotFound):
		NotFound(w, "Admin not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
