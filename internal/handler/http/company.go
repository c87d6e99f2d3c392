package http

import (
	"net/http"

	"github.com/gestaorh/portal-backend-go/internal/domain/roster"
	"github.com/gestaorh/portal-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CompanyHandler interface {
	ListManaged(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	rosterService roster.RosterService
}

func NewCompanyHandler(rosterService roster.RosterService) CompanyHandler {
	return &companyHandlerImpl{rosterService: rosterService}
}

// ListManaged implements CompanyHandler - the companies the logged-in
// admin may browse.
func (h *companyHandlerImpl) ListManaged(w http.ResponseWriter, r *http.Request) {
	companies, err := h.rosterService.ListManagedCompanies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, companies)
}

// ListEmployees implements CompanyHandler - the filtered roster of one
// company. Filter terms come from query params; absent params impose no
// constraint.
func (h *companyHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		response.BadRequest(w, "Company ID is required", nil)
		return
	}

	query := roster.Query{
		Code:           r.URL.Query().Get("code"),
		FullName:       r.URL.Query().Get("full_name"),
		BirthDate:      r.URL.Query().Get("birth_date"),
		BirthState:     r.URL.Query().Get("birth_state"),
		BirthCity:      r.URL.Query().Get("birth_city"),
		EducationLevel: r.URL.Query().Get("education_level"),
	}

	entries, err := h.rosterService.ListEmployees(r.Context(), companyID, query)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}
