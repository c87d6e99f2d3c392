package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gestaorh/portal-backend-go/internal/domain/employee"
	"github.com/gestaorh/portal-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	GetEmployee(w http.ResponseWriter, r *http.Request)
	SelectDraft(w http.ResponseWriter, r *http.Request)
	GetDraft(w http.ResponseWriter, r *http.Request)
	SetField(w http.ResponseWriter, r *http.Request)
	CommitDraft(w http.ResponseWriter, r *http.Request)
	AddCourse(w http.ResponseWriter, r *http.Request)
	RemoveCourse(w http.ResponseWriter, r *http.Request)
	AddExperience(w http.ResponseWriter, r *http.Request)
	RemoveExperience(w http.ResponseWriter, r *http.Request)
	AddMainEducation(w http.ResponseWriter, r *http.Request)
	RemoveMainEducation(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	profileService employee.ProfileService
}

func NewEmployeeHandler(profileService employee.ProfileService) EmployeeHandler {
	return &employeeHandlerImpl{profileService: profileService}
}

func employeeID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := employeeID(r)
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.profileService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// SelectDraft implements EmployeeHandler - starts or resets the working
// copy for this employee.
func (h *employeeHandlerImpl) SelectDraft(w http.ResponseWriter, r *http.Request) {
	result, err := h.profileService.SelectDraft(r.Context(), employeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Draft selected", result)
}

// GetDraft implements EmployeeHandler
func (h *employeeHandlerImpl) GetDraft(w http.ResponseWriter, r *http.Request) {
	result, err := h.profileService.GetDraft(r.Context(), employeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// SetField implements EmployeeHandler
func (h *employeeHandlerImpl) SetField(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetField decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.profileService.SetField(r.Context(), employeeID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// CommitDraft implements EmployeeHandler
func (h *employeeHandlerImpl) CommitDraft(w http.ResponseWriter, r *http.Request) {
	result, err := h.profileService.CommitDraft(r.Context(), employeeID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Profile updated successfully", result)
}

// AddCourse implements EmployeeHandler
func (h *employeeHandlerImpl) AddCourse(w http.ResponseWriter, r *http.Request) {
	var req employee.AddCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddCourse decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.profileService.AddCourse(r.Context(), employeeID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Course added successfully", result)
}

// RemoveCourse implements EmployeeHandler
func (h *employeeHandlerImpl) RemoveCourse(w http.ResponseWriter, r *http.Request) {
	result, err := h.profileService.RemoveCourse(r.Context(), employeeID(r), chi.URLParam(r, "courseID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// AddExperience implements EmployeeHandler
func (h *employeeHandlerImpl) AddExperience(w http.ResponseWriter, r *http.Request) {
	var req employee.AddExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddExperience decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.profileService.AddExperience(r.Context(), employeeID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Experience added successfully", result)
}

// RemoveExperience implements EmployeeHandler
func (h *employeeHandlerImpl) RemoveExperience(w http.ResponseWriter, r *http.Request) {
	result, err := h.profileService.RemoveExperience(r.Context(), employeeID(r), chi.URLParam(r, "experienceID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// AddMainEducation implements EmployeeHandler
func (h *employeeHandlerImpl) AddMainEducation(w http.ResponseWriter, r *http.Request) {
	var req employee.AddMainEducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddMainEducation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.profileService.AddMainEducation(r.Context(), employeeID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Education added successfully", result)
}

// RemoveMainEducation implements EmployeeHandler
func (h *employeeHandlerImpl) RemoveMainEducation(w http.ResponseWriter, r *http.Request) {
	result, err := h.profileService.RemoveMainEducation(r.Context(), employeeID(r), chi.URLParam(r, "educationID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
