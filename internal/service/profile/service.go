package profile

import (
	"context"
	"strconv"
	"sync"

	"github.com/gestaorh/portal-backend-go/internal/domain/admin"
	"github.com/gestaorh/portal-backend-go/internal/domain/auth"
	"github.com/gestaorh/portal-backend-go/internal/domain/employee"
	"github.com/gestaorh/portal-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

// draft is a working copy of one employee plus the canonical version it
// was taken from.
type draft struct {
	emp         employee.Employee
	baseVersion int64
}

type ProfileServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	adminRepo    admin.AdminRepository

	// One draft per authenticated subject; selecting another employee
	// discards the previous one.
	mu     sync.Mutex
	drafts map[string]*draft
}

func NewProfileService(employeeRepo employee.EmployeeRepository, adminRepo admin.AdminRepository) employee.ProfileService {
	return &ProfileServiceImpl{
		employeeRepo: employeeRepo,
		adminRepo:    adminRepo,
		drafts:       make(map[string]*draft),
	}
}

// capabilities resolves what the caller may do with the target record.
// Employees reach only their own record and cannot commit personal-info
// drafts, yet may edit their nested collections; admins get both for
// every employee of a company they manage.
type capabilities struct {
	subjectID          string
	canEditProfile     bool
	canEditCollections bool
}

func (s *ProfileServiceImpl) authorize(ctx context.Context, target employee.Employee) (capabilities, error) {
	caller, err := callerFromContext(ctx)
	if err != nil {
		return capabilities{}, err
	}

	switch caller.role {
	case auth.RoleEmployee:
		if caller.subjectID != target.ID {
			return capabilities{}, employee.ErrUnauthorized
		}
		return capabilities{
			subjectID:          caller.subjectID,
			canEditProfile:     false,
			canEditCollections: true,
		}, nil
	case auth.RoleAdmin:
		adm, err := s.adminRepo.GetByID(ctx, caller.subjectID)
		if err != nil {
			return capabilities{}, employee.ErrUnauthorized
		}
		if !adm.Manages(target.CompanyID) {
			return capabilities{}, employee.ErrUnauthorized
		}
		return capabilities{
			subjectID:          caller.subjectID,
			canEditProfile:     true,
			canEditCollections: true,
		}, nil
	default:
		return capabilities{}, employee.ErrUnauthorized
	}
}

// GetEmployee implements employee.ProfileService.
func (s *ProfileServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if _, err := s.authorize(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// SelectDraft implements employee.ProfileService. The draft is always
// rebuilt from the canonical record, so unsaved edits from a previous
// selection never leak into the new one.
func (s *ProfileServiceImpl) SelectDraft(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	caps, err := s.authorize(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.mu.Lock()
	s.drafts[caps.subjectID] = &draft{emp: emp.Clone(), baseVersion: emp.Version}
	s.mu.Unlock()

	return employee.ToResponse(emp), nil
}

// GetDraft implements employee.ProfileService.
func (s *ProfileServiceImpl) GetDraft(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	caps, err := s.authorize(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[caps.subjectID]
	if !ok || d.emp.ID != id {
		return employee.EmployeeResponse{}, employee.ErrNoDraft
	}
	return employee.ToResponse(d.emp), nil
}

// SetField implements employee.ProfileService. Mutates the draft only;
// values are accepted as-is apart from type coercion.
func (s *ProfileServiceImpl) SetField(ctx context.Context, id string, req employee.UpdateFieldRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	caps, err := s.authorize(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[caps.subjectID]
	if !ok || d.emp.ID != id {
		return employee.EmployeeResponse{}, employee.ErrNoDraft
	}

	if err := applyField(&d.emp, req.Field, req.Value); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(d.emp), nil
}

// applyField dispatches over the fixed personal-info field set. The
// column set is small and closed, so no reflection.
func applyField(emp *employee.Employee, field, value string) error {
	switch field {
	case "full_name":
		emp.FullName = value
	case "social_name":
		emp.SocialName = value
	case "nickname":
		emp.Nickname = value
	case "gender":
		emp.Gender = value
	case "is_smoker":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return validator.ValidationErrors{{
				Field:   "is_smoker",
				Message: "is_smoker must be a boolean value",
			}}
		}
		emp.IsSmoker = b
	case "race":
		emp.Race = value
	case "blood_type":
		emp.BloodType = value
	case "email":
		emp.Email = value
	case "birth_date":
		emp.BirthDate = value
	case "birth_state":
		emp.BirthState = value
	case "birth_city":
		emp.BirthCity = value
	case "nationality":
		emp.Nationality = value
	case "civil_status":
		emp.CivilStatus = employee.CivilStatus(value)
	case "qualification_summary":
		emp.QualificationSummary = value
	default:
		return validator.ValidationErrors{{
			Field:   "field",
			Message: "unknown field: " + field,
		}}
	}
	return nil
}

// CommitDraft implements employee.ProfileService. Whole-record replace,
// gated on the profile-edit capability and on the canonical record not
// having moved since the draft was taken.
func (s *ProfileServiceImpl) CommitDraft(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	caps, err := s.authorize(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !caps.canEditProfile {
		return employee.EmployeeResponse{}, employee.ErrCommitNotAllowed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[caps.subjectID]
	if !ok || d.emp.ID != id {
		return employee.EmployeeResponse{}, employee.ErrNoDraft
	}
	if emp.Version != d.baseVersion {
		return employee.EmployeeResponse{}, employee.ErrVersionConflict
	}

	stored, err := s.employeeRepo.Replace(ctx, d.emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	d.emp = stored.Clone()
	d.baseVersion = stored.Version
	return employee.ToResponse(stored), nil
}

// mutateCollections loads the canonical record, applies fn to a copy and
// replaces the record in one step. Used by every collection operation.
func (s *ProfileServiceImpl) mutateCollections(ctx context.Context, id string, fn func(*employee.Employee) error) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	caps, err := s.authorize(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !caps.canEditCollections {
		return employee.EmployeeResponse{}, employee.ErrUnauthorized
	}

	updated := emp.Clone()
	if err := fn(&updated); err != nil {
		return employee.EmployeeResponse{}, err
	}

	stored, err := s.employeeRepo.Replace(ctx, updated)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(stored), nil
}

// AddCourse implements employee.ProfileService.
func (s *ProfileServiceImpl) AddCourse(ctx context.Context, id string, req employee.AddCourseRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.mutateCollections(ctx, id, func(emp *employee.Employee) error {
		status := employee.CourseStatus(req.Status)
		if status == "" {
			status = employee.CourseStatusInProgress
		}
		emp.Courses = append(emp.Courses, employee.Course{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Institution: req.Institution,
			Status:      status,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Notes:       req.Notes,
		})
		return nil
	})
}

// RemoveCourse implements employee.ProfileService. Removing an unknown
// id leaves the collection unchanged.
func (s *ProfileServiceImpl) RemoveCourse(ctx context.Context, id string, courseID string) (employee.EmployeeResponse, error) {
	return s.mutateCollections(ctx, id, func(emp *employee.Employee) error {
		kept := emp.Courses[:0]
		for _, c := range emp.Courses {
			if c.ID != courseID {
				kept = append(kept, c)
			}
		}
		emp.Courses = kept
		return nil
	})
}

// AddExperience implements employee.ProfileService.
func (s *ProfileServiceImpl) AddExperience(ctx context.Context, id string, req employee.AddExperienceRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.mutateCollections(ctx, id, func(emp *employee.Employee) error {
		emp.Experiences = append(emp.Experiences, employee.Experience{
			ID:          uuid.NewString(),
			Company:     req.Company,
			Role:        req.Role,
			Field:       req.Field,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Description: req.Description,
		})
		return nil
	})
}

// RemoveExperience implements employee.ProfileService.
func (s *ProfileServiceImpl) RemoveExperience(ctx context.Context, id string, experienceID string) (employee.EmployeeResponse, error) {
	return s.mutateCollections(ctx, id, func(emp *employee.Employee) error {
		kept := emp.Experiences[:0]
		for _, ex := range emp.Experiences {
			if ex.ID != experienceID {
				kept = append(kept, ex)
			}
		}
		emp.Experiences = kept
		return nil
	})
}

// AddMainEducation implements employee.ProfileService. Entries get a
// stable id at creation so removal does not depend on list position.
func (s *ProfileServiceImpl) AddMainEducation(ctx context.Context, id string, req employee.AddMainEducationRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.mutateCollections(ctx, id, func(emp *employee.Employee) error {
		degree := employee.EducationLevel(req.Degree)
		if degree == "" {
			degree = employee.EducationLevelPrimary
		}
		status := employee.CourseStatus(req.Status)
		if status == "" {
			status = employee.CourseStatusInProgress
		}
		emp.MainEducation = append(emp.MainEducation, employee.MainEducation{
			ID:          uuid.NewString(),
			Degree:      degree,
			CourseName:  req.CourseName,
			Institution: req.Institution,
			Status:      status,
			CBO:         req.CBO,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
		})
		return nil
	})
}

// RemoveMainEducation implements employee.ProfileService.
func (s *ProfileServiceImpl) RemoveMainEducation(ctx context.Context, id string, educationID string) (employee.EmployeeResponse, error) {
	return s.mutateCollections(ctx, id, func(emp *employee.Employee) error {
		kept := emp.MainEducation[:0]
		for _, ed := range emp.MainEducation {
			if ed.ID != educationID {
				kept = append(kept, ed)
			}
		}
		emp.MainEducation = kept
		return nil
	})
}

// RemoveMainEducationAt implements employee.ProfileService. Positional
// removal: indices shift after every mutation, so callers must re-read
// the list before issuing another remove. Out-of-range is a no-op.
func (s *ProfileServiceImpl) RemoveMainEducationAt(ctx context.Context, id string, index int) (employee.EmployeeResponse, error) {
	return s.mutateCollections(ctx, id, func(emp *employee.Employee) error {
		if index < 0 || index >= len(emp.MainEducation) {
			return nil
		}
		emp.MainEducation = append(emp.MainEducation[:index], emp.MainEducation[index+1:]...)
		return nil
	})
}
