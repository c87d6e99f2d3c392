package employee

import "github.com/gestaorh/portal-backend-go/internal/pkg/validator"

// UpdateFieldRequest sets one personal-info field on the working draft.
// The field set is fixed; unknown names are rejected during dispatch.
type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (r *UpdateFieldRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Field) {
		errs = append(errs, validator.ValidationError{
			Field:   "field",
			Message: "field is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddCourseRequest struct {
	Name        string `json:"name"`
	Institution string `json:"institution"`
	Status      string `json:"status"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Notes       string `json:"notes"`
}

func (r *AddCourseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Institution) {
		errs = append(errs, validator.ValidationError{
			Field:   "institution",
			Message: "institution is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddExperienceRequest struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

func (r *AddExperienceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Company) {
		errs = append(errs, validator.ValidationError{
			Field:   "company",
			Message: "company is required",
		})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddMainEducationRequest struct {
	Degree      string `json:"degree"`
	CourseName  string `json:"course_name"`
	Institution string `json:"institution"`
	Status      string `json:"status"`
	CBO         string `json:"cbo"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func (r *AddMainEducationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CourseName) {
		errs = append(errs, validator.ValidationError{
			Field:   "course_name",
			Message: "course_name is required",
		})
	}
	if validator.IsEmpty(r.Institution) {
		errs = append(errs, validator.ValidationError{
			Field:   "institution",
			Message: "institution is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                   string                  `json:"id"`
	Version              int64                   `json:"version"`
	Code                 string                  `json:"code"`
	CompanyID            string                  `json:"company_id"`
	FullName             string                  `json:"full_name"`
	SocialName           string                  `json:"social_name"`
	Nickname             string                  `json:"nickname"`
	Gender               string                  `json:"gender"`
	IsSmoker             bool                    `json:"is_smoker"`
	Race                 string                  `json:"race"`
	BloodType            string                  `json:"blood_type"`
	Email                string                  `json:"email"`
	BirthDate            string                  `json:"birth_date"`
	BirthState           string                  `json:"birth_state"`
	BirthCity            string                  `json:"birth_city"`
	Nationality          string                  `json:"nationality"`
	CivilStatus          string                  `json:"civil_status"`
	QualificationSummary string                  `json:"qualification_summary"`
	MainEducation        []MainEducationResponse `json:"main_education"`
	Courses              []CourseResponse        `json:"courses"`
	Experiences          []ExperienceResponse    `json:"experiences"`
}

type MainEducationResponse struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	CourseName  string `json:"course_name"`
	Institution string `json:"institution"`
	Status      string `json:"status"`
	CBO         string `json:"cbo"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type CourseResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Institution string `json:"institution"`
	Status      string `json:"status"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Notes       string `json:"notes"`
}

type ExperienceResponse struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// ToResponse maps an Employee to its API shape. The password never leaves
// the directory.
func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                   e.ID,
		Version:              e.Version,
		Code:                 e.Code,
		CompanyID:            e.CompanyID,
		FullName:             e.FullName,
		SocialName:           e.SocialName,
		Nickname:             e.Nickname,
		Gender:               e.Gender,
		IsSmoker:             e.IsSmoker,
		Race:                 e.Race,
		BloodType:            e.BloodType,
		Email:                e.Email,
		BirthDate:            e.BirthDate,
		BirthState:           e.BirthState,
		BirthCity:            e.BirthCity,
		Nationality:          e.Nationality,
		CivilStatus:          string(e.CivilStatus),
		QualificationSummary: e.QualificationSummary,
		MainEducation:        make([]MainEducationResponse, 0, len(e.MainEducation)),
		Courses:              make([]CourseResponse, 0, len(e.Courses)),
		Experiences:          make([]ExperienceResponse, 0, len(e.Experiences)),
	}

	for _, ed := range e.MainEducation {
		resp.MainEducation = append(resp.MainEducation, MainEducationResponse{
			ID:          ed.ID,
			Degree:      string(ed.Degree),
			CourseName:  ed.CourseName,
			Institution: ed.Institution,
			Status:      string(ed.Status),
			CBO:         ed.CBO,
			StartDate:   ed.StartDate,
			EndDate:     ed.EndDate,
		})
	}
	for _, c := range e.Courses {
		resp.Courses = append(resp.Courses, CourseResponse{
			ID:          c.ID,
			Name:        c.Name,
			Institution: c.Institution,
			Status:      string(c.Status),
			StartDate:   c.StartDate,
			EndDate:     c.EndDate,
			Notes:       c.Notes,
		})
	}
	for _, ex := range e.Experiences {
		resp.Experiences = append(resp.Experiences, ExperienceResponse{
			ID:          ex.ID,
			Company:     ex.Company,
			Role:        ex.Role,
			Field:       ex.Field,
			StartDate:   ex.StartDate,
			EndDate:     ex.EndDate,
			Description: ex.Description,
		})
	}
	return resp
}
