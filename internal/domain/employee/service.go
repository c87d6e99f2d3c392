package employee

import "context"

// ProfileService edits one employee record through a working draft plus
// immediate-commit collection mutations. Access rules come from the
// caller's token claims in ctx.
type ProfileService interface {
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// Draft lifecycle. SelectDraft resets any previous draft the caller
	// held, including one for a different employee.
	SelectDraft(ctx context.Context, id string) (EmployeeResponse, error)
	GetDraft(ctx context.Context, id string) (EmployeeResponse, error)
	SetField(ctx context.Context, id string, req UpdateFieldRequest) (EmployeeResponse, error)
	CommitDraft(ctx context.Context, id string) (EmployeeResponse, error)

	// Collection mutations commit to the directory immediately,
	// independent of the profile-edit gate.
	AddCourse(ctx context.Context, id string, req AddCourseRequest) (EmployeeResponse, error)
	RemoveCourse(ctx context.Context, id string, courseID string) (EmployeeResponse, error)
	AddExperience(ctx context.Context, id string, req AddExperienceRequest) (EmployeeResponse, error)
	RemoveExperience(ctx context.Context, id string, experienceID string) (EmployeeResponse, error)
	AddMainEducation(ctx context.Context, id string, req AddMainEducationRequest) (EmployeeResponse, error)
	RemoveMainEducation(ctx context.Context, id string, educationID string) (EmployeeResponse, error)
	RemoveMainEducationAt(ctx context.Context, id string, index int) (EmployeeResponse, error)
}
