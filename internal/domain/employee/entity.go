package employee

type Employee struct {
	ID        string
	Version   int64
	Code      string
	Password  string
	CompanyID string

	FullName             string
	SocialName           string
	Nickname             string
	Gender               string
	IsSmoker             bool
	Race                 string
	BloodType            string
	Email                string
	BirthDate            string
	BirthState           string
	BirthCity            string
	Nationality          string
	CivilStatus          CivilStatus
	QualificationSummary string

	MainEducation []MainEducation
	Courses       []Course
	Experiences   []Experience
}

// Clone returns a deep copy so drafts and callers never alias the
// canonical collections.
func (e Employee) Clone() Employee {
	c := e
	c.MainEducation = append([]MainEducation(nil), e.MainEducation...)
	c.Courses = append([]Course(nil), e.Courses...)
	c.Experiences = append([]Experience(nil), e.Experiences...)
	return c
}

type MainEducation struct {
	ID          string
	Degree      EducationLevel
	CourseName  string
	Institution string
	Status      CourseStatus
	CBO         string
	StartDate   string
	EndDate     string
}

type Course struct {
	ID          string
	Name        string
	Institution string
	Status      CourseStatus
	StartDate   string
	EndDate     string
	Notes       string
}

type Experience struct {
	ID          string
	Company     string
	Role        string
	Field       string
	StartDate   string
	// Empty EndDate means the experience is ongoing.
	EndDate     string
	Description string
}

type CivilStatus string

const (
	CivilStatusSingle    CivilStatus = "Single"
	CivilStatusMarried   CivilStatus = "Married"
	CivilStatusDivorced  CivilStatus = "Divorced"
	CivilStatusWidowed   CivilStatus = "Widowed"
	CivilStatusSeparated CivilStatus = "Separated"
)

type EducationLevel string

const (
	EducationLevelPrimary       EducationLevel = "Primary"
	EducationLevelSecondary     EducationLevel = "Secondary"
	EducationLevelTechnical     EducationLevel = "Technical"
	EducationLevelBachelor      EducationLevel = "Bachelor"
	EducationLevelMaster        EducationLevel = "Master"
	EducationLevelDoctorate     EducationLevel = "Doctorate"
	EducationLevelPostDoctorate EducationLevel = "Post-Doctorate"
)

type CourseStatus string

const (
	CourseStatusCompleted  CourseStatus = "Completed"
	CourseStatusInProgress CourseStatus = "In-Progress"
	CourseStatusPaused     CourseStatus = "Paused"
)
