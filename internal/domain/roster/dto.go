package roster

// Query holds one search term per filterable column. Empty terms impose
// no constraint.
type Query struct {
	Code           string
	FullName       string
	BirthDate      string
	BirthState     string
	BirthCity      string
	EducationLevel string
}

func (q Query) IsZero() bool {
	return q == Query{}
}

type Entry struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	FullName   string `json:"full_name"`
	BirthDate  string `json:"birth_date"`
	BirthState string `json:"birth_state"`
	BirthCity  string `json:"birth_city"`
	// Degree of the first main-education entry; empty when the employee
	// has none.
	EducationLevel string `json:"education_level"`
}
