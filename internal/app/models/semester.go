package models

// Semester represents a term instance scoped to a faculty and department,
// with an associated reading list of free-text titles.
type Semester struct {
	ID           string   `json:"id"`
	FacultyID    string   `json:"facultyId"`
	DepartmentID string   `json:"departmentId"`
	Name         string   `json:"name"`
	Year         string   `json:"year"`
	Season       string   `json:"semester"`
	Books        []string `json:"books"`
	Description  string   `json:"description"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}
