package dto

// CreateSemesterRequest represents semester creation data
type CreateSemesterRequest struct {
	FacultyID    string   `json:"facultyId"`
	DepartmentID string   `json:"departmentId"`
	Name         string   `json:"name"`
	Year         string   `json:"year"`
	Season       string   `json:"semester"`
	Books        []string `json:"books"`
	Description  string   `json:"description"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
}

// UpdateSemesterRequest represents semester update data
type UpdateSemesterRequest = CreateSemesterRequest

// SemesterResponse represents semester information with parent names
// resolved at read time.
type SemesterResponse struct {
	ID             string   `json:"id"`
	FacultyID      string   `json:"facultyId"`
	FacultyName    string   `json:"facultyName,omitempty"`
	DepartmentID   string   `json:"departmentId"`
	DepartmentName string   `json:"departmentName,omitempty"`
	Name           string   `json:"name"`
	Year           string   `json:"year"`
	Season         string   `json:"semester"`
	Books          []string `json:"books"`
	Description    string   `json:"description"`
	StartDate      string   `json:"startDate,omitempty"`
	EndDate        string   `json:"endDate,omitempty"`
}
