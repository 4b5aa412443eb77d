package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	FacultyID       string `json:"facultyId"`
	Name            string `json:"name"`
	Dean            string `json:"dean"`
	EstablishedYear string `json:"establishedYear"`
	Semesters       string `json:"semesters"`
	Description     string `json:"description"`
}

// UpdateDepartmentRequest represents department update data
type UpdateDepartmentRequest = CreateDepartmentRequest

// DepartmentResponse represents department information with the parent
// faculty name resolved at read time.
type DepartmentResponse struct {
	ID              string `json:"id"`
	FacultyID       string `json:"facultyId"`
	FacultyName     string `json:"facultyName,omitempty"`
	Name            string `json:"name"`
	Dean            string `json:"dean"`
	EstablishedYear string `json:"establishedYear"`
	Semesters       string `json:"semesters"`
	Description     string `json:"description"`
}
