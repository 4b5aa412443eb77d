package dto

// CreateBookRequest represents book creation data
type CreateBookRequest struct {
	FacultyID       string `json:"facultyId"`
	DepartmentID    string `json:"departmentId"`
	SemesterID      string `json:"semesterId"`
	Name            string `json:"name"`
	Author          string `json:"author"`
	Description     string `json:"description"`
	Thumbnail       string `json:"thumbnail"`
	ISBN            string `json:"isbn"`
	Edition         string `json:"edition"`
	PublicationYear string `json:"publicationYear"`
}

// UpdateBookRequest represents book update data
type UpdateBookRequest = CreateBookRequest

// BookResponse represents book information with parent names resolved
// at read time.
type BookResponse struct {
	ID              string `json:"id"`
	FacultyID       string `json:"facultyId"`
	FacultyName     string `json:"facultyName,omitempty"`
	DepartmentID    string `json:"departmentId"`
	DepartmentName  string `json:"departmentName,omitempty"`
	SemesterID      string `json:"semesterId"`
	SemesterName    string `json:"semesterName,omitempty"`
	Name            string `json:"name"`
	Author          string `json:"author"`
	Description     string `json:"description"`
	Thumbnail       string `json:"thumbnail"`
	ISBN            string `json:"isbn,omitempty"`
	Edition         string `json:"edition,omitempty"`
	PublicationYear string `json:"publicationYear,omitempty"`
}
