package models

// Book represents a course book attached to a semester.
type Book struct {
	ID              string `json:"id"`
	FacultyID       string `json:"facultyId"`
	DepartmentID    string `json:"departmentId"`
	SemesterID      string `json:"semesterId"`
	Name            string `json:"name"`
	Author          string `json:"author"`
	Description     string `json:"description"`
	Thumbnail       string `json:"thumbnail"`
	ISBN            string `json:"isbn,omitempty"`
	Edition         string `json:"edition,omitempty"`
	PublicationYear string `json:"publicationYear,omitempty"`
}
