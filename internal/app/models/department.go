package models

// Department represents a department in a faculty.
type Department struct {
	ID              string `json:"id"`
	FacultyID       string `json:"facultyId"`
	Name            string `json:"name"`
	Dean            string `json:"dean"`
	EstablishedYear string `json:"establishedYear"`
	Semesters       string `json:"semesters"`
	Description     string `json:"description"`
}
