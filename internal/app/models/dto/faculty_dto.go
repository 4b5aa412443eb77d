package dto

// CreateFacultyRequest represents faculty creation data
type CreateFacultyRequest struct {
	Name            string `json:"name"`
	Dean            string `json:"dean"`
	EstablishedYear string `json:"establishedYear"`
	Description     string `json:"description"`
	Logo            string `json:"logo"`
}

// UpdateFacultyRequest represents faculty update data
type UpdateFacultyRequest = CreateFacultyRequest

// FacultyResponse represents faculty information
type FacultyResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Dean            string `json:"dean"`
	EstablishedYear string `json:"establishedYear"`
	Description     string `json:"description"`
	Logo            string `json:"logo"`
}
