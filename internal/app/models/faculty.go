package models

// Faculty represents a top-level organizational unit of the university.
type Faculty struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Dean            string `json:"dean"`
	EstablishedYear string `json:"establishedYear"`
	Description     string `json:"description"`
	Logo            string `json:"logo"`
}
