package models

// AdminProfile is the single administrator account profile.
type AdminProfile struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Theme values accepted by the UI.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)
