package dto

// ProfileResponse represents the admin profile
type ProfileResponse struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// UpdateProfileRequest represents admin profile update data
type UpdateProfileRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email" binding:"required"`
	ProfilePicture string `json:"profilePicture"`
}

// ThemeResponse represents the stored UI theme
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// UpdateThemeRequest represents a theme change
type UpdateThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// DashboardSummary carries per-collection record counts for the
// dashboard overview.
type DashboardSummary struct {
	Faculties   int `json:"faculties"`
	Departments int `json:"departments"`
	Teachers    int `json:"teachers"`
	Semesters   int `json:"semesters"`
	Books       int `json:"books"`
}
