package models

// Teacher represents a teaching staff member assigned to a department.
// Parent names are resolved at read time, never stored on the record.
type Teacher struct {
	ID           string `json:"id"`
	DepartmentID string `json:"departmentId"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Degree       string `json:"degree"`
	Research     string `json:"research"`
	Address      string `json:"address"`
	Age          string `json:"age"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
}
