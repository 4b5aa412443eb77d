package dto

// CreateTeacherRequest represents teacher creation data
type CreateTeacherRequest struct {
	DepartmentID string `json:"departmentId"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Degree       string `json:"degree"`
	Research     string `json:"research"`
	Address      string `json:"address"`
	Age          string `json:"age"`
	AvatarURL    string `json:"avatarUrl"`
}

// UpdateTeacherRequest represents teacher update data
type UpdateTeacherRequest = CreateTeacherRequest

// TeacherResponse represents teacher information with parent names
// resolved at read time.
type TeacherResponse struct {
	ID             string `json:"id"`
	DepartmentID   string `json:"departmentId"`
	DepartmentName string `json:"departmentName,omitempty"`
	FacultyName    string `json:"facultyName,omitempty"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Degree         string `json:"degree"`
	Research       string `json:"research"`
	Address        string `json:"address"`
	Age            string `json:"age"`
	AvatarURL      string `json:"avatarUrl,omitempty"`
}
