package repositories

import (
	"github.com/nasibcs/uniadmin/internal/kvstore"
)

// Repositories holds all the repository instances
type Repositories struct {
	FacultyRepository    *FacultyRepository
	DepartmentRepository *DepartmentRepository
	TeacherRepository    *TeacherRepository
	SemesterRepository   *SemesterRepository
	BookRepository       *BookRepository
	SettingsRepository   *SettingsRepository
}

// NewRepositories initializes all repositories over one store
func NewRepositories(store *kvstore.Store) *Repositories {
	return &Repositories{
		FacultyRepository:    NewFacultyRepository(store),
		DepartmentRepository: NewDepartmentRepository(store),
		TeacherRepository:    NewTeacherRepository(store),
		SemesterRepository:   NewSemesterRepository(store),
		BookRepository:       NewBookRepository(store),
		SettingsRepository:   NewSettingsRepository(store),
	}
}
