package validation

import "strings"

// Entity names used as keys into the requirement table.
const (
	EntityFaculty    = "faculty"
	EntityDepartment = "department"
	EntityTeacher    = "teacher"
	EntitySemester   = "semester"
	EntityBook       = "book"
)

// requiredFields maps each entity to the fields that must be non-empty
// before a create or update is allowed to touch the store. Everything
// else is accepted as free text: no date, year or email format checks.
var requiredFields = map[string][]string{
	EntityFaculty:    {"name", "dean", "establishedYear", "description", "logo"},
	EntityDepartment: {"name", "dean", "establishedYear", "facultyId"},
	EntityTeacher:    {"fullName", "email", "phone", "degree", "departmentId"},
	EntitySemester:   {"name", "year", "semester", "facultyId", "departmentId"},
	EntityBook:       {"name", "author"},
}

// Required returns the required field names for an entity.
func Required(entity string) []string {
	return requiredFields[entity]
}

// MissingFields checks the given field values against the requirement
// table and returns the names of required fields that are empty or
// whitespace, in table order.
func MissingFields(entity string, fields map[string]string) []string {
	var missing []string
	for _, name := range requiredFields[entity] {
		if strings.TrimSpace(fields[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
