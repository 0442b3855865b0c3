package employee

import "time"

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Department   string
	Position     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// DepartmentOrUnknown returns the department name used for report grouping.
func (e Employee) DepartmentOrUnknown() string {
	if e.Department == "" {
		return "Unknown"
	}
	return e.Department
}

// CandidateKeys returns every string under which this employee may appear as
// employee_ref on a raw attendance or leave record. Legacy collectors filed
// records under the external code, newer ones under the internal id; matching
// anywhere in the system is membership in this set, never a single field.
func (e Employee) CandidateKeys() []string {
	keys := make([]string, 0, 2)
	seen := make(map[string]struct{}, 2)
	for _, k := range []string{e.EmployeeCode, e.ID} {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
