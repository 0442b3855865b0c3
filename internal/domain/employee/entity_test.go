package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		emp  Employee
		want []string
	}{
		{
			name: "code and id",
			emp:  Employee{ID: "0195f9a8-0000-7000-8000-000000000001", EmployeeCode: "EMP-0042"},
			want: []string{"EMP-0042", "0195f9a8-0000-7000-8000-000000000001"},
		},
		{
			name: "missing code",
			emp:  Employee{ID: "0195f9a8-0000-7000-8000-000000000001"},
			want: []string{"0195f9a8-0000-7000-8000-000000000001"},
		},
		{
			name: "identical forms deduplicated",
			emp:  Employee{ID: "EMP-0042", EmployeeCode: "EMP-0042"},
			want: []string{"EMP-0042"},
		},
		{
			name: "both empty",
			emp:  Employee{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.emp.CandidateKeys())
		})
	}
}

func TestDepartmentOrUnknown(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Engineering", Employee{Department: "Engineering"}.DepartmentOrUnknown())
	assert.Equal(t, "Unknown", Employee{}.DepartmentOrUnknown())
}
