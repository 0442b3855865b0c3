package attendance_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/backoffice-go/internal/domain/attendance"
	"github.com/peoplecore/backoffice-go/internal/domain/employee"
	"github.com/peoplecore/backoffice-go/internal/pkg/flexdate"
	"github.com/peoplecore/backoffice-go/internal/pkg/validator"
	attendanceService "github.com/peoplecore/backoffice-go/internal/service/attendance"
)

type stubAttendanceRepo struct {
	gotKeys  []string
	gotStart time.Time
	gotEnd   time.Time
	records  []attendance.Record
}

func (s *stubAttendanceRepo) Create(_ context.Context, newRecord attendance.Record) (attendance.Record, error) {
	newRecord.ID = "att-1"
	return newRecord, nil
}

func (s *stubAttendanceRepo) ListByKeys(_ context.Context, keys []string, start, end time.Time) ([]attendance.Record, error) {
	s.gotKeys = keys
	s.gotStart = start
	s.gotEnd = end
	return s.records, nil
}

type stubEmployeeRepo struct {
	emp employee.Employee
}

func (s *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if id != s.emp.ID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.emp, nil
}

func (s *stubEmployeeRepo) GetByEmployeeCode(_ context.Context, _ string) (employee.Employee, error) {
	return s.emp, nil
}

func (s *stubEmployeeRepo) List(_ context.Context, _ string) ([]employee.Employee, error) {
	return []employee.Employee{s.emp}, nil
}

func (s *stubEmployeeRepo) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (s *stubEmployeeRepo) ExistsByCode(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (s *stubEmployeeRepo) Update(_ context.Context, _ string, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (s *stubEmployeeRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func TestListByEmployee_MonthWindowAndKeys(t *testing.T) {
	emp := employee.Employee{
		ID:           "0195f9a8-0000-7000-8000-000000000001",
		EmployeeCode: "EMP-0042",
		FullName:     "Sari Utami",
	}
	attendanceRepo := &stubAttendanceRepo{
		records: []attendance.Record{
			{ID: "att-9", EmployeeRef: "EMP-0042", Date: flexdate.FromString("05-06-2024"), Status: "Login"},
		},
	}
	svc := attendanceService.NewAttendanceService(attendanceRepo, &stubEmployeeRepo{emp: emp})

	got, err := svc.ListByEmployee(context.Background(), emp.ID, 2024, 6)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "att-9", got[0].ID)

	// Lookup covers both identifier forms the employee is known by.
	assert.Equal(t, []string{"EMP-0042", emp.ID}, attendanceRepo.gotKeys)

	// The window is the calendar month, first instant to last.
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), attendanceRepo.gotStart)
	assert.Equal(t, time.June, attendanceRepo.gotEnd.Month())
	assert.Equal(t, 30, attendanceRepo.gotEnd.Day())
}

func TestListByEmployee_UnknownEmployee(t *testing.T) {
	svc := attendanceService.NewAttendanceService(&stubAttendanceRepo{}, &stubEmployeeRepo{})

	_, err := svc.ListByEmployee(context.Background(), "missing", 2024, 6)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreate_KeepsRawShape(t *testing.T) {
	svc := attendanceService.NewAttendanceService(&stubAttendanceRepo{}, &stubEmployeeRepo{})

	created, err := svc.Create(context.Background(), attendance.CreateRecordRequest{
		EmployeeRef: "EMP-0042",
		Date:        flexdate.FromString("05-06-2024"),
		Status:      "Login",
	})
	require.NoError(t, err)

	assert.Equal(t, "att-1", created.ID)
	assert.Equal(t, "05-06-2024", created.Date.Raw())
	assert.Equal(t, "Login", created.Status)
}

func TestCreate_Validation(t *testing.T) {
	svc := attendanceService.NewAttendanceService(&stubAttendanceRepo{}, &stubEmployeeRepo{})

	_, err := svc.Create(context.Background(), attendance.CreateRecordRequest{
		EmployeeRef: "EMP-0042",
		Date:        flexdate.FromString("05-06-2024"),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "status")
}
