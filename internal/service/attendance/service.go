package attendance

import (
	"context"

	"github.com/peoplecore/backoffice-go/internal/domain/attendance"
	"github.com/peoplecore/backoffice-go/internal/domain/employee"
	"github.com/peoplecore/backoffice-go/internal/pkg/calendar"
)

type AttendanceService struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Create files a raw punch. Collectors may reference employees by code or by
// id, and the record keeps whichever form arrived.
func (s *AttendanceService) Create(ctx context.Context, req attendance.CreateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Record{
		EmployeeRef: req.EmployeeRef,
		Date:        req.Date,
		Status:      req.Status,
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.ToResponse(created), nil
}

// ListByEmployee returns the raw records for one employee within a month.
// Records are looked up under every identifier form the employee is known by.
func (s *AttendanceService) ListByEmployee(ctx context.Context, employeeID string, year int, month int) ([]attendance.RecordResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	start, end := calendar.MonthRange(year, month)
	records, err := s.attendanceRepo.ListByKeys(ctx, emp.CandidateKeys(), start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}
