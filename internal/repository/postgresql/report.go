package postgresql

import (
	"context"
	"time"

	"github.com/peoplecore/backoffice-go/internal/domain/attendance"
	"github.com/peoplecore/backoffice-go/internal/domain/employee"
	"github.com/peoplecore/backoffice-go/internal/domain/leave"
	"github.com/peoplecore/backoffice-go/internal/domain/report"
	"github.com/peoplecore/backoffice-go/internal/pkg/database"
)

// reportRepository is the read-only data-access collaborator behind the
// report engine. It composes the per-domain repositories so the engine sees
// one snapshot boundary.
type reportRepository struct {
	employees  employee.EmployeeRepository
	attendance attendance.AttendanceRepository
	leaves     leave.LeaveRepository
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{
		employees:  NewEmployeeRepository(db),
		attendance: NewAttendanceRepository(db),
		leaves:     NewLeaveRepository(db),
	}
}

func (r *reportRepository) ListEmployees(ctx context.Context, department string) ([]employee.Employee, error) {
	return r.employees.List(ctx, department)
}

func (r *reportRepository) ListAttendance(ctx context.Context, employeeKeys []string, start, end time.Time) ([]attendance.Record, error) {
	return r.attendance.ListByKeys(ctx, employeeKeys, start, end)
}

func (r *reportRepository) ListLeaves(ctx context.Context, employeeKeys []string, start, end time.Time) ([]leave.Request, error) {
	return r.leaves.ListApprovedByKeys(ctx, employeeKeys, start, end)
}
