package report

import (
	"context"
	"time"

	"github.com/peoplecore/backoffice-go/internal/domain/attendance"
	"github.com/peoplecore/backoffice-go/internal/domain/employee"
	"github.com/peoplecore/backoffice-go/internal/domain/leave"
)

// ReportRepository is the data-access boundary the engine computes from. All
// three listings are snapshots: the engine reads them once per request and
// never writes. Implementations may over-fetch (extra statuses, records whose
// legacy dates defeat range filtering); the engine re-filters after
// normalization.
type ReportRepository interface {
	ListEmployees(ctx context.Context, department string) ([]employee.Employee, error)
	ListAttendance(ctx context.Context, employeeKeys []string, start, end time.Time) ([]attendance.Record, error)
	ListLeaves(ctx context.Context, employeeKeys []string, start, end time.Time) ([]leave.Request, error)
}
