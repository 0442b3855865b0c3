package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, newRequest Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListByEmployeeRef(ctx context.Context, employeeRef string) ([]Request, error)
	// ListApprovedByKeys returns approved requests filed under any of the
	// candidate keys that may overlap [start, end]. Legacy string dates defeat
	// range comparison in SQL, so the result over-fetches; callers re-check
	// status and interval after normalization.
	ListApprovedByKeys(ctx context.Context, keys []string, start, end time.Time) ([]Request, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}
