package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, newRecord Record) (Record, error)
	// ListByKeys returns raw records filed under any of the candidate keys
	// whose date plausibly falls in [start, end]. Legacy string dates are
	// matched best-effort; callers re-normalize and re-filter.
	ListByKeys(ctx context.Context, keys []string, start, end time.Time) ([]Record, error)
}
