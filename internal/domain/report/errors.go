package report

import "errors"

var (
	// ErrDataSource wraps a failure of the underlying record stores. It is
	// fatal for the request; the engine itself never retries.
	ErrDataSource = errors.New("report data source unavailable")
)
