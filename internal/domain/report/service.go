package report

import "context"

// ReportService builds attendance/leave reconciliation summaries. Every
// method is a pure function of the source snapshots: identical inputs yield
// identical output, and nothing is persisted or cached.
type ReportService interface {
	// MonthlySummary reconciles one month for every employee passing the
	// department filter.
	MonthlySummary(ctx context.Context, req MonthlySummaryRequest) (MonthlySummary, error)

	// YearlySummary runs the monthly pipeline for months 1-12, in month order.
	YearlySummary(ctx context.Context, req YearlySummaryRequest) (YearlySummary, error)

	// EmployeeDays builds the per-day marker map for one employee reference.
	EmployeeDays(ctx context.Context, req EmployeeDaysRequest) (EmployeeDays, error)
}
