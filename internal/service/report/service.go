package report

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/peoplecore/backoffice-go/internal/domain/attendance"
	"github.com/peoplecore/backoffice-go/internal/domain/employee"
	"github.com/peoplecore/backoffice-go/internal/domain/leave"
	"github.com/peoplecore/backoffice-go/internal/domain/report"
	"github.com/peoplecore/backoffice-go/internal/pkg/calendar"
)

// ReportService reconciles raw attendance punches and leave requests into
// monthly summaries. It holds no state beyond its collaborators: every report
// is recomputed from the source snapshots, so reruns with identical inputs
// are byte-identical.
type ReportService struct {
	repo   report.ReportRepository
	logger *slog.Logger
}

func NewReportService(repo report.ReportRepository, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{repo: repo, logger: logger}
}

func (s *ReportService) MonthlySummary(ctx context.Context, req report.MonthlySummaryRequest) (report.MonthlySummary, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlySummary{}, err
	}

	employees, err := s.repo.ListEmployees(ctx, req.Department)
	if err != nil {
		return report.MonthlySummary{}, fmt.Errorf("%w: list employees: %v", report.ErrDataSource, err)
	}

	return s.computeMonth(ctx, employees, req.Year, req.Month)
}

func (s *ReportService) YearlySummary(ctx context.Context, req report.YearlySummaryRequest) (report.YearlySummary, error) {
	if err := req.Validate(); err != nil {
		return report.YearlySummary{}, err
	}

	employees, err := s.repo.ListEmployees(ctx, req.Department)
	if err != nil {
		return report.YearlySummary{}, fmt.Errorf("%w: list employees: %v", report.ErrDataSource, err)
	}

	// Each month is independent of every other month, so all twelve are
	// computed concurrently. Results land at fixed indices, which keeps the
	// output in month order regardless of completion order.
	months := make([]report.MonthlySummary, 12)
	g, gctx := errgroup.WithContext(ctx)
	for m := 1; m <= 12; m++ {
		g.Go(func() error {
			summary, err := s.computeMonth(gctx, employees, req.Year, m)
			if err != nil {
				return err
			}
			months[m-1] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.YearlySummary{}, err
	}

	return report.YearlySummary{Year: req.Year, Months: months}, nil
}

func (s *ReportService) EmployeeDays(ctx context.Context, req report.EmployeeDaysRequest) (report.EmployeeDays, error) {
	if err := req.Validate(); err != nil {
		return report.EmployeeDays{}, err
	}

	start, end := calendar.MonthRange(req.Year, req.Month)

	// Resolve the ref to the full key set, so punches filed under the other
	// identifier form still surface. An unknown ref is looked up as-is.
	keys := []string{req.EmployeeRef}
	employees, err := s.repo.ListEmployees(ctx, "")
	if err != nil {
		return report.EmployeeDays{}, fmt.Errorf("%w: list employees: %v", report.ErrDataSource, err)
	}
resolve:
	for _, emp := range employees {
		for _, key := range emp.CandidateKeys() {
			if key == req.EmployeeRef {
				keys = emp.CandidateKeys()
				break resolve
			}
		}
	}

	records, err := s.repo.ListAttendance(ctx, keys, start, end)
	if err != nil {
		return report.EmployeeDays{}, fmt.Errorf("%w: list attendance: %v", report.ErrDataSource, err)
	}
	leaves, err := s.repo.ListLeaves(ctx, keys, start, end)
	if err != nil {
		return report.EmployeeDays{}, fmt.Errorf("%w: list leaves: %v", report.ErrDataSource, err)
	}

	days := make(map[string]string)
	for day, mark := range s.dedupeAttendance(records, req.Year, req.Month) {
		days[strconv.Itoa(day)] = mark.Letter()
	}

	// Leave fills only days attendance left unmarked; an attendance mark,
	// Present in particular, is never overwritten.
	for day := range s.intersectLeaves(leaves, req.Year, req.Month) {
		key := strconv.Itoa(day)
		if _, ok := days[key]; !ok {
			days[key] = "L"
		}
	}

	return report.EmployeeDays{Year: req.Year, Month: req.Month, Days: days}, nil
}

// computeMonth runs the reconciliation pipeline for one month over a fixed
// employee snapshot.
func (s *ReportService) computeMonth(ctx context.Context, employees []employee.Employee, year, month int) (report.MonthlySummary, error) {
	businessDays := calendar.BusinessDaysInMonth(year, month)

	summary := report.MonthlySummary{
		Year:              year,
		Month:             month,
		BusinessDays:      businessDays,
		Employees:         make([]report.EmployeeMonthSummary, 0, len(employees)),
		DepartmentSummary: make(map[string]report.DepartmentSummary),
	}
	if len(employees) == 0 {
		return summary, nil
	}

	start, end := calendar.MonthRange(year, month)

	allKeys := make([]string, 0, 2*len(employees))
	for _, emp := range employees {
		allKeys = append(allKeys, emp.CandidateKeys()...)
	}

	records, err := s.repo.ListAttendance(ctx, allKeys, start, end)
	if err != nil {
		return report.MonthlySummary{}, fmt.Errorf("%w: list attendance: %v", report.ErrDataSource, err)
	}
	leaves, err := s.repo.ListLeaves(ctx, allKeys, start, end)
	if err != nil {
		return report.MonthlySummary{}, fmt.Errorf("%w: list leaves: %v", report.ErrDataSource, err)
	}

	recordsByRef := make(map[string][]attendance.Record)
	for _, rec := range records {
		recordsByRef[rec.EmployeeRef] = append(recordsByRef[rec.EmployeeRef], rec)
	}
	leavesByRef := make(map[string][]leave.Request)
	for _, req := range leaves {
		leavesByRef[req.EmployeeRef] = append(leavesByRef[req.EmployeeRef], req)
	}

	for _, emp := range employees {
		var empRecords []attendance.Record
		var empLeaves []leave.Request
		for _, key := range emp.CandidateKeys() {
			empRecords = append(empRecords, recordsByRef[key]...)
			empLeaves = append(empLeaves, leavesByRef[key]...)
		}

		marks := s.dedupeAttendance(empRecords, year, month)
		leaveDays := s.intersectLeaves(empLeaves, year, month)
		empSummary := aggregate(emp, marks, leaveDays, year, month, businessDays)

		summary.Employees = append(summary.Employees, empSummary)

		dept := emp.DepartmentOrUnknown()
		agg := summary.DepartmentSummary[dept]
		agg.Employees++
		agg.Present += empSummary.PresentDays
		agg.Leave += empSummary.LeaveDays
		agg.Absent += empSummary.AbsentDays
		summary.DepartmentSummary[dept] = agg
	}

	return summary, nil
}

// dedupeAttendance collapses raw punches into at most one presence mark per
// calendar day of the target month. Records with unparsable dates are skipped
// and logged, never fatal. When punches disagree about a day, the later
// record wins only if it is not weaker, so a login is never demoted by a
// stray absent entry.
func (s *ReportService) dedupeAttendance(records []attendance.Record, year, month int) map[int]attendance.Mark {
	marks := make(map[int]attendance.Mark)
	for _, rec := range records {
		date, err := rec.Date.Normalize()
		if err != nil {
			s.logger.Warn("skipping attendance record with unparsable date",
				slog.String("employee_ref", rec.EmployeeRef),
				slog.String("raw_date", rec.Date.Raw()),
				slog.Any("error", err),
			)
			continue
		}
		if date.Year() != year || int(date.Month()) != month {
			continue
		}

		mark := attendance.ClassifyStatus(rec.Status)
		if mark == attendance.MarkUnmarked {
			continue
		}

		day := date.Day()
		if mark >= marks[day] {
			marks[day] = mark
		}
	}
	return marks
}

// intersectLeaves clips each approved leave interval to the target month and
// returns the business days it covers, keyed by day-of-month with the leave
// type as value. A day covered by overlapping requests counts once, under the
// first request that reached it. Unparsable or inverted intervals are skipped
// and logged.
func (s *ReportService) intersectLeaves(leaves []leave.Request, year, month int) map[int]string {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	days := make(map[int]string)
	for _, req := range leaves {
		if !req.Approved() {
			continue
		}

		from, err := req.FromDate.Normalize()
		if err != nil {
			s.logger.Warn("skipping leave request with unparsable from_date",
				slog.String("employee_ref", req.EmployeeRef),
				slog.String("raw_date", req.FromDate.Raw()),
				slog.Any("error", err),
			)
			continue
		}
		to, err := req.ToDate.Normalize()
		if err != nil {
			s.logger.Warn("skipping leave request with unparsable to_date",
				slog.String("employee_ref", req.EmployeeRef),
				slog.String("raw_date", req.ToDate.Raw()),
				slog.Any("error", err),
			)
			continue
		}
		if to.Before(from) {
			s.logger.Warn("skipping leave request with inverted interval",
				slog.String("employee_ref", req.EmployeeRef),
			)
			continue
		}

		if from.Before(monthStart) {
			from = monthStart
		}
		if to.After(monthEnd) {
			to = monthEnd
		}
		if to.Before(from) {
			continue
		}

		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			if !calendar.IsBusinessDay(d) {
				continue
			}
			if _, ok := days[d.Day()]; !ok {
				days[d.Day()] = req.TypeOrUnknown()
			}
		}
	}
	return days
}

// aggregate merges one employee's presence marks and leave days into the
// month summary. Present takes precedence: a business day marked Present
// contributes to presentDays and is excluded from the leave totals even when
// an approved leave covers it. absentDays is clamped at zero so conflicting
// source data can never drive it negative.
func aggregate(emp employee.Employee, marks map[int]attendance.Mark, leaveDays map[int]string, year, month, businessDays int) report.EmployeeMonthSummary {
	present := 0
	for day, mark := range marks {
		if mark != attendance.MarkPresent {
			continue
		}
		// Weekend punches exist in the raw data but only business days count
		// toward the summary.
		if calendar.IsBusinessDay(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)) {
			present++
		}
	}

	leaveCount := 0
	leaveByType := make(map[string]int)
	for day, leaveType := range leaveDays {
		if marks[day] == attendance.MarkPresent {
			continue
		}
		leaveCount++
		leaveByType[leaveType]++
	}

	absent := businessDays - present - leaveCount
	if absent < 0 {
		absent = 0
	}

	return report.EmployeeMonthSummary{
		EmployeeID:          emp.ID,
		EmployeeCode:        emp.EmployeeCode,
		EmployeeName:        emp.FullName,
		Department:          emp.DepartmentOrUnknown(),
		Position:            emp.Position,
		BusinessDaysInMonth: businessDays,
		PresentDays:         present,
		LeaveDays:           leaveCount,
		LeaveByType:         leaveByType,
		AbsentDays:          absent,
	}
}
