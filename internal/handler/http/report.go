package http

import (
	"net/http"
	"strconv"

	"github.com/peoplecore/backoffice-go/internal/domain/report"
	"github.com/peoplecore/backoffice-go/internal/handler/http/response"
)

type ReportHandler interface {
	// GetAttendanceSummary serves both the monthly and the yearly summary:
	// with a month query parameter it reconciles that month, without one it
	// fans out over all twelve.
	GetAttendanceSummary(w http.ResponseWriter, r *http.Request)

	// GetEmployeeDays serves the per-day marker map for one employee.
	GetEmployeeDays(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetAttendanceSummary handles GET /reports/attendance/monthly-summary
func (h *reportHandlerImpl) GetAttendanceSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")
	department := r.URL.Query().Get("department")

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}

	if monthStr == "" {
		result, err := h.reportService.YearlySummary(ctx, report.YearlySummaryRequest{
			Year:       year,
			Department: department,
		})
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		response.BadRequest(w, "invalid month parameter", nil)
		return
	}

	result, err := h.reportService.MonthlySummary(ctx, report.MonthlySummaryRequest{
		Year:       year,
		Month:      month,
		Department: department,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeDays handles GET /reports/attendance/employee-days
func (h *reportHandlerImpl) GetEmployeeDays(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		response.BadRequest(w, "invalid month parameter", nil)
		return
	}

	result, err := h.reportService.EmployeeDays(ctx, report.EmployeeDaysRequest{
		EmployeeRef: r.URL.Query().Get("employee_id"),
		Year:        year,
		Month:       month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
