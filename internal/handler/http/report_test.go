package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/backoffice-go/internal/domain/report"
)

type stubReportService struct {
	monthly func(ctx context.Context, req report.MonthlySummaryRequest) (report.MonthlySummary, error)
	yearly  func(ctx context.Context, req report.YearlySummaryRequest) (report.YearlySummary, error)
	days    func(ctx context.Context, req report.EmployeeDaysRequest) (report.EmployeeDays, error)
}

func (s *stubReportService) MonthlySummary(ctx context.Context, req report.MonthlySummaryRequest) (report.MonthlySummary, error) {
	return s.monthly(ctx, req)
}

func (s *stubReportService) YearlySummary(ctx context.Context, req report.YearlySummaryRequest) (report.YearlySummary, error) {
	return s.yearly(ctx, req)
}

func (s *stubReportService) EmployeeDays(ctx context.Context, req report.EmployeeDaysRequest) (report.EmployeeDays, error) {
	return s.days(ctx, req)
}

func TestGetAttendanceSummary_MonthGiven(t *testing.T) {
	var gotReq report.MonthlySummaryRequest
	handler := NewReportHandler(&stubReportService{
		monthly: func(_ context.Context, req report.MonthlySummaryRequest) (report.MonthlySummary, error) {
			gotReq = req
			return report.MonthlySummary{Year: req.Year, Month: req.Month, BusinessDays: 20}, nil
		},
	})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/reports/attendance/monthly-summary?year=2024&month=6&department=Engineering", nil)
	w := httptest.NewRecorder()
	handler.GetAttendanceSummary(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, report.MonthlySummaryRequest{Year: 2024, Month: 6, Department: "Engineering"}, gotReq)

	var body struct {
		Success bool                  `json:"success"`
		Data    report.MonthlySummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 20, body.Data.BusinessDays)
}

func TestGetAttendanceSummary_NoMonthFansOutToYear(t *testing.T) {
	yearlyCalled := false
	handler := NewReportHandler(&stubReportService{
		yearly: func(_ context.Context, req report.YearlySummaryRequest) (report.YearlySummary, error) {
			yearlyCalled = true
			return report.YearlySummary{Year: req.Year, Months: make([]report.MonthlySummary, 12)}, nil
		},
	})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/reports/attendance/monthly-summary?year=2024", nil)
	w := httptest.NewRecorder()
	handler.GetAttendanceSummary(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, yearlyCalled)
}

func TestGetAttendanceSummary_InvalidParams(t *testing.T) {
	handler := NewReportHandler(&stubReportService{})

	tests := []struct {
		name  string
		query string
	}{
		{"missing year", "month=6"},
		{"non numeric year", "year=abc&month=6"},
		{"non numeric month", "year=2024&month=june"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/reports/attendance/monthly-summary?"+tc.query, nil)
			w := httptest.NewRecorder()
			handler.GetAttendanceSummary(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetAttendanceSummary_ValidationErrorStatus(t *testing.T) {
	handler := NewReportHandler(&stubReportService{
		monthly: func(_ context.Context, req report.MonthlySummaryRequest) (report.MonthlySummary, error) {
			return report.MonthlySummary{}, req.Validate()
		},
	})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/reports/attendance/monthly-summary?year=2024&month=13", nil)
	w := httptest.NewRecorder()
	handler.GetAttendanceSummary(w, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetAttendanceSummary_DataSourceErrorStatus(t *testing.T) {
	handler := NewReportHandler(&stubReportService{
		monthly: func(_ context.Context, _ report.MonthlySummaryRequest) (report.MonthlySummary, error) {
			return report.MonthlySummary{}, report.ErrDataSource
		},
	})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/reports/attendance/monthly-summary?year=2024&month=6", nil)
	w := httptest.NewRecorder()
	handler.GetAttendanceSummary(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetEmployeeDays(t *testing.T) {
	handler := NewReportHandler(&stubReportService{
		days: func(_ context.Context, req report.EmployeeDaysRequest) (report.EmployeeDays, error) {
			assert.Equal(t, "EMP001", req.EmployeeRef)
			return report.EmployeeDays{
				Year:  req.Year,
				Month: req.Month,
				Days:  map[string]string{"3": "P", "4": "L"},
			}, nil
		},
	})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/reports/attendance/employee-days?employee_id=EMP001&year=2024&month=6", nil)
	w := httptest.NewRecorder()
	handler.GetEmployeeDays(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data report.EmployeeDays `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"3": "P", "4": "L"}, body.Data.Days)
}
