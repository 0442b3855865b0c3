package report

import "github.com/peoplecore/backoffice-go/internal/pkg/validator"

// ========================================
// MONTHLY ATTENDANCE SUMMARY
// ========================================

type MonthlySummaryRequest struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Department string `json:"department"`
}

func (r *MonthlySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is required",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type YearlySummaryRequest struct {
	Year       int    `json:"year"`
	Department string `json:"department"`
}

func (r *YearlySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlySummary struct {
	Year              int                          `json:"year"`
	Month             int                          `json:"month"`
	BusinessDays      int                          `json:"business_days"`
	Employees         []EmployeeMonthSummary       `json:"employees"`
	DepartmentSummary map[string]DepartmentSummary `json:"department_summary"`
}

type EmployeeMonthSummary struct {
	EmployeeID          string         `json:"employee_id"`
	EmployeeCode        string         `json:"employee_code"`
	EmployeeName        string         `json:"employee_name"`
	Department          string         `json:"department"`
	Position            string         `json:"position"`
	BusinessDaysInMonth int            `json:"business_days_in_month"`
	PresentDays         int            `json:"present_days"`
	LeaveDays           int            `json:"leave_days"`
	LeaveByType         map[string]int `json:"leave_by_type"`
	AbsentDays          int            `json:"absent_days"`
}

type DepartmentSummary struct {
	Employees int `json:"employees"`
	Present   int `json:"present"`
	Leave     int `json:"leave"`
	Absent    int `json:"absent"`
}

type YearlySummary struct {
	Year   int              `json:"year"`
	Months []MonthlySummary `json:"months"`
}

// ========================================
// EMPLOYEE DAY MARKERS
// ========================================

type EmployeeDaysRequest struct {
	EmployeeRef string `json:"employee_ref"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
}

func (r *EmployeeDaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeRef) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Year < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is required",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeDays is the lightweight per-day marker map used by calendar
// rendering: day-of-month (as a string) to "P", "L" or "A".
type EmployeeDays struct {
	Year  int               `json:"year"`
	Month int               `json:"month"`
	Days  map[string]string `json:"days"`
}
