package leave

import (
	"github.com/peoplecore/backoffice-go/internal/pkg/flexdate"
	"github.com/peoplecore/backoffice-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	EmployeeRef string            `json:"employee_ref"`
	FromDate    flexdate.FlexDate `json:"from_date"`
	ToDate      flexdate.FlexDate `json:"to_date"`
	LeaveType   string            `json:"leave_type"`
	Reason      *string           `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeRef) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ref",
			Message: "employee_ref is required",
		})
	}

	from, fromErr := r.FromDate.Normalize()
	to, toErr := r.ToDate.Normalize()
	if fromErr != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be a valid date",
		})
	}
	if toErr != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be a valid date",
		})
	}
	if fromErr == nil && toErr == nil && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must not be before from_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{StatusApproved, StatusDeclined}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Approved or Declined",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID          string            `json:"id"`
	EmployeeRef string            `json:"employee_ref"`
	FromDate    flexdate.FlexDate `json:"from_date"`
	ToDate      flexdate.FlexDate `json:"to_date"`
	Status      string            `json:"status"`
	LeaveType   string            `json:"leave_type"`
	Reason      *string           `json:"reason,omitempty"`
}

func ToResponse(req Request) RequestResponse {
	return RequestResponse{
		ID:          req.ID,
		EmployeeRef: req.EmployeeRef,
		FromDate:    req.FromDate,
		ToDate:      req.ToDate,
		Status:      req.Status,
		LeaveType:   req.LeaveType,
		Reason:      req.Reason,
	}
}
