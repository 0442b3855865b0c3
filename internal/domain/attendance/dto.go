package attendance

import (
	"github.com/peoplecore/backoffice-go/internal/pkg/flexdate"
	"github.com/peoplecore/backoffice-go/internal/pkg/validator"
)

type CreateRecordRequest struct {
	EmployeeRef string            `json:"employee_ref"`
	Date        flexdate.FlexDate `json:"date"`
	Status      string            `json:"status"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeRef) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ref",
			Message: "employee_ref is required",
		})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}
	// The date itself is not normalized here: collectors are allowed to file
	// legacy-formatted values, and the report engine decides what to do with
	// ones it cannot parse. An entirely absent date is still rejected.
	if !r.Date.IsStructured() && validator.IsEmpty(r.Date.Raw()) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID          string            `json:"id"`
	EmployeeRef string            `json:"employee_ref"`
	Date        flexdate.FlexDate `json:"date"`
	Status      string            `json:"status"`
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:          rec.ID,
		EmployeeRef: rec.EmployeeRef,
		Date:        rec.Date,
		Status:      rec.Status,
	}
}
