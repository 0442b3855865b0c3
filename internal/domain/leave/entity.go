package leave

import (
	"strings"
	"time"

	"github.com/peoplecore/backoffice-go/internal/pkg/flexdate"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusDeclined = "Declined"
)

// Request is a raw leave request as submitted. EmployeeRef may hold either
// identifier form and the interval endpoints either date shape. Status is
// free text; only values that case-insensitively equal "approved" count
// toward a report.
type Request struct {
	ID          string
	EmployeeRef string
	FromDate    flexdate.FlexDate
	ToDate      flexdate.FlexDate
	Status      string
	LeaveType   string
	Reason      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Approved reports whether the request's status normalizes to "approved".
func (r Request) Approved() bool {
	return strings.EqualFold(strings.TrimSpace(r.Status), StatusApproved)
}

// TypeOrUnknown returns the leave type used for per-type totals.
func (r Request) TypeOrUnknown() string {
	if r.LeaveType == "" {
		return "unknown"
	}
	return r.LeaveType
}
