package attendance

import (
	"strings"
	"time"

	"github.com/peoplecore/backoffice-go/internal/pkg/flexdate"
)

// Record is a raw attendance punch as the collector wrote it. EmployeeRef may
// hold either identifier form, Date either date shape, and Status free text;
// the record is immutable from the engine's perspective.
type Record struct {
	ID          string
	EmployeeRef string
	Date        flexdate.FlexDate
	Status      string
	CreatedAt   time.Time
}

// Mark is the resolved presence classification for one employee on one
// calendar day. Values are ordered by precedence: when multiple records
// disagree about a day, the higher mark wins.
type Mark int

const (
	MarkUnmarked Mark = iota
	MarkAbsent
	MarkLeave
	MarkPresent
)

// Letter returns the single-letter form used by the calendar day view.
func (m Mark) Letter() string {
	switch m {
	case MarkPresent:
		return "P"
	case MarkLeave:
		return "L"
	case MarkAbsent:
		return "A"
	default:
		return ""
	}
}

// ClassifyStatus maps a collector's free-text status to a Mark. The mapping
// is total: anything outside the known token buckets is Unmarked, never an
// invented code.
func ClassifyStatus(status string) Mark {
	s := strings.ToLower(strings.TrimSpace(status))
	switch {
	case strings.Contains(s, "abs") || s == "a":
		return MarkAbsent
	case strings.Contains(s, "leave") || s == "l":
		return MarkLeave
	case strings.Contains(s, "login") || strings.Contains(s, "present") || s == "p":
		return MarkPresent
	default:
		return MarkUnmarked
	}
}
