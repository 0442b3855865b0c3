package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/peoplecore/backoffice-go/internal/domain/attendance"
	"github.com/peoplecore/backoffice-go/internal/handler/http/response"
	attendanceService "github.com/peoplecore/backoffice-go/internal/service/attendance"
)

type AttendanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService *attendanceService.AttendanceService
}

func NewAttendanceHandler(svc *attendanceService.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: svc,
	}
}

// Create handles POST /attendance
func (h *attendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Attendance create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.attendanceService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Attendance create error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance record created", created)
}

// ListByEmployee handles GET /attendance
func (h *attendanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("employee_id")
	if id == "" {
		response.BadRequest(w, "employee_id parameter is required", nil)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "invalid month parameter", nil)
		return
	}

	records, err := h.attendanceService.ListByEmployee(r.Context(), id, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
