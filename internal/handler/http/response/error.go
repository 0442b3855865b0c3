package response

import (
	"errors"
	"net/http"

	"github.com/peoplecore/backoffice-go/internal/domain/auth"
	"github.com/peoplecore/backoffice-go/internal/domain/employee"
	"github.com/peoplecore/backoffice-go/internal/domain/leave"
	"github.com/peoplecore/backoffice-go/internal/domain/report"
	"github.com/peoplecore/backoffice-go/internal/domain/user"
	"github.com/peoplecore/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")

	// Report domain errors
	case errors.Is(err, report.ErrDataSource):
		InternalServerError(w, "Failed to load report data")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
