package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Back-office administrator
	RoleManager Role = "manager" // Can approve leave requests
	RoleViewer  Role = "viewer"  // Read-only access to reports
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanApprove checks if user can approve leave requests
func (u *User) CanApprove() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}
