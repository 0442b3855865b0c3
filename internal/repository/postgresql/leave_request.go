package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/backoffice-go/internal/domain/leave"
	"github.com/peoplecore/backoffice-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `id, employee_ref, from_date, to_date, status, leave_type, reason, created_at, updated_at`

func scanLeave(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.EmployeeRef, &req.FromDate, &req.ToDate,
		&req.Status, &req.LeaveType, &req.Reason, &req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, newRequest leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	if newRequest.ID == "" {
		newRequest.ID = uuid.NewString()
	}
	if newRequest.Status == "" {
		newRequest.Status = leave.StatusPending
	}

	query := `
		INSERT INTO leave_requests (id, employee_ref, from_date, to_date, status, leave_type, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newRequest.ID,
		newRequest.EmployeeRef,
		newRequest.FromDate,
		newRequest.ToDate,
		newRequest.Status,
		newRequest.LeaveType,
		newRequest.Reason,
	).Scan(&newRequest.CreatedAt, &newRequest.UpdatedAt)

	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return newRequest, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`

	req, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return req, nil
}

// ListByEmployeeRef implements leave.LeaveRepository.
func (r *leaveRepository) ListByEmployeeRef(ctx context.Context, employeeRef string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_ref = $1
		ORDER BY created_at DESC, id
	`

	rows, err := q.Query(ctx, query, employeeRef)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// ListApprovedByKeys implements leave.LeaveRepository. Date columns are text
// in two shapes, so interval overlap cannot be decided reliably in SQL; the
// query filters by key and approved status only and leaves interval clipping
// to the caller.
func (r *leaveRepository) ListApprovedByKeys(ctx context.Context, keys []string, start, end time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_ref = ANY($1)
		  AND status ILIKE 'approved'
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE leave_requests SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func collectLeaves(rows pgx.Rows) ([]leave.Request, error) {
	requests := make([]leave.Request, 0)
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
