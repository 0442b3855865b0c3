package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/peoplecore/backoffice-go/internal/domain/attendance"
	"github.com/peoplecore/backoffice-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, newRecord attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	if newRecord.ID == "" {
		newRecord.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_records (id, employee_ref, recorded_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		newRecord.ID,
		newRecord.EmployeeRef,
		newRecord.Date,
		newRecord.Status,
	).Scan(&newRecord.CreatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return newRecord, nil
}

// ListByKeys implements attendance.AttendanceRepository. recorded_date is a
// text column carrying two shapes: RFC 3339 timestamps (which sort
// lexicographically, so a range compare works) and legacy "DD-MM-YYYY"
// strings (matched by month-year suffix). Both arms over-fetch slightly;
// the report engine re-filters after normalization.
func (r *attendanceRepository) ListByKeys(ctx context.Context, keys []string, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_ref, recorded_date, status, created_at
		FROM attendance_records
		WHERE employee_ref = ANY($1)
		  AND (
			(recorded_date >= $2 AND recorded_date <= $3)
			OR recorded_date LIKE $4
		  )
		ORDER BY created_at, id
	`

	legacySuffix := fmt.Sprintf("%%-%02d-%04d", int(start.Month()), start.Year())

	rows, err := q.Query(ctx, query,
		keys,
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
		legacySuffix,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(&rec.ID, &rec.EmployeeRef, &rec.Date, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
