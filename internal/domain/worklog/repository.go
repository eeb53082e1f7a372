package worklog

import (
	"context"
	"time"
)

// Repository is the read-only view of the external work-log register.
// Entry capture and review approval live outside this service.
type Repository interface {
	ListApprovedByTeacherAndPeriod(ctx context.Context, teacherID string, periodStart, periodEnd time.Time) ([]Entry, error)
}
