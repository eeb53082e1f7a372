package payroll

import (
	"context"
	"time"
)

// RunRepository defines data access for settlement runs, their line items
// and acknowledgements. Implementations must make SaveRun, MarkPendingAck
// and ConfirmRun atomic: partially replaced line items or a run status that
// disagrees with its acknowledgement must never be observable.
type RunRepository interface {
	// SaveRun upserts the run row keyed by (teacher_id, period_start,
	// period_end) and fully replaces its line items in one transaction.
	// An existing run that is no longer draft must never be overwritten;
	// implementations return ErrInvalidStateTransition in that case even
	// when the caller checked the status beforehand.
	SaveRun(ctx context.Context, run Run, items []RunItem) (Run, error)
	GetRunByID(ctx context.Context, id string) (Run, error)
	GetRunByTeacherPeriod(ctx context.Context, teacherID string, periodStart, periodEnd time.Time) (Run, error)
	GetRunItems(ctx context.Context, runID string) ([]RunItem, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]Run, int64, error)

	GetAcknowledgement(ctx context.Context, runID string) (Acknowledgement, error)
	// MarkPendingAck advances the run to pending_ack and upserts a pending
	// acknowledgement in one transaction.
	MarkPendingAck(ctx context.Context, runID, requestedBy string, requestedAt time.Time) (Acknowledgement, error)
	// ConfirmRun advances the run to confirmed and stamps the
	// acknowledgement in one transaction.
	ConfirmRun(ctx context.Context, runID string, confirmedAt time.Time) (Acknowledgement, error)
}
