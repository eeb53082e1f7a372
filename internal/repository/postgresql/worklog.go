package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/edupay/edupay-backend-go/internal/domain/worklog"
	"github.com/edupay/edupay-backend-go/internal/pkg/database"
)

type workLogRepository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewWorkLogRepository(db *database.DB, logger *slog.Logger) worklog.Repository {
	return &workLogRepository{db: db, logger: logger}
}

// ListApprovedByTeacherAndPeriod loads approved entries ordered by work date.
// Hours columns are text upstream; malformed values are parsed to zero rather
// than failing the whole period.
func (r *workLogRepository) ListApprovedByTeacherAndPeriod(ctx context.Context, teacherID string, periodStart, periodEnd time.Time) ([]worklog.Entry, error) {
	query := `
		SELECT id, teacher_id, work_date, status, work_hours,
			   substitute_staff_id, substitute_external_name, substitute_external_contact,
			   substitute_external_bank_account, substitute_external_hours,
			   review_status, created_at
		FROM work_log_entries
		WHERE teacher_id = $1
		  AND work_date >= $2
		  AND work_date <= $3
		  AND review_status = 'approved'
		ORDER BY work_date
	`

	rows, err := r.db.Pool.Query(ctx, query, teacherID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list work log entries: %w", err)
	}
	defer rows.Close()

	var entries []worklog.Entry
	for rows.Next() {
		var e worklog.Entry
		var workHours *string
		var subStaffID, subName, subContact, subBankAccount, subHours *string
		err := rows.Scan(
			&e.ID, &e.TeacherID, &e.Date, &e.Status, &workHours,
			&subStaffID, &subName, &subContact, &subBankAccount, &subHours,
			&e.ReviewStatus, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work log entry: %w", err)
		}
		if !e.Status.Valid() {
			return nil, fmt.Errorf("%w: %q on entry %s", worklog.ErrInvalidStatus, e.Status, e.ID)
		}

		e.Hours = worklog.ParseHours(workHours, r.logger)
		if e.Status == worklog.StatusSubstitute {
			externalHours := worklog.ParseHours(subHours, r.logger)
			e.Substitute = &worklog.SubstituteInfo{
				StaffID:             subStaffID,
				ExternalName:        subName,
				ExternalContact:     subContact,
				ExternalBankAccount: subBankAccount,
				ExternalHours:       &externalHours,
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
