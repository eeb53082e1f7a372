package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type runRepository struct {
	db *database.DB
}

func NewRunRepository(db *database.DB) payroll.RunRepository {
	return &runRepository{db: db}
}

const runColumns = `id, teacher_id, period_start, period_end, contract_type, insurance_enrolled,
	total_work_hours, total_allowance_hours, hourly_total, allowance_total,
	base_salary_total, additions_total, gross_pay, deductions_total, net_pay,
	status, message, metadata, created_at, updated_at`

func scanRun(row pgx.Row) (payroll.Run, error) {
	var run payroll.Run
	var metadata []byte
	err := row.Scan(
		&run.ID, &run.TeacherID, &run.PeriodStart, &run.PeriodEnd, &run.ContractType, &run.InsuranceEnrolled,
		&run.TotalWorkHours, &run.TotalAllowanceHours, &run.HourlyTotal, &run.AllowanceTotal,
		&run.BaseSalaryTotal, &run.AdditionsTotal, &run.GrossPay, &run.DeductionsTotal, &run.NetPay,
		&run.Status, &run.Message, &metadata, &run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		return payroll.Run{}, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &run.Metadata); err != nil {
			return payroll.Run{}, fmt.Errorf("failed to decode run metadata: %w", err)
		}
	}
	return run, nil
}

// ========== RUNS ==========

func (r *runRepository) SaveRun(ctx context.Context, run payroll.Run, items []payroll.RunItem) (payroll.Run, error) {
	var metadata []byte
	if run.Metadata != nil {
		var err error
		metadata, err = json.Marshal(run.Metadata)
		if err != nil {
			return payroll.Run{}, fmt.Errorf("failed to encode run metadata: %w", err)
		}
	}

	var saved payroll.Run
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO teacher_payroll_runs (
				id, teacher_id, period_start, period_end, contract_type, insurance_enrolled,
				total_work_hours, total_allowance_hours, hourly_total, allowance_total,
				base_salary_total, additions_total, gross_pay, deductions_total, net_pay,
				status, message, metadata
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
			ON CONFLICT (teacher_id, period_start, period_end) DO UPDATE SET
				contract_type = EXCLUDED.contract_type,
				insurance_enrolled = EXCLUDED.insurance_enrolled,
				total_work_hours = EXCLUDED.total_work_hours,
				total_allowance_hours = EXCLUDED.total_allowance_hours,
				hourly_total = EXCLUDED.hourly_total,
				allowance_total = EXCLUDED.allowance_total,
				base_salary_total = EXCLUDED.base_salary_total,
				additions_total = EXCLUDED.additions_total,
				gross_pay = EXCLUDED.gross_pay,
				deductions_total = EXCLUDED.deductions_total,
				net_pay = EXCLUDED.net_pay,
				status = EXCLUDED.status,
				message = EXCLUDED.message,
				metadata = EXCLUDED.metadata,
				updated_at = NOW()
			WHERE teacher_payroll_runs.status = 'draft'
			RETURNING ` + runColumns

		var err error
		saved, err = scanRun(tx.QueryRow(ctx, query,
			run.ID, run.TeacherID, run.PeriodStart, run.PeriodEnd, run.ContractType, run.InsuranceEnrolled,
			run.TotalWorkHours, run.TotalAllowanceHours, run.HourlyTotal, run.AllowanceTotal,
			run.BaseSalaryTotal, run.AdditionsTotal, run.GrossPay, run.DeductionsTotal, run.NetPay,
			run.Status, run.Message, metadata,
		))
		if err != nil {
			// The guarded upsert returns no row when the existing run has
			// already advanced past draft. Checking status before computing
			// is not enough: a confirm can commit in between.
			if err == pgx.ErrNoRows {
				return fmt.Errorf("%w: run is no longer draft", payroll.ErrInvalidStateTransition)
			}
			return fmt.Errorf("failed to upsert payroll run: %w", err)
		}

		// Line items are always replaced wholesale; a recompute must never
		// leave a stale item behind.
		if _, err := tx.Exec(ctx, `DELETE FROM teacher_payroll_run_items WHERE run_id = $1`, saved.ID); err != nil {
			return fmt.Errorf("failed to clear payroll run items: %w", err)
		}
		for _, item := range items {
			_, err := tx.Exec(ctx, `
				INSERT INTO teacher_payroll_run_items (id, run_id, position, kind, label, amount)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, item.ID, saved.ID, item.Position, item.Kind, item.Label, item.Amount)
			if err != nil {
				return fmt.Errorf("failed to insert payroll run item: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return payroll.Run{}, err
	}

	return saved, nil
}

func (r *runRepository) GetRunByID(ctx context.Context, id string) (payroll.Run, error) {
	query := `SELECT ` + runColumns + ` FROM teacher_payroll_runs WHERE id = $1`

	run, err := scanRun(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to get payroll run: %w", err)
	}
	return run, nil
}

func (r *runRepository) GetRunByTeacherPeriod(ctx context.Context, teacherID string, periodStart, periodEnd time.Time) (payroll.Run, error) {
	query := `
		SELECT ` + runColumns + `
		FROM teacher_payroll_runs
		WHERE teacher_id = $1 AND period_start = $2 AND period_end = $3
	`

	run, err := scanRun(r.db.Pool.QueryRow(ctx, query, teacherID, periodStart, periodEnd))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to get payroll run by period: %w", err)
	}
	return run, nil
}

func (r *runRepository) GetRunItems(ctx context.Context, runID string) ([]payroll.RunItem, error) {
	query := `
		SELECT id, run_id, position, kind, label, amount
		FROM teacher_payroll_run_items
		WHERE run_id = $1
		ORDER BY position
	`

	rows, err := r.db.Pool.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll run items: %w", err)
	}
	defer rows.Close()

	var items []payroll.RunItem
	for rows.Next() {
		var item payroll.RunItem
		if err := rows.Scan(&item.ID, &item.RunID, &item.Position, &item.Kind, &item.Label, &item.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan payroll run item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *runRepository) ListRuns(ctx context.Context, filter payroll.RunFilter) ([]payroll.Run, int64, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.TeacherID != nil {
		conditions = append(conditions, fmt.Sprintf("teacher_id = $%d", argPos))
		args = append(args, *filter.TeacherID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.PeriodStart != nil {
		conditions = append(conditions, fmt.Sprintf("period_start >= $%d", argPos))
		args = append(args, *filter.PeriodStart)
		argPos++
	}
	if filter.PeriodEnd != nil {
		conditions = append(conditions, fmt.Sprintf("period_end <= $%d", argPos))
		args = append(args, *filter.PeriodEnd)
		argPos++
	}
	where := strings.Join(conditions, " AND ")

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM teacher_payroll_runs WHERE ` + where
	if err := r.db.Pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll runs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+runColumns+`
		FROM teacher_payroll_runs
		WHERE %s
		ORDER BY period_start DESC, teacher_id
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, totalCount, rows.Err()
}

// ========== ACKNOWLEDGEMENTS ==========

const ackColumns = `run_id, status, requested_by, requested_at, confirmed_at, updated_at`

func scanAcknowledgement(row pgx.Row) (payroll.Acknowledgement, error) {
	var ack payroll.Acknowledgement
	err := row.Scan(&ack.RunID, &ack.Status, &ack.RequestedBy, &ack.RequestedAt, &ack.ConfirmedAt, &ack.UpdatedAt)
	return ack, err
}

func (r *runRepository) GetAcknowledgement(ctx context.Context, runID string) (payroll.Acknowledgement, error) {
	query := `SELECT ` + ackColumns + ` FROM teacher_payroll_acknowledgements WHERE run_id = $1`

	ack, err := scanAcknowledgement(r.db.Pool.QueryRow(ctx, query, runID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Acknowledgement{}, payroll.ErrAcknowledgementNotFound
		}
		return payroll.Acknowledgement{}, fmt.Errorf("failed to get acknowledgement: %w", err)
	}
	return ack, nil
}

func (r *runRepository) MarkPendingAck(ctx context.Context, runID, requestedBy string, requestedAt time.Time) (payroll.Acknowledgement, error) {
	var ack payroll.Acknowledgement
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE teacher_payroll_runs
			SET status = 'pending_ack', updated_at = NOW()
			WHERE id = $1 AND status IN ('draft', 'pending_ack')
		`, runID)
		if err != nil {
			return fmt.Errorf("failed to mark run pending: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: run is not draft or pending_ack", payroll.ErrInvalidStateTransition)
		}

		ack, err = scanAcknowledgement(tx.QueryRow(ctx, `
			INSERT INTO teacher_payroll_acknowledgements (run_id, status, requested_by, requested_at)
			VALUES ($1, 'pending', $2, $3)
			ON CONFLICT (run_id) DO UPDATE SET
				status = 'pending',
				requested_by = EXCLUDED.requested_by,
				requested_at = EXCLUDED.requested_at,
				updated_at = NOW()
			RETURNING `+ackColumns, runID, requestedBy, requestedAt))
		if err != nil {
			return fmt.Errorf("failed to upsert acknowledgement: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.Acknowledgement{}, err
	}
	return ack, nil
}

func (r *runRepository) ConfirmRun(ctx context.Context, runID string, confirmedAt time.Time) (payroll.Acknowledgement, error) {
	var ack payroll.Acknowledgement
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE teacher_payroll_runs
			SET status = 'confirmed', updated_at = NOW()
			WHERE id = $1 AND status = 'pending_ack'
		`, runID)
		if err != nil {
			return fmt.Errorf("failed to confirm run: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: run is not pending_ack", payroll.ErrInvalidStateTransition)
		}

		ack, err = scanAcknowledgement(tx.QueryRow(ctx, `
			UPDATE teacher_payroll_acknowledgements
			SET status = 'confirmed', confirmed_at = $2, updated_at = NOW()
			WHERE run_id = $1
			RETURNING `+ackColumns, runID, confirmedAt))
		if err != nil {
			if err == pgx.ErrNoRows {
				return payroll.ErrAcknowledgementNotFound
			}
			return fmt.Errorf("failed to confirm acknowledgement: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.Acknowledgement{}, err
	}
	return ack, nil
}
