package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/profile"
	"github.com/edupay/edupay-backend-go/internal/domain/worklog"
	"github.com/edupay/edupay-backend-go/internal/pkg/validator"
)

type SettlementServiceImpl struct {
	runRepo     payroll.RunRepository
	profileRepo profile.Repository
	worklogRepo worklog.Repository
	loc         *time.Location
	logger      *slog.Logger
}

func NewSettlementService(
	runRepo payroll.RunRepository,
	profileRepo profile.Repository,
	worklogRepo worklog.Repository,
	loc *time.Location,
	logger *slog.Logger,
) payroll.SettlementService {
	return &SettlementServiceImpl{
		runRepo:     runRepo,
		profileRepo: profileRepo,
		worklogRepo: worklogRepo,
		loc:         loc,
		logger:      logger,
	}
}

// ========== COMPUTE ==========

func (s *SettlementServiceImpl) ComputeSettlement(ctx context.Context, req payroll.ComputeSettlementRequest) (payroll.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunResponse{}, err
	}

	periodStart, _ := time.ParseInLocation("2006-01-02", req.PeriodStart, s.loc)
	periodEnd, _ := time.ParseInLocation("2006-01-02", req.PeriodEnd, s.loc)

	// Recompute is only allowed while the run does not exist or is still
	// draft. Anything later needs an explicit administrative downgrade or a
	// new period.
	runID := uuid.NewString()
	existing, err := s.runRepo.GetRunByTeacherPeriod(ctx, req.TeacherID, periodStart, periodEnd)
	switch {
	case err == nil:
		if existing.Status != payroll.RunStatusDraft {
			return payroll.RunResponse{}, fmt.Errorf("%w: cannot recompute a %s run", payroll.ErrInvalidStateTransition, existing.Status)
		}
		runID = existing.ID
	case errors.Is(err, payroll.ErrRunNotFound):
		// first computation for this teacher and period
	default:
		return payroll.RunResponse{}, fmt.Errorf("failed to check existing run: %w", err)
	}

	prof, err := s.profileRepo.GetEffective(ctx, req.TeacherID, periodStart, periodEnd)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	entries, err := s.worklogRepo.ListApprovedByTeacherAndPeriod(ctx, req.TeacherID, periodStart, periodEnd)
	if err != nil {
		return payroll.RunResponse{}, fmt.Errorf("failed to load work log entries: %w", err)
	}

	adjustments := make([]payroll.Adjustment, 0, len(req.Adjustments))
	for _, adj := range req.Adjustments {
		adjustments = append(adjustments, payroll.Adjustment{
			Label:       adj.Label,
			Amount:      adj.Amount,
			IsDeduction: adj.IsDeduction,
		})
	}

	breakdown := ComposeBreakdown(entries, prof, adjustments, periodStart, periodEnd, s.loc)
	message := RenderStatement(breakdown, req.TeacherName, periodLabel(periodStart, periodEnd))

	run := payroll.Run{
		ID:                  runID,
		TeacherID:           req.TeacherID,
		PeriodStart:         periodStart,
		PeriodEnd:           periodEnd,
		ContractType:        prof.ContractType,
		InsuranceEnrolled:   prof.InsuranceEnrolled,
		TotalWorkHours:      breakdown.TotalWorkHours,
		TotalAllowanceHours: breakdown.TotalAllowanceHours,
		HourlyTotal:         breakdown.HourlyTotal,
		AllowanceTotal:      breakdown.AllowanceTotal,
		BaseSalaryTotal:     breakdown.BaseSalaryTotal,
		AdditionsTotal:      breakdown.AdditionsTotal,
		GrossPay:            breakdown.GrossPay,
		DeductionsTotal:     breakdown.DeductionsTotal,
		NetPay:              breakdown.NetPay,
		Status:              payroll.RunStatusDraft,
		Message:             message,
		Metadata:            req.Metadata,
	}

	saved, err := s.runRepo.SaveRun(ctx, run, buildRunItems(runID, breakdown))
	if err != nil {
		return payroll.RunResponse{}, fmt.Errorf("failed to persist settlement run: %w", err)
	}

	resp := mapRunResponse(saved)
	resp.Breakdown = &breakdown
	return resp, nil
}

func (s *SettlementServiceImpl) ComputeSettlementBatch(ctx context.Context, req payroll.ComputeSettlementBatchRequest) (payroll.ComputeSettlementBatchResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ComputeSettlementBatchResponse{}, err
	}

	periodStart, _ := time.ParseInLocation("2006-01-02", req.PeriodStart, s.loc)
	periodEnd, _ := time.ParseInLocation("2006-01-02", req.PeriodEnd, s.loc)
	if periodEnd.Before(periodStart) {
		return payroll.ComputeSettlementBatchResponse{}, fmt.Errorf("%w: period_end precedes period_start", payroll.ErrInvalidPeriod)
	}

	resp := payroll.ComputeSettlementBatchResponse{
		Computed: []payroll.RunResponse{},
		Skipped:  []payroll.BatchFailure{},
	}
	for _, teacher := range req.Teachers {
		run, err := s.ComputeSettlement(ctx, payroll.ComputeSettlementRequest{
			TeacherID:   teacher.TeacherID,
			TeacherName: teacher.TeacherName,
			PeriodStart: req.PeriodStart,
			PeriodEnd:   req.PeriodEnd,
		})
		if err != nil {
			// One teacher's bad data must not block the rest of the batch.
			s.logger.Warn("settlement computation skipped",
				"teacher_id", teacher.TeacherID,
				"period_start", req.PeriodStart,
				"period_end", req.PeriodEnd,
				"error", err)
			resp.Skipped = append(resp.Skipped, payroll.BatchFailure{
				TeacherID: teacher.TeacherID,
				Reason:    err.Error(),
			})
			continue
		}
		resp.Computed = append(resp.Computed, run)
	}
	return resp, nil
}

// ========== READS ==========

func (s *SettlementServiceImpl) GetRun(ctx context.Context, id string) (payroll.RunResponse, error) {
	run, err := s.runRepo.GetRunByID(ctx, id)
	if err != nil {
		return payroll.RunResponse{}, err
	}
	return mapRunResponse(run), nil
}

func (s *SettlementServiceImpl) GetRunItems(ctx context.Context, runID string) ([]payroll.RunItemResponse, error) {
	if _, err := s.runRepo.GetRunByID(ctx, runID); err != nil {
		return nil, err
	}

	items, err := s.runRepo.GetRunItems(ctx, runID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.RunItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, payroll.RunItemResponse{
			ID:       item.ID,
			Position: item.Position,
			Kind:     string(item.Kind),
			Label:    item.Label,
			Amount:   item.Amount,
		})
	}
	return result, nil
}

func (s *SettlementServiceImpl) GetStatement(ctx context.Context, runID string) (string, error) {
	run, err := s.runRepo.GetRunByID(ctx, runID)
	if err != nil {
		return "", err
	}
	return run.Message, nil
}

func (s *SettlementServiceImpl) ListRuns(ctx context.Context, filter payroll.RunFilter) (payroll.ListRunsResponse, error) {
	if filter.Status != nil && !validator.IsInSlice(*filter.Status, []string{
		string(payroll.RunStatusDraft),
		string(payroll.RunStatusPendingAck),
		string(payroll.RunStatusConfirmed),
	}) {
		return payroll.ListRunsResponse{}, validator.ValidationErrors{
			{Field: "status", Message: "must be 'draft', 'pending_ack' or 'confirmed'"},
		}
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	runs, totalCount, err := s.runRepo.ListRuns(ctx, filter)
	if err != nil {
		return payroll.ListRunsResponse{}, err
	}

	data := make([]payroll.RunResponse, 0, len(runs))
	for _, run := range runs {
		data = append(data, mapRunResponse(run))
	}
	return payroll.ListRunsResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// ========== LIFECYCLE ==========

func (s *SettlementServiceImpl) RequestAcknowledgement(ctx context.Context, runID, requestedBy string) (payroll.AcknowledgementResponse, error) {
	run, err := s.runRepo.GetRunByID(ctx, runID)
	if err != nil {
		return payroll.AcknowledgementResponse{}, err
	}

	switch run.Status {
	case payroll.RunStatusDraft, payroll.RunStatusPendingAck:
		// Repeating the request on a pending run refreshes requested_at.
		ack, err := s.runRepo.MarkPendingAck(ctx, run.ID, requestedBy, time.Now())
		if err != nil {
			return payroll.AcknowledgementResponse{}, fmt.Errorf("failed to request acknowledgement: %w", err)
		}
		return mapAcknowledgementResponse(ack), nil
	default:
		return payroll.AcknowledgementResponse{}, fmt.Errorf("%w: cannot request acknowledgement on a %s run", payroll.ErrInvalidStateTransition, run.Status)
	}
}

func (s *SettlementServiceImpl) ConfirmSettlement(ctx context.Context, runID, actorTeacherID string) (payroll.AcknowledgementResponse, error) {
	run, err := s.runRepo.GetRunByID(ctx, runID)
	if err != nil {
		return payroll.AcknowledgementResponse{}, err
	}

	if run.TeacherID != actorTeacherID {
		return payroll.AcknowledgementResponse{}, payroll.ErrNotRunOwner
	}

	switch run.Status {
	case payroll.RunStatusConfirmed:
		// Idempotent: confirming an already confirmed run is a no-op.
		ack, err := s.runRepo.GetAcknowledgement(ctx, run.ID)
		if err != nil {
			return payroll.AcknowledgementResponse{}, err
		}
		return mapAcknowledgementResponse(ack), nil
	case payroll.RunStatusPendingAck:
		ack, err := s.runRepo.ConfirmRun(ctx, run.ID, time.Now())
		if err != nil {
			return payroll.AcknowledgementResponse{}, err
		}
		return mapAcknowledgementResponse(ack), nil
	default:
		return payroll.AcknowledgementResponse{}, fmt.Errorf("%w: cannot confirm a %s run", payroll.ErrInvalidStateTransition, run.Status)
	}
}

// ========== HELPERS ==========

func periodLabel(periodStart, periodEnd time.Time) string {
	return periodStart.Format("2006-01-02") + " ~ " + periodEnd.Format("2006-01-02")
}

// buildRunItems flattens a breakdown into the ordered line items persisted
// with the run: earnings, then deductions, then per-week info lines.
func buildRunItems(runID string, b payroll.CalculationBreakdown) []payroll.RunItem {
	var items []payroll.RunItem
	add := func(kind payroll.ItemKind, label string, amount decimal.Decimal) {
		items = append(items, payroll.RunItem{
			ID:       uuid.NewString(),
			RunID:    runID,
			Position: len(items) + 1,
			Kind:     kind,
			Label:    label,
			Amount:   amount,
		})
	}

	add(payroll.ItemKindEarning, "Hourly pay", b.HourlyTotal)
	if b.AllowanceTotal.IsPositive() {
		add(payroll.ItemKindEarning, "Weekly rest allowance", b.AllowanceTotal)
	}
	if b.BaseSalaryTotal.IsPositive() {
		add(payroll.ItemKindEarning, "Base salary", b.BaseSalaryTotal)
	}
	for _, adj := range b.Additions {
		add(payroll.ItemKindEarning, adj.Label, adj.Amount)
	}
	for _, line := range b.Deductions {
		add(payroll.ItemKindDeduction, line.Label, line.Amount)
	}
	for _, week := range b.Weeks {
		label := fmt.Sprintf("Week %s ~ %s: %sh",
			week.DisplayStart.Format("2006-01-02"),
			week.DisplayEnd.Format("2006-01-02"),
			week.TotalWorkHours.String())
		add(payroll.ItemKindInfo, label, decimal.Zero)
	}
	return items
}

func mapRunResponse(run payroll.Run) payroll.RunResponse {
	return payroll.RunResponse{
		ID:                  run.ID,
		TeacherID:           run.TeacherID,
		PeriodStart:         run.PeriodStart.Format("2006-01-02"),
		PeriodEnd:           run.PeriodEnd.Format("2006-01-02"),
		ContractType:        string(run.ContractType),
		InsuranceEnrolled:   run.InsuranceEnrolled,
		TotalWorkHours:      run.TotalWorkHours,
		TotalAllowanceHours: run.TotalAllowanceHours,
		HourlyTotal:         run.HourlyTotal,
		AllowanceTotal:      run.AllowanceTotal,
		BaseSalaryTotal:     run.BaseSalaryTotal,
		AdditionsTotal:      run.AdditionsTotal,
		GrossPay:            run.GrossPay,
		DeductionsTotal:     run.DeductionsTotal,
		NetPay:              run.NetPay,
		Status:              string(run.Status),
		Message:             run.Message,
		Metadata:            run.Metadata,
	}
}

func mapAcknowledgementResponse(ack payroll.Acknowledgement) payroll.AcknowledgementResponse {
	var confirmedAt *string
	if ack.ConfirmedAt != nil {
		str := ack.ConfirmedAt.Format(time.RFC3339)
		confirmedAt = &str
	}
	return payroll.AcknowledgementResponse{
		RunID:       ack.RunID,
		Status:      string(ack.Status),
		RequestedBy: ack.RequestedBy,
		RequestedAt: ack.RequestedAt.Format(time.RFC3339),
		ConfirmedAt: confirmedAt,
	}
}
