package payroll

import "context"

type SettlementService interface {
	// ComputeSettlement computes (or recomputes, while still draft) the
	// settlement for one teacher and one period and persists it as a run.
	ComputeSettlement(ctx context.Context, req ComputeSettlementRequest) (RunResponse, error)
	// ComputeSettlementBatch computes many teachers for one period; a
	// failing teacher is skipped and reported, never aborts the batch.
	ComputeSettlementBatch(ctx context.Context, req ComputeSettlementBatchRequest) (ComputeSettlementBatchResponse, error)

	GetRun(ctx context.Context, id string) (RunResponse, error)
	GetRunItems(ctx context.Context, runID string) ([]RunItemResponse, error)
	GetStatement(ctx context.Context, runID string) (string, error)
	ListRuns(ctx context.Context, filter RunFilter) (ListRunsResponse, error)

	// RequestAcknowledgement moves draft -> pending_ack. Repeating it on a
	// pending_ack run refreshes requested_at.
	RequestAcknowledgement(ctx context.Context, runID, requestedBy string) (AcknowledgementResponse, error)
	// ConfirmSettlement moves pending_ack -> confirmed; only the owning
	// teacher may confirm. Confirming an already confirmed run is a no-op.
	ConfirmSettlement(ctx context.Context, runID, actorTeacherID string) (AcknowledgementResponse, error)
}
