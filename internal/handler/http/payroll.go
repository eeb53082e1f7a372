package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type PayrollHandler interface {
	ComputeRun(w http.ResponseWriter, r *http.Request)
	ComputeRunBatch(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
	GetRunItems(w http.ResponseWriter, r *http.Request)
	GetStatement(w http.ResponseWriter, r *http.Request)
	RequestAcknowledgement(w http.ResponseWriter, r *http.Request)
	ConfirmRun(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	settlementService payroll.SettlementService
}

func NewPayrollHandler(settlementService payroll.SettlementService) PayrollHandler {
	return &PayrollHandlerImpl{settlementService: settlementService}
}

// ComputeRun implements PayrollHandler.
func (h *PayrollHandlerImpl) ComputeRun(w http.ResponseWriter, r *http.Request) {
	var req payroll.ComputeSettlementRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ComputeRun decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	run, err := h.settlementService.ComputeSettlement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Settlement computed successfully", run)
}

// ComputeRunBatch implements PayrollHandler.
func (h *PayrollHandlerImpl) ComputeRunBatch(w http.ResponseWriter, r *http.Request) {
	var req payroll.ComputeSettlementBatchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ComputeRunBatch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settlementService.ComputeSettlementBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Batch settlement computed", result)
}

// ListRuns implements PayrollHandler.
func (h *PayrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	filter := payroll.RunFilter{Page: 1, Limit: 20}

	q := r.URL.Query()
	if v := q.Get("teacher_id"); v != "" {
		filter.TeacherID = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("period_start"); v != "" {
		filter.PeriodStart = &v
	}
	if v := q.Get("period_end"); v != "" {
		filter.PeriodEnd = &v
	}
	if v := q.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	result, err := h.settlementService.ListRuns(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

// GetRun implements PayrollHandler.
func (h *PayrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")
	if runID == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	run, err := h.settlementService.GetRun(r.Context(), runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, run)
}

// GetRunItems implements PayrollHandler.
func (h *PayrollHandlerImpl) GetRunItems(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")
	if runID == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	items, err := h.settlementService.GetRunItems(r.Context(), runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// GetStatement implements PayrollHandler.
func (h *PayrollHandlerImpl) GetStatement(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")
	if runID == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	statement, err := h.settlementService.GetStatement(r.Context(), runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(statement))
}

// RequestAcknowledgement implements PayrollHandler.
func (h *PayrollHandlerImpl) RequestAcknowledgement(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")
	if runID == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		slog.Error("Failed to get JWT claims", "error", err)
		response.Unauthorized(w, "Unauthorized")
		return
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.Forbidden(w, "User ID not found in token")
		return
	}

	ack, err := h.settlementService.RequestAcknowledgement(r.Context(), runID, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Acknowledgement requested", ack)
}

// ConfirmRun implements PayrollHandler.
func (h *PayrollHandlerImpl) ConfirmRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")
	if runID == "" {
		response.BadRequest(w, "Run ID is required", nil)
		return
	}

	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		slog.Error("Failed to get JWT claims", "error", err)
		response.Unauthorized(w, "Unauthorized")
		return
	}

	teacherID, ok := claims["teacher_id"].(string)
	if !ok || teacherID == "" {
		response.Forbidden(w, "Teacher ID not found in token")
		return
	}

	ack, err := h.settlementService.ConfirmSettlement(r.Context(), runID, teacherID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settlement confirmed", ack)
}
