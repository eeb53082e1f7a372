package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/edupay/edupay-backend-go/internal/pkg/validator"
)

// ========== COMPUTE DTOs ==========

type AdjustmentRequest struct {
	Label       string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"`
	IsDeduction bool            `json:"is_deduction"`
}

type ComputeSettlementRequest struct {
	TeacherID   string                 `json:"teacher_id"`
	TeacherName string                 `json:"teacher_name"`
	PeriodStart string                 `json:"period_start"`
	PeriodEnd   string                 `json:"period_end"`
	Adjustments []AdjustmentRequest    `json:"adjustments,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

func (r *ComputeSettlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TeacherID) {
		errs = append(errs, validator.ValidationError{Field: "teacher_id", Message: "is required"})
	}
	if validator.IsEmpty(r.TeacherName) {
		errs = append(errs, validator.ValidationError{Field: "teacher_name", Message: "is required"})
	}
	start, startOK := validator.IsValidDate(r.PeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.PeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not precede period_start"})
	}
	for _, adj := range r.Adjustments {
		if validator.IsEmpty(adj.Label) {
			errs = append(errs, validator.ValidationError{Field: "adjustments", Message: "every adjustment needs a label"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchTeacherRef struct {
	TeacherID   string `json:"teacher_id"`
	TeacherName string `json:"teacher_name"`
}

type ComputeSettlementBatchRequest struct {
	PeriodStart string            `json:"period_start"`
	PeriodEnd   string            `json:"period_end"`
	Teachers    []BatchTeacherRef `json:"teachers"`
}

func (r *ComputeSettlementBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.PeriodStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidDate(r.PeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if len(r.Teachers) == 0 {
		errs = append(errs, validator.ValidationError{Field: "teachers", Message: "at least one teacher is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSES ==========

type RunResponse struct {
	ID                  string                 `json:"id"`
	TeacherID           string                 `json:"teacher_id"`
	PeriodStart         string                 `json:"period_start"`
	PeriodEnd           string                 `json:"period_end"`
	ContractType        string                 `json:"contract_type"`
	InsuranceEnrolled   bool                   `json:"insurance_enrolled"`
	TotalWorkHours      decimal.Decimal        `json:"total_work_hours"`
	TotalAllowanceHours decimal.Decimal        `json:"total_allowance_hours"`
	HourlyTotal         decimal.Decimal        `json:"hourly_total"`
	AllowanceTotal      decimal.Decimal        `json:"allowance_total"`
	BaseSalaryTotal     decimal.Decimal        `json:"base_salary_total"`
	AdditionsTotal      decimal.Decimal        `json:"additions_total"`
	GrossPay            decimal.Decimal        `json:"gross_pay"`
	DeductionsTotal     decimal.Decimal        `json:"deductions_total"`
	NetPay              decimal.Decimal        `json:"net_pay"`
	Status              string                 `json:"status"`
	Message             string                 `json:"message"`
	Metadata            map[string]interface{} `json:"metadata,omitempty"`
	Breakdown           *CalculationBreakdown  `json:"breakdown,omitempty"`
}

type RunItemResponse struct {
	ID       string          `json:"id"`
	Position int             `json:"position"`
	Kind     string          `json:"kind"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
}

type AcknowledgementResponse struct {
	RunID       string  `json:"run_id"`
	Status      string  `json:"status"`
	RequestedBy string  `json:"requested_by"`
	RequestedAt string  `json:"requested_at"`
	ConfirmedAt *string `json:"confirmed_at,omitempty"`
}

type BatchFailure struct {
	TeacherID string `json:"teacher_id"`
	Reason    string `json:"reason"`
}

type ComputeSettlementBatchResponse struct {
	Computed []RunResponse  `json:"computed"`
	Skipped  []BatchFailure `json:"skipped"`
}

type RunFilter struct {
	TeacherID   *string `json:"teacher_id,omitempty"`
	Status      *string `json:"status,omitempty"`
	PeriodStart *string `json:"period_start,omitempty"`
	PeriodEnd   *string `json:"period_end,omitempty"`
	Page        int     `json:"page"`
	Limit       int     `json:"limit"`
}

type ListRunsResponse struct {
	Data       []RunResponse `json:"data"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
}
