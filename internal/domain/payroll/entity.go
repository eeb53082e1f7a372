package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/edupay/edupay-backend-go/internal/domain/profile"
)

// WeeklyWorkSummary is the derived aggregate for one calendar week (Monday
// start), clipped to the settlement period for display. Never persisted;
// rebuilt on every computation.
type WeeklyWorkSummary struct {
	WeekStart         time.Time       `json:"week_start"`
	DisplayStart      time.Time       `json:"display_start"`
	DisplayEnd        time.Time       `json:"display_end"`
	TotalWorkHours    decimal.Decimal `json:"total_work_hours"`
	HasTardy          bool            `json:"has_tardy"`
	HasAbsence        bool            `json:"has_absence"`
	HasSubstitute     bool            `json:"has_substitute"`
	AllowanceEligible bool            `json:"allowance_eligible"`
	AllowanceHours    decimal.Decimal `json:"allowance_hours"`
}

// Adjustment is a manual one-off addition or subtraction applied after the
// rule-based computation. Not tied to any work-log entry.
type Adjustment struct {
	Label       string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"`
	IsDeduction bool            `json:"is_deduction"`
}

// DeductionLine is one itemized withholding, statutory or manual.
type DeductionLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// CalculationBreakdown is the complete computed result for one teacher and
// one settlement period. Purely derived and never mutated; recomputation
// produces a new breakdown.
type CalculationBreakdown struct {
	TotalWorkHours      decimal.Decimal     `json:"total_work_hours"`
	TotalAllowanceHours decimal.Decimal     `json:"total_allowance_hours"`
	HourlyTotal         decimal.Decimal     `json:"hourly_total"`
	AllowanceTotal      decimal.Decimal     `json:"allowance_total"`
	BaseSalaryTotal     decimal.Decimal     `json:"base_salary_total"`
	Additions           []Adjustment        `json:"additions"`
	ManualDeductions    []Adjustment        `json:"manual_deductions"`
	AdditionsTotal      decimal.Decimal     `json:"additions_total"`
	GrossPay            decimal.Decimal     `json:"gross_pay"`
	Deductions          []DeductionLine     `json:"deductions"`
	DeductionsTotal     decimal.Decimal     `json:"deductions_total"`
	NetPay              decimal.Decimal     `json:"net_pay"`
	Weeks               []WeeklyWorkSummary `json:"weeks"`
}

// RunStatus enum for the settlement lifecycle.
type RunStatus string

const (
	RunStatusDraft      RunStatus = "draft"
	RunStatusPendingAck RunStatus = "pending_ack"
	RunStatusConfirmed  RunStatus = "confirmed"
)

// Run is the persisted snapshot of a breakdown for one teacher and one
// settlement period. Contract fields are captured at run time so later
// profile edits never retroactively alter history.
type Run struct {
	ID                  string
	TeacherID           string
	PeriodStart         time.Time
	PeriodEnd           time.Time
	ContractType        profile.ContractType
	InsuranceEnrolled   bool
	TotalWorkHours      decimal.Decimal
	TotalAllowanceHours decimal.Decimal
	HourlyTotal         decimal.Decimal
	AllowanceTotal      decimal.Decimal
	BaseSalaryTotal     decimal.Decimal
	AdditionsTotal      decimal.Decimal
	GrossPay            decimal.Decimal
	DeductionsTotal     decimal.Decimal
	NetPay              decimal.Decimal
	Status              RunStatus
	Message             string
	Metadata            map[string]interface{}
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ItemKind enum for run line items.
type ItemKind string

const (
	ItemKindEarning   ItemKind = "earning"
	ItemKindDeduction ItemKind = "deduction"
	ItemKindInfo      ItemKind = "info"
)

// RunItem is one ordered line of a run. Items are rebuilt in full on every
// recompute (delete-then-insert, never partial update).
type RunItem struct {
	ID       string
	RunID    string
	Position int
	Kind     ItemKind
	Label    string
	Amount   decimal.Decimal
}

// AckStatus enum for staff acknowledgement.
type AckStatus string

const (
	AckStatusPending   AckStatus = "pending"
	AckStatusConfirmed AckStatus = "confirmed"
)

// Acknowledgement tracks whether the teacher has confirmed a run. One per run.
type Acknowledgement struct {
	RunID       string
	Status      AckStatus
	RequestedBy string
	RequestedAt time.Time
	ConfirmedAt *time.Time
	UpdatedAt   time.Time
}
