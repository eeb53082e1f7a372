package worklog

import (
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status enum for a single daily work-log entry.
type Status string

const (
	StatusWorked     Status = "worked"
	StatusTardy      Status = "tardy"
	StatusAbsence    Status = "absence"
	StatusSubstitute Status = "substitute"
)

// BillsHours reports whether entries with this status contribute billable
// hours. Absences and substitute days never bill hours for the teacher.
func (s Status) BillsHours() bool {
	return s == StatusWorked || s == StatusTardy
}

func (s Status) Valid() bool {
	switch s {
	case StatusWorked, StatusTardy, StatusAbsence, StatusSubstitute:
		return true
	}
	return false
}

// ReviewStatus enum, set by the external work-log register.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// SubstituteInfo is present only on entries with StatusSubstitute. The
// substitute is either internal staff (StaffID) or an external person.
type SubstituteInfo struct {
	StaffID             *string          `json:"staff_id,omitempty"`
	ExternalName        *string          `json:"external_name,omitempty"`
	ExternalContact     *string          `json:"external_contact,omitempty"`
	ExternalBankAccount *string          `json:"external_bank_account,omitempty"`
	ExternalHours       *decimal.Decimal `json:"external_hours,omitempty"`
}

// Entry is one teacher's work-log record for one calendar date. Entries are
// immutable once approved; edits supersede with a new row upstream.
type Entry struct {
	ID           string
	TeacherID    string
	Date         time.Time
	Status       Status
	Hours        decimal.Decimal
	Substitute   *SubstituteInfo
	ReviewStatus ReviewStatus
	CreatedAt    time.Time
}

// ParseHours converts a raw hour field from upstream storage. Malformed
// values default to zero with a warning so one bad record cannot abort a
// whole batch computation.
func ParseHours(raw *string, logger *slog.Logger) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		if logger != nil {
			logger.Warn("malformed hours value in work log, defaulting to zero", "raw", *raw)
		}
		return decimal.Zero
	}
	return d
}
