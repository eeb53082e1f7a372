package profile

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractType enum driving deduction computation.
type ContractType string

const (
	ContractEmployee   ContractType = "employee"
	ContractFreelancer ContractType = "freelancer"
	ContractNone       ContractType = "none"
)

func (c ContractType) Valid() bool {
	switch c {
	case ContractEmployee, ContractFreelancer, ContractNone:
		return true
	}
	return false
}

// Profile is an effective-dated pay configuration for one teacher. A teacher
// may have several profiles over time; the one whose effective range covers
// the settlement period applies. InsuranceEnrolled is only meaningful for
// ContractEmployee.
type Profile struct {
	ID                string
	TeacherID         string
	HourlyRate        decimal.Decimal
	BaseSalaryAmount  *decimal.Decimal
	ContractType      ContractType
	InsuranceEnrolled bool
	EffectiveFrom     time.Time
	EffectiveTo       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
