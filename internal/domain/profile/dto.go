package profile

import (
	"github.com/shopspring/decimal"

	"github.com/edupay/edupay-backend-go/internal/pkg/validator"
)

type CreateProfileRequest struct {
	TeacherID         string           `json:"-"`
	HourlyRate        decimal.Decimal  `json:"hourly_rate"`
	BaseSalaryAmount  *decimal.Decimal `json:"base_salary_amount,omitempty"`
	ContractType      string           `json:"contract_type"`
	InsuranceEnrolled *bool            `json:"insurance_enrolled,omitempty"`
	EffectiveFrom     string           `json:"effective_from"`
	EffectiveTo       *string          `json:"effective_to,omitempty"`
}

func (r *CreateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TeacherID) {
		errs = append(errs, validator.ValidationError{Field: "teacher_id", Message: "is required"})
	}
	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.BaseSalaryAmount != nil && r.BaseSalaryAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary_amount", Message: "must be non-negative"})
	}
	if !ContractType(r.ContractType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "contract_type", Message: "must be 'employee', 'freelancer' or 'none'"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EffectiveTo != nil {
		if _, ok := validator.IsValidDate(*r.EffectiveTo); !ok {
			errs = append(errs, validator.ValidationError{Field: "effective_to", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProfileResponse struct {
	ID                string           `json:"id"`
	TeacherID         string           `json:"teacher_id"`
	HourlyRate        decimal.Decimal  `json:"hourly_rate"`
	BaseSalaryAmount  *decimal.Decimal `json:"base_salary_amount,omitempty"`
	ContractType      string           `json:"contract_type"`
	InsuranceEnrolled bool             `json:"insurance_enrolled"`
	EffectiveFrom     string           `json:"effective_from"`
	EffectiveTo       *string          `json:"effective_to,omitempty"`
}
