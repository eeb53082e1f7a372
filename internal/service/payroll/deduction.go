package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/profile"
)

var (
	healthInsuranceRate       = decimal.RequireFromString("0.045")
	nationalPensionRate       = decimal.RequireFromString("0.03545")
	longTermCareRate          = decimal.RequireFromString("0.1281")
	employmentInsuranceRate   = decimal.RequireFromString("0.009")
	freelancerWithholdingRate = decimal.RequireFromString("0.033")
)

// CalculateDeductions derives the statutory withholding lines from gross
// pay. Each line is rounded individually. Long-term care is a rate applied
// to the health-insurance amount, not to gross. Employees without insurance
// enrollment, and contract type none, have no statutory lines.
func CalculateDeductions(grossPay decimal.Decimal, contract profile.ContractType, insuranceEnrolled bool) []payroll.DeductionLine {
	switch contract {
	case profile.ContractEmployee:
		if !insuranceEnrolled {
			return nil
		}
		health := grossPay.Mul(healthInsuranceRate).Round(2)
		return []payroll.DeductionLine{
			{Label: "Health insurance", Amount: health},
			{Label: "National pension", Amount: grossPay.Mul(nationalPensionRate).Round(2)},
			{Label: "Long-term care insurance", Amount: health.Mul(longTermCareRate).Round(2)},
			{Label: "Employment insurance", Amount: grossPay.Mul(employmentInsuranceRate).Round(2)},
		}
	case profile.ContractFreelancer:
		return []payroll.DeductionLine{
			{Label: "Withholding tax (3.3%)", Amount: grossPay.Mul(freelancerWithholdingRate).Round(2)},
		}
	default:
		return nil
	}
}
