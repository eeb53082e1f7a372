package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/profile"
)

var (
	allowanceMinimumWeeklyHours = decimal.NewFromInt(15)
	standardWorkWeekDivisor     = decimal.NewFromInt(5)
)

// ApplyWeeklyAllowance evaluates the statutory weekly-rest allowance for
// each summary. A week earns the allowance only when the contract is not
// freelancer, the week's billable hours reach 15, and the week contains no
// tardy, absence or substitute entry. Ineligible weeks get exactly zero.
func ApplyWeeklyAllowance(weeks []payroll.WeeklyWorkSummary, contract profile.ContractType) []payroll.WeeklyWorkSummary {
	out := make([]payroll.WeeklyWorkSummary, len(weeks))
	for i, week := range weeks {
		week.AllowanceEligible = contract != profile.ContractFreelancer &&
			week.TotalWorkHours.GreaterThanOrEqual(allowanceMinimumWeeklyHours) &&
			!week.HasTardy && !week.HasAbsence && !week.HasSubstitute

		if week.AllowanceEligible {
			week.AllowanceHours = week.TotalWorkHours.Div(standardWorkWeekDivisor).Round(2)
		} else {
			week.AllowanceHours = decimal.Zero
		}
		out[i] = week
	}
	return out
}
