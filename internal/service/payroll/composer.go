package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/profile"
	"github.com/edupay/edupay-backend-go/internal/domain/worklog"
)

// ComposeBreakdown runs the whole settlement computation for one teacher
// over one period: weekly aggregation, allowance evaluation, manual
// adjustments, statutory deductions. Pure function; no I/O, inputs are not
// mutated. Every derived quantity is rounded half-up to 2 decimal places so
// intermediate values stay stable and auditable. A negative net pay is
// surfaced as-is; it signals an upstream data problem for the caller.
func ComposeBreakdown(entries []worklog.Entry, prof profile.Profile, adjustments []payroll.Adjustment, periodStart, periodEnd time.Time, loc *time.Location) payroll.CalculationBreakdown {
	weeks := ApplyWeeklyAllowance(AggregateWeeks(entries, periodStart, periodEnd, loc), prof.ContractType)

	totalWorkHours := decimal.Zero
	totalAllowanceHours := decimal.Zero
	for _, week := range weeks {
		totalWorkHours = totalWorkHours.Add(week.TotalWorkHours)
		totalAllowanceHours = totalAllowanceHours.Add(week.AllowanceHours)
	}
	totalWorkHours = totalWorkHours.Round(2)
	if prof.ContractType == profile.ContractFreelancer {
		// Per-week evaluation already zeroes this; kept as a hard invariant
		// at the sum level.
		totalAllowanceHours = decimal.Zero
	}
	totalAllowanceHours = totalAllowanceHours.Round(2)

	hourlyTotal := totalWorkHours.Mul(prof.HourlyRate).Round(2)
	allowanceTotal := totalAllowanceHours.Mul(prof.HourlyRate).Round(2)
	baseSalaryTotal := decimal.Zero
	if prof.BaseSalaryAmount != nil {
		baseSalaryTotal = prof.BaseSalaryAmount.Round(2)
	}

	var additions, manualDeductions []payroll.Adjustment
	additionsTotal := decimal.Zero
	for _, adj := range adjustments {
		if adj.IsDeduction {
			manualDeductions = append(manualDeductions, adj)
		} else {
			additions = append(additions, adj)
			additionsTotal = additionsTotal.Add(adj.Amount)
		}
	}
	additionsTotal = additionsTotal.Round(2)

	grossPay := hourlyTotal.Add(allowanceTotal).Add(baseSalaryTotal).Add(additionsTotal).Round(2)

	// Statutory lines first, manual deductions appended with their literal
	// label and amount.
	deductions := CalculateDeductions(grossPay, prof.ContractType, prof.InsuranceEnrolled)
	statutoryTotal := decimal.Zero
	for _, line := range deductions {
		statutoryTotal = statutoryTotal.Add(line.Amount)
	}
	manualDeductionTotal := decimal.Zero
	for _, adj := range manualDeductions {
		deductions = append(deductions, payroll.DeductionLine{Label: adj.Label, Amount: adj.Amount})
		manualDeductionTotal = manualDeductionTotal.Add(adj.Amount)
	}
	deductionsTotal := statutoryTotal.Add(manualDeductionTotal).Round(2)

	netPay := grossPay.Sub(deductionsTotal).Round(2)

	return payroll.CalculationBreakdown{
		TotalWorkHours:      totalWorkHours,
		TotalAllowanceHours: totalAllowanceHours,
		HourlyTotal:         hourlyTotal,
		AllowanceTotal:      allowanceTotal,
		BaseSalaryTotal:     baseSalaryTotal,
		Additions:           additions,
		ManualDeductions:    manualDeductions,
		AdditionsTotal:      additionsTotal,
		GrossPay:            grossPay,
		Deductions:          deductions,
		DeductionsTotal:     deductionsTotal,
		NetPay:              netPay,
		Weeks:               weeks,
	}
}
