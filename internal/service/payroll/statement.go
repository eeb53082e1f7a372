package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
)

// RenderStatement renders a breakdown as a fixed-order plain-text statement
// for staff review. Deterministic: identical input produces byte-identical
// output, so statements are snapshot-testable.
func RenderStatement(b payroll.CalculationBreakdown, teacherName, periodLabel string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Hello %s, here is your settlement statement for %s.\n\n", teacherName, periodLabel)
	fmt.Fprintf(&sb, "Hours worked: %s\n", b.TotalWorkHours.String())
	fmt.Fprintf(&sb, "Hourly pay: %s\n", formatAmount(b.HourlyTotal))
	if b.AllowanceTotal.IsPositive() {
		fmt.Fprintf(&sb, "Weekly rest allowance (%sh): %s\n", b.TotalAllowanceHours.String(), formatAmount(b.AllowanceTotal))
	}
	if b.BaseSalaryTotal.IsPositive() {
		fmt.Fprintf(&sb, "Base salary: %s\n", formatAmount(b.BaseSalaryTotal))
	}
	for _, adj := range b.Additions {
		fmt.Fprintf(&sb, "%s: %s\n", adj.Label, formatAmount(adj.Amount))
	}

	sb.WriteString("\nDeductions:\n")
	for _, line := range b.Deductions {
		fmt.Fprintf(&sb, "- %s: %s\n", line.Label, formatAmount(line.Amount))
	}

	fmt.Fprintf(&sb, "\nNet pay: %s\n", formatAmount(b.NetPay))
	sb.WriteString("Please review the amounts above and confirm your settlement.\n")

	return sb.String()
}

// formatAmount inserts thousands separators into the integer part of d.
func formatAmount(d decimal.Decimal) string {
	s := d.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var out []byte
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, intPart[i])
	}

	formatted := string(out)
	if hasFrac {
		formatted += "." + fracPart
	}
	if neg {
		formatted = "-" + formatted
	}
	return formatted
}
