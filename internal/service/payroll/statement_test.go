package payroll

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/worklog"
)

func TestRenderStatement_FullBreakdown(t *testing.T) {
	entries := []worklog.Entry{
		entry("t1", date(2025, 6, 2), worklog.StatusWorked, "4"),
		entry("t1", date(2025, 6, 3), worklog.StatusWorked, "4"),
		entry("t1", date(2025, 6, 4), worklog.StatusWorked, "4"),
		entry("t1", date(2025, 6, 5), worklog.StatusWorked, "4"),
	}
	b := ComposeBreakdown(entries, insuredEmployeeProfile("10000"), nil, date(2025, 6, 2), date(2025, 6, 8), time.UTC)

	statement := RenderStatement(b, "Kim Jiyoung", "2025-06-02 ~ 2025-06-08")

	assert.Contains(t, statement, "Hello Kim Jiyoung, here is your settlement statement for 2025-06-02 ~ 2025-06-08.")
	assert.Contains(t, statement, "Hours worked: 16")
	assert.Contains(t, statement, "Hourly pay: 160,000")
	assert.Contains(t, statement, "Weekly rest allowance (3.2h): 32,000")
	assert.Contains(t, statement, "- Health insurance: 8,640")
	assert.Contains(t, statement, "- National pension: 6,806.4")
	assert.Contains(t, statement, "- Long-term care insurance: 1,106.78")
	assert.Contains(t, statement, "- Employment insurance: 1,728")
	assert.Contains(t, statement, "Net pay: 173,718.82")
	assert.True(t, strings.HasSuffix(statement, "Please review the amounts above and confirm your settlement.\n"))
}

func TestRenderStatement_Deterministic(t *testing.T) {
	entries := []worklog.Entry{
		entry("t1", date(2025, 6, 2), worklog.StatusWorked, "8"),
		entry("t1", date(2025, 6, 10), worklog.StatusWorked, "8"),
	}
	b := ComposeBreakdown(entries, insuredEmployeeProfile("15000"), []payroll.Adjustment{
		{Label: "Holiday bonus", Amount: decimal.NewFromInt(50000)},
	}, date(2025, 6, 1), date(2025, 6, 30), time.UTC)

	first := RenderStatement(b, "Lee Minho", "2025-06-01 ~ 2025-06-30")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, RenderStatement(b, "Lee Minho", "2025-06-01 ~ 2025-06-30"))
	}
}

func TestRenderStatement_OmitsZeroAllowanceAndBaseSalary(t *testing.T) {
	b := ComposeBreakdown(nil, insuredEmployeeProfile("10000"), nil, date(2025, 6, 1), date(2025, 6, 30), time.UTC)

	statement := RenderStatement(b, "Park Sooyoung", "2025-06-01 ~ 2025-06-30")

	assert.NotContains(t, statement, "Weekly rest allowance")
	assert.NotContains(t, statement, "Base salary")
}

func TestRenderStatement_LineOrder(t *testing.T) {
	entries := []worklog.Entry{
		entry("t1", date(2025, 6, 2), worklog.StatusWorked, "16"),
	}
	b := ComposeBreakdown(entries, insuredEmployeeProfile("10000"), nil, date(2025, 6, 1), date(2025, 6, 30), time.UTC)

	statement := RenderStatement(b, "Choi Jiwoo", "2025-06-01 ~ 2025-06-30")

	hourlyIdx := strings.Index(statement, "Hourly pay:")
	allowanceIdx := strings.Index(statement, "Weekly rest allowance")
	deductionsIdx := strings.Index(statement, "Deductions:")
	netIdx := strings.Index(statement, "Net pay:")

	require.True(t, hourlyIdx >= 0 && allowanceIdx >= 0 && deductionsIdx >= 0 && netIdx >= 0)
	assert.Less(t, hourlyIdx, allowanceIdx)
	assert.Less(t, allowanceIdx, deductionsIdx)
	assert.Less(t, deductionsIdx, netIdx)
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"160000", "160,000"},
		{"1234567.89", "1,234,567.89"},
		{"-75000", "-75,000"},
		{"6806.4", "6,806.4"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatAmount(decimal.RequireFromString(tc.in)), tc.in)
	}
}
