package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/profile"
)

func week(hours string, tardy, absence, substitute bool) payroll.WeeklyWorkSummary {
	return payroll.WeeklyWorkSummary{
		TotalWorkHours: decimal.RequireFromString(hours),
		HasTardy:       tardy,
		HasAbsence:     absence,
		HasSubstitute:  substitute,
	}
}

func TestApplyWeeklyAllowance_EligibleWeek(t *testing.T) {
	weeks := ApplyWeeklyAllowance([]payroll.WeeklyWorkSummary{week("16", false, false, false)}, profile.ContractEmployee)

	require.Len(t, weeks, 1)
	assert.True(t, weeks[0].AllowanceEligible)
	assert.True(t, weeks[0].AllowanceHours.Equal(decimal.RequireFromString("3.2")))
}

func TestApplyWeeklyAllowance_BelowThreshold(t *testing.T) {
	weeks := ApplyWeeklyAllowance([]payroll.WeeklyWorkSummary{week("14.99", false, false, false)}, profile.ContractEmployee)

	assert.False(t, weeks[0].AllowanceEligible)
	assert.True(t, weeks[0].AllowanceHours.IsZero())
}

func TestApplyWeeklyAllowance_ExactThresholdQualifies(t *testing.T) {
	weeks := ApplyWeeklyAllowance([]payroll.WeeklyWorkSummary{week("15", false, false, false)}, profile.ContractEmployee)

	assert.True(t, weeks[0].AllowanceEligible)
	assert.True(t, weeks[0].AllowanceHours.Equal(decimal.NewFromInt(3)))
}

func TestApplyWeeklyAllowance_AttendanceFlagsDisqualify(t *testing.T) {
	cases := []struct {
		name string
		week payroll.WeeklyWorkSummary
	}{
		{"tardy", week("20", true, false, false)},
		{"absence", week("20", false, true, false)},
		{"substitute", week("20", false, false, true)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			weeks := ApplyWeeklyAllowance([]payroll.WeeklyWorkSummary{tc.week}, profile.ContractEmployee)
			assert.False(t, weeks[0].AllowanceEligible)
			assert.True(t, weeks[0].AllowanceHours.IsZero())
		})
	}
}

func TestApplyWeeklyAllowance_FreelancerNeverEligible(t *testing.T) {
	weeks := ApplyWeeklyAllowance([]payroll.WeeklyWorkSummary{week("40", false, false, false)}, profile.ContractFreelancer)

	assert.False(t, weeks[0].AllowanceEligible)
	assert.True(t, weeks[0].AllowanceHours.IsZero())
}

func TestApplyWeeklyAllowance_PerWeekIndependence(t *testing.T) {
	weeks := ApplyWeeklyAllowance([]payroll.WeeklyWorkSummary{
		week("16", false, false, false),
		week("10", false, false, false),
		week("20", true, false, false),
	}, profile.ContractEmployee)

	require.Len(t, weeks, 3)
	assert.True(t, weeks[0].AllowanceEligible)
	assert.False(t, weeks[1].AllowanceEligible)
	assert.False(t, weeks[2].AllowanceEligible)
}
