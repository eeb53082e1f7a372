package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edupay/edupay-backend-go/internal/domain/worklog"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(teacherID string, day time.Time, status worklog.Status, hours string) worklog.Entry {
	return worklog.Entry{
		ID:           "e-" + day.Format("20060102"),
		TeacherID:    teacherID,
		Date:         day,
		Status:       status,
		Hours:        decimal.RequireFromString(hours),
		ReviewStatus: worklog.ReviewApproved,
	}
}

func TestAggregateWeeks_GroupsByMondayWeek(t *testing.T) {
	// 2025-06-02 is a Monday; 2025-06-09 starts the next week.
	entries := []worklog.Entry{
		entry("t1", date(2025, 6, 2), worklog.StatusWorked, "4"),
		entry("t1", date(2025, 6, 4), worklog.StatusWorked, "4"),
		entry("t1", date(2025, 6, 9), worklog.StatusWorked, "3"),
	}

	weeks := AggregateWeeks(entries, date(2025, 6, 1), date(2025, 6, 30), time.UTC)

	require.Len(t, weeks, 2)
	assert.Equal(t, date(2025, 6, 2), weeks[0].WeekStart)
	assert.True(t, weeks[0].TotalWorkHours.Equal(decimal.NewFromInt(8)))
	assert.Equal(t, date(2025, 6, 9), weeks[1].WeekStart)
	assert.True(t, weeks[1].TotalWorkHours.Equal(decimal.NewFromInt(3)))
}

func TestAggregateWeeks_ClipsDisplayBoundsToPeriod(t *testing.T) {
	// 2025-06-01 is a Sunday, so its week starts on Monday 2025-05-26,
	// before the period. The display window must not leak outside.
	entries := []worklog.Entry{
		entry("t1", date(2025, 6, 1), worklog.StatusWorked, "5"),
	}

	weeks := AggregateWeeks(entries, date(2025, 6, 1), date(2025, 6, 30), time.UTC)

	require.Len(t, weeks, 1)
	assert.Equal(t, date(2025, 5, 26), weeks[0].WeekStart)
	assert.Equal(t, date(2025, 6, 1), weeks[0].DisplayStart)
	assert.Equal(t, date(2025, 6, 1), weeks[0].DisplayEnd)
}

func TestAggregateWeeks_IgnoresOutOfPeriodAndUnapproved(t *testing.T) {
	pending := entry("t1", date(2025, 6, 3), worklog.StatusWorked, "8")
	pending.ReviewStatus = worklog.ReviewPending

	entries := []worklog.Entry{
		entry("t1", date(2025, 5, 30), worklog.StatusWorked, "8"),
		entry("t1", date(2025, 7, 1), worklog.StatusWorked, "8"),
		pending,
		entry("t1", date(2025, 6, 2), worklog.StatusWorked, "6"),
	}

	weeks := AggregateWeeks(entries, date(2025, 6, 1), date(2025, 6, 30), time.UTC)

	require.Len(t, weeks, 1)
	assert.True(t, weeks[0].TotalWorkHours.Equal(decimal.NewFromInt(6)))
}

func TestAggregateWeeks_AbsenceAndSubstituteDoNotBillHours(t *testing.T) {
	entries := []worklog.Entry{
		entry("t1", date(2025, 6, 2), worklog.StatusWorked, "4"),
		entry("t1", date(2025, 6, 3), worklog.StatusTardy, "3"),
		entry("t1", date(2025, 6, 4), worklog.StatusAbsence, "4"),
		entry("t1", date(2025, 6, 5), worklog.StatusSubstitute, "4"),
	}

	weeks := AggregateWeeks(entries, date(2025, 6, 1), date(2025, 6, 30), time.UTC)

	require.Len(t, weeks, 1)
	// Tardy hours bill, absence and substitute hours do not.
	assert.True(t, weeks[0].TotalWorkHours.Equal(decimal.NewFromInt(7)))
	assert.True(t, weeks[0].HasTardy)
	assert.True(t, weeks[0].HasAbsence)
	assert.True(t, weeks[0].HasSubstitute)
}

func TestAggregateWeeks_OrderedByWeekStart(t *testing.T) {
	entries := []worklog.Entry{
		entry("t1", date(2025, 6, 23), worklog.StatusWorked, "2"),
		entry("t1", date(2025, 6, 2), worklog.StatusWorked, "2"),
		entry("t1", date(2025, 6, 16), worklog.StatusWorked, "2"),
		entry("t1", date(2025, 6, 9), worklog.StatusWorked, "2"),
	}

	weeks := AggregateWeeks(entries, date(2025, 6, 1), date(2025, 6, 30), time.UTC)

	require.Len(t, weeks, 4)
	for i := 1; i < len(weeks); i++ {
		assert.True(t, weeks[i-1].WeekStart.Before(weeks[i].WeekStart))
	}
}

func TestAggregateWeeks_WeekHoursSumToEntryHours(t *testing.T) {
	entries := []worklog.Entry{
		entry("t1", date(2025, 6, 2), worklog.StatusWorked, "3.5"),
		entry("t1", date(2025, 6, 5), worklog.StatusWorked, "4.25"),
		entry("t1", date(2025, 6, 11), worklog.StatusWorked, "6"),
	}

	weeks := AggregateWeeks(entries, date(2025, 6, 1), date(2025, 6, 30), time.UTC)

	total := decimal.Zero
	for _, week := range weeks {
		total = total.Add(week.TotalWorkHours)
	}
	assert.True(t, total.Equal(decimal.RequireFromString("13.75")))
}
