package payroll

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/worklog"
)

// AggregateWeeks groups a teacher's approved work-log entries into calendar
// weeks (Monday start) and accumulates billable hours per week. Entries
// outside [periodStart, periodEnd] are ignored. The grouping key is the true
// Monday of each week; DisplayStart/DisplayEnd are clipped to the period
// bounds. Output is ordered by week start ascending.
func AggregateWeeks(entries []worklog.Entry, periodStart, periodEnd time.Time, loc *time.Location) []payroll.WeeklyWorkSummary {
	periodStart = dateIn(periodStart, loc)
	periodEnd = dateIn(periodEnd, loc)

	byWeek := make(map[time.Time]*payroll.WeeklyWorkSummary)
	for _, e := range entries {
		if e.ReviewStatus != worklog.ReviewApproved {
			continue
		}
		day := dateIn(e.Date, loc)
		if day.Before(periodStart) || day.After(periodEnd) {
			continue
		}

		ws := weekStart(day)
		week, ok := byWeek[ws]
		if !ok {
			week = &payroll.WeeklyWorkSummary{
				WeekStart:      ws,
				DisplayStart:   laterDate(ws, periodStart),
				DisplayEnd:     earlierDate(ws.AddDate(0, 0, 6), periodEnd),
				TotalWorkHours: decimal.Zero,
				AllowanceHours: decimal.Zero,
			}
			byWeek[ws] = week
		}

		if e.Status.BillsHours() {
			week.TotalWorkHours = week.TotalWorkHours.Add(e.Hours)
		}
		switch e.Status {
		case worklog.StatusTardy:
			week.HasTardy = true
		case worklog.StatusAbsence:
			week.HasAbsence = true
		case worklog.StatusSubstitute:
			week.HasSubstitute = true
		}
	}

	weeks := make([]payroll.WeeklyWorkSummary, 0, len(byWeek))
	for _, week := range byWeek {
		week.TotalWorkHours = week.TotalWorkHours.Round(2)
		weeks = append(weeks, *week)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekStart.Before(weeks[j].WeekStart)
	})
	return weeks
}

// weekStart returns the Monday of the week containing day.
func weekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// dateIn truncates t to its calendar date in loc.
func dateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func laterDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}

func earlierDate(a, b time.Time) time.Time {
	if a.After(b) {
		return b
	}
	return a
}
