package domain

import (
	"strings"
	"time"
)

type Period string

const (
	PeriodAll       Period = "all"
	PeriodThisWeek  Period = "this_week"
	PeriodPrevWeek  Period = "prev_week"
	PeriodThisMonth Period = "this_month"
	PeriodPrevMonth Period = "prev_month"
)

// ParsePeriod разбирает период. Неизвестные значения трактуются как "all",
// второй результат сообщает, было ли значение распознано.
func ParsePeriod(raw string) (Period, bool) {
	switch p := Period(strings.TrimSpace(strings.ToLower(raw))); p {
	case PeriodAll, PeriodThisWeek, PeriodPrevWeek, PeriodThisMonth, PeriodPrevMonth:
		return p, true
	default:
		return PeriodAll, false
	}
}

// Range возвращает границы периода [from, to) по дате создания задачи.
// nil означает отсутствие границы. Недели начинаются с понедельника.
func (p Period) Range(now time.Time) (from, to *time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := today.AddDate(0, 0, -mondayOffset(today.Weekday()))
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	switch p {
	case PeriodThisWeek:
		return &weekStart, nil
	case PeriodPrevWeek:
		prev := weekStart.AddDate(0, 0, -7)
		return &prev, &weekStart
	case PeriodThisMonth:
		return &monthStart, nil
	case PeriodPrevMonth:
		prev := monthStart.AddDate(0, -1, 0)
		return &prev, &monthStart
	default:
		return nil, nil
	}
}

func mondayOffset(d time.Weekday) int {
	return (int(d) + 6) % 7
}
