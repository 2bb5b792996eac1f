package availability

import "time"

const DayFormat = "2006-01-02"

type ApplyMode string

const (
	ModeSingle  ApplyMode = "single"
	ModeRange   ApplyMode = "range"
	ModeWeekday ApplyMode = "weekday"
)

// Bounds carries the mode-specific fields of the availability form.
type Bounds struct {
	RangeStart string
	RangeEnd   string

	WeekdayStart string
	WeekdayEnd   string
	// "same" targets the base date's weekday; otherwise "0".."6", Sunday=0.
	Weekday string
}

// ParseDay parses a strict YYYY-MM-DD day at UTC midnight. Dates are pinned
// to UTC so day-by-day iteration cannot drift across DST boundaries.
func ParseDay(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DayFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ExpandDates turns one submitted rule plus an apply mode into the concrete
// list of days to upsert. Any invalid bound degrades the mode to the single
// base date rather than erroring; the result is always non-empty and
// duplicate-free. The base date itself must already be validated.
func ExpandDates(base time.Time, mode ApplyMode, b Bounds) []time.Time {
	switch mode {
	case ModeRange:
		if days := expandRange(b.RangeStart, b.RangeEnd); len(days) > 0 {
			return days
		}
	case ModeWeekday:
		if days := expandWeekday(base, b); len(days) > 0 {
			return days
		}
	}

	return []time.Time{base}
}

func expandRange(startStr, endStr string) []time.Time {
	start, ok1 := ParseDay(startStr)
	end, ok2 := ParseDay(endStr)
	if !ok1 || !ok2 || end.Before(start) {
		return nil
	}

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func expandWeekday(base time.Time, b Bounds) []time.Time {
	start, ok1 := ParseDay(b.WeekdayStart)
	end, ok2 := ParseDay(b.WeekdayEnd)
	if !ok1 || !ok2 || end.Before(start) {
		return nil
	}

	target, ok := targetWeekday(base, b.Weekday)
	if !ok {
		return nil
	}

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == target {
			days = append(days, d)
		}
	}
	return days
}

func targetWeekday(base time.Time, sel string) (time.Weekday, bool) {
	if sel == "" || sel == "same" {
		return base.Weekday(), true
	}
	if len(sel) == 1 && sel[0] >= '0' && sel[0] <= '6' {
		return time.Weekday(sel[0] - '0'), true
	}
	return 0, false
}
