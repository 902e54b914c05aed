package chart

import "time"

// DefaultLunarOffsetDays is the flat day shift applied to lunar-flagged
// birth dates. It is a documented placeholder, not a lunisolar conversion;
// callers must not rely on lunar results being calendrically exact.
const DefaultLunarOffsetDays = 30

// Normalize resolves in to a solar date-time with the hour fixed to the
// birth slot and minutes and seconds zeroed. Total over any valid date and
// 0-23 hour; it never fails.
func Normalize(in BirthInput, lunarOffsetDays int) time.Time {
	t := in.BirthDate
	if in.IsLunar {
		t = t.AddDate(0, 0, lunarOffsetDays)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), in.BirthHour, 0, 0, 0, t.Location())
}
