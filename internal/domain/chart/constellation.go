package chart

// dateRange is one Western zodiac date range. A range whose start month is
// greater than its end month wraps the year boundary.
type dateRange struct {
	name       string
	startMonth int
	startDay   int
	endMonth   int
	endDay     int
}

// The twelve constellation ranges in canonical order. The order matters: the
// resolver scans it front to back and falls back to the first entry.
var constellations = [12]dateRange{
	{"白羊座", 3, 21, 4, 19},
	{"金牛座", 4, 20, 5, 20},
	{"双子座", 5, 21, 6, 21},
	{"巨蟹座", 6, 22, 7, 22},
	{"狮子座", 7, 23, 8, 22},
	{"处女座", 8, 23, 9, 22},
	{"天秤座", 9, 23, 10, 23},
	{"天蝎座", 10, 24, 11, 22},
	{"射手座", 11, 23, 12, 21},
	{"摩羯座", 12, 22, 1, 19},
	{"水瓶座", 1, 20, 2, 18},
	{"双鱼座", 2, 19, 3, 20},
}

// ResolveConstellation maps a solar (month, day) to one of the twelve
// constellation names. Pure and total over month 1-12, day 1-31; the twelve
// ranges cover the whole year, so the first-entry fallback is unreachable
// for valid input.
func ResolveConstellation(month, day int) string {
	for _, r := range constellations {
		if r.contains(month, day) {
			return r.name
		}
	}
	return constellations[0].name
}

func (r dateRange) contains(month, day int) bool {
	if r.startMonth > r.endMonth {
		// Wraps the year boundary, e.g. Dec 22 - Jan 19.
		return (month == r.startMonth && day >= r.startDay) ||
			(month == r.endMonth && day <= r.endDay) ||
			month > r.startMonth || month < r.endMonth
	}
	return (month == r.startMonth && day >= r.startDay) ||
		(month == r.endMonth && day <= r.endDay) ||
		(month > r.startMonth && month < r.endMonth)
}
