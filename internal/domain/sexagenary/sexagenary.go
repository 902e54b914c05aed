// Package sexagenary implements the stem-branch (干支) calendar conversion
// behind the Four Pillars chart: the four stem-branch pairs for a solar
// date-time, plus the element, zodiac and hour-slot lookups attached to the
// cycle symbols.
//
// The cycle is anchored at 2000-01-01 = 甲子 year and 甲子 day. This matches
// the chart convention the rest of the system is built on; it is deliberately
// not the astronomical 1984 甲子 epoch.
package sexagenary

import (
	"fmt"
	"time"
)

// Stem is one of the ten heavenly stems (天干).
type Stem string

// Branch is one of the twelve earthly branches (地支).
type Branch string

// Element is one of the five elements (五行).
type Element string

// The five elements in their fixed canonical order.
const (
	Gold  Element = "金"
	Wood  Element = "木"
	Water Element = "水"
	Fire  Element = "火"
	Earth Element = "土"
)

// ElementOrder fixes the iteration and tie-break order for element scans.
var ElementOrder = [5]Element{Gold, Wood, Water, Fire, Earth}

var stems = [10]Stem{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var branches = [12]Branch{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var stemElements = map[Stem]Element{
	"甲": Wood, "乙": Wood,
	"丙": Fire, "丁": Fire,
	"戊": Earth, "己": Earth,
	"庚": Gold, "辛": Gold,
	"壬": Water, "癸": Water,
}

var branchElements = map[Branch]Element{
	"子": Water, "丑": Earth, "寅": Wood, "卯": Wood,
	"辰": Earth, "巳": Fire, "午": Fire, "未": Earth,
	"申": Gold, "酉": Gold, "戌": Earth, "亥": Water,
}

var branchAnimals = map[Branch]string{
	"子": "鼠", "丑": "牛", "寅": "虎", "卯": "兔",
	"辰": "龙", "巳": "蛇", "午": "马", "未": "羊",
	"申": "猴", "酉": "鸡", "戌": "狗", "亥": "猪",
}

// Guardian deities per zodiac animal, by cultural convention.
var guardianDeities = map[string]string{
	"鼠": "千手观音菩萨",
	"牛": "虚空藏菩萨",
	"虎": "虚空藏菩萨",
	"兔": "文殊菩萨",
	"龙": "普贤菩萨",
	"蛇": "普贤菩萨",
	"马": "大势至菩萨",
	"羊": "大日如来",
	"猴": "大日如来",
	"鸡": "不动尊菩萨",
	"狗": "阿弥陀佛",
	"猪": "阿弥陀佛",
}

// Pair is one stem-branch pair. Only the 60 cycle-consistent combinations
// occur: the stem and branch indices of a computed pair always share parity.
type Pair struct {
	Stem   Stem   `json:"stem"`
	Branch Branch `json:"branch"`
}

// String renders the pair as its two-character form, e.g. "甲子".
func (p Pair) String() string {
	return string(p.Stem) + string(p.Branch)
}

// FourPillars holds the year, month, day and hour pairs in that fixed order.
type FourPillars struct {
	Year  Pair `json:"year"`
	Month Pair `json:"month"`
	Day   Pair `json:"day"`
	Hour  Pair `json:"hour"`
}

// Pairs returns the pillars in year-month-day-hour order.
func (f FourPillars) Pairs() [4]Pair {
	return [4]Pair{f.Year, f.Month, f.Day, f.Hour}
}

const anchorYear = 2000

// ComputeFourPillars derives the four stem-branch pairs for t.
//
// Year stem/branch count from the 2000 anchor. The month branch follows the
// solar month (month 1 -> 寅) with the stem derived from the year stem by the
// five-tigers rule. The day pair counts Julian days from 2000-01-01. The hour
// branch covers two-hour slots starting at 23:00 (子) with the stem derived
// from the day stem by the five-rats rule. Every pair therefore stays on the
// 60-combination cycle.
func ComputeFourPillars(t time.Time) FourPillars {
	yearOffset := t.Year() - anchorYear
	yearStem := mod(yearOffset, 10)
	yearBranch := mod(yearOffset, 12)

	month := int(t.Month())
	monthBranch := mod(month+1, 12)
	// Five-tigers rule: the stem of the first month repeats on a five-year
	// cycle of the year stem.
	monthStem := mod((yearStem%5)*2+2+month-1, 10)

	days := julianDayNumber(t.Year(), month, t.Day()) - julianDayNumber(anchorYear, 1, 1)
	dayStem := mod(days, 10)
	dayBranch := mod(days, 12)

	hourBranch := hourBranchIndex(t.Hour())
	// Five-rats rule: the stem of the 子 hour repeats on a five-day cycle of
	// the day stem.
	hourStem := mod((dayStem%5)*2+hourBranch, 10)

	return FourPillars{
		Year:  Pair{Stem: stems[yearStem], Branch: branches[yearBranch]},
		Month: Pair{Stem: stems[monthStem], Branch: branches[monthBranch]},
		Day:   Pair{Stem: stems[dayStem], Branch: branches[dayBranch]},
		Hour:  Pair{Stem: stems[hourStem], Branch: branches[hourBranch]},
	}
}

// ElementOf returns the element of a single stem or branch character.
// The second return value is false for characters outside the 22 valid
// symbols; callers treat such symbols as contributing nothing.
func ElementOf(c string) (Element, bool) {
	if e, ok := stemElements[Stem(c)]; ok {
		return e, true
	}
	if e, ok := branchElements[Branch(c)]; ok {
		return e, true
	}
	return "", false
}

// StemElement returns the element of a stem, or false for an unknown stem.
func StemElement(s Stem) (Element, bool) {
	e, ok := stemElements[s]
	return e, ok
}

// BranchElement returns the element of a branch, or false for an unknown branch.
func BranchElement(b Branch) (Element, bool) {
	e, ok := branchElements[b]
	return e, ok
}

// ZodiacAnimalOf returns the zodiac animal for a calendar year, using the
// same 2000 = 子 anchor as the year pillar.
func ZodiacAnimalOf(year int) string {
	return branchAnimals[branches[mod(year-anchorYear, 12)]]
}

// AnimalOf returns the zodiac animal attached to a branch, or "" for an
// unknown branch.
func AnimalOf(b Branch) string {
	return branchAnimals[b]
}

// GuardianOf returns the guardian deity for a zodiac animal, or "" for an
// unknown animal.
func GuardianOf(animal string) string {
	return guardianDeities[animal]
}

// HourRangeLabel returns the display label of the two-hour slot containing
// hour, e.g. "子时 (23:00-01:00)" for hours 23 and 0.
func HourRangeLabel(hour int) string {
	idx := hourBranchIndex(hour)
	start := mod(idx*2-1, 24)
	end := mod(start+2, 24)
	return fmt.Sprintf("%s时 (%02d:00-%02d:00)", branches[idx], start, end)
}

// ValidStem reports whether s is one of the ten heavenly stems.
func ValidStem(s Stem) bool {
	_, ok := stemElements[s]
	return ok
}

// ValidBranch reports whether b is one of the twelve earthly branches.
func ValidBranch(b Branch) bool {
	_, ok := branchElements[b]
	return ok
}

// hourBranchIndex maps a 0-23 hour to its two-hour branch slot; 23:00 and
// 00:xx both fall in 子.
func hourBranchIndex(hour int) int {
	return mod((hour+1)/2, 12)
}

// julianDayNumber converts a Gregorian calendar date to its Julian day
// number (Fliegel & Van Flandern). Integer division truncates toward zero in
// both Go and the original Fortran formulation.
func julianDayNumber(y, m, d int) int {
	return d - 32075 +
		1461*(y+4800+(m-14)/12)/4 +
		367*(m-2-(m-14)/12*12)/12 -
		3*((y+4900+(m-14)/12)/100)/4
}

// mod is the floored modulo; the result is always in [0, n).
func mod(a, n int) int {
	return ((a % n) + n) % n
}
