// Package chart assembles Four Pillars chart records from birth input:
// date normalization, constellation resolution, the five-element tally, the
// narrative lines and the final immutable record.
package chart

import (
	"time"

	"github.com/okian/mingpan/internal/domain/sexagenary"
)

// Gender of the chart subject.
type Gender string

// Valid genders.
const (
	Male   Gender = "male"
	Female Gender = "female"
)

// BirthInput carries the facts a chart is computed from. Treated as
// immutable once constructed.
type BirthInput struct {
	Name      string    `json:"name"`
	Gender    Gender    `json:"gender"`
	BirthDate time.Time `json:"birth_date"`
	IsLunar   bool      `json:"is_lunar"`
	BirthHour int       `json:"birth_hour"` // 0-23
}

// Tally counts element affinities across the eight stem and branch
// characters of the four pillars. All five element keys are always present;
// the counts of a tally built from valid pillars sum to 8.
type Tally map[sexagenary.Element]int

// Sum returns the total number of counted affinities.
func (t Tally) Sum() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// Record is one assembled chart. It is built once by the generator and
// consumed read-only afterwards.
type Record struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	Name      string    `json:"name"`
	Gender    Gender    `json:"gender"`
	BirthDate time.Time `json:"birth_date"`
	IsLunar   bool      `json:"is_lunar"`
	BirthHour int       `json:"birth_hour"`

	ZodiacAnimal  string `json:"zodiac_animal"`
	GuardianDeity string `json:"guardian_deity"`
	Constellation string `json:"constellation"`

	Pillars   sexagenary.FourPillars `json:"pillars"`
	HourLabel string                 `json:"hour_label"`
	Elements  Tally                  `json:"elements"`

	Personality []string `json:"personality"`
	KeyPoints   []string `json:"key_points"`
}
