package chart

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/mingpan/internal/domain/sexagenary"
)

const (
	pillarCharacters = 8 // 4 stems + 4 branches
	percentBase      = 100
)

// Generator assembles chart records. Safe for concurrent use: every call
// reads only fixed tables plus the clock and a random id suffix.
type Generator struct {
	lunarOffsetDays int
	now             func() time.Time
	newSuffix       func() string
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithLunarOffsetDays overrides the flat lunar-to-solar day shift.
func WithLunarOffsetDays(days int) Option {
	return func(g *Generator) {
		if days > 0 {
			g.lunarOffsetDays = days
		}
	}
}

// WithClock overrides the time source used for GeneratedAt and the id prefix.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithIDSuffix overrides the random suffix source for record ids.
func WithIDSuffix(suffix func() string) Option {
	return func(g *Generator) {
		if suffix != nil {
			g.newSuffix = suffix
		}
	}
}

// NewGenerator creates a chart generator with default configuration.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		lunarOffsetDays: DefaultLunarOffsetDays,
		now:             time.Now,
		newSuffix:       func() string { return uuid.NewString()[:8] },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds one immutable chart record from in. It sequences the date
// normalizer, the sexagenary calculator, the zodiac and guardian lookups, the
// constellation resolver, the element tally and the narrative generator. It
// is total: no input with a valid date and 0-23 hour can make it fail.
// Repeated calls with the same input differ only in ID and GeneratedAt.
func (g *Generator) Generate(in BirthInput) Record {
	birth := Normalize(in, g.lunarOffsetDays)
	pillars := sexagenary.ComputeFourPillars(birth)
	animal := sexagenary.ZodiacAnimalOf(birth.Year())
	deity := sexagenary.GuardianOf(animal)
	constellation := ResolveConstellation(int(birth.Month()), birth.Day())
	tally := TallyElements(pillars)

	now := g.now()
	return Record{
		ID:          fmt.Sprintf("%d-%s", now.UnixNano(), g.newSuffix()),
		GeneratedAt: now,

		Name:      in.Name,
		Gender:    in.Gender,
		BirthDate: in.BirthDate,
		IsLunar:   in.IsLunar,
		BirthHour: in.BirthHour,

		ZodiacAnimal:  animal,
		GuardianDeity: deity,
		Constellation: constellation,

		Pillars:   pillars,
		HourLabel: sexagenary.HourRangeLabel(birth.Hour()),
		Elements:  tally,

		Personality: Narrative(pillars.Day.Stem, tally),
		KeyPoints:   keyPoints(animal, deity, constellation, tally),
	}
}

// keyPoints renders the summary lines: zodiac and guardian, constellation,
// then one percentage line per non-zero element in the fixed element order.
func keyPoints(animal, deity, constellation string, tally Tally) []string {
	pts := make([]string, 0, 2+len(sexagenary.ElementOrder))
	pts = append(pts,
		fmt.Sprintf("生肖%s，守护神：%s", animal, deity),
		constellation,
	)
	for _, e := range sexagenary.ElementOrder {
		if n := tally[e]; n > 0 {
			pts = append(pts, fmt.Sprintf("%s：%.1f%%", e, float64(n)/pillarCharacters*percentBase))
		}
	}
	return pts
}

// FormatPillars renders the four pillars of a record as space-joined
// two-character stem+branch groups in year-month-day-hour order.
func FormatPillars(r Record) string {
	pairs := r.Pillars.Pairs()
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, " ")
}
