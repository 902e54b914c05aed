package chart_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/okian/mingpan/internal/domain/chart"
	"github.com/okian/mingpan/internal/domain/sexagenary"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given a solar birth input", t, func() {
		in := chart.BirthInput{
			Name:      "张三",
			Gender:    chart.Male,
			BirthDate: time.Date(1990, 5, 4, 18, 42, 31, 99, time.UTC),
			BirthHour: 7,
		}

		Convey("When normalizing", func() {
			got := chart.Normalize(in, chart.DefaultLunarOffsetDays)

			Convey("Then the date is kept and the hour slot is applied", func() {
				So(got.Year(), ShouldEqual, 1990)
				So(got.Month(), ShouldEqual, time.May)
				So(got.Day(), ShouldEqual, 4)
				So(got.Hour(), ShouldEqual, 7)
				So(got.Minute(), ShouldEqual, 0)
				So(got.Second(), ShouldEqual, 0)
			})
		})
	})

	Convey("Given a lunar-flagged birth input", t, func() {
		in := chart.BirthInput{
			Name:      "李四",
			Gender:    chart.Female,
			BirthDate: time.Date(1990, 12, 15, 0, 0, 0, 0, time.UTC),
			IsLunar:   true,
			BirthHour: 23,
		}

		Convey("When normalizing with the default offset", func() {
			got := chart.Normalize(in, chart.DefaultLunarOffsetDays)

			Convey("Then the date shifts by the flat 30-day placeholder", func() {
				So(got.Year(), ShouldEqual, 1991)
				So(got.Month(), ShouldEqual, time.January)
				So(got.Day(), ShouldEqual, 14)
				So(got.Hour(), ShouldEqual, 23)
			})
		})
	})
}

func TestResolveConstellation(t *testing.T) {
	Convey("Given the fixed constellation table", t, func() {
		Convey("Then the documented boundary dates resolve as expected", func() {
			So(chart.ResolveConstellation(12, 25), ShouldEqual, "摩羯座")
			So(chart.ResolveConstellation(3, 21), ShouldEqual, "白羊座")
			So(chart.ResolveConstellation(6, 21), ShouldEqual, "双子座")
		})

		Convey("And the year-wrapping range matches on both sides", func() {
			So(chart.ResolveConstellation(12, 22), ShouldEqual, "摩羯座")
			So(chart.ResolveConstellation(1, 19), ShouldEqual, "摩羯座")
			So(chart.ResolveConstellation(1, 20), ShouldEqual, "水瓶座")
		})

		Convey("And range starts are inclusive", func() {
			So(chart.ResolveConstellation(4, 20), ShouldEqual, "金牛座")
			So(chart.ResolveConstellation(7, 23), ShouldEqual, "狮子座")
			So(chart.ResolveConstellation(11, 23), ShouldEqual, "射手座")
		})

		Convey("And every day of the year resolves to some constellation", func() {
			daysIn := [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
			for m := 1; m <= 12; m++ {
				for d := 1; d <= daysIn[m]; d++ {
					So(chart.ResolveConstellation(m, d), ShouldNotBeEmpty)
				}
			}
		})
	})
}

func TestTallyElements(t *testing.T) {
	Convey("Given pillars computed from a valid instant", t, func() {
		pillars := sexagenary.ComputeFourPillars(time.Date(1984, 3, 9, 14, 0, 0, 0, time.UTC))

		Convey("When tallying", func() {
			tally := chart.TallyElements(pillars)

			Convey("Then all five keys exist and counts sum to 8", func() {
				So(len(tally), ShouldEqual, 5)
				for _, e := range sexagenary.ElementOrder {
					So(tally[e], ShouldBeGreaterThanOrEqualTo, 0)
				}
				So(tally.Sum(), ShouldEqual, 8)
			})
		})
	})

	Convey("Given pillars containing a malformed symbol", t, func() {
		pillars := sexagenary.ComputeFourPillars(time.Date(2001, 7, 1, 9, 0, 0, 0, time.UTC))
		pillars.Hour.Stem = "错"

		Convey("When tallying", func() {
			tally := chart.TallyElements(pillars)

			Convey("Then the bad symbol silently contributes nothing", func() {
				So(tally.Sum(), ShouldEqual, 7)
				So(len(tally), ShouldEqual, 5)
			})
		})
	})
}

func TestNarrative(t *testing.T) {
	Convey("Given a tally with a clear maximum and minimum", t, func() {
		tally := chart.Tally{
			sexagenary.Gold:  1,
			sexagenary.Wood:  4,
			sexagenary.Water: 0,
			sexagenary.Fire:  2,
			sexagenary.Earth: 1,
		}

		Convey("When generating for a valid day stem", func() {
			lines := chart.Narrative("甲", tally)

			Convey("Then a trait line and a balance line are produced in order", func() {
				So(len(lines), ShouldEqual, 2)
				So(lines[0], ShouldContainSubstring, "甲木")
				So(lines[1], ShouldContainSubstring, "木最旺")
				So(lines[1], ShouldContainSubstring, "水偏弱")
			})
		})

		Convey("When generating for an invalid day stem", func() {
			lines := chart.Narrative("某", tally)

			Convey("Then the trait line is skipped without error", func() {
				So(len(lines), ShouldEqual, 1)
				So(lines[0], ShouldContainSubstring, "木最旺")
			})
		})
	})

	Convey("Given a tally where every count ties", t, func() {
		tally := chart.Tally{
			sexagenary.Gold:  2,
			sexagenary.Wood:  2,
			sexagenary.Water: 2,
			sexagenary.Fire:  1,
			sexagenary.Earth: 1,
		}

		Convey("Then ties break in the fixed 金木水火土 order", func() {
			lines := chart.Narrative("丙", tally)
			So(lines[1], ShouldContainSubstring, "金最旺")
			So(lines[1], ShouldContainSubstring, "火偏弱")
		})
	})

	Convey("Given every valid day stem", t, func() {
		tally := chart.Tally{
			sexagenary.Gold: 2, sexagenary.Wood: 2, sexagenary.Water: 2,
			sexagenary.Fire: 1, sexagenary.Earth: 1,
		}

		Convey("Then each stem yields its own trait sentence", func() {
			seen := map[string]bool{}
			for _, s := range []sexagenary.Stem{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"} {
				lines := chart.Narrative(s, tally)
				So(len(lines), ShouldEqual, 2)
				So(seen[lines[0]], ShouldBeFalse)
				seen[lines[0]] = true
			}
		})
	})
}

func TestGenerator(t *testing.T) {
	Convey("Given a generator and the documented end-to-end input", t, func() {
		g := chart.NewGenerator()
		in := chart.BirthInput{
			Name:      "测试",
			Gender:    chart.Female,
			BirthDate: time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC),
			IsLunar:   false,
			BirthHour: 10,
		}

		Convey("When generating a chart", func() {
			rec := g.Generate(in)

			Convey("Then the derived attributes match the conventions", func() {
				So(rec.Constellation, ShouldEqual, "双子座")
				So(rec.ZodiacAnimal, ShouldEqual, "鼠")
				So(rec.GuardianDeity, ShouldEqual, "千手观音菩萨")
				So(rec.HourLabel, ShouldEqual, "巳时 (09:00-11:00)")
			})

			Convey("And the pillars use valid symbols", func() {
				for _, p := range rec.Pillars.Pairs() {
					So(sexagenary.ValidStem(p.Stem), ShouldBeTrue)
					So(sexagenary.ValidBranch(p.Branch), ShouldBeTrue)
				}
			})

			Convey("And the element tally sums to 8", func() {
				So(rec.Elements.Sum(), ShouldEqual, 8)
			})

			Convey("And the key points start with zodiac and constellation lines", func() {
				So(len(rec.KeyPoints), ShouldBeGreaterThanOrEqualTo, 3)
				So(rec.KeyPoints[0], ShouldEqual, "生肖鼠，守护神：千手观音菩萨")
				So(rec.KeyPoints[1], ShouldEqual, "双子座")
			})

			Convey("And element lines carry one-decimal percentages in fixed order", func() {
				var total float64
				lastIdx := -1
				for _, line := range rec.KeyPoints[2:] {
					parts := strings.SplitN(line, "：", 2)
					So(len(parts), ShouldEqual, 2)
					idx := -1
					for i, e := range sexagenary.ElementOrder {
						if string(e) == parts[0] {
							idx = i
						}
					}
					So(idx, ShouldBeGreaterThan, lastIdx)
					lastIdx = idx
					var pct float64
					_, err := fmt.Sscanf(parts[1], "%f%%", &pct)
					So(err, ShouldBeNil)
					total += pct
				}
				So(total, ShouldAlmostEqual, 100, 0.5)
			})
		})

		Convey("When generating twice from the same input", func() {
			first := g.Generate(in)
			second := g.Generate(in)

			Convey("Then only the id and timestamp may differ", func() {
				So(second.Pillars, ShouldResemble, first.Pillars)
				So(second.Elements, ShouldResemble, first.Elements)
				So(second.ZodiacAnimal, ShouldEqual, first.ZodiacAnimal)
				So(second.GuardianDeity, ShouldEqual, first.GuardianDeity)
				So(second.Constellation, ShouldEqual, first.Constellation)
				So(second.Personality, ShouldResemble, first.Personality)
				So(second.ID, ShouldNotEqual, first.ID)
			})
		})
	})

	Convey("Given a generator with a pinned clock and suffix", t, func() {
		fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		g := chart.NewGenerator(
			chart.WithClock(func() time.Time { return fixed }),
			chart.WithIDSuffix(func() string { return "abcd1234" }),
		)

		Convey("Then the id is the time prefix plus the suffix", func() {
			rec := g.Generate(chart.BirthInput{
				Name:      "固定",
				Gender:    chart.Male,
				BirthDate: time.Date(1995, 2, 28, 0, 0, 0, 0, time.UTC),
				BirthHour: 3,
			})
			So(rec.ID, ShouldEqual, fmt.Sprintf("%d-abcd1234", fixed.UnixNano()))
			So(rec.GeneratedAt.Equal(fixed), ShouldBeTrue)
		})
	})

	Convey("Given a lunar input and a custom offset", t, func() {
		g := chart.NewGenerator(chart.WithLunarOffsetDays(1))
		in := chart.BirthInput{
			Name:      "农历",
			Gender:    chart.Male,
			BirthDate: time.Date(2000, 6, 14, 0, 0, 0, 0, time.UTC),
			IsLunar:   true,
			BirthHour: 10,
		}

		Convey("Then the shifted solar date drives the derived fields", func() {
			rec := g.Generate(in)
			So(rec.Constellation, ShouldEqual, "双子座") // 6-15 after the +1 shift
			So(rec.IsLunar, ShouldBeTrue)
		})
	})
}

func TestFormatPillars(t *testing.T) {
	Convey("Given a generated record", t, func() {
		rec := chart.NewGenerator().Generate(chart.BirthInput{
			Name:      "王五",
			Gender:    chart.Male,
			BirthDate: time.Date(1993, 11, 2, 0, 0, 0, 0, time.UTC),
			BirthHour: 15,
		})

		Convey("When formatting the pillars", func() {
			s := chart.FormatPillars(rec)

			Convey("Then there are exactly four two-character groups", func() {
				groups := strings.Split(s, " ")
				So(len(groups), ShouldEqual, 4)
				for _, grp := range groups {
					So(len([]rune(grp)), ShouldEqual, 2)
				}
			})

			Convey("And the order is year, month, day, hour", func() {
				groups := strings.Split(s, " ")
				So(groups[0], ShouldEqual, rec.Pillars.Year.String())
				So(groups[1], ShouldEqual, rec.Pillars.Month.String())
				So(groups[2], ShouldEqual, rec.Pillars.Day.String())
				So(groups[3], ShouldEqual, rec.Pillars.Hour.String())
			})
		})
	})
}

func TestColorOf(t *testing.T) {
	Convey("Given the five elements", t, func() {
		Convey("Then each has a distinct hex color", func() {
			seen := map[string]bool{}
			for _, e := range sexagenary.ElementOrder {
				c := chart.ColorOf(e)
				So(c, ShouldStartWith, "#")
				So(len(c), ShouldEqual, 7)
				So(seen[c], ShouldBeFalse)
				seen[c] = true
			}
		})

		Convey("And an unknown element has no color", func() {
			So(chart.ColorOf("风"), ShouldBeEmpty)
		})
	})
}
