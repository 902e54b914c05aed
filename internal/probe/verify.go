package probe

import (
	"context"
	"fmt"

	"github.com/okian/mingpan/internal/domain/sexagenary"
	"github.com/okian/mingpan/pkg/logger"
)

// pillarCharacterCount is the total symbol count across four stem-branch pairs.
const pillarCharacterCount = 8

// verifyRecords checks every returned record against the chart invariants:
// four well-formed pillars, an element tally that accounts for all eight
// symbols, and non-empty lookup results.
func verifyRecords(ctx context.Context, records []ChartRecord, stats *Stats) error {
	logger.Get().Info(ctx, "verifying chart records", logger.Int("records", len(records)))

	if len(records) == 0 {
		return fmt.Errorf("no records to verify")
	}

	invalid := 0
	for i := range records {
		if err := verifySingleRecord(&records[i]); err != nil {
			invalid++
			logger.Get().Warn(ctx, "invalid chart record",
				logger.String("id", records[i].ID),
				logger.Error(err))
		}
	}

	stats.ChartsInvalid = invalid
	if invalid > 0 {
		return fmt.Errorf("%d of %d records failed verification", invalid, len(records))
	}

	logger.Get().Info(ctx, "all records verified")
	return nil
}

func verifySingleRecord(rec *ChartRecord) error {
	for _, key := range []string{"year", "month", "day", "hour"} {
		pair, ok := rec.Pillars[key]
		if !ok {
			return fmt.Errorf("missing %s pillar", key)
		}
		if !sexagenary.ValidStem(sexagenary.Stem(pair.Stem)) {
			return fmt.Errorf("%s pillar has unknown stem %q", key, pair.Stem)
		}
		if !sexagenary.ValidBranch(sexagenary.Branch(pair.Branch)) {
			return fmt.Errorf("%s pillar has unknown branch %q", key, pair.Branch)
		}
	}

	total := 0
	for _, n := range rec.Elements {
		if n < 0 {
			return fmt.Errorf("negative element count %d", n)
		}
		total += n
	}
	if total != pillarCharacterCount {
		return fmt.Errorf("element tally sums to %d, want %d", total, pillarCharacterCount)
	}

	switch {
	case rec.ZodiacAnimal == "":
		return fmt.Errorf("empty zodiac animal")
	case rec.GuardianDeity == "":
		return fmt.Errorf("empty guardian deity")
	case rec.Constellation == "":
		return fmt.Errorf("empty constellation")
	case rec.HourLabel == "":
		return fmt.Errorf("empty hour label")
	case len(rec.KeyPoints) == 0:
		return fmt.Errorf("empty key points")
	}
	return nil
}
