package probe

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/okian/mingpan/pkg/logger"
)

// Constants for random birth input generation.
const (
	earliestBirthYear = 1940
	birthYearRange    = 70
	hoursPerDay       = 24
	monthsPerYear     = 12
	safeDaysPerMonth  = 28
	lunarEveryNth     = 4
)

// randomInt returns a uniform random int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// generateInputs creates the specified number of randomized chart requests.
// Days stay within 1-28 so every generated date is valid in every month.
func generateInputs(ctx context.Context, config *Config, stats *Stats) []ChartRequest {
	logger.Get().Info(ctx, "generating chart requests", logger.Int("numCharts", config.NumCharts))

	requests := make([]ChartRequest, config.NumCharts)
	for i := 0; i < config.NumCharts; i++ {
		year := earliestBirthYear + randomInt(birthYearRange)
		month := 1 + randomInt(monthsPerYear)
		day := 1 + randomInt(safeDaysPerMonth)

		gender := "male"
		if randomInt(2) == 1 {
			gender = "female"
		}

		requests[i] = ChartRequest{
			Name:      "probe-" + uuid.New().String()[:8],
			Gender:    gender,
			BirthDate: fmt.Sprintf("%04d-%02d-%02d", year, month, day),
			IsLunar:   i%lunarEveryNth == 0,
			BirthHour: randomInt(hoursPerDay),
		}
	}

	stats.ChartsRequested = len(requests)
	return requests
}
