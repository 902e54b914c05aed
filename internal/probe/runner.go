package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/mingpan/pkg/logger"
)

// percentageMultiplier converts ratios into percentages for reporting.
const percentageMultiplier = 100

// Run executes the complete API probe.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting chart API probe",
		logger.String("baseURL", config.BaseURL),
		logger.Int("charts", config.NumCharts),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate randomized chart requests
	requests := generateInputs(ctx, config, stats)

	// Step 3: Submit requests concurrently
	records, err := submitCharts(ctx, config, requests, stats)
	if err != nil {
		return fmt.Errorf("chart submission failed: %w", err)
	}

	// Step 4: Fetch every created record back by id
	if err := fetchCharts(ctx, config, records, stats); err != nil {
		return fmt.Errorf("chart fetch-back failed: %w", err)
	}

	// Step 5: Verify chart invariants
	if err := verifyRecords(ctx, records, stats); err != nil {
		return fmt.Errorf("record verification failed: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "probe completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != statusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// displayFinalStats prints the final probe statistics.
func displayFinalStats(stats *Stats) {
	var successRate, chartsPerSecond float64

	if stats.ChartsSubmitted > 0 {
		successRate = float64(stats.ChartsSuccessful) / float64(stats.ChartsSubmitted) * percentageMultiplier
	}

	if stats.Duration > 0 {
		chartsPerSecond = float64(stats.ChartsSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("chartsRequested", stats.ChartsRequested),
		logger.Int("chartsSubmitted", stats.ChartsSubmitted),
		logger.Int("chartsSuccessful", stats.ChartsSuccessful),
		logger.Int("chartsFailed", stats.ChartsFailed),
		logger.Int("chartsFetched", stats.ChartsFetched),
		logger.Int("chartsInvalid", stats.ChartsInvalid),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("chartsPerSecond", chartsPerSecond))
}
