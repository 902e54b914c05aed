package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/mingpan/pkg/logger"
)

// HTTP status code constants.
const (
	statusOK      = 200
	statusCreated = 201
)

// HTTPClient wraps http.Client with a shared timeout.
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// submitCharts posts chart requests concurrently using a worker pool and
// collects the records the service returns.
func submitCharts(ctx context.Context, config *Config, requests []ChartRequest, stats *Stats) ([]ChartRecord, error) {
	logger.Get().Info(ctx, "submitting chart requests",
		logger.Int("charts", len(requests)),
		logger.Int("workers", config.Workers))

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/charts"

	var (
		successful int64
		failed     int64
		submitted  int64
	)

	reqChan := make(chan ChartRequest, config.Workers*2)
	var mu sync.Mutex
	records := make([]ChartRecord, 0, len(requests))
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for req := range reqChan {
				select {
				case <-ctx.Done():
					return
				default:
					rec, ok := submitSingleChart(ctx, client, url, req)
					atomic.AddInt64(&submitted, 1)
					if ok {
						atomic.AddInt64(&successful, 1)
						mu.Lock()
						records = append(records, rec)
						mu.Unlock()
					} else {
						atomic.AddInt64(&failed, 1)
					}

					if config.Verbose {
						logger.Get().Debug(ctx, "progress",
							logger.Int("submitted", int(atomic.LoadInt64(&submitted))),
							logger.Int("successful", int(atomic.LoadInt64(&successful))),
							logger.Int("failed", int(atomic.LoadInt64(&failed))))
					}
				}
			}
		}()
	}

	go func() {
		defer close(reqChan)
		for _, req := range requests {
			select {
			case <-ctx.Done():
				return
			case reqChan <- req:
			}
		}
	}()

	wg.Wait()

	stats.ChartsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.ChartsSuccessful = int(atomic.LoadInt64(&successful))
	stats.ChartsFailed = int(atomic.LoadInt64(&failed))

	logger.Get().Info(ctx, "chart submission completed",
		logger.Int("successful", stats.ChartsSuccessful),
		logger.Int("failed", stats.ChartsFailed))

	return records, nil
}

// submitSingleChart posts one chart request and parses the created record.
func submitSingleChart(ctx context.Context, client *HTTPClient, url string, req ChartRequest) (ChartRecord, bool) {
	resp, err := client.Post(ctx, url, req)
	if err != nil {
		return ChartRecord{}, false
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return ChartRecord{}, false
	}

	if resp.StatusCode != statusCreated {
		return ChartRecord{}, false
	}

	var rec ChartRecord
	if err := json.Unmarshal(body, &rec); err != nil || rec.ID == "" {
		return ChartRecord{}, false
	}
	return rec, true
}

// fetchCharts retrieves each created record back by id.
func fetchCharts(ctx context.Context, config *Config, records []ChartRecord, stats *Stats) error {
	logger.Get().Info(ctx, "fetching charts back by id", logger.Int("charts", len(records)))

	client := newHTTPClient(config.Timeout)

	var fetched int64
	for i := range records {
		resp, err := client.Get(ctx, config.BaseURL+"/charts/"+records[i].ID)
		if err != nil {
			continue
		}
		body, err := readResponseBody(resp)
		if err != nil || resp.StatusCode != statusOK {
			continue
		}
		var got ChartRecord
		if err := json.Unmarshal(body, &got); err != nil || got.ID != records[i].ID {
			continue
		}
		atomic.AddInt64(&fetched, 1)
	}

	stats.ChartsFetched = int(atomic.LoadInt64(&fetched))
	logger.Get().Info(ctx, "fetch-back completed", logger.Int("fetched", stats.ChartsFetched))
	return nil
}
