package probe

import "time"

// Config holds configuration for the API probe run.
type Config struct {
	BaseURL   string        // Base URL of the service
	NumCharts int           // Number of charts to generate
	Workers   int           // Number of concurrent workers
	Timeout   time.Duration // HTTP request timeout
	LogFile   string        // Log file for probe output
	Verbose   bool          // Enable verbose logging
}

// ChartRequest mirrors the POST /charts request body.
type ChartRequest struct {
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date"`
	IsLunar   bool   `json:"is_lunar"`
	BirthHour int    `json:"birth_hour"`
}

// Pair mirrors one sexagenary pillar in a chart response.
type Pair struct {
	Stem   string `json:"stem"`
	Branch string `json:"branch"`
}

// ChartRecord mirrors the chart record returned by the service.
type ChartRecord struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ZodiacAnimal  string          `json:"zodiac_animal"`
	GuardianDeity string          `json:"guardian_deity"`
	Constellation string          `json:"constellation"`
	Pillars       map[string]Pair `json:"pillars"`
	HourLabel     string          `json:"hour_label"`
	Elements      map[string]int  `json:"elements"`
	Personality   []string        `json:"personality"`
	KeyPoints     []string        `json:"key_points"`
}

// ErrorResponse mirrors the error body returned by the service.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Stats holds probe statistics.
type Stats struct {
	ChartsRequested  int
	ChartsSubmitted  int
	ChartsSuccessful int
	ChartsFailed     int
	ChartsFetched    int
	ChartsInvalid    int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
