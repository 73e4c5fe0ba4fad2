package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kinhub/kinhub/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PrimarySource fetches the month forecast from the primary weather server.
// The server reports temperature in tenths of a degree and precipitation in
// hundredths, so both are scaled down on decode.
type PrimarySource struct {
	url    string
	client *http.Client
}

func NewPrimarySource(url string, timeout time.Duration) *PrimarySource {
	return &PrimarySource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *PrimarySource) Name() string { return "primary" }

func (s *PrimarySource) MonthForecast(ctx context.Context) ([]DayForecast, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.count("transport_error")
		return nil, fmt.Errorf("primary forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.count("bad_status")
		return nil, fmt.Errorf("primary forecast server returned %d", resp.StatusCode)
	}

	var days []struct {
		Temperature   float64 `json:"temperature"`
		Precipitation float64 `json:"precipitation"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&days); err != nil {
		s.count("decode_error")
		return nil, fmt.Errorf("primary forecast decode: %w", err)
	}

	forecast := make([]DayForecast, 0, len(days))
	for _, day := range days {
		forecast = append(forecast, DayForecast{
			Temperature:   day.Temperature / 10,
			Precipitation: day.Precipitation / 100,
		})
	}

	s.count("ok")
	return forecast, nil
}

func (s *PrimarySource) count(outcome string) {
	metrics.UpstreamRequests.With(prometheus.Labels{"source": s.Name(), "outcome": outcome}).Inc()
}
