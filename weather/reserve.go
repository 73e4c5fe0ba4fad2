package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kinhub/kinhub/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// ReserveSource fetches the month forecast from the reserve weather server,
// which packs each day into a single "<temperature>C:<precipitation>" string.
type ReserveSource struct {
	url    string
	client *http.Client
}

func NewReserveSource(url string, timeout time.Duration) *ReserveSource {
	return &ReserveSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *ReserveSource) Name() string { return "reserve" }

func (s *ReserveSource) MonthForecast(ctx context.Context) ([]DayForecast, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.count("transport_error")
		return nil, fmt.Errorf("reserve forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.count("bad_status")
		return nil, fmt.Errorf("reserve forecast server returned %d", resp.StatusCode)
	}

	var days []struct {
		Data string `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&days); err != nil {
		s.count("decode_error")
		return nil, fmt.Errorf("reserve forecast decode: %w", err)
	}

	forecast := make([]DayForecast, 0, len(days))
	for _, day := range days {
		parsed, err := parseReserveDay(day.Data)
		if err != nil {
			s.count("decode_error")
			return nil, err
		}
		forecast = append(forecast, parsed)
	}

	s.count("ok")
	return forecast, nil
}

func parseReserveDay(data string) (DayForecast, error) {
	temperatureStr, precipitationStr, ok := strings.Cut(data, ":")
	if !ok {
		return DayForecast{}, fmt.Errorf("reserve forecast day %q: missing separator", data)
	}

	temperature, err := strconv.ParseFloat(strings.TrimSuffix(temperatureStr, "C"), 64)
	if err != nil {
		return DayForecast{}, fmt.Errorf("reserve forecast day %q: %w", data, err)
	}
	precipitation, err := strconv.ParseFloat(precipitationStr, 64)
	if err != nil {
		return DayForecast{}, fmt.Errorf("reserve forecast day %q: %w", data, err)
	}

	return DayForecast{Temperature: temperature, Precipitation: precipitation}, nil
}

func (s *ReserveSource) count(outcome string) {
	metrics.UpstreamRequests.With(prometheus.Labels{"source": s.Name(), "outcome": outcome}).Inc()
}
