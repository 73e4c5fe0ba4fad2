package weather

import (
	"context"
	"log"

	"github.com/kinhub/kinhub/metrics"
)

// Chain tries each source in order and returns the first forecast produced.
// A source failure moves on to the next source; when every source fails the
// chain reports ErrUnavailable.
type Chain struct {
	sources []Source
}

func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

func (c *Chain) Name() string { return "chain" }

func (c *Chain) MonthForecast(ctx context.Context) ([]DayForecast, error) {
	for _, source := range c.sources {
		forecast, err := source.MonthForecast(ctx)
		if err != nil {
			log.Printf("forecast source %s failed: %v", source.Name(), err)
			metrics.WeatherFailovers.Inc()
			continue
		}
		return forecast, nil
	}
	return nil, ErrUnavailable
}
