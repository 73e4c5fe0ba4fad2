package weather

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no source can produce a usable forecast.
var ErrUnavailable = errors.New("forecast unavailable")

// DayForecast is a single day of the month forecast. Temperature is in
// degrees Celsius, Precipitation is a probability in [0, 1].
type DayForecast struct {
	Temperature   float64 `json:"temperature"`
	Precipitation float64 `json:"precipitation"`
}

// Source produces a day-by-day forecast for the coming month.
type Source interface {
	Name() string
	MonthForecast(ctx context.Context) ([]DayForecast, error)
}
