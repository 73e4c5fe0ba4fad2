package weather

import "math"

const (
	forecastPrecision = 2
	threeDayWindow    = 3
	weekWindow        = 7
)

// ThreeDayTemperatures returns the temperatures of the first three days of
// the month forecast.
func ThreeDayTemperatures(month []DayForecast) ([]float64, error) {
	if len(month) < threeDayWindow {
		return nil, ErrUnavailable
	}
	temperatures := make([]float64, threeDayWindow)
	for i, day := range month[:threeDayWindow] {
		temperatures[i] = day.Temperature
	}
	return temperatures, nil
}

// WeekAverageTemperature returns the mean temperature over the first seven
// days of the month forecast.
func WeekAverageTemperature(month []DayForecast) (float64, error) {
	if len(month) < weekWindow {
		return 0, ErrUnavailable
	}
	var sum float64
	for _, day := range month[:weekWindow] {
		sum += day.Temperature
	}
	return roundForecast(sum / weekWindow), nil
}

// WeekAveragePrecipitation returns the mean precipitation probability over
// the first seven days of the month forecast.
func WeekAveragePrecipitation(month []DayForecast) (float64, error) {
	if len(month) < weekWindow {
		return 0, ErrUnavailable
	}
	var sum float64
	for _, day := range month[:weekWindow] {
		sum += day.Precipitation
	}
	return roundForecast(sum / weekWindow), nil
}

func roundForecast(value float64) float64 {
	factor := math.Pow10(forecastPrecision)
	return math.Round(value*factor) / factor
}
