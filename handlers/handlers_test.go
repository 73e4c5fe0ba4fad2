package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinhub/kinhub/registry"
	"github.com/kinhub/kinhub/weather"
)

type stubSource struct {
	forecast []weather.DayForecast
	err      error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) MonthForecast(ctx context.Context) ([]weather.DayForecast, error) {
	return s.forecast, s.err
}

func weekForecast() []weather.DayForecast {
	return []weather.DayForecast{
		{Temperature: 1, Precipitation: 0.1},
		{Temperature: 2, Precipitation: 0.2},
		{Temperature: 3, Precipitation: 0.3},
		{Temperature: 4, Precipitation: 0.4},
		{Temperature: 5, Precipitation: 0.5},
		{Temperature: 6, Precipitation: 0.6},
		{Temperature: 7, Precipitation: 0.7},
	}
}

func newContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestIndex(t *testing.T) {
	c, rec := newContext(t, "/")

	if assert.NoError(t, Index(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "kinhub")
	}
}

func TestThreeDayTemperatureHandler(t *testing.T) {
	c, rec := newContext(t, "/api/v1/weather/3days")
	handler := ThreeDayTemperatureHandler(&stubSource{forecast: weekForecast()})

	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var response ThreeDayTemperature
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, []float64{1, 2, 3}, response.ForecastD3)
}

func TestWeekAverageTemperatureHandler(t *testing.T) {
	c, rec := newContext(t, "/api/v1/weather/week_avg_temp")
	handler := WeekAverageTemperatureHandler(&stubSource{forecast: weekForecast()})

	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var response WeekAverageTemperature
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 4.0, response.ForecastD1)
}

func TestWeekAveragePrecipitationHandler(t *testing.T) {
	c, rec := newContext(t, "/api/v1/weather/week_avg_precip")
	handler := WeekAveragePrecipitationHandler(&stubSource{forecast: weekForecast()})

	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var response WeekAveragePrecipitation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 0.4, response.ForecastPP)
}

func TestWeatherHandlersForecastUnavailable(t *testing.T) {
	source := &stubSource{err: weather.ErrUnavailable}
	handlers := map[string]echo.HandlerFunc{
		"3days":           ThreeDayTemperatureHandler(source),
		"week_avg_temp":   WeekAverageTemperatureHandler(source),
		"week_avg_precip": WeekAveragePrecipitationHandler(source),
	}

	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			c, _ := newContext(t, "/api/v1/weather/"+name)

			err := handler(c)

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusNotFound, httpErr.Code)
		})
	}
}

func TestWeatherHandlersShortForecast(t *testing.T) {
	source := &stubSource{forecast: []weather.DayForecast{{Temperature: 1}, {Temperature: 2}}}
	c, _ := newContext(t, "/api/v1/weather/3days")

	err := ThreeDayTemperatureHandler(source)(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestFindParentsHandler(t *testing.T) {
	dir := t.TempDir()
	household := `{"persons":[{"name":"Homer","children":[{"name":"Bart"}]}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "simpsons.json"), []byte(household), 0o644))

	c, rec := newContext(t, "/api/v1/parents/Bart")
	c.SetParamNames("child_name")
	c.SetParamValues("Bart")

	require.NoError(t, FindParentsHandler(registry.New(dir))(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var response SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, []string{"Homer"}, response.FoundParents)
}

func TestFindParentsHandlerNoMatch(t *testing.T) {
	c, rec := newContext(t, "/api/v1/parents/Milhouse")
	c.SetParamNames("child_name")
	c.SetParamValues("Milhouse")

	require.NoError(t, FindParentsHandler(registry.New(t.TempDir()))(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"found_parents":[]}`, rec.Body.String())
}

func TestFindParentsHandlerWalkError(t *testing.T) {
	c, _ := newContext(t, "/api/v1/parents/Bart")
	c.SetParamNames("child_name")
	c.SetParamValues("Bart")

	err := FindParentsHandler(registry.New(filepath.Join(t.TempDir(), "absent")))(c)

	assert.Error(t, err)
}
