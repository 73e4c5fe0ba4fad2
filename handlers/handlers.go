package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kinhub/kinhub/registry"
	"github.com/kinhub/kinhub/weather"
)

type ThreeDayTemperature struct {
	ForecastD3 []float64 `json:"forecast_d3"`
}

type WeekAverageTemperature struct {
	ForecastD1 float64 `json:"forecast_d1"`
}

type WeekAveragePrecipitation struct {
	ForecastPP float64 `json:"forecast_pp"`
}

type SearchResult struct {
	FoundParents []string `json:"found_parents"`
}

func Index(c echo.Context) error {
	return c.String(http.StatusOK, "kinhub household API")
}

func ThreeDayTemperatureHandler(source weather.Source) echo.HandlerFunc {
	return func(c echo.Context) error {
		month, err := source.MonthForecast(c.Request().Context())
		if err != nil {
			return forecastError(err)
		}
		temperatures, err := weather.ThreeDayTemperatures(month)
		if err != nil {
			return forecastError(err)
		}
		return c.JSON(http.StatusOK, ThreeDayTemperature{ForecastD3: temperatures})
	}
}

func WeekAverageTemperatureHandler(source weather.Source) echo.HandlerFunc {
	return func(c echo.Context) error {
		month, err := source.MonthForecast(c.Request().Context())
		if err != nil {
			return forecastError(err)
		}
		average, err := weather.WeekAverageTemperature(month)
		if err != nil {
			return forecastError(err)
		}
		return c.JSON(http.StatusOK, WeekAverageTemperature{ForecastD1: average})
	}
}

func WeekAveragePrecipitationHandler(source weather.Source) echo.HandlerFunc {
	return func(c echo.Context) error {
		month, err := source.MonthForecast(c.Request().Context())
		if err != nil {
			return forecastError(err)
		}
		average, err := weather.WeekAveragePrecipitation(month)
		if err != nil {
			return forecastError(err)
		}
		return c.JSON(http.StatusOK, WeekAveragePrecipitation{ForecastPP: average})
	}
}

func FindParentsHandler(reg *registry.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		parents, err := reg.FindParents(c.Request().Context(), c.Param("child_name"))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, SearchResult{FoundParents: parents})
	}
}

func forecastError(err error) error {
	if errors.Is(err, weather.ErrUnavailable) {
		return echo.NewHTTPError(http.StatusNotFound, "forecast not found")
	}
	return err
}
