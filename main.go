package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kinhub/kinhub/configs"
	"github.com/kinhub/kinhub/handlers"
	"github.com/kinhub/kinhub/registry"
	"github.com/kinhub/kinhub/weather"
)

func main() {
	configs.InitConfigs("configs", ".")

	config, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cache, err := newForecastCache(config)
	if err != nil {
		log.Fatalf("Failed to create forecast cache: %v", err)
	}

	primary := weather.NewPrimarySource(config.Weather.PrimaryURL, config.Weather.Timeout())
	reserve := weather.NewReserveSource(config.Weather.ReserveURL, config.Weather.Timeout())
	source := weather.NewCachedSource(weather.NewChain(primary, reserve), cache)

	reg := registry.New(config.Registry.Root)

	e := newEcho(config, source, reg)
	e.Logger.Fatal(e.Start(config.ListenAddr))
}

func newForecastCache(config *configs.Config) (weather.ForecastCache, error) {
	if config.Redis.URL != "" {
		return weather.NewRedisCache(config.Redis.URL, config.Weather.CacheTTL())
	}
	return weather.NewMemoryCache(config.Weather.CacheMaxEntries, config.Weather.CacheTTL()), nil
}

func newEcho(config *configs.Config, source weather.Source, reg *registry.Registry) *echo.Echo {
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 9, // Set compression level to maximum
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: config.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead},
	}))
	e.Use(echoprometheus.NewMiddleware("kinhub"))

	// Routes
	e.GET("/", handlers.Index)
	e.GET("/metrics", echoprometheus.NewHandler())

	api := e.Group("/api/v1")
	api.GET("/weather/3days", handlers.ThreeDayTemperatureHandler(source))
	api.GET("/weather/week_avg_temp", handlers.WeekAverageTemperatureHandler(source))
	api.GET("/weather/week_avg_precip", handlers.WeekAveragePrecipitationHandler(source))
	api.GET("/parents/:child_name", handlers.FindParentsHandler(reg))

	return e
}
