package http

import (
	"github.com/gin-gonic/gin"

	"github.com/praiaforecast/forecast-api/internal/adapter/sqlstore"
	"github.com/praiaforecast/forecast-api/internal/usecase"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(assembler *usecase.ForecastAssembler, resolver *sqlstore.Resolver, region string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger())
	router.Use(corsMiddleware())

	handler := NewHandler(assembler, resolver, region)

	router.GET("/health", handler.Health)
	router.GET("/forecast", handler.Forecast)
	router.GET("/locations", handler.Locations)

	geo := router.Group("/geolocation")
	{
		geo.GET("/nearest-spots", handler.NearestSpots)
		geo.GET("/search", handler.SearchLocations)
	}

	return router
}
