// Package http wires the forecast decoder/assembler to an HTTP surface:
// request routing, CORS, status code shaping. Domain logic lives in
// internal/usecase and internal/domain; this layer only parses and
// shapes.
package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/praiaforecast/forecast-api/internal/adapter/sqlstore"
	"github.com/praiaforecast/forecast-api/internal/apperr"
	"github.com/praiaforecast/forecast-api/internal/usecase"
)

// Handler handles HTTP requests for the forecast API.
type Handler struct {
	assembler *usecase.ForecastAssembler
	resolver  *sqlstore.Resolver
	region    string
}

// NewHandler creates a new HTTP handler.
func NewHandler(assembler *usecase.ForecastAssembler, resolver *sqlstore.Resolver, region string) *Handler {
	return &Handler{assembler: assembler, resolver: resolver, region: region}
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"application": "forecast-api",
		"message":     "OK",
		"region":      h.region,
	})
}

// Forecast handles GET /forecast.
func (h *Handler) Forecast(c *gin.Context) {
	praiaStr := c.Query("praia_id")
	coastStr := c.Query("coastId")

	if praiaStr == "" && coastStr == "" {
		writeError(c, apperr.BadRequest("either praia_id or coastId is required"))
		return
	}
	if praiaStr != "" && coastStr != "" {
		writeError(c, apperr.BadRequest("praia_id and coastId are mutually exclusive"))
		return
	}

	req := usecase.ForecastRequest{}
	if praiaStr != "" {
		id, err := strconv.Atoi(praiaStr)
		if err != nil {
			writeError(c, apperr.BadRequest("invalid praia_id: %v", err))
			return
		}
		req.SpotID = &id
	} else {
		id, err := strconv.Atoi(coastStr)
		if err != nil {
			writeError(c, apperr.BadRequest("invalid coastId: %v", err))
			return
		}
		req.CoastID = &id
	}

	doc, err := h.assembler.Execute(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// nearestSpotsQuery binds and validates GET /geolocation/nearest-spots.
type nearestSpotsQuery struct {
	Lat   float64 `form:"lat" binding:"required"`
	Long  float64 `form:"long" binding:"required"`
	Range float64 `form:"range" binding:"required,gt=0"`
}

// NearestSpots handles GET /geolocation/nearest-spots.
func (h *Handler) NearestSpots(c *gin.Context) {
	var q nearestSpotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, apperr.BadRequest("invalid query: %v", err))
		return
	}

	spots, err := h.resolver.NearestSpots(c.Request.Context(), q.Lat, q.Long, q.Range)
	if err != nil {
		writeError(c, apperr.Transient(err, "nearest-spots query failed"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"spots": spots})
}

// nameSearchQuery binds GET /geolocation/search.
type nameSearchQuery struct {
	Name string `form:"name" binding:"required"`
}

// SearchLocations handles GET /geolocation/search.
func (h *Handler) SearchLocations(c *gin.Context) {
	var q nameSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, apperr.BadRequest("invalid query: %v", err))
		return
	}

	results, err := h.resolver.SearchByName(c.Request.Context(), q.Name)
	if err != nil {
		writeError(c, apperr.Transient(err, "name search failed"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": results})
}

// Locations handles GET /locations.
func (h *Handler) Locations(c *gin.Context) {
	tree, err := h.resolver.Tree(c.Request.Context())
	if err != nil {
		writeError(c, apperr.Transient(err, "failed to load locations"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": tree})
}

// writeError shapes any error into an {error, message} body, selecting
// the status code from its apperr.Kind.
func writeError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindBadRequest:
		c.JSON(http.StatusBadRequest, gin.H{"error": "BadRequest", "message": err.Error()})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "NotFound", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ServerError", "message": "internal server error"})
	}
}
