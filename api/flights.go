package api

import (
	"net/http"

	"github.com/dortiz91/aerolinea/internal/domain"
	"github.com/dortiz91/aerolinea/internal/service/airline"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service airline.AirlineUseCase
}

type scheduleFlightRequest struct {
	Date      string `json:"date"`
	RouteCode string `json:"route_code"`
	Aircraft  string `json:"aircraft"`
}

type realizeFlightRequest struct {
	Date      string `json:"date"`
	RouteCode string `json:"route_code"`
}

type flightResponse struct {
	RouteCode   string `json:"route_code"`
	Date        string `json:"date"`
	Aircraft    string `json:"aircraft"`
	TicketsSold int    `json:"tickets_sold"`
	Capacity    int    `json:"capacity"`
}

func NewFlightHandler(service airline.AirlineUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.schedule)
	router.GET("/", h.list)
	router.POST("/realized", h.realize)
}

func (h *FlightHandler) schedule(c *gin.Context) {
	var req scheduleFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.ScheduleFlight(c.Request.Context(), date, req.RouteCode, req.Aircraft)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toFlightResponse(flight))
}

func (h *FlightHandler) list(c *gin.Context) {
	flights := h.service.Flights()
	out := make([]flightResponse, 0, len(flights))
	for _, f := range flights {
		out = append(out, toFlightResponse(f))
	}
	c.JSON(http.StatusOK, out)
}

func (h *FlightHandler) realize(c *gin.Context) {
	var req realizeFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	if err := h.service.MarkFlightRealized(c.Request.Context(), date, req.RouteCode); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"route_code": req.RouteCode, "date": req.Date, "realized": true})
}

func toFlightResponse(f *domain.Flight) flightResponse {
	return flightResponse{
		RouteCode:   f.Route.Code,
		Date:        f.Date.String(),
		Aircraft:    f.Aircraft.Name,
		TicketsSold: f.TicketCount(),
		Capacity:    f.Aircraft.Capacity,
	}
}
