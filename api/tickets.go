package api

import (
	"net/http"

	"github.com/dortiz91/aerolinea/internal/domain"
	"github.com/dortiz91/aerolinea/internal/service/airline"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service airline.AirlineUseCase
}

type sellTicketsRequest struct {
	CustomerID string `json:"customer_id"`
	Date       string `json:"date"`
	RouteCode  string `json:"route_code"`
	Quantity   int    `json:"quantity"`
}

type useTicketsRequest struct {
	CustomerID string `json:"customer_id"`
	Date       string `json:"date"`
	RouteCode  string `json:"route_code"`
}

type ticketResponse struct {
	Code       string `json:"code"`
	Fare       int64  `json:"fare"`
	Used       bool   `json:"used"`
	RouteCode  string `json:"route_code"`
	Date       string `json:"date"`
	CustomerID string `json:"customer_id"`
}

func NewTicketHandler(service airline.AirlineUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.sell)
	router.GET("/", h.list)
	router.POST("/used", h.use)
}

func (h *TicketHandler) sell(c *gin.Context) {
	var req sellTicketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	issued, err := h.service.SellTickets(c.Request.Context(), req.CustomerID, date, req.RouteCode, req.Quantity)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"customer_id": req.CustomerID, "route_code": req.RouteCode, "date": req.Date, "issued": issued})
}

func (h *TicketHandler) list(c *gin.Context) {
	tickets := h.service.Tickets()
	out := make([]ticketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ticketResponse{
			Code:       t.Code,
			Fare:       t.Fare,
			Used:       t.Used,
			RouteCode:  t.RouteCode,
			Date:       t.Date.String(),
			CustomerID: t.CustomerID,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *TicketHandler) use(c *gin.Context) {
	var req useTicketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	used, err := h.service.MarkTicketsUsed(c.Request.Context(), req.CustomerID, date, req.RouteCode)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer_id": req.CustomerID, "route_code": req.RouteCode, "date": req.Date, "used": used})
}
