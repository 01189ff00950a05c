package api

import (
	"net/http"

	"github.com/dortiz91/aerolinea/internal/domain"
	"github.com/dortiz91/aerolinea/internal/service/airline"
	"github.com/gin-gonic/gin"
)

// RegistryHandler exposes the registration and lookup surface for aircraft,
// routes and customers.
type RegistryHandler struct {
	service airline.AirlineUseCase
}

type addAircraftRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type addRouteRequest struct {
	Code        string `json:"code"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
}

type addCustomerRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	CompanySize string `json:"company_size"`
}

type routeResponse struct {
	Code        string `json:"code"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
}

type customerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	CompanySize string `json:"company_size,omitempty"`
}

type balanceResponse struct {
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"`
}

func NewRegistryHandler(service airline.AirlineUseCase) *RegistryHandler {
	return &RegistryHandler{service: service}
}

func (h *RegistryHandler) Register(router *gin.RouterGroup) {
	router.POST("/aircraft", h.addAircraft)
	router.GET("/aircraft", h.listAircraft)
	router.POST("/routes", h.addRoute)
	router.GET("/routes", h.listRoutes)
	router.POST("/customers", h.addCustomer)
	router.GET("/customers", h.listCustomers)
	router.GET("/customers/:id/balance", h.balance)
	router.GET("/customers/:id/spent", h.spent)
}

func (h *RegistryHandler) addAircraft(c *gin.Context) {
	var req addAircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	aircraft, err := domain.NewAircraft(req.Name, req.Capacity)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if err := h.service.AddAircraft(aircraft); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"name": aircraft.Name, "capacity": aircraft.Capacity})
}

func (h *RegistryHandler) listAircraft(c *gin.Context) {
	aircraft := h.service.Aircraft()
	out := make([]gin.H, 0, len(aircraft))
	for _, a := range aircraft {
		out = append(out, gin.H{"name": a.Name, "capacity": a.Capacity})
	}
	c.JSON(http.StatusOK, out)
}

func (h *RegistryHandler) addRoute(c *gin.Context) {
	var req addRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	departure, err := domain.ParseTimeOfDay(req.Departure)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	arrival, err := domain.ParseTimeOfDay(req.Arrival)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	route, err := domain.NewRoute(req.Code, req.Origin, req.Destination, departure, arrival)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if err := h.service.AddRoute(route); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toRouteResponse(route))
}

func (h *RegistryHandler) listRoutes(c *gin.Context) {
	routes := h.service.Routes()
	out := make([]routeResponse, 0, len(routes))
	for _, r := range routes {
		out = append(out, toRouteResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

func (h *RegistryHandler) addCustomer(c *gin.Context) {
	var req addCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var customer *domain.Customer
	var err error
	switch domain.CustomerKind(req.Kind) {
	case domain.CustomerIndividual:
		customer, err = domain.NewIndividualCustomer(req.ID, req.Name)
	case domain.CustomerCorporate:
		customer, err = domain.NewCorporateCustomer(req.ID, req.Name, domain.CompanySize(req.CompanySize))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be INDIVIDUAL or CORPORATE"})
		return
	}
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if err := h.service.AddCustomer(customer); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

func (h *RegistryHandler) listCustomers(c *gin.Context) {
	customers := h.service.Customers()
	out := make([]customerResponse, 0, len(customers))
	for _, cust := range customers {
		out = append(out, toCustomerResponse(cust))
	}
	c.JSON(http.StatusOK, out)
}

func (h *RegistryHandler) balance(c *gin.Context) {
	id := c.Param("id")
	amount, err := h.service.PendingBalance(id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, balanceResponse{CustomerID: id, Amount: amount})
}

func (h *RegistryHandler) spent(c *gin.Context) {
	id := c.Param("id")
	amount, err := h.service.TotalSpent(id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, balanceResponse{CustomerID: id, Amount: amount})
}

func toRouteResponse(r *domain.Route) routeResponse {
	return routeResponse{
		Code:        r.Code,
		Origin:      r.Origin,
		Destination: r.Destination,
		Departure:   r.Departure.String(),
		Arrival:     r.Arrival.String(),
	}
}

func toCustomerResponse(cust *domain.Customer) customerResponse {
	return customerResponse{
		ID:          cust.ID,
		Name:        cust.Name,
		Kind:        string(cust.Kind),
		CompanySize: string(cust.Size),
	}
}
