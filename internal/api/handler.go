package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ev-storefront/internal/domain"
	"ev-storefront/internal/service"
	"ev-storefront/pkg/logger"
)

type HealthChecker interface {
	Health(ctx context.Context) map[string]string
}

type Handler struct {
	catalog service.CatalogService
	orders  service.OrderService
	auth    service.AuthService
	health  HealthChecker
	log     logger.Logger
}

func NewHandler(
	catalog service.CatalogService,
	orders service.OrderService,
	auth service.AuthService,
	health HealthChecker,
	log logger.Logger,
) *Handler {
	return &Handler{catalog: catalog, orders: orders, auth: auth, health: health, log: log}
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.writeError(c, domain.ErrProductNotFound)
		return
	}
	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) QuoteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.writeError(c, domain.ErrProductNotFound)
		return
	}
	var payload SelectionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	cfg, total, err := h.catalog.Quote(c.Request.Context(), id, payload.Selection())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, QuoteResponse{ProductID: id, Configuration: cfg, TotalPrice: total})
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	// A malformed id still goes through the credential check; uuid.Nil
	// never matches a stored product.
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		productID = uuid.Nil
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), bearerToken(c), service.PlaceOrderCommand{
		ProductID:       productID,
		Selection:       req.Configuration.Selection(),
		ShippingAddress: req.ShippingAddress,
		ClientTotal:     req.TotalPrice,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	res, err := h.auth.Register(c.Request.Context(), service.RegisterCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, authResponse(res))
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse(res))
}

func (h *Handler) Health(c *gin.Context) {
	stats := h.health.Health(c.Request.Context())
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, stats)
}

func authResponse(res *service.AuthResult) AuthResponse {
	return AuthResponse{
		Token: res.Token,
		User:  UserResponse{ID: res.User.ID, Name: res.User.Name, Email: res.User.Email},
	}
}
