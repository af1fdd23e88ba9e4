package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/salonsphere/service-booking/internal/application"
	"github.com/salonsphere/service-booking/internal/auth"
	"github.com/salonsphere/service-booking/internal/middleware"
	"github.com/salonsphere/service-booking/internal/response"
)

// BookingHandler exposes the customer-facing booking endpoints.
type BookingHandler struct {
	bookings *application.BookingService
	logger   *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookings *application.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{bookings: bookings, logger: logger}
}

// RegisterRoutes registers the customer booking routes.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware(jwtManager), middleware.RequireRole(auth.RoleCustomer))
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/overview", h.GetOverview)
		bookings.GET("/:id", h.GetBooking)
		bookings.POST("/rating", h.RateBooking)
		bookings.POST("/complaint", h.FileComplaint)
	}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	email, ok := middleware.GetEmail(c)
	if !ok {
		response.BadRequest(c, "missing authenticated email")
		return
	}

	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.bookings.CreateBooking(c.Request.Context(), email, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto)
}

// ListBookings handles GET /bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	email, ok := middleware.GetEmail(c)
	if !ok {
		response.BadRequest(c, "missing authenticated email")
		return
	}

	dtos, err := h.bookings.GetOwnerBookings(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dtos)
}

// GetOverview handles GET /bookings/overview.
func (h *BookingHandler) GetOverview(c *gin.Context) {
	email, ok := middleware.GetEmail(c)
	if !ok {
		response.BadRequest(c, "missing authenticated email")
		return
	}

	dto, err := h.bookings.GetCustomerView(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}

// GetBooking handles GET /bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	email, ok := middleware.GetEmail(c)
	if !ok {
		response.BadRequest(c, "missing authenticated email")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	dto, err := h.bookings.GetBooking(c.Request.Context(), email, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}

type rateBookingRequest struct {
	OrderID string  `json:"order_id"`
	Rating  float64 `json:"rating"`
	Review  string  `json:"review"`
}

// RateBooking handles POST /bookings/rating. The booking is addressed by its
// payment order identifier.
func (h *BookingHandler) RateBooking(c *gin.Context) {
	email, ok := middleware.GetEmail(c)
	if !ok {
		response.BadRequest(c, "missing authenticated email")
		return
	}

	var req rateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.OrderID == "" {
		response.BadRequest(c, "order_id is required")
		return
	}

	dto, err := h.bookings.RateBooking(c.Request.Context(), email, req.OrderID, req.Rating, req.Review)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}

type customerComplaintRequest struct {
	OrderID   string `json:"order_id"`
	Complaint string `json:"complaint"`
}

// FileComplaint handles POST /bookings/complaint.
func (h *BookingHandler) FileComplaint(c *gin.Context) {
	email, ok := middleware.GetEmail(c)
	if !ok {
		response.BadRequest(c, "missing authenticated email")
		return
	}

	var req customerComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.OrderID == "" {
		response.BadRequest(c, "order_id is required")
		return
	}

	dto, err := h.bookings.FileCustomerComplaint(c.Request.Context(), email, req.OrderID, req.Complaint)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}
