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

// ProviderHandler exposes the provider-facing booking endpoints.
type ProviderHandler struct {
	bookings *application.BookingService
	logger   *zap.Logger
}

// NewProviderHandler creates a new ProviderHandler.
func NewProviderHandler(bookings *application.BookingService, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{bookings: bookings, logger: logger}
}

// RegisterRoutes registers the provider booking routes.
func (h *ProviderHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	provider := r.Group("/provider/bookings")
	provider.Use(middleware.AuthMiddleware(jwtManager), middleware.RequireRole(auth.RoleProvider))
	{
		provider.GET("", h.ListBookings)
		provider.POST("/:id/confirm", h.ConfirmBooking)
		provider.POST("/:id/complaint", h.FileComplaint)
	}
}

// ListBookings handles GET /provider/bookings. Each booking is annotated with
// the owning customer's name and email.
func (h *ProviderHandler) ListBookings(c *gin.Context) {
	email, ok := middleware.GetEmail(c)
	if !ok {
		response.BadRequest(c, "missing authenticated email")
		return
	}

	dtos, err := h.bookings.GetProviderBookings(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dtos)
}

// ConfirmBooking handles POST /provider/bookings/:id/confirm.
func (h *ProviderHandler) ConfirmBooking(c *gin.Context) {
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

	dto, err := h.bookings.ConfirmBooking(c.Request.Context(), email, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}

type providerComplaintRequest struct {
	Complaint string `json:"complaint"`
}

// FileComplaint handles POST /provider/bookings/:id/complaint.
func (h *ProviderHandler) FileComplaint(c *gin.Context) {
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

	var req providerComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.bookings.FileProviderComplaint(c.Request.Context(), email, id, req.Complaint)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}
