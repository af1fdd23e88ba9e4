package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/salonsphere/service-booking/internal/application"
	"github.com/salonsphere/service-booking/internal/auth"
	"github.com/salonsphere/service-booking/internal/middleware"
	"github.com/salonsphere/service-booking/internal/response"
)

// AdminHandler exposes the cross-account reporting endpoints.
type AdminHandler struct {
	bookings *application.BookingService
	accounts *application.AccountService
	logger   *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(bookings *application.BookingService, accounts *application.AccountService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{bookings: bookings, accounts: accounts, logger: logger}
}

// RegisterRoutes registers the admin routes.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(jwtManager), middleware.RequireRole(auth.RoleAdmin))
	{
		admin.GET("/accounts", h.ListAccounts)
		admin.DELETE("/accounts/:id", h.DeleteAccount)
		admin.GET("/bookings", h.ListBookings)
		admin.GET("/bookings/stats", h.GetBookingStats)
	}
}

// ListAccounts handles GET /admin/accounts.
func (h *AdminHandler) ListAccounts(c *gin.Context) {
	dtos, err := h.accounts.ListAccounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dtos)
}

// DeleteAccount handles DELETE /admin/accounts/:id. The account's bookings
// are removed with it.
func (h *AdminHandler) DeleteAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid account ID")
		return
	}

	if err := h.accounts.DeleteAccount(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": id})
}

// ListBookings handles GET /admin/bookings. Without paging parameters it
// returns the full cross-account list.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	pageParam := c.Query("page")
	limitParam := c.Query("limit")

	if pageParam == "" && limitParam == "" {
		dtos, err := h.bookings.ListAllBookings(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, dtos)
		return
	}

	page, err := strconv.Atoi(pageParam)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitParam)
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	result, err := h.bookings.ListBookingsPaginated(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// GetBookingStats handles GET /admin/bookings/stats.
func (h *AdminHandler) GetBookingStats(c *gin.Context) {
	dto, err := h.bookings.GetBookingStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}
