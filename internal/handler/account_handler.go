package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonsphere/service-booking/internal/application"
	"github.com/salonsphere/service-booking/internal/response"
)

// AccountHandler exposes registration, login and account lookups.
type AccountHandler struct {
	accounts *application.AccountService
	catalog  *application.CatalogService
	logger   *zap.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts *application.AccountService, catalog *application.CatalogService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, catalog: catalog, logger: logger}
}

// RegisterRoutes registers the public auth routes.
func (h *AccountHandler) RegisterRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/check-login/:email", h.CheckLogin)
		authGroup.GET("/role/:email", h.AccountRole)
	}
}

// Register handles POST /auth/register.
func (h *AccountHandler) Register(c *gin.Context) {
	var req application.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.accounts.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto)
}

// Login handles POST /auth/login.
func (h *AccountHandler) Login(c *gin.Context) {
	var req application.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.Identifier == "" || req.Password == "" {
		response.BadRequest(c, "identifier and password are required")
		return
	}

	dto, err := h.accounts.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}

// CheckLogin handles GET /auth/check-login/:email.
func (h *AccountHandler) CheckLogin(c *gin.Context) {
	dto, err := h.accounts.CheckLogin(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}

// AccountRole handles GET /auth/role/:email.
func (h *AccountHandler) AccountRole(c *gin.Context) {
	dto, err := h.catalog.AccountRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}
