package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salonsphere/service-booking/internal/domain"
)

// Envelope is the standard API response wrapper.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success writes a 200 response with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: message})
}

// Paginated writes a 200 response with items and paging metadata.
func Paginated(c *gin.Context, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// Error maps a domain error to its HTTP status; anything unrecognized is a 500.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch domain.CodeOf(err) {
	case domain.CodeValidation:
		status, message = http.StatusBadRequest, err.Error()
	case domain.CodeNotFound:
		status, message = http.StatusNotFound, err.Error()
	case domain.CodeConflict:
		status, message = http.StatusConflict, err.Error()
	case domain.CodeInvalidState:
		status, message = http.StatusConflict, err.Error()
	case domain.CodeForbidden:
		status, message = http.StatusForbidden, err.Error()
	case domain.CodeUnauthorized:
		status, message = http.StatusUnauthorized, err.Error()
	}

	c.JSON(status, Envelope{Success: false, Error: message})
}
