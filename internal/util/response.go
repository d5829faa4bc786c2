package util

import (
	"net/http"

	"smartexam_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the uniform error payload: {"error": "...", "details": ...}.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotConfigured(c *gin.Context, what string) {
	Error(c, http.StatusServiceUnavailable, what+" not configured. Please set environment variables.")
}

func InternalServerError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	Error(c, http.StatusInternalServerError, err.Error())
}
