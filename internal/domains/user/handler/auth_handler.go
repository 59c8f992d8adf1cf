package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"musings-backend/internal/domains/user"
	"musings-backend/internal/shared/response"
	"musings-backend/pkg/logger"
)

type AuthHandler struct {
	service user.Service
}

func NewAuthHandler(service user.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login - POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid login payload", err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrAuthDisabled):
			response.ErrorResponse(c, http.StatusForbidden, "AUTH_DISABLED", err.Error())
		case errors.Is(err, user.ErrInvalidCredentials):
			response.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
		default:
			logger.Error("Login failed", err)
			response.InternalServerError(c, "failed to sign in")
		}
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Logout - POST /v1/auth/logout (requires a valid session)
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString("token")
	if token == "" {
		response.Unauthorized(c, "missing session token")
		return
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, user.ErrAuthDisabled) {
			response.ErrorResponse(c, http.StatusForbidden, "AUTH_DISABLED", err.Error())
			return
		}
		logger.Error("Logout failed", err)
		response.InternalServerError(c, "failed to sign out")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}
