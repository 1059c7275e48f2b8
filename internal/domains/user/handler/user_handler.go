package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookshelf-api/internal/domains/user/model"
	"bookshelf-api/internal/domains/user/service"
	"bookshelf-api/internal/shared/response"
	"bookshelf-api/pkg/logger"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{
		service: service,
	}
}

// Register - POST /auth/register
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request data")
		return
	}

	dto, err := h.service.Register(c.Request.Context(), req)
	if h.handleError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// Login - POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request data")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if h.handleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// RefreshToken - POST /auth/refresh
func (h *Handler) RefreshToken(c *gin.Context) {
	var req model.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request data")
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if h.handleError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) handleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, model.ErrEmailAlreadyExists):
		response.Conflict(c, "email already registered")
	case errors.Is(err, model.ErrInvalidCredentials), errors.Is(err, model.ErrInvalidToken):
		response.Unauthorized(c, err.Error())
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", verrs)
			return true
		}
		logger.Error("user operation failed", err)
		response.InternalServerError(c, "Internal server error")
	}
	return true
}
