package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Jupiter-12/kanban/internal/adapter/http/dto"
	"github.com/Jupiter-12/kanban/internal/adapter/http/mapper"
	"github.com/Jupiter-12/kanban/internal/adapter/http/middleware"
	"github.com/Jupiter-12/kanban/internal/core/domain"
	"github.com/Jupiter-12/kanban/internal/core/ports"
	"github.com/Jupiter-12/kanban/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), domain.RegisterUserInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), c.ClientIP(), req.Username, req.Password)
	if err != nil {
		var limited *domain.RateLimitedError
		if errors.As(err, &limited) {
			c.Header("Retry-After", strconv.Itoa(limited.WaitSeconds))
			c.JSON(
				http.StatusTooManyRequests,
				apierrors.CreateErrorMeta(http.StatusTooManyRequests, apierrors.MsgTooManyAttempts, lang,
					map[string]any{"retry_after_seconds": limited.WaitSeconds}),
			)
			return
		}

		var invalid *domain.InvalidCredentialsError
		if errors.As(err, &invalid) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateErrorMeta(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang,
					map[string]any{"remaining_attempts": invalid.RemainingAttempts}),
			)
			return
		}

		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{AccessToken: token, TokenType: "bearer"})
}

// Logout revokes the presented token. It always succeeds: an invalid token
// has nothing to revoke.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authService.Logout(c.Request.Context(), middleware.BearerToken(c))
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToUserItem(middleware.CurrentUser(c)))
}
