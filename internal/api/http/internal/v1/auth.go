package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/skyticket/backend/internal/service"
	"github.com/skyticket/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) initAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")

	auth.POST("/login", h.login)
	auth.POST("/refresh", h.refresh)
	auth.POST("/logout", h.userIdentityMiddleware, h.logout)

	auth.POST("/register", h.register)
	auth.POST("/register/verify", h.verifyRegistration)
}

type userAuthResponse struct {
	AccessToken  string    `json:"access_token"`
	ExpiresIn    int64     `json:"expires_in"`
	RefreshToken uuid.UUID `json:"refresh_token"`
	Message      string    `json:"message,omitempty"`
}

func newUserAuthResponse(tokens *service.Tokens, message string) userAuthResponse {
	return userAuthResponse{
		AccessToken:  tokens.AccessToken,
		ExpiresIn:    int64(tokens.AccessTTL / time.Second),
		RefreshToken: tokens.RefreshToken,
		Message:      message,
	}
}

type userLoginRequest struct {
	UserName string `json:"user_name" binding:"required,max=150"`
	Password string `json:"password" binding:"required,max=64"`
}

// @Summary User Login
// @Tags Auth
// @Description Login with user name and password
// @ModuleID login
// @Accept  json
// @Produce  json
// @Param input body userLoginRequest true "credentials"
// @Success 200 {object} userAuthResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req userLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	tokens, err := h.services.Users.Login(c.Request.Context(), req.UserName, req.Password, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			errorStatusResponse(c, http.StatusUnauthorized, InvalidCredentialsCode)
			return
		}
		logger.Error("login failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, newUserAuthResponse(tokens, "با موفقیت وارد شدید"))
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required,uuid"`
}

// @Summary Refresh Tokens
// @Tags Auth
// @Description Exchange a refresh token for a new token pair
// @ModuleID refresh
// @Accept  json
// @Produce  json
// @Param input body refreshTokenRequest true "refresh token"
// @Success 200 {object} userAuthResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /auth/refresh [post]
func (h *Handler) refresh(c *gin.Context) {
	var req refreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	tokens, err := h.services.Users.Refresh(c.Request.Context(), req.RefreshToken, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRefreshToken):
			errorStatusResponse(c, http.StatusUnauthorized, UserRefreshTokenInvalidCode)
		case errors.Is(err, service.ErrRefreshTokenExpired):
			errorStatusResponse(c, http.StatusUnauthorized, UserRefreshTokenExpiredCode)
		default:
			logger.Error("refresh tokens failed", zap.Error(err))
			internalErrorResponse(c)
		}
		return
	}

	c.JSON(http.StatusOK, newUserAuthResponse(tokens, ""))
}

// @Summary User Logout
// @Tags Auth
// @Description Revoke a refresh token of the current user
// @ModuleID logout
// @Accept  json
// @Produce  json
// @Param input body refreshTokenRequest true "refresh token"
// @Success 200 {object} messageResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req refreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Users.Logout(c.Request.Context(), userID, req.RefreshToken); err != nil {
		if errors.Is(err, service.ErrInvalidRefreshToken) {
			errorResponse(c, UserRefreshTokenInvalidCode)
			return
		}
		logger.Error("logout failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "با موفقیت خارج شدید"})
}
