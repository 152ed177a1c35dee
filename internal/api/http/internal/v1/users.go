package v1

import (
	"errors"
	"net/http"

	"github.com/skyticket/backend/internal/domain"
	"github.com/skyticket/backend/internal/service"
	"github.com/skyticket/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) initUsersRoutes(api *gin.RouterGroup) {
	users := api.Group("/users", h.userIdentityMiddleware)

	users.GET("/me", h.dashboard)
	users.PUT("/me/password", h.changePassword)
	users.GET("/me/document", h.getDocument)
	users.PUT("/:id", h.updateProfile)
	users.PUT("/:id/document", h.uploadDocument)
}

type dashboardResponse struct {
	User     *domain.User         `json:"user"`
	Document *domain.UserDocument `json:"document"`
}

// @Summary Dashboard
// @Tags Users
// @Description Current user with their identity document, if any
// @ModuleID dashboard
// @Accept  json
// @Produce  json
// @Success 200 {object} dashboardResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /users/me [get]
func (h *Handler) dashboard(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	user, err := h.services.Users.GetOneByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			errorStatusResponse(c, http.StatusNotFound, UserNotFoundCode)
			return
		}
		logger.Error("get user failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	document, err := h.services.Documents.GetDocument(c.Request.Context(), userID)
	if err != nil && !errors.Is(err, service.ErrDocumentNotFound) {
		logger.Error("get user document failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, dashboardResponse{User: user, Document: document})
}

type updateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"required,max=150"`
	Email     string `json:"email" binding:"required,email,max=254"`
}

type updateProfileResponse struct {
	User    *domain.User `json:"user"`
	Message string       `json:"message"`
}

// @Summary Update Profile
// @Tags Users
// @Description Update name and email of the user. Only the user may do this.
// @ModuleID updateProfile
// @Accept  json
// @Produce  json
// @Param id path string true "user id"
// @Param input body updateProfileRequest true "profile"
// @Success 200 {object} updateProfileResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401
// @Failure 403 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /users/{id} [put]
func (h *Handler) updateProfile(c *gin.Context) {
	requesterID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorStatusResponse(c, http.StatusNotFound, UserNotFoundCode)
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	user, err := h.services.Users.UpdateProfile(c.Request.Context(), requesterID, userID, domain.UserProfile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			errorStatusResponse(c, http.StatusForbidden, ForbiddenCode)
		case errors.Is(err, service.ErrEmailTaken):
			errorResponse(c, EmailTakenCode)
		case errors.Is(err, service.ErrUserNotFound):
			errorStatusResponse(c, http.StatusNotFound, UserNotFoundCode)
		default:
			logger.Error("update profile failed", zap.Error(err))
			internalErrorResponse(c)
		}
		return
	}

	c.JSON(http.StatusOK, updateProfileResponse{User: user, Message: "پروفایل با موفقیت به‌روزرسانی شد"})
}

type changePasswordRequest struct {
	OldPassword        string `json:"old_password" binding:"required,max=64"`
	NewPassword        string `json:"new_password" binding:"required,min=8,max=64"`
	NewPasswordConfirm string `json:"new_password_confirm" binding:"required,eqfield=NewPassword"`
}

// @Summary Change Password
// @Tags Users
// @Description Change the password of the current user
// @ModuleID changePassword
// @Accept  json
// @Produce  json
// @Param input body changePasswordRequest true "passwords"
// @Success 200 {object} messageResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /users/me/password [put]
func (h *Handler) changePassword(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Users.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			errorResponse(c, InvalidCredentialsCode)
		case errors.Is(err, service.ErrUserNotFound):
			errorStatusResponse(c, http.StatusNotFound, UserNotFoundCode)
		default:
			logger.Error("change password failed", zap.Error(err))
			internalErrorResponse(c)
		}
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "رمز عبور با موفقیت تغییر کرد"})
}
