package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/skyticket/backend/internal/service"
	"github.com/skyticket/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerRequest struct {
	PhoneNumber     string `json:"phone_number" binding:"required,phonenumber"`
	UserName        string `json:"user_name" binding:"required,username"`
	Email           string `json:"email" binding:"required,email,max=254"`
	FirstName       string `json:"first_name" binding:"required,max=150"`
	LastName        string `json:"last_name" binding:"required,max=150"`
	Password        string `json:"password" binding:"required,min=8,max=64"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password"`
}

type registerResponse struct {
	RegistrationToken string    `json:"registration_token"`
	ExpiresAt         time.Time `json:"expires_at"`
	Message           string    `json:"message"`
}

// @Summary Start Registration
// @Tags Registration
// @Description Validate sign-up data and send a verification code by SMS
// @ModuleID register
// @Accept  json
// @Produce  json
// @Param input body registerRequest true "sign-up data"
// @Success 202 {object} registerResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	ticket, err := h.services.Registration.RequestRegistration(c.Request.Context(), service.RegistrationInput{
		PhoneNumber: req.PhoneNumber,
		UserName:    req.UserName,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Password:    req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPhoneNumberTaken):
			errorResponse(c, PhoneNumberTakenCode)
		case errors.Is(err, service.ErrUserNameTaken):
			errorResponse(c, UserNameTakenCode)
		case errors.Is(err, service.ErrEmailTaken):
			errorResponse(c, EmailTakenCode)
		default:
			logger.Error("request registration failed", zap.Error(err))
			internalErrorResponse(c)
		}
		return
	}

	c.JSON(http.StatusAccepted, registerResponse{
		RegistrationToken: ticket.Token,
		ExpiresAt:         ticket.ExpiresAt,
		Message:           "کد تایید به شماره موبایل شما ارسال شد",
	})
}

type verifyRegistrationRequest struct {
	RegistrationToken string `json:"registration_token" binding:"required,uuid"`
	Code              string `json:"code" binding:"required,numeric,len=4"`
}

// @Summary Verify Registration
// @Tags Registration
// @Description Confirm the SMS code and create the account
// @ModuleID verifyRegistration
// @Accept  json
// @Produce  json
// @Param input body verifyRegistrationRequest true "registration token and code"
// @Success 201 {object} userAuthResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /auth/register/verify [post]
func (h *Handler) verifyRegistration(c *gin.Context) {
	var req verifyRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	tokens, err := h.services.Registration.VerifyRegistration(c.Request.Context(), service.VerifyRegistrationInput{
		Token:     req.RegistrationToken,
		Code:      req.Code,
		UserAgent: c.Request.UserAgent(),
		UserIP:    c.ClientIP(),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSuchSession):
			errorResponse(c, RegistrationSessionNotFoundCode)
		case errors.Is(err, service.ErrVerificationCodeNotFound):
			errorResponse(c, VerificationCodeNotFoundCode)
		case errors.Is(err, service.ErrCodeMismatch):
			errorResponse(c, VerificationCodeMismatchCode)
		case errors.Is(err, service.ErrUserAlreadyExist):
			errorResponse(c, UserAlreadyExistsCode)
		default:
			logger.Error("verify registration failed", zap.Error(err))
			internalErrorResponse(c)
		}
		return
	}

	c.JSON(http.StatusCreated, newUserAuthResponse(tokens, "ثبت نام با موفقیت انجام شد"))
}
