package v1

import (
	"github.com/skyticket/backend/internal/config"
	"github.com/skyticket/backend/internal/service"
	"github.com/skyticket/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title SkyTicket API
// @version 1.0
// @description Flight search and user accounts

// @BasePath /api/v1

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initAuthRoutes(v1)
	h.initUsersRoutes(v1)
	h.initAirlinesRoutes(v1)
	h.initFlightsRoutes(v1)
}
