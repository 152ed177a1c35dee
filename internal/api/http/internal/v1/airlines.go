package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyticket/backend/pkg/logger"
	"go.uber.org/zap"
)

func (h *Handler) initAirlinesRoutes(api *gin.RouterGroup) {
	airlines := api.Group("/airlines")
	airlines.GET("", h.getAirlines)
}

// @Summary Get Airlines
// @Tags Airlines
// @Description Get all partner airlines
// @ModuleID getAirlines
// @Accept  json
// @Produce  json
// @Success 200 {object} []domain.Airline
// @Failure 500 {object} ErrorStruct
// @Router /airlines [get]
func (h *Handler) getAirlines(c *gin.Context) {
	airlines, err := h.services.Airlines.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("get airlines failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, airlines)
}
