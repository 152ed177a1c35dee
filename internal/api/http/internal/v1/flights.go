package v1

import (
	"errors"
	"net/http"

	"github.com/skyticket/backend/internal/service"
	"github.com/skyticket/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initFlightsRoutes(api *gin.RouterGroup) {
	flights := api.Group("/flights")
	flights.GET("/search", h.searchFlights)
}

type flightSearchRequest struct {
	Origin      string `form:"origin" binding:"required,alpha,len=3"`
	Destination string `form:"destination" binding:"required,alpha,len=3,nefield=Origin"`
	Date        string `form:"date" binding:"required,max=10"`
	Adult       int    `form:"adult,default=1" binding:"min=1,max=9"`
	Child       int    `form:"child,default=0" binding:"min=0,max=9"`
	Infant      int    `form:"infant,default=0" binding:"min=0,max=9"`
}

// @Summary Search Flights
// @Tags Flights
// @Description Search all partner airlines for one-way flights. Airlines that fail are listed in failed_airlines.
// @ModuleID searchFlights
// @Accept  json
// @Produce  json
// @Param origin query string true "origin airport code, e.g. THR"
// @Param destination query string true "destination airport code, e.g. MHD"
// @Param date query string true "departure date in the Persian calendar, e.g. 1403/05/20"
// @Param adult query int false "adults" default(1)
// @Param child query int false "children" default(0)
// @Param infant query int false "infants" default(0)
// @Success 200 {object} domain.FlightSearchResult
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /flights/search [get]
func (h *Handler) searchFlights(c *gin.Context) {
	var req flightSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	res, err := h.services.Flights.Search(c.Request.Context(), service.FlightSearchInput{
		Source: req.Origin,
		Target: req.Destination,
		Date:   req.Date,
		Adult:  req.Adult,
		Child:  req.Child,
		Infant: req.Infant,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			errorResponse(c, InvalidDepartureDateCode)
			return
		}
		logger.Error("search flights failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, res)
}
