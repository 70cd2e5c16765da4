package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roadtrip/internal/models/request_models"
	"roadtrip/internal/models/response_models"
	"roadtrip/internal/services"
	"roadtrip/pkg/utils"
)

type ItineraryController struct {
	routePlanner     services.RoutePlannerInterface
	narrativeService services.NarrativeServiceInterface
}

func NewItineraryController(
	routePlanner services.RoutePlannerInterface,
	narrativeService services.NarrativeServiceInterface) *ItineraryController {

	return &ItineraryController{
		routePlanner:     routePlanner,
		narrativeService: narrativeService,
	}
}

// GetItineraryHandler returns the geometry-grounded plan and the
// LLM-grounded plan side by side; the two are independent and never
// reconciled against each other.
func (i *ItineraryController) GetItineraryHandler(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "origin and destination are required")
		return
	}

	days, err := i.routePlanner.PlanRoute(c.Request.Context(), req.Origin, req.Destination, req.DailyLimitKm)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	narrative := i.narrativeService.GenerateItinerary(c.Request.Context(), req.Origin, req.Destination)

	utils.RespondSuccess(c, response_models.ItineraryResponse{
		FallbackItinerary: days,
		GptItinerary:      narrative,
	}, "Itinerary generated successfully")
}
