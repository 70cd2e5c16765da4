package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roadtrip/internal/models/request_models"
	"roadtrip/internal/services"
	"roadtrip/pkg/utils"
)

type DestinationsController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationsController(destinationService services.DestinationServiceInterface) *DestinationsController {
	return &DestinationsController{
		destinationService: destinationService,
	}
}

func (d *DestinationsController) CreateDestinationHandler(c *gin.Context) {
	var req request_models.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	dest, err := d.destinationService.CreateDestination(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dest, "Destination created successfully")
}

func (d *DestinationsController) ListDestinationsHandler(c *gin.Context) {
	skipStr := c.DefaultQuery("skip", "0")
	limitStr := c.DefaultQuery("limit", "100")

	skip, err := strconv.Atoi(skipStr)
	if err != nil || skip < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid skip parameter")
		return
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit parameter (must be 1-100)")
		return
	}

	dests, err := d.destinationService.ListDestinations(c.Request.Context(), skip, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dests, "Destinations fetched successfully")
}

func (d *DestinationsController) GetDestinationHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	dest, err := d.destinationService.GetDestination(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dest, "Destination fetched successfully")
}

func (d *DestinationsController) UpdateDestinationHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	var patch request_models.UpdateDestinationRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	dest, err := d.destinationService.UpdateDestination(c.Request.Context(), id, patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dest, "Destination updated successfully")
}

func (d *DestinationsController) DeleteDestinationHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	if err := d.destinationService.DeleteDestination(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Destination deleted successfully")
}
