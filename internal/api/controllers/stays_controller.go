package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roadtrip/internal/models/request_models"
	"roadtrip/internal/services"
	"roadtrip/pkg/utils"
)

type StaysController struct {
	stayService services.StayServiceInterface
}

func NewStaysController(stayService services.StayServiceInterface) *StaysController {
	return &StaysController{
		stayService: stayService,
	}
}

func (s *StaysController) GetStaysHandler(c *gin.Context) {
	var req request_models.StaysRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "lat and lon are required")
		return
	}

	page, err := s.stayService.FindNearby(c.Request.Context(), *req.Lat, *req.Lon, req.Radius, req.PageToken)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Stays fetched successfully")
}
