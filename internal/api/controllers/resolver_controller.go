package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roadtrip/internal/models/response_models"
	"roadtrip/internal/services"
	"roadtrip/pkg/utils"
)

type ResolverController struct {
	placeResolver services.PlaceResolverInterface
}

func NewResolverController(placeResolver services.PlaceResolverInterface) *ResolverController {
	return &ResolverController{
		placeResolver: placeResolver,
	}
}

func (r *ResolverController) ResolvePlaceHandler(c *gin.Context) {
	sharedURL := c.Query("shared_url")
	if sharedURL == "" {
		utils.RespondError(c, http.StatusBadRequest, "shared_url is required")
		return
	}

	place, err := r.placeResolver.ResolvePlace(c.Request.Context(), sharedURL)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place resolved successfully")
}

func (r *ResolverController) ResolveLinkHandler(c *gin.Context) {
	sharedURL := c.Query("shared_url")
	if sharedURL == "" {
		utils.RespondError(c, http.StatusBadRequest, "shared_url is required")
		return
	}

	resolved, err := r.placeResolver.ResolveLink(c.Request.Context(), sharedURL)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ResolvedLink{ResolvedURL: resolved}, "Link resolved successfully")
}
