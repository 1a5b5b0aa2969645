package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripgen/internal/models/request_models"
	"tripgen/internal/services"
	"tripgen/pkg/utils"
)

type TripController struct {
	tripService       services.TripServiceInterface
	travelInfoService services.TravelInfoServiceInterface
	logger            *zap.Logger
}

func NewTripController(
	tripService services.TripServiceInterface,
	travelInfoService services.TravelInfoServiceInterface,
	logger *zap.Logger,
) *TripController {
	return &TripController{
		tripService:       tripService,
		travelInfoService: travelInfoService,
		logger:            logger,
	}
}

// POST /api/trip/generate-itinerary
func (t *TripController) GenerateItineraryHandler(c *gin.Context) {
	var req request_models.TripGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.DescribeValidationError(err))
		return
	}

	plan, err := t.tripService.GenerateTripPlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}

	utils.RespondSuccess(c, plan, "Trip plan generated successfully")
}

// POST /api/trip/travel-info
func (t *TripController) TravelInfoHandler(c *gin.Context) {
	var req request_models.TravelInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.DescribeValidationError(err))
		return
	}

	info, err := t.travelInfoService.GetTravelInfo(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, t.logger, err)
		return
	}

	utils.RespondSuccess(c, info, "Travel info retrieved successfully")
}

func (t *TripController) LanguagesHandler(c *gin.Context) {
	utils.RespondSuccess(c, t.tripService.SupportedLanguages(), "Supported languages")
}

func (t *TripController) HealthHandler(c *gin.Context) {
	utils.RespondSuccess(c, t.tripService.Health(), "ok")
}
