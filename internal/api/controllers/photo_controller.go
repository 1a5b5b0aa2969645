package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripgen/internal/models/request_models"
	"tripgen/internal/services"
	"tripgen/pkg/utils"
)

// base64 of a 10 MB image plus JSON framing
const maxPhotoBodyBytes = 15 << 20

type PhotoController struct {
	photoService services.PhotoAnalyzerServiceInterface
	logger       *zap.Logger
}

func NewPhotoController(photoService services.PhotoAnalyzerServiceInterface, logger *zap.Logger) *PhotoController {
	return &PhotoController{
		photoService: photoService,
		logger:       logger,
	}
}

// POST /api/photo/analyze
func (p *PhotoController) AnalyzePhotoHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoBodyBytes)

	var req request_models.PhotoAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.DescribeValidationError(err))
		return
	}

	result, err := p.photoService.AnalyzePhoto(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	message := "Place recognized"
	if !result.Recognized {
		message = "Place not recognized"
	}
	utils.RespondSuccess(c, result, message)
}

// GET /api/photo/health
func (p *PhotoController) HealthHandler(c *gin.Context) {
	utils.RespondSuccess(c, p.photoService.Health(), "Photo Analyzer Service is running")
}
