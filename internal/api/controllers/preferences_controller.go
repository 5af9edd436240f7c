package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type PreferencesController struct {
	preferenceService services.PreferenceServiceInterface
}

func NewPreferencesController(preferenceService services.PreferenceServiceInterface) *PreferencesController {
	return &PreferencesController{
		preferenceService: preferenceService,
	}
}

func (p *PreferencesController) GetPreferencesHandler(c *gin.Context) {
	prefs, err := p.preferenceService.GetPreferences(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prefs, "")
}

func (p *PreferencesController) SavePreferencesHandler(c *gin.Context) {
	var req request_models.SavePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	prefs, err := p.preferenceService.SavePreferences(c.Request.Context(), c.Param("userId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prefs, "Preferences saved")
}
