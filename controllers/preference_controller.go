package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type PreferenceController struct {
	PreferenceSvc *services.PreferenceService
}

func NewPreferenceController(svc *services.PreferenceService) *PreferenceController {
	return &PreferenceController{PreferenceSvc: svc}
}

func (ctrl *PreferenceController) List(c *gin.Context) {
	rows, err := ctrl.PreferenceSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctrl *PreferenceController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pref, err := ctrl.PreferenceSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pref)
}

func (ctrl *PreferenceController) Create(c *gin.Context) {
	var in services.PreferenceInput
	if !bindJSON(c, &in) {
		return
	}
	pref, err := ctrl.PreferenceSvc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pref)
}

func (ctrl *PreferenceController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.PreferenceInput
	if !bindJSON(c, &in) {
		return
	}
	pref, err := ctrl.PreferenceSvc.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pref)
}

func (ctrl *PreferenceController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.PreferenceSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Preference deleted successfully")
}

func (ctrl *PreferenceController) ForResident(c *gin.Context) {
	residentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	rows, err := ctrl.PreferenceSvc.ForResident(residentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
