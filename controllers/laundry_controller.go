package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type LaundryController struct {
	LaundrySvc *services.LaundryService
}

func NewLaundryController(svc *services.LaundryService) *LaundryController {
	return &LaundryController{LaundrySvc: svc}
}

func (ctrl *LaundryController) List(c *gin.Context) {
	rows, err := ctrl.LaundrySvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctrl *LaundryController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	request, err := ctrl.LaundrySvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (ctrl *LaundryController) Create(c *gin.Context) {
	var in services.LaundryInput
	if !bindJSON(c, &in) {
		return
	}
	request, err := ctrl.LaundrySvc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (ctrl *LaundryController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.LaundryInput
	if !bindJSON(c, &in) {
		return
	}
	request, err := ctrl.LaundrySvc.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (ctrl *LaundryController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.LaundrySvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Laundry request deleted successfully")
}

func (ctrl *LaundryController) ForResident(c *gin.Context) {
	residentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	rows, err := ctrl.LaundrySvc.ForResident(residentID, 0)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
