package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type MaintenanceController struct {
	MaintenanceSvc *services.MaintenanceService
}

func NewMaintenanceController(svc *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{MaintenanceSvc: svc}
}

// ---------------------------
// CRUD: Maintenance requests
// ---------------------------

func (ctrl *MaintenanceController) List(c *gin.Context) {
	rows, err := ctrl.MaintenanceSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctrl *MaintenanceController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	request, err := ctrl.MaintenanceSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (ctrl *MaintenanceController) Create(c *gin.Context) {
	var in services.MaintenanceInput
	if !bindJSON(c, &in) {
		return
	}
	request, err := ctrl.MaintenanceSvc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (ctrl *MaintenanceController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.MaintenanceInput
	if !bindJSON(c, &in) {
		return
	}
	request, err := ctrl.MaintenanceSvc.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (ctrl *MaintenanceController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.MaintenanceSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Maintenance request deleted successfully")
}

// ---------------------------
// Per-resident listing
// ---------------------------

func (ctrl *MaintenanceController) ForResident(c *gin.Context) {
	residentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	rows, err := ctrl.MaintenanceSvc.ForResident(residentID, 0)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
