package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
)

// PortalController serves /api/resident-portal/:id, the resident's
// self-service pages.
type PortalController struct {
	PortalSvc *services.PortalService
}

func NewPortalController(svc *services.PortalService) *PortalController {
	return &PortalController{PortalSvc: svc}
}

func (ctrl *PortalController) Dashboard(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	dashboard, err := ctrl.PortalSvc.Dashboard(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (ctrl *PortalController) UpdateProfile(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.ResidentInput
	if !bindJSON(c, &in) {
		return
	}
	resident, err := ctrl.PortalSvc.UpdateProfile(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resident)
}

func (ctrl *PortalController) RequestMaintenance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.MaintenanceInput
	if !bindJSON(c, &in) {
		return
	}
	request, err := ctrl.PortalSvc.RequestMaintenance(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (ctrl *PortalController) RequestLaundry(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.LaundryInput
	if !bindJSON(c, &in) {
		return
	}
	request, err := ctrl.PortalSvc.RequestLaundry(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (ctrl *PortalController) SelectRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.RoomSelectionInput
	if !bindJSON(c, &in) {
		return
	}
	allotment, err := ctrl.PortalSvc.SelectRoom(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, allotment)
}
