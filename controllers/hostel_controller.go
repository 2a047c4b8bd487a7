package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type HostelController struct {
	HostelSvc *services.HostelService
}

func NewHostelController(svc *services.HostelService) *HostelController {
	return &HostelController{HostelSvc: svc}
}

// GET /api/hostels
func (ctrl *HostelController) List(c *gin.Context) {
	hostels, err := ctrl.HostelSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hostels)
}

// GET /api/hostels/:id
func (ctrl *HostelController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	hostel, err := ctrl.HostelSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hostel)
}

// POST /api/hostels
func (ctrl *HostelController) Create(c *gin.Context) {
	var in services.HostelInput
	if !bindJSON(c, &in) {
		return
	}
	hostel, err := ctrl.HostelSvc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hostel)
}

// PUT /api/hostels/:id
func (ctrl *HostelController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.HostelInput
	if !bindJSON(c, &in) {
		return
	}
	hostel, err := ctrl.HostelSvc.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hostel)
}

// DELETE /api/hostels/:id
func (ctrl *HostelController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.HostelSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Hostel deleted successfully")
}
