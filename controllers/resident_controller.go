package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type ResidentController struct {
	ResidentSvc *services.ResidentService
}

func NewResidentController(svc *services.ResidentService) *ResidentController {
	return &ResidentController{ResidentSvc: svc}
}

// GET /api/residents
func (ctrl *ResidentController) List(c *gin.Context) {
	rows, err := ctrl.ResidentSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/residents/:id
func (ctrl *ResidentController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resident, err := ctrl.ResidentSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resident)
}

// POST /api/residents
func (ctrl *ResidentController) Create(c *gin.Context) {
	var in services.ResidentInput
	if !bindJSON(c, &in) {
		return
	}
	resident, err := ctrl.ResidentSvc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resident)
}

// PUT /api/residents/:id
func (ctrl *ResidentController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.ResidentInput
	if !bindJSON(c, &in) {
		return
	}
	resident, err := ctrl.ResidentSvc.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resident)
}

// DELETE /api/residents/:id
func (ctrl *ResidentController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.ResidentSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Resident deleted successfully")
}
