package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type VisitorController struct {
	VisitorSvc *services.VisitorService
}

func NewVisitorController(svc *services.VisitorService) *VisitorController {
	return &VisitorController{VisitorSvc: svc}
}

func (ctrl *VisitorController) List(c *gin.Context) {
	rows, err := ctrl.VisitorSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctrl *VisitorController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	entry, err := ctrl.VisitorSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (ctrl *VisitorController) Create(c *gin.Context) {
	var in services.VisitorInput
	if !bindJSON(c, &in) {
		return
	}
	entry, err := ctrl.VisitorSvc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (ctrl *VisitorController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.VisitorInput
	if !bindJSON(c, &in) {
		return
	}
	entry, err := ctrl.VisitorSvc.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (ctrl *VisitorController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.VisitorSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Visitor log deleted successfully")
}
