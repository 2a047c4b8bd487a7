package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type MessPlanController struct {
	MessPlanSvc *services.MessPlanService
}

func NewMessPlanController(svc *services.MessPlanService) *MessPlanController {
	return &MessPlanController{MessPlanSvc: svc}
}

func (ctrl *MessPlanController) List(c *gin.Context) {
	rows, err := ctrl.MessPlanSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctrl *MessPlanController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	plan, err := ctrl.MessPlanSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (ctrl *MessPlanController) Create(c *gin.Context) {
	var in services.MessPlanInput
	if !bindJSON(c, &in) {
		return
	}
	plan, err := ctrl.MessPlanSvc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (ctrl *MessPlanController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.MessPlanInput
	if !bindJSON(c, &in) {
		return
	}
	plan, err := ctrl.MessPlanSvc.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (ctrl *MessPlanController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.MessPlanSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Mess plan deleted successfully")
}
