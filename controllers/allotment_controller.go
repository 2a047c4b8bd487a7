package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type AllotmentController struct {
	AllotmentSvc *services.AllotmentService
}

func NewAllotmentController(svc *services.AllotmentService) *AllotmentController {
	return &AllotmentController{AllotmentSvc: svc}
}

func (ctrl *AllotmentController) List(c *gin.Context) {
	rows, err := ctrl.AllotmentSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctrl *AllotmentController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	allotment, err := ctrl.AllotmentSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, allotment)
}

// Create allocates a room (POST /api/allotments). A full room or a resident
// who already holds an active allotment is answered with 400.
func (ctrl *AllotmentController) Create(c *gin.Context) {
	var in services.AllotmentInput
	if !bindJSON(c, &in) {
		return
	}
	allotment, err := ctrl.AllotmentSvc.Allocate(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, allotment)
}

func (ctrl *AllotmentController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.AllotmentInput
	if !bindJSON(c, &in) {
		return
	}
	allotment, err := ctrl.AllotmentSvc.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, allotment)
}

// POST /api/allotments/:id/complete
func (ctrl *AllotmentController) Complete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	allotment, err := ctrl.AllotmentSvc.Complete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, allotment)
}

func (ctrl *AllotmentController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.AllotmentSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Allotment deleted successfully")
}
