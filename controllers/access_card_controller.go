package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type AccessCardController struct {
	AccessCardSvc *services.AccessCardService
}

func NewAccessCardController(svc *services.AccessCardService) *AccessCardController {
	return &AccessCardController{AccessCardSvc: svc}
}

func (ctrl *AccessCardController) List(c *gin.Context) {
	rows, err := ctrl.AccessCardSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctrl *AccessCardController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	card, err := ctrl.AccessCardSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (ctrl *AccessCardController) Create(c *gin.Context) {
	var in services.AccessCardInput
	if !bindJSON(c, &in) {
		return
	}
	card, err := ctrl.AccessCardSvc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (ctrl *AccessCardController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.AccessCardInput
	if !bindJSON(c, &in) {
		return
	}
	card, err := ctrl.AccessCardSvc.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (ctrl *AccessCardController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.AccessCardSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Access card deleted successfully")
}
