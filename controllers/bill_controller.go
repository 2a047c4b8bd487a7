package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type BillController struct {
	BillSvc *services.BillService
}

func NewBillController(svc *services.BillService) *BillController {
	return &BillController{BillSvc: svc}
}

// ---------------------------
// CRUD: Bills
// ---------------------------

func (ctrl *BillController) List(c *gin.Context) {
	rows, err := ctrl.BillSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctrl *BillController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	bill, err := ctrl.BillSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (ctrl *BillController) Create(c *gin.Context) {
	var in services.BillInput
	if !bindJSON(c, &in) {
		return
	}
	bill, err := ctrl.BillSvc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bill)
}

func (ctrl *BillController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.BillInput
	if !bindJSON(c, &in) {
		return
	}
	bill, err := ctrl.BillSvc.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (ctrl *BillController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.BillSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Bill deleted successfully")
}

// ---------------------------
// Per-resident listing
// ---------------------------

func (ctrl *BillController) ForResident(c *gin.Context) {
	residentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	rows, err := ctrl.BillSvc.ForResident(residentID, 0)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
