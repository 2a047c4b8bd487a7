package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ViewController struct {
	ViewSvc   *services.ViewService
	ExportSvc *services.ExportService
}

func NewViewController(views *services.ViewService, export *services.ExportService) *ViewController {
	return &ViewController{ViewSvc: views, ExportSvc: export}
}

func (ctrl *ViewController) ResidentRoomDetails(c *gin.Context) {
	rows, err := ctrl.ViewSvc.ResidentRoomDetails()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctrl *ViewController) MaintenanceDashboard(c *gin.Context) {
	rows, err := ctrl.ViewSvc.MaintenanceDashboard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctrl *ViewController) RoomOccupancy(c *gin.Context) {
	rows, err := ctrl.ViewSvc.RoomOccupancy()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctrl *ViewController) FinancialSummary(c *gin.Context) {
	rows, err := ctrl.ViewSvc.FinancialSummary()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ExportFinancialSummary downloads the financial summary as an xlsx file.
func (ctrl *ViewController) ExportFinancialSummary(c *gin.Context) {
	buf, err := ctrl.ExportSvc.FinancialSummaryXLSX()
	if err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("financial-summary-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
