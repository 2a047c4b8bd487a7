package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
)

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

// ResidentLogin looks a resident up by email, contact number, enrollment
// number or id (POST /api/auth/resident).
func (ctrl *AuthController) ResidentLogin(c *gin.Context) {
	var payload services.ResidentLoginInput
	if !bindJSON(c, &payload) {
		return
	}
	resident, err := ctrl.AuthSvc.ResidentLogin(payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"type": "resident", "resident": resident})
}

// AdminLogin checks the configured administrator pair (POST /api/auth/admin).
func (ctrl *AuthController) AdminLogin(c *gin.Context) {
	var payload services.AdminLoginInput
	if !bindJSON(c, &payload) {
		return
	}
	admin, err := ctrl.AuthSvc.AdminLogin(payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"type": "admin", "admin": admin})
}
