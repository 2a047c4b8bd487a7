package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hostel-backend/controllers"
	"hostel-backend/metrics"
	"hostel-backend/middleware"
	"hostel-backend/services"
)

// Handlers bundles the controllers mounted by SetupRouter.
type Handlers struct {
	Hostels     *controllers.HostelController
	Rooms       *controllers.RoomController
	Residents   *controllers.ResidentController
	Allotments  *controllers.AllotmentController
	MessPlans   *controllers.MessPlanController
	Bills       *controllers.BillController
	Payments    *controllers.PaymentController
	Maintenance *controllers.MaintenanceController
	Laundry     *controllers.LaundryController
	Visitors    *controllers.VisitorController
	AccessCards *controllers.AccessCardController
	Preferences *controllers.PreferenceController
	Auth        *controllers.AuthController
	Portal      *controllers.PortalController
	Views       *controllers.ViewController
}

type crud interface {
	List(*gin.Context)
	Get(*gin.Context)
	Create(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

func mountCRUD(g *gin.RouterGroup, h crud) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func SetupRouter(h Handlers, origins []string) *gin.Engine {
	if err := controllers.RegisterValidators(); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), metrics.Middleware())

	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/resident", h.Auth.ResidentLogin)
			auth.POST("/admin", h.Auth.AdminLogin)
		}

		mountCRUD(api.Group("/residents"), h.Residents)
		mountCRUD(api.Group("/hostels"), h.Hostels)
		mountCRUD(api.Group("/rooms"), h.Rooms)
		mountCRUD(api.Group("/mess-plans"), h.MessPlans)
		mountCRUD(api.Group("/visitors"), h.Visitors)
		mountCRUD(api.Group("/access-cards"), h.AccessCards)

		allotments := api.Group("/allotments")
		mountCRUD(allotments, h.Allotments)
		allotments.POST("/:id/complete", h.Allotments.Complete)

		bills := api.Group("/bills")
		mountCRUD(bills, h.Bills)
		bills.GET("/resident/:id", h.Bills.ForResident)

		payments := api.Group("/payments")
		mountCRUD(payments, h.Payments)
		payments.GET("/resident/:id", h.Payments.ForResident)

		maintenance := api.Group("/maintenance")
		mountCRUD(maintenance, h.Maintenance)
		maintenance.GET("/resident/:id", h.Maintenance.ForResident)

		laundry := api.Group("/laundry")
		mountCRUD(laundry, h.Laundry)
		laundry.GET("/resident/:id", h.Laundry.ForResident)

		preferences := api.Group("/preferences")
		mountCRUD(preferences, h.Preferences)
		preferences.GET("/resident/:id", h.Preferences.ForResident)

		portal := api.Group("/resident-portal/:id")
		{
			portal.GET("/dashboard", h.Portal.Dashboard)
			portal.PUT("/profile", h.Portal.UpdateProfile)
			portal.POST("/maintenance", h.Portal.RequestMaintenance)
			portal.POST("/laundry", h.Portal.RequestLaundry)
			portal.POST("/room-selection", h.Portal.SelectRoom)
		}

		views := api.Group("/views")
		{
			views.GET("/resident-room-details", h.Views.ResidentRoomDetails)
			views.GET("/maintenance-dashboard", h.Views.MaintenanceDashboard)
			views.GET("/room-occupancy", h.Views.RoomOccupancy)
			views.GET("/financial-summary", h.Views.FinancialSummary)
			views.GET("/financial-summary/export", h.Views.ExportFinancialSummary)
		}
	}

	return r
}

// NewHandlers wires the services and controllers over one database handle.
func NewHandlers(db *gorm.DB, adminEmail, adminPassword string) Handlers {
	residents := services.NewResidentService(db)
	views := services.NewViewService(db)

	return Handlers{
		Hostels:     controllers.NewHostelController(services.NewHostelService(db)),
		Rooms:       controllers.NewRoomController(services.NewRoomService(db)),
		Residents:   controllers.NewResidentController(residents),
		Allotments:  controllers.NewAllotmentController(services.NewAllotmentService(db)),
		MessPlans:   controllers.NewMessPlanController(services.NewMessPlanService(db)),
		Bills:       controllers.NewBillController(services.NewBillService(db)),
		Payments:    controllers.NewPaymentController(services.NewPaymentService(db)),
		Maintenance: controllers.NewMaintenanceController(services.NewMaintenanceService(db)),
		Laundry:     controllers.NewLaundryController(services.NewLaundryService(db)),
		Visitors:    controllers.NewVisitorController(services.NewVisitorService(db)),
		AccessCards: controllers.NewAccessCardController(services.NewAccessCardService(db)),
		Preferences: controllers.NewPreferenceController(services.NewPreferenceService(db)),
		Auth:        controllers.NewAuthController(services.NewAuthService(residents, adminEmail, adminPassword)),
		Portal:      controllers.NewPortalController(services.NewPortalService(db)),
		Views:       controllers.NewViewController(views, services.NewExportService(views)),
	}
}
