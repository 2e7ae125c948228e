package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"inspectra/handlers"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Scheduling *handlers.SchedulingHandler
	Leads      *handlers.LeadHandler
	Staff      *handlers.StaffHandler
}

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	r.GET("/health", handlers.HealthHandler)

	RegisterSchedulingRoutes(r, hb)
	RegisterLeadRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
}

// RegisterSchedulingRoutes registers availability and scheduling-session endpoints.
func RegisterSchedulingRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/api/availability", hb.Scheduling.GetAvailabilityHandler)

	scheduling := r.Group("/api/scheduling")
	{
		scheduling.POST("/session", hb.Scheduling.InitiateSessionHandler) // Phase 1: pick a date
		scheduling.GET("/session/:sessionID", hb.Scheduling.GetSessionHandler)
		scheduling.PUT("/session/:sessionID", hb.Scheduling.UpdateSessionHandler) // Phase 2: pick inspector/slot
		scheduling.POST("/session/:sessionID/validate", hb.Scheduling.ValidateSelectionHandler)
		scheduling.POST("/session/:sessionID/confirm", hb.Scheduling.ConfirmAssignmentHandler) // Phase 3: run the saga
		scheduling.DELETE("/session/:sessionID", hb.Scheduling.CancelSessionHandler)
	}
}

// RegisterLeadRoutes registers lead-intake endpoints.
func RegisterLeadRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/leads")
	{
		api.POST("", hb.Leads.CreateLeadHandler)
		api.GET("", hb.Leads.ListLeadsHandler)
		api.GET("/:id", hb.Leads.GetLeadHandler)
		api.PUT("/:id", hb.Leads.UpdateLeadHandler)
		api.DELETE("/:id", hb.Leads.DeleteLeadHandler)
	}
}

// RegisterStaffRoutes registers staff-directory endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.POST("", hb.Staff.CreateStaffHandler)
		api.GET("", hb.Staff.ListStaffHandler)
		api.GET("/email/:email", hb.Staff.GetStaffByEmailHandler)
	}
}
