package routes

import (
	handlers "campusmarket/internal/handlers/shared"
	"campusmarket/internal/middleware"
	"campusmarket/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Ride       *handlers.RideHandler
	Delivery   *handlers.DeliveryHandler
	MotorRider *handlers.MotorRiderHandler
	Directory  *handlers.DirectoryHandler
	Health     *handlers.HealthHandler
}

// SetupRoutes mounts the public API under /api/v1. admin guards every write
// that needs an operator token.
func SetupRoutes(router *gin.Engine, h *Handlers, admin ...gin.HandlerFunc) {
	router.GET("/health", h.Health.Health)
	router.GET("/metrics", middleware.MetricsHandler())

	v1 := router.Group("/api/v1")
	SetupRideRoutes(v1, h.Ride, admin)
	SetupDeliveryRoutes(v1, h.Delivery, admin)
	SetupMotorRiderRoutes(v1, h.MotorRider, h.Delivery, admin)
	SetupDirectoryRoutes(v1, h.Directory, admin)

	router.NoRoute(func(c *gin.Context) {
		utils.NotFoundResponse(c, "route")
	})
}

func SetupRideRoutes(r *gin.RouterGroup, h *handlers.RideHandler, admin []gin.HandlerFunc) {
	rides := r.Group("/rides")
	{
		rides.POST("", h.CreateRide)
		rides.GET("", h.ListRides)
		rides.GET("/:id", h.GetRide)
		rides.POST("/:id/join", h.JoinRide)
	}

	protected := r.Group("/rides", admin...)
	{
		protected.PUT("/:id/status", h.UpdateRideStatus)
		protected.DELETE("/:id", h.DeleteRide)
	}
}

func SetupDeliveryRoutes(r *gin.RouterGroup, h *handlers.DeliveryHandler, admin []gin.HandlerFunc) {
	delivery := r.Group("/delivery")
	{
		delivery.POST("/request", h.CreateRequest)
		delivery.GET("/:id", h.GetRequest)
	}

	adminGroup := r.Group("/delivery/admin", admin...)
	{
		adminGroup.GET("", h.ListRequests)
		adminGroup.PUT("/:id/authorize", h.Authorize)
		adminGroup.PUT("/:id/assign", h.Assign)
		adminGroup.PUT("/:id/assign-default", h.AssignDefault)
		adminGroup.PUT("/:id/status", h.UpdateStatus)
	}
}

func SetupMotorRiderRoutes(r *gin.RouterGroup, h *handlers.MotorRiderHandler, dh *handlers.DeliveryHandler, admin []gin.HandlerFunc) {
	riders := r.Group("/motor-riders")
	{
		riders.GET("", h.ListRiders)
		riders.GET("/default", h.GetDefaultRider)
		riders.GET("/:id", h.GetRider)

		// Rider status page, addressed by code instead of a token
		riders.GET("/code/:code", h.GetRiderByCode)
		riders.GET("/code/:code/deliveries", dh.ListForRider)
		riders.PUT("/code/:code/deliveries/:id/status", dh.UpdateStatusByRider)
	}

	protected := r.Group("/motor-riders", admin...)
	{
		protected.POST("", h.CreateRider)
		protected.PUT("/:id", h.UpdateRider)
		protected.DELETE("/:id", h.DeleteRider)
		protected.PUT("/:id/set-default", h.SetDefaultRider)
	}
}

func SetupDirectoryRoutes(r *gin.RouterGroup, h *handlers.DirectoryHandler, admin []gin.HandlerFunc) {
	public := r.Group("")
	{
		public.GET("/drivers", h.ListDrivers)
		public.GET("/drivers/:id", h.GetDriver)
		public.GET("/vendors", h.ListVendors)
		public.GET("/vendors/:id", h.GetVendor)
		public.GET("/categories", h.ListCategories)
		public.GET("/categories/:id", h.GetCategory)
	}

	protected := r.Group("", admin...)
	{
		protected.POST("/drivers", h.CreateDriver)
		protected.PUT("/drivers/:id", h.UpdateDriver)
		protected.DELETE("/drivers/:id", h.DeleteDriver)

		protected.POST("/vendors", h.CreateVendor)
		protected.PUT("/vendors/:id", h.UpdateVendor)
		protected.DELETE("/vendors/:id", h.DeleteVendor)
		protected.POST("/vendors/:id/image", h.UploadVendorImage)

		protected.POST("/categories", h.CreateCategory)
		protected.PUT("/categories/:id", h.UpdateCategory)
		protected.DELETE("/categories/:id", h.DeleteCategory)
	}
}
