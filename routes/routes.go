package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"freeflow/handlers"
	"freeflow/middleware"
	"freeflow/utils"
)

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.Booking.ListBookingsHandler)
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("/stats", hb.Booking.GetBookingStatsHandler)
		api.GET("/slots", hb.Booking.GetSlotsHandler)
		api.GET("/calendar", hb.Booking.GetCalendarHandler)
		api.GET("/service-types", hb.Booking.GetServiceTypesHandler)
		api.POST("/service-types", hb.Booking.CreateServiceTypeHandler)
		api.PUT("/service-types/:typeId", hb.Booking.UpdateServiceTypeHandler)
		api.DELETE("/service-types/:typeId", hb.Booking.DeleteServiceTypeHandler)
		api.GET("/availability", hb.Booking.GetAvailabilityHandler)
		api.PUT("/availability", hb.Booking.SetAvailabilityHandler)
		api.POST("/availability/time-off", hb.Booking.AddTimeOffHandler)
		api.DELETE("/availability/time-off/:timeOffId", hb.Booking.RemoveTimeOffHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PUT("/:id", hb.Booking.UpdateBookingHandler)
		api.POST("/:id/confirm", hb.Booking.ConfirmBookingHandler)
		api.POST("/:id/reschedule", hb.Booking.RescheduleBookingHandler)
		api.POST("/:id/cancel", hb.Booking.CancelBookingHandler)
		api.POST("/:id/complete", hb.Booking.CompleteBookingHandler)
		api.POST("/:id/send-reminder", hb.Booking.SendReminderHandler)
		api.DELETE("/:id", hb.Booking.DeleteBookingHandler)
	}
}

// RegisterMarketplaceRoutes registers listing, order and review endpoints.
func RegisterMarketplaceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/marketplace")
	{
		api.GET("/listings", hb.Marketplace.ListListingsHandler)
		api.POST("/listings", hb.Marketplace.CreateListingHandler)
		api.GET("/listings/featured", hb.Marketplace.GetFeaturedListingsHandler)
		api.GET("/listings/:id", hb.Marketplace.GetListingHandler)
		api.PUT("/listings/:id", hb.Marketplace.UpdateListingHandler)
		api.POST("/listings/:id/publish", hb.Marketplace.PublishListingHandler)
		api.POST("/listings/:id/archive", hb.Marketplace.ArchiveListingHandler)
		api.DELETE("/listings/:id", hb.Marketplace.DeleteListingHandler)

		api.GET("/listings/:id/reviews", hb.Marketplace.ListReviewsHandler)
		api.POST("/listings/:id/reviews", hb.Marketplace.SubmitReviewHandler)
		api.POST("/reviews/:reviewId/moderate", hb.Marketplace.ModerateReviewHandler)

		api.GET("/orders", hb.Marketplace.ListOrdersHandler)
		api.POST("/orders", hb.Marketplace.CreateOrderHandler)
		api.GET("/orders/:id", hb.Marketplace.GetOrderHandler)
		api.PUT("/orders/:id/status", hb.Marketplace.UpdateOrderStatusHandler)

		api.GET("/stats", hb.Marketplace.GetMarketplaceStatsHandler)
	}
}

// RegisterDocumentationRoutes registers the documentation workspace endpoints.
func RegisterDocumentationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/docs")
	{
		api.GET("", hb.Documentation.ListDocumentsHandler)
		api.POST("", hb.Documentation.CreateDocumentHandler)
		api.GET("/counts", hb.Documentation.GetDocCountsHandler)
		api.GET("/slug/:slug", hb.Documentation.GetDocumentBySlugHandler)
		api.GET("/:id", hb.Documentation.GetDocumentHandler)
		api.PUT("/:id", hb.Documentation.UpdateDocumentHandler)
		api.POST("/:id/publish", hb.Documentation.PublishDocumentHandler)
		api.POST("/:id/archive", hb.Documentation.ArchiveDocumentHandler)
		api.DELETE("/:id", hb.Documentation.DeleteDocumentHandler)
	}
}

// RegisterNewsletterRoutes registers the newsletter endpoints.
func RegisterNewsletterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/newsletter")
	{
		api.POST("/subscribe", hb.Newsletter.SubscribeHandler)
		api.GET("/confirm", hb.Newsletter.ConfirmHandler)
		api.POST("/unsubscribe", hb.Newsletter.UnsubscribeHandler)
		api.GET("/subscribers", hb.Newsletter.ListSubscribersHandler)
		api.GET("/stats", hb.Newsletter.GetNewsletterStatsHandler)
	}
}

// RegisterAssetRoutes registers upload and delivery endpoints.
func RegisterAssetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.Assets == nil {
		return
	}
	api := r.Group("/api/assets")
	{
		api.POST("/upload/:folder", hb.Assets.UploadAssetHandler)
		api.GET("/url", hb.Assets.GetAssetURLHandler)
		api.DELETE("", hb.Assets.DeleteAssetHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(utils.ErrorHandler())

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterMarketplaceRoutes(r, hb)
	RegisterDocumentationRoutes(r, hb)
	RegisterNewsletterRoutes(r, hb)
	RegisterAssetRoutes(r, hb)
}
