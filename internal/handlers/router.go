package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zamtransit/vendor-portal-backend/internal/config"
	"github.com/zamtransit/vendor-portal-backend/internal/middleware"
	"github.com/zamtransit/vendor-portal-backend/internal/services"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
	"github.com/zamtransit/vendor-portal-backend/pkg/token"
)

// NewRouter assembles the HTTP surface: handlers, auth middleware, CORS
// and the health endpoint.
func NewRouter(st store.Store, sessions *services.SessionService, receipts *services.ReceiptService, tokens *token.Service, cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Security.EnableRequestLog {
		router.Use(middleware.RequestLogger(logger))
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		AllowCredentials: true,
	}))

	authHandler := NewAuthHandler(st, sessions, tokens, cfg.Session, cfg.Security.BcryptCost, logger)
	profileHandler := NewProfileHandler(st)
	routeHandler := NewRouteHandler(st)
	busHandler := NewBusHandler(st)
	tripHandler := NewTripHandler(st, st, st)
	bookingHandler := NewBookingHandler(st, st, st, receipts, logger)
	paymentHandler := NewPaymentHandler(st, st)
	dashboardHandler := NewDashboardHandler(st)

	router.GET("/health", func(c *gin.Context) {
		if err := st.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(sessions, tokens, cfg.Session.CookieName))
	{
		protected.GET("/vendor", authHandler.CurrentVendor)

		protected.GET("/profile", profileHandler.GetProfile)
		protected.PATCH("/profile", profileHandler.UpdateProfile)

		protected.GET("/routes", routeHandler.ListRoutes)
		protected.POST("/routes", routeHandler.CreateRoute)
		protected.GET("/routes/:id", routeHandler.GetRoute)
		protected.PATCH("/routes/:id", routeHandler.UpdateRoute)
		protected.DELETE("/routes/:id", routeHandler.DeleteRoute)
		protected.GET("/routes/:id/stops", routeHandler.ListStops)
		protected.POST("/routes/:id/stops", routeHandler.CreateStop)

		protected.GET("/buses", busHandler.ListBuses)
		protected.POST("/buses", busHandler.CreateBus)
		protected.GET("/buses/:id", busHandler.GetBus)
		protected.PATCH("/buses/:id", busHandler.UpdateBus)
		protected.DELETE("/buses/:id", busHandler.DeleteBus)

		protected.GET("/trips", tripHandler.ListTrips)
		protected.GET("/trips/upcoming", tripHandler.UpcomingTrips)
		protected.POST("/trips", tripHandler.CreateTrip)
		protected.GET("/trips/:id", tripHandler.GetTrip)
		protected.PATCH("/trips/:id", tripHandler.UpdateTrip)
		protected.DELETE("/trips/:id", tripHandler.DeleteTrip)

		protected.GET("/bookings", bookingHandler.ListBookings)
		protected.GET("/bookings/recent", bookingHandler.RecentBookings)
		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.GET("/bookings/:id", bookingHandler.GetBooking)
		protected.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
		protected.GET("/bookings/:id/receipt", bookingHandler.Receipt)

		protected.GET("/payments", paymentHandler.ListPayments)
		protected.POST("/payments", paymentHandler.CreatePayment)
		protected.GET("/payments/:id", paymentHandler.GetPayment)
		protected.PATCH("/payments/:id/status", paymentHandler.UpdateStatus)

		protected.GET("/dashboard/stats", dashboardHandler.GetStats)
	}

	return router
}
