package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"busbooking/internal/http/handlers"
	"busbooking/internal/http/middleware"
)

func NewRouter(h *handlers.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Idempotency-Key"},
		AllowCredentials: true,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)

		trips := api.Group("/trips")
		trips.GET("", h.SearchTrips)
		trips.GET("/:id", h.GetTrip)
		trips.GET("/:id/seats", h.GetTripSeats)
		trips.POST("/:id/quote", h.QuoteSelection)

		bookings := api.Group("/bookings")
		bookings.Use(middleware.Identity(h.Env.JWTSecret))
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.GET("/:id/e-ticket", h.GetBookingETicketPDF)
		bookings.GET("/:id/receipt", h.GetBookingReceiptPDF)

		reports := api.Group("/reports")
		reports.GET("/summary", h.BookingSummary)
	}

	return r
}
