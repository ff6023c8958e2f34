package routes

import (
	"time"

	"nutribook/handlers"
	"nutribook/middleware"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public nutritionist catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/nutritionists")
	{
		api.GET("", hb.ListNutritionistsHandler)
		api.GET("/:id", hb.GetNutritionistHandler)
	}
}

// RegisterAppointmentRoutes registers the booking, classification and
// cancellation endpoints. All of them require an authenticated session.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authClient *auth.Client) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.FirebaseAuthMiddleware(authClient))
		api.POST("", hb.BookAppointmentHandler)
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/stream", hb.StreamAppointmentsHandler)
		api.DELETE("/:id", hb.CancelAppointmentHandler)
	}
}

// RegisterProfileRoutes registers the user profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authClient *auth.Client) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.FirebaseAuthMiddleware(authClient))
		api.GET("", hb.GetProfileHandler)
		api.PUT("", hb.UpdateProfileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, authClient *auth.Client) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb, authClient)
	RegisterProfileRoutes(r, hb, authClient)
	RegisterHealthRoute(r)
}
