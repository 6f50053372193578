package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/tzsched/internal/container"
	"github.com/joshua-takyi/tzsched/internal/handlers"
	"github.com/joshua-takyi/tzsched/internal/middleware"
)

const serviceName = "tz-scheduler"

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:  container.Config.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"service": serviceName,
			"store":   container.StoreName,
		})
	}
	r.GET("/health", health)

	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/timezones", handlers.ListTimezones())
	}

	profileRoutes := api.Group("/profiles")
	{
		profileRoutes.POST("", handlers.CreateProfile(container.ProfileService))
		profileRoutes.GET("", handlers.ListProfiles(container.ProfileService))
	}

	eventRoutes := api.Group("/events")
	{
		eventRoutes.POST("", handlers.CreateEvent(container.EventService))
		eventRoutes.GET("/:profileId", handlers.ListEventsForProfile(container.EventService))
		eventRoutes.GET("/:profileId/calendar.ics", handlers.ExportCalendar(container.EventService))
		eventRoutes.PUT("/:id", handlers.UpdateEvent(container.EventService))
	}

	timeRoutes := api.Group("/time")
	{
		timeRoutes.POST("/instant", handlers.ToInstant())
		timeRoutes.GET("/local", handlers.ToLocal())
	}

	return r
}
