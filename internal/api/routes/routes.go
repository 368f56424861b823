package routes

import (
	"net/http"

	"tournament-backend/internal/api/handlers"
	"tournament-backend/internal/api/middleware"
	"tournament-backend/internal/config"
	"tournament-backend/internal/events"
	"tournament-backend/internal/logger"
	"tournament-backend/internal/repository"
	"tournament-backend/internal/service"
	"tournament-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the collaborators built in main and shared by the services.
// A nil Clock means the wall clock and a nil Publisher means events are only logged.
// A nil Uploader disables crest uploads.
type Dependencies struct {
	Clock     clockwork.Clock
	Publisher events.Publisher
	Uploader  storage.FileUploader
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) *gin.Engine {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Publisher == nil {
		deps.Publisher = events.NewLogPublisher()
	}

	// Initialize store and services
	store := repository.NewRosterStore(db)
	validate := validator.New()

	teamService := service.NewTeamService(store, validate, deps.Clock, deps.Publisher, deps.Uploader)
	playerService := service.NewPlayerService(store, validate, deps.Clock, deps.Publisher)

	router := NewRouter(cfg, handlers.NewHealthHandler(db), handlers.NewTeamHandler(teamService), handlers.NewPlayerHandler(playerService))
	logger.New().WithField("storage_enabled", deps.Uploader != nil).Info("routes configured")
	return router
}

// NewRouter wires handlers onto a gin engine with the standard middleware chain
func NewRouter(cfg *config.Config, healthHandler *handlers.HealthHandler, teamHandler *handlers.TeamHandler, playerHandler *handlers.PlayerHandler) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	if healthHandler != nil {
		router.GET("/health", healthHandler.Health)
		router.GET("/health/ready", healthHandler.Ready)
		router.GET("/health/live", healthHandler.Live)
	}

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams) // Optional category, page, page_size
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/search", teamHandler.SearchTeams) // Requires q parameter
			teams.GET("/by-name/:name", teamHandler.GetTeamByName)
			teams.GET("/categories/counts", teamHandler.CategoryCounts)
			teams.GET("/categories/:category/count", teamHandler.CountByCategory)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeactivateTeam)
			teams.POST("/:id/roster/deactivate", teamHandler.DeactivateRoster)
			teams.GET("/:id/players", playerHandler.ListByTeam)
			teams.GET("/:id/players/count", teamHandler.CountPlayers)
			teams.GET("/:id/positions", playerHandler.PositionBreakdown)
			teams.POST("/:id/crest", teamHandler.UploadCrest)
		}

		players := v1.Group("/players")
		{
			players.GET("", playerHandler.ListRoster)
			players.POST("", playerHandler.RegisterPlayer)
			players.GET("/search", playerHandler.SearchPlayers) // Requires name parameter
			players.GET("/by-age", playerHandler.ListByAge)     // Requires min and max parameters
			players.GET("/by-position/:position", playerHandler.ListByPosition)
			players.GET("/:id", playerHandler.GetPlayer)
			players.PUT("/:id", playerHandler.UpdatePlayer)
			players.DELETE("/:id", playerHandler.DeletePlayer)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": logger.RequestIDFromContext(c.Request.Context()),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
