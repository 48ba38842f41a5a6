package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"compass-utils/internal/actions"
	"compass-utils/internal/api/handlers"
	"compass-utils/internal/api/middleware"
	"compass-utils/internal/config"
	"compass-utils/internal/extraction"
	"compass-utils/internal/llm"
	"compass-utils/internal/session"
	"compass-utils/internal/store"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	e *echo.Echo,
	cfg *config.Config,
	llmManager *llm.Manager,
	extractor *extraction.Service,
	profiles store.ProfileStore,
	trackers *store.TrackerStore,
	sessions *session.Manager,
	actionManager *actions.Manager,
) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation(cfg.Extraction.MaxFileSize))
	// Coaching endpoints wait on completion calls and get the longer budget
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager, profiles))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.ReadinessHandler(llmManager, profiles))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		// Coaching surfaces
		coach := v1.Group("/coach")
		{
			coach.POST("/roadmap", handlers.RoadmapHandler(cfg, llmManager, actionManager))
			coach.POST("/resume/analyze", handlers.ResumeAnalysisHandler(cfg, llmManager, extractor, actionManager))
			coach.POST("/recommendations", handlers.RecommendationsHandler(cfg, llmManager, actionManager))
		}

		// Session lifecycle
		sess := v1.Group("/session")
		{
			sess.GET("", handlers.SessionStateHandler(sessions))
			sess.POST("/login", handlers.LoginHandler(sessions))
			sess.POST("/onboard", handlers.OnboardHandler(sessions))
			sess.POST("/logout", handlers.LogoutHandler(sessions))
			sess.POST("/cold-start", handlers.ColdStartHandler(sessions))
		}

		// Profile storage
		profile := v1.Group("/profile")
		{
			profile.GET("", handlers.GetProfileHandler(profiles))
			profile.PUT("", handlers.SaveProfileHandler(profiles))
			profile.DELETE("", handlers.DeleteProfileHandler(profiles))
		}

		// Dashboard trackers
		applications := v1.Group("/applications")
		{
			applications.GET("", handlers.ListApplicationsHandler(trackers))
			applications.POST("", handlers.AddApplicationHandler(trackers))
			applications.PATCH("/:id", handlers.UpdateApplicationStatusHandler(trackers))
			applications.DELETE("/:id", handlers.DeleteApplicationHandler(trackers))
		}

		mentors := v1.Group("/mentors")
		{
			mentors.GET("", handlers.ListMentorsHandler(trackers))
			mentors.POST("", handlers.AddMentorHandler(trackers))
			mentors.PATCH("/:id", handlers.ConnectMentorHandler(trackers))
		}

		learning := v1.Group("/learning")
		{
			learning.GET("", handlers.ListLearningItemsHandler(trackers))
			learning.POST("", handlers.AddLearningItemHandler(trackers))
			learning.PATCH("/:id", handlers.ToggleLearningItemHandler(trackers))
		}
	}
}
