package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jobflix/jobflix-backend/internal/handlers"
	"github.com/jobflix/jobflix-backend/internal/middleware"
)

// RouterConfig carries everything the HTTP layer needs. Handlers are
// constructed in main and injected here so the router stays declarative.
type RouterConfig struct {
	Auth          *middleware.AuthMiddleware
	AuthHandler   *handlers.AuthHandler
	Jobs          *handlers.JobHandler
	Applications  *handlers.ApplicationHandler
	Profiles      *handlers.ProfileHandler
	Companies     *handlers.CompanyHandler
	SavedJobs     *handlers.SavedJobHandler
	Notifications *handlers.NotificationHandler
	Matches       *handlers.MatchHandler
	Assistant     *handlers.AssistantHandler
	UploadDir     string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api/v1")
	api.GET("/health", handlers.HealthCheck)
	api.POST("/auth/register", cfg.AuthHandler.Register)
	api.POST("/auth/login", cfg.AuthHandler.Login)

	api.GET("/jobs", cfg.Jobs.ListJobs)
	api.GET("/jobs/:id", cfg.Jobs.GetJob)
	api.GET("/companies", cfg.Companies.List)
	api.GET("/companies/:slug", cfg.Companies.Get)

	auth := api.Group("")
	auth.Use(cfg.Auth.RequireAuth())
	{
		auth.POST("/jobs", cfg.Jobs.CreateJob)
		auth.POST("/jobs/:id/close", cfg.Jobs.CloseJob)
		auth.GET("/jobs/:id/score", cfg.Matches.ScoreJob)
		auth.GET("/jobs/ranked", cfg.Matches.RankedJobs)

		auth.POST("/companies", cfg.Companies.Create)

		auth.GET("/profile", cfg.Profiles.Get)
		auth.PUT("/profile", cfg.Profiles.Update)

		auth.POST("/applications", cfg.Applications.CreateDraft)
		auth.GET("/applications", cfg.Applications.ListMine)
		auth.GET("/applications/:id", cfg.Applications.Get)
		auth.GET("/applications/:id/timeline", cfg.Applications.Timeline)
		auth.PUT("/applications/:id/answers", cfg.Applications.SaveScreeningAnswers)
		auth.PUT("/applications/:id/cover-letter", cfg.Applications.SetCoverLetter)
		auth.POST("/applications/:id/resume", cfg.Applications.UploadResume)
		auth.POST("/applications/:id/submit", cfg.Applications.Submit)
		auth.POST("/applications/:id/transition", cfg.Applications.Transition)

		auth.POST("/saved-jobs", cfg.SavedJobs.Save)
		auth.DELETE("/saved-jobs/:job_id", cfg.SavedJobs.Unsave)
		auth.GET("/saved-jobs", cfg.SavedJobs.List)

		auth.GET("/notifications", cfg.Notifications.List)
		auth.POST("/notifications/:id/read", cfg.Notifications.MarkRead)
		auth.POST("/notifications/read-all", cfg.Notifications.MarkAllRead)

		auth.POST("/assistant/ask", cfg.Assistant.Ask)
	}

	return r
}
