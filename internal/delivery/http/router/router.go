// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"jobsearch/internal/delivery/http/middleware"
	"jobsearch/internal/delivery/http/router/handler"
	"jobsearch/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	JobHandler          *handler.JobHandler
	CandidateHandler    *handler.CandidateHandler
	FilterHandler       *handler.FilterHandler
	NotificationHandler *handler.NotificationHandler
	ProfileHandler      *handler.ProfileHandler
	SkillHandler        *handler.SkillHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	jobHandler          *handler.JobHandler
	candidateHandler    *handler.CandidateHandler
	filterHandler       *handler.FilterHandler
	notificationHandler *handler.NotificationHandler
	profileHandler      *handler.ProfileHandler
	skillHandler        *handler.SkillHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		jobHandler:          params.JobHandler,
		candidateHandler:    params.CandidateHandler,
		filterHandler:       params.FilterHandler,
		notificationHandler: params.NotificationHandler,
		profileHandler:      params.ProfileHandler,
		skillHandler:        params.SkillHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalogue routes
	e.GET("/skills", r.skillHandler.ListSkills)

	// Job routes; search and read are public, posting requires a recruiter
	jobGroup := e.Group("/jobs")
	{
		jobGroup.GET("/search", r.jobHandler.SearchJobs)
		jobGroup.GET("/:jobId", r.jobHandler.GetJob)
		jobGroup.POST("", r.jobHandler.CreateJob,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireKind(entity.KindRecruiter),
		)
	}

	// Candidate profile routes for job seekers
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.PUT("", r.profileHandler.UpsertProfile)
		profileGroup.GET("", r.profileHandler.GetMyProfile)
	}

	// Recruiter routes: candidate search, saved filters and notifications
	recruiterGroup := e.Group("/recruiter")
	recruiterGroup.Use(r.authMiddleware.Authenticate)
	recruiterGroup.Use(r.authMiddleware.RequireKind(entity.KindRecruiter))
	{
		recruiterGroup.GET("/candidates/search", r.candidateHandler.SearchCandidates)

		recruiterGroup.POST("/filters", r.filterHandler.CreateFilter)
		recruiterGroup.GET("/filters", r.filterHandler.ListFilters)
		recruiterGroup.DELETE("/filters/:filterId", r.filterHandler.DeleteFilter)

		recruiterGroup.GET("/notifications", r.notificationHandler.GetNotificationFeed)
		recruiterGroup.POST("/notifications/:notificationId/read", r.notificationHandler.MarkNotificationRead)
		recruiterGroup.POST("/notifications/read-all", r.notificationHandler.MarkAllNotificationsRead)
	}
}
