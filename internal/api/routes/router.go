package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/apply-service/internal/api/handlers"
	"github.com/linskybing/apply-service/internal/api/middleware"
	"github.com/linskybing/apply-service/internal/application"
	"github.com/linskybing/apply-service/internal/config"
	"github.com/linskybing/apply-service/internal/repository"
)

func RegisterRoutes(r *gin.Engine, repos *repository.Repos) {
	services := application.New(repos)
	h := handlers.New(services)

	// Token status probe. JWT is only enforced here unless AUTH_ENABLED is
	// set; the apply endpoints stay open.
	r.GET("/auth/status", middleware.JWTAuthMiddleware(), handlers.AuthStatusHandler)

	applyGroup := r.Group("/apply")
	if config.AuthEnabled {
		applyGroup.Use(middleware.JWTAuthMiddleware())
	}
	{
		applyGroup.POST("", h.Apply.CreateApplication)
		applyGroup.POST("/create", h.Apply.CreateApplication)

		applyGroup.GET("", h.Apply.GetAllApplications)
		applyGroup.GET("/getAll", h.Apply.GetAllApplications)
		applyGroup.GET("/my-applications", h.Apply.GetMyApplications)
		applyGroup.GET("/:id", h.Apply.GetApplication)

		applyGroup.PUT("/:id", h.Apply.UpdateApplication)
		applyGroup.PUT("/cancel/:id", h.Apply.CancelApplication)
		applyGroup.PUT("/approved/:id", h.Apply.ApproveApplication)
		applyGroup.PUT("/rejected/:id", h.Apply.RejectApplication)

		applyGroup.DELETE("/:id", h.Apply.DeleteApplication)
	}
}
