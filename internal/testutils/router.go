package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/apply-service/internal/api/routes"
	"github.com/linskybing/apply-service/internal/repository"
)

// SetupRouter builds a test engine backed by the in-memory store.
func SetupRouter() (*gin.Engine, *repository.Repos) {
	gin.SetMode(gin.TestMode)
	repos := repository.NewMemoryRepositories()
	r := gin.New()
	routes.RegisterRoutes(r, repos)
	return r, repos
}
