package bootstrap

import (
	"database/sql"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/appquanta/appquanta-backend/internal/api/http"
	appshttp "github.com/appquanta/appquanta-backend/internal/apps/http"
	"github.com/appquanta/appquanta-backend/internal/auth"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
	Verifier    auth.TokenVerifier
	Store       appshttp.AppStore
	Artifacts   appshttp.ArtifactStore
	Builds      appshttp.BuildTracker
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	// Whatever escapes a handler is rewritten to a fixed envelope so no
	// internal detail reaches the boundary.
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			httpapi.Fail("An unexpected error occurred."))
	}))

	// In production, restrict to the Flutter app's domain.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowCredentials = false
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	r.Use(auth.Middleware(dep.Verifier, auth.DefaultProtectedPrefixes))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	appHandler := appshttp.NewHandler(dep.Store, dep.Artifacts, dep.Builds)
	appHandler.Register(api.Group("/apps"))

	return r
}
