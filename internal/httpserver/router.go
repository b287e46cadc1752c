package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	sessionrepo "storefront-gateway/internal/repository/session"
)

// Deps bundles the collaborators the router needs.
type Deps struct {
	Accounts AccountService
	Sessions sessionrepo.Store
}

// buildRouter wires routes for the gateway.
func buildRouter(logger *log.Logger, deps Deps, corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(corsOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     corsOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Sessions))

	h := newAccountHandlers(deps.Accounts, logger)
	acct := router.Group("/account")
	acct.POST("/activate", h.activate)
	acct.POST("/register", h.register)
	acct.GET("/session", h.session)
	acct.POST("/update", h.updateProfile)
	acct.POST("/address", h.updateAddress)

	return router
}
