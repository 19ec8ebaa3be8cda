// Package api exposes the gym services over HTTP. It owns routing,
// credential extraction and the mapping from domain errors to status
// codes; all business rules live behind the service interfaces.
package api

import (
	"errors"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ironvale/gymd/internal/models"
	"github.com/ironvale/gymd/internal/services/accounts"
	"github.com/ironvale/gymd/internal/services/identity"
	"github.com/ironvale/gymd/internal/services/ledger"
	"github.com/ironvale/gymd/internal/services/registry"
)

// Config holds configuration for the API handler
type Config struct {
	// Service dependencies
	IdentityService identity.Service
	RegistryService registry.Service
	LedgerService   ledger.Service
	AccountsService accounts.Service

	// AllowOrigins configures CORS; defaults to "*"
	AllowOrigins []string

	// AppName and Version are reported by the health endpoint
	AppName string
	Version string
}

// Handler wires the services to HTTP routes
type Handler struct {
	identity     identity.Service
	registry     registry.Service
	ledger       ledger.Service
	accounts     accounts.Service
	allowOrigins []string
	appName      string
	version      string
}

// New creates a new API handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.IdentityService == nil {
		return nil, errors.New("identity service cannot be nil")
	}

	if cfg.RegistryService == nil {
		return nil, errors.New("registry service cannot be nil")
	}

	if cfg.LedgerService == nil {
		return nil, errors.New("ledger service cannot be nil")
	}

	if cfg.AccountsService == nil {
		return nil, errors.New("accounts service cannot be nil")
	}

	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	return &Handler{
		identity:     cfg.IdentityService,
		registry:     cfg.RegistryService,
		ledger:       cfg.LedgerService,
		accounts:     cfg.AccountsService,
		allowOrigins: allowOrigins,
		appName:      cfg.AppName,
		version:      cfg.Version,
	}, nil
}

// Router builds the gin engine with all routes registered
func (h *Handler) Router() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     h.allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", h.health)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}

	users := api.Group("/users", h.requireAuth())
	{
		users.GET("", h.requireRoles(models.RoleAdmin), h.listUsers)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.requireRoles(models.RoleAdmin), h.deleteUser)
	}

	sessions := api.Group("/sessions", h.requireAuth(), h.requireRoles(models.RoleStaff, models.RoleAdmin))
	{
		sessions.GET("", h.listSessions)
		sessions.GET("/:id", h.getSession)
		sessions.POST("", h.createSession)
		sessions.PUT("/:id", h.updateSession)
		sessions.PATCH("/:id/cancel", h.cancelSession)
		sessions.DELETE("/:id", h.deleteSession)
	}

	bookings := api.Group("/bookings")
	{
		bookings.GET("/sessions/active", h.listBookableSessions)

		member := bookings.Group("", h.requireAuth(), h.requireRoles(models.RoleMember))
		{
			member.POST("/sessions/:id", h.bookSession)
			member.GET("/mine", h.listMyBookings)
			member.DELETE("/:id", h.cancelBooking)
		}
	}

	return r
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(200, gin.H{
		"name":    h.appName,
		"version": h.version,
		"status":  "OK",
	})
}
