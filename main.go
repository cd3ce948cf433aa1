package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kineticfest/registration-core/config"
	v1 "github.com/kineticfest/registration-core/controllers/v1"
	"github.com/kineticfest/registration-core/googleauth"
	"github.com/kineticfest/registration-core/middleware"
	"github.com/kineticfest/registration-core/service"
	"github.com/kineticfest/registration-core/sheetdb"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration error", "error", err)
		os.Exit(1)
	}

	r := newRouter(cfg, logger)

	logger.Info("starting server", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newRouter(cfg config.Config, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// The site is served from a separate origin, so the API answers
	// preflights permissively, with 200 rather than the middleware's 204
	// default.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:              []string{"Origin", "Content-Type", "Authorization"},
		OptionsResponseStatusCode: http.StatusOK,
		MaxAge:                    12 * time.Hour,
	}))

	signer := googleauth.NewSigner()
	exchanger := googleauth.NewExchanger(logger)
	gateway := sheetdb.NewGateway(logger)

	registrationService := service.NewRegistrationService(cfg.Credential, signer, exchanger, gateway, logger)
	eventService := service.NewEventService()

	registrationController := v1.NewRegistrationController(registrationService, cfg.Credential, logger)
	eventController := v1.NewEventController(eventService)

	api := r.Group("/api")
	{
		api.GET("/check-registration", registrationController.CheckRegistration)
		api.POST("/register", registrationController.Register)
	}

	v1Group := api.Group("/v1")
	{
		v1Group.GET("/events", eventController.GetEvents)
		v1Group.GET("/events/:slug", eventController.GetEventBySlug)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}
