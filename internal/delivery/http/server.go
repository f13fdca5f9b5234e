package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/config"
	"github.com/Grenders/transport-api/internal/delivery/http/handler"
	"github.com/Grenders/transport-api/internal/delivery/http/middleware"
	"github.com/Grenders/transport-api/internal/pkg/auth"
)

// Server is the Fiber HTTP server wiring middleware, handlers and routes.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
	tokens *auth.TokenManager

	stationHandler   *handler.StationHandler
	trainTypeHandler *handler.TrainTypeHandler
	trainHandler     *handler.TrainHandler
	routeHandler     *handler.RouteHandler
	crewHandler      *handler.CrewHandler
	journeyHandler   *handler.JourneyHandler
	orderHandler     *handler.OrderHandler
	userHandler      *handler.UserHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tokens *auth.TokenManager,
	stationHandler *handler.StationHandler,
	trainTypeHandler *handler.TrainTypeHandler,
	trainHandler *handler.TrainHandler,
	routeHandler *handler.RouteHandler,
	crewHandler *handler.CrewHandler,
	journeyHandler *handler.JourneyHandler,
	orderHandler *handler.OrderHandler,
	userHandler *handler.UserHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Transport API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		tokens:           tokens,
		stationHandler:   stationHandler,
		trainTypeHandler: trainTypeHandler,
		trainHandler:     trainHandler,
		routeHandler:     routeHandler,
		crewHandler:      crewHandler,
		journeyHandler:   journeyHandler,
		orderHandler:     orderHandler,
		userHandler:      userHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Public account routes
	users := api.Group("/users")
	users.Post("/register", s.userHandler.Register)
	users.Post("/login", s.userHandler.Login)
	users.Post("/token/refresh", s.userHandler.Refresh)
	users.Post("/password-reset", s.userHandler.RequestPasswordReset)
	users.Post("/password-reset/confirm", s.userHandler.ConfirmPasswordReset)

	// Everything below requires a valid access token
	authed := api.Group("", middleware.RequireAuth(s.tokens))

	authed.Get("/users/me", s.userHandler.Profile)
	authed.Put("/users/me", s.userHandler.UpdateProfile)

	// Reference data
	authed.Post("/stations", s.stationHandler.Create)
	authed.Get("/stations", s.stationHandler.List)
	authed.Post("/train-types", s.trainTypeHandler.Create)
	authed.Get("/train-types", s.trainTypeHandler.List)

	// Trains
	authed.Post("/trains", s.trainHandler.Create)
	authed.Get("/trains", s.trainHandler.List)
	authed.Get("/trains/:id", s.trainHandler.GetByID)
	authed.Put("/trains/:id", s.trainHandler.Update)
	authed.Delete("/trains/:id", s.trainHandler.Delete)

	// Routes
	authed.Post("/routes", s.routeHandler.Create)
	authed.Get("/routes", s.routeHandler.List)
	authed.Get("/routes/:id", s.routeHandler.GetByID)
	authed.Put("/routes/:id", s.routeHandler.Update)
	authed.Delete("/routes/:id", s.routeHandler.Delete)

	// Crews
	authed.Post("/crews", s.crewHandler.Create)
	authed.Get("/crews", s.crewHandler.List)
	authed.Get("/crews/:id", s.crewHandler.GetByID)
	authed.Put("/crews/:id", s.crewHandler.Update)
	authed.Delete("/crews/:id", s.crewHandler.Delete)

	// Journeys
	authed.Post("/journeys", s.journeyHandler.Create)
	authed.Get("/journeys", s.journeyHandler.List)
	authed.Get("/journeys/:id", s.journeyHandler.GetByID)
	authed.Put("/journeys/:id", s.journeyHandler.Update)
	authed.Delete("/journeys/:id", s.journeyHandler.Delete)

	// Orders (owner-scoped)
	authed.Post("/orders", s.orderHandler.Create)
	authed.Get("/orders", s.orderHandler.List)
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
