package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/vidly/rental-system/docs"
	"github.com/vidly/rental-system/internal/api/handler"
	"github.com/vidly/rental-system/internal/api/middleware"
	"github.com/vidly/rental-system/internal/core/ports"
	"github.com/vidly/rental-system/internal/infrastructure/http/handlers"
)

// Dependencies are the use cases and probes the router exposes.
type Dependencies struct {
	Logger    zerolog.Logger
	Tokens    ports.TokenService
	Returns   ports.ReturnService
	Rentals   ports.RentalService
	Genres    ports.GenreService
	Customers ports.CustomerService
	Movies    ports.MovieService
	Users     ports.UserService
	Readiness []handlers.Check

	// MetricsRegistry receives the HTTP metrics and backs /metrics.
	// Defaults to the global Prometheus registry.
	MetricsRegistry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.MetricsRegistry != nil {
		registerer, gatherer = deps.MetricsRegistry, deps.MetricsRegistry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "vidly",
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	auth := middleware.Auth(deps.Tokens)
	admin := middleware.RequireAdmin()

	api := e.Group("/api")

	// --- Users & auth ---
	authHandler := handler.NewAuthHandler(deps.Users)
	api.POST("/users", authHandler.Register)
	api.GET("/users/me", authHandler.Me, auth)
	api.POST("/auth", authHandler.Login)

	// --- Catalog ---
	genreHandler := handler.NewGenreHandler(deps.Genres)
	genres := api.Group("/genres")
	genres.GET("", genreHandler.List)
	genres.GET("/:id", genreHandler.Get)
	genres.POST("", genreHandler.Create, auth)
	genres.PUT("/:id", genreHandler.Update, auth)
	genres.DELETE("/:id", genreHandler.Delete, auth, admin)

	customerHandler := handler.NewCustomerHandler(deps.Customers)
	customers := api.Group("/customers")
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.POST("", customerHandler.Create, auth)
	customers.PUT("/:id", customerHandler.Update, auth)
	customers.DELETE("/:id", customerHandler.Delete, auth, admin)

	movieHandler := handler.NewMovieHandler(deps.Movies)
	movies := api.Group("/movies")
	movies.GET("", movieHandler.List)
	movies.GET("/:id", movieHandler.Get)
	movies.POST("", movieHandler.Create, auth)
	movies.PUT("/:id", movieHandler.Update, auth)
	movies.DELETE("/:id", movieHandler.Delete, auth, admin)

	// --- Rentals & returns ---
	rentalHandler := handler.NewRentalHandler(deps.Rentals)
	api.GET("/rentals", rentalHandler.List, auth)
	api.POST("/rentals", rentalHandler.Create, auth)

	returnHandler := handler.NewReturnHandler(deps.Returns)
	api.POST("/returns", returnHandler.Create, auth)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(deps.Readiness...)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog line per request once the error handler
// has set the final status.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Status >= 500 {
				event = log.Error().Err(v.Error)
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
