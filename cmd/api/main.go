// @title                       Vidly Rental API
// @version                     1.0
// @description                 Customers, movies, genres, rentals and returns for a video rental store.
// @BasePath                    /
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        x-auth-token
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"

	"github.com/vidly/rental-system/internal/api"
	"github.com/vidly/rental-system/internal/core/ports"
	"github.com/vidly/rental-system/internal/core/service"
	"github.com/vidly/rental-system/internal/infrastructure/config"
	mongodb "github.com/vidly/rental-system/internal/infrastructure/db/mongo"
	redisdb "github.com/vidly/rental-system/internal/infrastructure/db/redis"
	"github.com/vidly/rental-system/internal/infrastructure/http/handlers"
	"github.com/vidly/rental-system/internal/infrastructure/metrics"
	"github.com/vidly/rental-system/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until a signal or a server error.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Configuration & logger
	cfg, err := config.LoadFrom(ctx, envconfig.OsLookuper())
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "vidly-api",
	})

	// 2. MongoDB
	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	checks := []handlers.Check{handlers.MongoCheck(db)}

	// 3. Redis return lock (optional)
	var locker ports.ReturnLocker
	if cfg.Redis.Enabled {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()

		locker = redisdb.NewReturnLock(rdb, cfg.Redis.ReturnLockTTL)
		checks = append(checks, handlers.RedisCheck(rdb))
	} else {
		log.Info().Msg("redis disabled, concurrent returns arbitrated by conditional update only")
	}

	// 4. Repositories & services
	rentals := mongodb.NewRentalRepository(db)
	movies := mongodb.NewMovieRepository(db)
	customers := mongodb.NewCustomerRepository(db)
	genres := mongodb.NewGenreRepository(db)
	users := mongodb.NewUserRepository(db)
	tx := mongodb.NewTransactor(client, cfg.Mongo.Transactions)
	clock := service.SystemClock{}
	recorder := metrics.Recorder{}
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)

	e := api.NewRouter(api.Dependencies{
		Logger:    log,
		Tokens:    tokens,
		Returns:   service.NewReturnService(rentals, movies, tx, locker, clock, recorder, component(log, "returns")),
		Rentals:   service.NewRentalService(rentals, movies, customers, tx, clock, recorder, component(log, "rentals")),
		Genres:    service.NewGenreService(genres, component(log, "genres")),
		Customers: service.NewCustomerService(customers, component(log, "customers")),
		Movies:    service.NewMovieService(movies, genres, component(log, "movies")),
		Users:     service.NewUserService(users, tokens, component(log, "users")),
		Readiness: checks,
	})

	// 5. Serve until stopped
	errChan := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down gracefully")
	case err := <-errChan:
		return err
	}

	// 6. Drain in-flight requests
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	log.Info().Msg("server stopped cleanly")
	return nil
}

func component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
