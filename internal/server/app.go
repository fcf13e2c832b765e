// Package server wires the auth service together: storage, password hashing,
// token issuing and the gRPC endpoint, and runs it until shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"

	gs "github.com/dmitrijs2005/authkeeper/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	authService *services.AuthService
}

// NewApp opens the configured store and builds the service graph. Migrations
// are applied in Run.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	rm, err := repomanager.New(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	as := services.NewAuthService(
		rm.Users(),
		auth.NewBcryptHasher(c.BcryptCost),
		auth.NewJWTIssuer([]byte(c.SecretKey), c.TokenValidityDuration),
		logger,
	)

	return &App{config: c, logger: logger, repos: rm, authService: as}, nil
}

func (app *App) initSignalHandler(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
}

// Run migrates the store and serves gRPC until ctx is cancelled or a
// termination signal arrives. The store is closed on return.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := app.initSignalHandler(ctx)
	defer cancel()

	defer func() {
		if err := app.repos.Close(); err != nil {
			app.logger.Error(ctx, "error closing store", "error", err.Error())
		}
	}()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repos.RunMigrations(ctx); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService,
		gs.WithShutdownTimeout(app.config.ShutdownTimeout))

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
