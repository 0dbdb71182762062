// Package server initializes and runs the main application server.
// It selects the user directory backend, wires services, handles graceful
// shutdown, and starts the HTTP server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/pixgate/internal/logging"
	"github.com/dmitrijs2005/pixgate/internal/server/auth"
	"github.com/dmitrijs2005/pixgate/internal/server/config"
	"github.com/dmitrijs2005/pixgate/internal/server/httpapi"
	"github.com/dmitrijs2005/pixgate/internal/server/payment"
	"github.com/dmitrijs2005/pixgate/internal/server/shared/db"
	"github.com/dmitrijs2005/pixgate/internal/server/users"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	httpServer *httpapi.HTTPServer
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	repo, err := newRepository(c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(repo, NewTokenCodec(c))
	ps := payment.NewService(c)

	srv := httpapi.NewHTTPServer(c, logger, us, ps)

	return &App{config: c, logger: logger, httpServer: srv}, nil
}

// NewTokenCodec picks the token scheme from config. Plain is the default;
// signed is the opt-in HS256 upgrade.
func NewTokenCodec(c *config.Config) auth.TokenCodec {
	if c.TokenScheme == config.SignedScheme {
		return auth.NewSignedCodec([]byte(c.SecretKey), c.AccessTokenValidityDuration)
	}
	return auth.NewPlainCodec()
}

// newRepository returns the Postgres-backed user directory when a DSN is
// configured, otherwise the in-memory one for local runs.
func newRepository(c *config.Config) (users.Repository, error) {
	if c.DatabaseDSN == "" {
		return users.NewMemoryRepository(), nil
	}

	m, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	return m.Users(), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
