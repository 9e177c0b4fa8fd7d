// Package server wires the dev classifier server: a simulated model behind
// the HTTP API plus the gRPC health service, with graceful shutdown on
// SIGINT, SIGTERM and SIGQUIT.
package server

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/ecorewards/internal/logging"
	"github.com/dmitrijs2005/ecorewards/internal/server/config"
	"github.com/dmitrijs2005/ecorewards/internal/server/httpapi"
	"github.com/dmitrijs2005/ecorewards/internal/server/model"

	gs "github.com/dmitrijs2005/ecorewards/internal/server/grpc"
)

type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	model   model.Classifier
	servers map[string]runner
}

func NewApp(c *config.Config, logger logging.Logger) *App {
	m := model.NewSimulated(nil, c.ModelEnabled)

	h := httpapi.NewHandler(m, logger)
	httpSrv := httpapi.NewServer(c.EndpointAddrHTTP, httpapi.NewRouter(h, c.AllowedOrigins), c.ShutdownTimeout, logger)
	grpcSrv := gs.NewHealthServer(c.EndpointAddrGRPC, m.Loaded, logger)

	return &App{
		config: c,
		logger: logger,
		model:  m,
		servers: map[string]runner{
			"http": httpSrv,
			"grpc": grpcSrv,
		},
	}
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

// startServer runs one server; a failure stops the others.
func (app *App) startServer(ctx context.Context, cancelFunc context.CancelFunc, name string, s runner) {
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "server failed", "server", name, "error", err)
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a signal arrives or a server fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "model_loaded", app.model.Loaded())

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	for name, s := range app.servers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startServer(ctx, cancelFunc, name, s)
		}()
	}

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
}
