package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/ecorewards/internal/client/classifier"
	"github.com/dmitrijs2005/ecorewards/internal/client/config"
	"github.com/dmitrijs2005/ecorewards/internal/client/ledger"
	"github.com/dmitrijs2005/ecorewards/internal/client/services"
	"github.com/dmitrijs2005/ecorewards/internal/client/storage"
	"github.com/dmitrijs2005/ecorewards/internal/filex"
	"github.com/dmitrijs2005/ecorewards/internal/logging"
	"github.com/dmitrijs2005/ecorewards/internal/waste"
)

// sessionSecret is mixed with the per-install salt to seal the stored
// session.
var sessionSecret = []byte("ecorewards-session")

type App struct {
	config  *config.Config
	logger  logging.Logger
	ledger  *ledger.Ledger
	scan    *services.ScanService
	rewards *services.RewardService
	prober  classifier.Prober
	info    modelInfoSource

	reader *bufio.Reader
	out    io.Writer

	mu     sync.RWMutex
	status ClassifierStatus

	closers []io.Closer
}

// NewApp opens the local database and builds the services. The caller must
// Close the app.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	if _, err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		return nil, fmt.Errorf("error preparing database directory: %w", err)
	}

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	a := &App{
		config:  cfg,
		logger:  logger.With("module", "cli"),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		status:  StatusUnknown,
		closers: []io.Closer{db},
	}

	a.ledger = ledger.New(
		ledger.WithSessionStore(services.NewSessionStore(db, sessionSecret)),
		ledger.WithLogger(logger),
	)

	httpClient := classifier.NewHTTPClient(cfg.ClassifierURL, cfg.RequestTimeout, logger)
	a.prober = httpClient
	a.info = httpClient
	if cfg.ClassifierGRPCAddr != "" {
		probe, err := classifier.NewGRPCProbe(cfg.ClassifierGRPCAddr)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.prober = probe
		a.closers = append(a.closers, probe)
	}

	a.scan = services.NewScanService(httpClient, waste.NewSimulator(nil), a.ledger, logger)
	a.rewards = services.NewRewardService(a.ledger, logger)

	return a, nil
}

// Run blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.ledger.Restore(ctx)
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Welcome back, %s\n", a.ledger.Profile().Credentials.Email)
	}

	go a.StartStatusWatcher(ctx, a.config.HealthCheckInterval)

	fmt.Fprintln(a.out, "Welcome to EcoRewards (type 'help' for commands)")
	runREPL(ctx, a, a.prompt, a.reader)
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i].Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.ledger.IsAuthenticated()
}

// prompt is the REPL status: the session email, if any, and the classifier
// status.
func (a *App) prompt() string {
	s := string(a.Status())
	if c := a.ledger.Profile().Credentials; c.Email != "" {
		s = c.Email + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}
