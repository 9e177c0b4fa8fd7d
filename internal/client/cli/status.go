package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/ecorewards/internal/waste"
)

// ClassifierStatus is the label shown in the prompt.
type ClassifierStatus string

const (
	StatusUnknown ClassifierStatus = "checking"
	StatusOnline  ClassifierStatus = "online"
	StatusNoModel ClassifierStatus = "no-model"
	StatusOffline ClassifierStatus = "offline"
)

const probeTimeout = 3 * time.Second

// modelInfoSource describes the model behind the classifier API.
type modelInfoSource interface {
	Info(ctx context.Context) (waste.InfoResponse, error)
}

func (a *App) Status() ClassifierStatus {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.status
}

func (a *App) setStatus(ctx context.Context, s ClassifierStatus) {
	a.mu.Lock()
	changed := a.status != s
	a.status = s
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, "classifier status changed", "status", string(s))
	}
}

// probeOnce asks the prober and updates the status. The status is
// informational; scanning works in every state.
func (a *App) probeOnce(ctx context.Context) ClassifierStatus {
	pctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	loaded, err := a.prober.ModelLoaded(pctx)
	s := StatusOnline
	switch {
	case err != nil:
		a.logger.Debug(ctx, "classifier probe failed", "error", err)
		s = StatusOffline
	case !loaded:
		s = StatusNoModel
	}
	a.setStatus(ctx, s)
	return s
}

// StartStatusWatcher probes immediately and then every interval until ctx
// is done.
func (a *App) StartStatusWatcher(ctx context.Context, interval time.Duration) {
	a.probeOnce(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.probeOnce(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// ShowStatus probes on demand and prints the result.
func (a *App) ShowStatus(ctx context.Context) error {
	s := a.probeOnce(ctx)
	fmt.Fprintf(a.out, "Classifier %s: %s\n", a.config.ClassifierURL, s)
	if s != StatusOnline {
		fmt.Fprintln(a.out, "Scans will use the built-in simulation until the classifier is back.")
		return nil
	}
	if a.info == nil {
		return nil
	}

	ictx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	info, err := a.info.Info(ictx)
	if err != nil {
		a.logger.Debug(ctx, "classifier info unavailable", "error", err)
		fmt.Fprintln(a.out, "Model details unavailable.")
		return nil
	}
	fmt.Fprintf(a.out, "Model: %s\n  %s\n  Classes: %s\n", info.ModelName, info.Description, strings.Join(info.Classes, ", "))
	return nil
}
