package cli

import (
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"cinematch/internal/eventbus"
	"cinematch/internal/logger"
	"cinematch/internal/poster"
	"cinematch/internal/ui"
)

// runTUI starts the interactive client
func runTUI(cmd *cobra.Command, opts *options) error {
	a, err := newApp(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	log := logger.New("cli")

	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var prober *poster.Prober
	if a.cfg.UI.ProbePosters {
		prober = poster.NewProber(nil, logger.New("poster"))
	}

	model := ui.NewModel(a.bus, a.cfg, a.loader, prober)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	model.SetProgram(p)

	// Fallback notices reach the status line even when no command is waiting on them
	bus := a.bus
	unsubscribe := bus.Subscribe(eventbus.EventFallbackUsed, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	defer unsubscribe()

	bus.Publish(eventbus.AppReadyEvent{})
	log.Info("starting ui", "backend", a.client.BaseURL())

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("interrupted")
			return nil
		}
		return errors.Wrap(err, "ui failed")
	}

	log.Info("exiting", "breaker", a.client.BreakerState())
	return nil
}
