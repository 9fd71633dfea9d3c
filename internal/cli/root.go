// Package cli holds the cobra commands of the cinematch binary.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"cinematch/internal/backend"
	"cinematch/internal/config"
	"cinematch/internal/eventbus"
	"cinematch/internal/loader"
	"cinematch/internal/logger"
)

// options are the global flags
type options struct {
	configPath string
	backendURL string
	logFile    string
	logLevel   string
}

// NewRootCommand builds the cinematch command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "cinematch",
		Short: "Find movies similar to the ones you like",
		Long: `cinematch is a terminal client for a movie recommendation service.
Type a title, pick one of the suggestions and browse similar movies.
When the service is unreachable, sample data is shown instead.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file path (default "+config.DefaultPath()+")")
	flags.StringVar(&opts.backendURL, "backend", "", "backend base URL, overrides config and "+config.EnvBackendURL)
	flags.StringVar(&opts.logFile, "log-file", "", "log file path (default from config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newSuggestCommand(opts),
		newRecommendCommand(opts),
		newMoviesCommand(opts),
		newConfigCommand(opts),
	)
	return root
}

// Execute runs the root command and prints any error with its hints
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		return 1
	}
	return 0
}

// loadConfig applies defaults < file < env < flags
func (o *options) loadConfig(bus eventbus.EventBus) (*config.Config, error) {
	svc := config.NewConfigServiceWithBus(o.configPath, bus)
	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}
	o.configPath = svc.Path()
	o.applyFlags(cfg)
	return cfg, nil
}

// applyFlags overrides cfg with the flags that were set
func (o *options) applyFlags(cfg *config.Config) {
	if o.backendURL != "" {
		cfg.Backend.URL = o.backendURL
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
}

// setupLogging points every logger at the configured file.
// The returned closer must be called on exit.
func setupLogging(cfg *config.Config) (io.Closer, error) {
	logger.SetLevel(logger.ParseLevel(cfg.Log.Level))
	if cfg.Log.File == "" || cfg.Log.File == "-" {
		logger.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open log file %s", cfg.Log.File)
	}
	logger.SetOutput(f)
	return f, nil
}

// app is what every command needs once configuration is settled
type app struct {
	cfg    *config.Config
	bus    eventbus.EventBus
	client *backend.Client
	loader *loader.Loader
	closer io.Closer
}

// newApp loads configuration, opens the log and builds the backend stack
func newApp(o *options) (*app, error) {
	// Logging needs the config, and the bus logs through the logger
	cfg, err := o.loadConfig(nil)
	if err != nil {
		return nil, err
	}
	closer, err := setupLogging(cfg)
	if err != nil {
		return nil, err
	}

	bus := eventbus.New()
	subscribeLogging(bus)
	bus.Publish(eventbus.ConfigLoadedEvent{Path: o.configPath, BackendURL: cfg.Backend.URL})

	client, err := backend.New(backend.Options{
		BaseURL:           cfg.Backend.URL,
		Timeout:           cfg.Backend.Timeout.Duration,
		RequestsPerSecond: cfg.Backend.RequestsPerSecond,
		Burst:             cfg.Backend.Burst,
		BreakerFailures:   cfg.Backend.BreakerFailures,
		BreakerCooldown:   cfg.Backend.BreakerCooldown.Duration,
		Logger:            logger.New("backend"),
	})
	if err != nil {
		bus.Close()
		_ = closer.Close()
		return nil, err
	}

	return &app{
		cfg:    cfg,
		bus:    bus,
		client: client,
		loader: loader.New(client, bus),
		closer: closer,
	}, nil
}

// Close stops the bus and closes the log file
func (a *app) Close() {
	a.bus.Close()
	_ = a.closer.Close()
}

// subscribeLogging records fallbacks and errors in the log
func subscribeLogging(bus eventbus.EventBus) {
	log := logger.New("events")
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Info("config loaded", "path", event.Path, "backend", event.BackendURL)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Info("config saved", "path", event.Path)
		}
	})
	bus.Subscribe(eventbus.EventFallbackUsed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FallbackUsedEvent); ok {
			log.Warn("using sample data", "endpoint", event.Endpoint, "cause", event.Cause)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Error(event.Message, "err", event.Err)
		}
	})
	bus.Subscribe(eventbus.EventContactSubmitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ContactSubmittedEvent); ok {
			log.Info("contact message sent", "email", event.Message.Email)
		}
	})
}
