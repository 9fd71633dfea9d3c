package cli

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"cinematch/internal/config"
	"cinematch/internal/eventbus"
)

func newConfigCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.AddCommand(newConfigInitCommand(opts), newConfigPathCommand(opts))
	return cmd
}

func newConfigInitCommand(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Writes the default settings to the config file, creating its directory.
--backend, --log-file and --log-level are written in place of the defaults.
An existing file is only replaced with --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			opts.applyFlags(cfg)

			closer, err := setupLogging(cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			bus := eventbus.New()
			defer bus.Close()
			subscribeLogging(bus)

			svc := config.NewConfigServiceWithBus(opts.configPath, bus)
			path := svc.Path()
			if _, err := os.Stat(path); err == nil && !force {
				return errors.WithHint(
					errors.Newf("config file %s already exists", path),
					"pass --force to overwrite it",
				)
			}

			if err := svc.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func newConfigPathCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.NewConfigService(opts.configPath).Path())
			return nil
		},
	}
}
