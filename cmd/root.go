// -- cmd/root.go --
package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nkrahm/boxgrid/internal/config"
	"github.com/nkrahm/boxgrid/internal/observability"
)

// contextKey scopes context values owned by this package.
type contextKey string

// configKey carries the validated configuration from the root command's
// PersistentPreRunE down to the subcommands.
const configKey contextKey = "config"

// NewRootCommand builds the boxgrid command tree. Each call returns a
// fresh instance so flag state never leaks between executions.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:     "boxgrid",
		Short:   "Boxgrid measures grid layouts in XUL and HTML documents.",
		Version: Version,
		// Runtime failures should not dump usage text over the report
		// output.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			config.SetDefaults(v)

			if err := initializeConfig(v, cfgFile); err != nil {
				// Initialize a fallback logger if config loading fails.
				observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "boxgrid"})
				return err
			}

			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "boxgrid"})
				return fmt.Errorf("failed to load config: %w", err)
			}

			observability.InitializeLogger(cfg.Logger())
			observability.GetLogger().Info("Starting boxgrid", zap.String("version", Version))

			// Store the validated config in the command's context for
			// the subcommands.
			cmd.SetContext(context.WithValue(cmd.Context(), configKey, cfg))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./boxgrid.yaml)")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newRenderCmd())

	return rootCmd
}

// Execute runs the command tree under ctx and reports the outcome
// through the logger. The caller owns the process exit code.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		observability.GetLogger().Error("Command execution failed", zap.Error(err))
		return err
	}
	return nil
}

// configFromContext returns the config stored by the root command.
// Commands executed without the root hook (some tests do this) fall
// back to the defaults.
func configFromContext(ctx context.Context) config.Interface {
	if cfg, ok := ctx.Value(configKey).(config.Interface); ok {
		return cfg
	}
	return config.NewDefaultConfig()
}

// initializeConfig wires the config file and environment variables into v.
func initializeConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "boxgrid"))
		}
		v.SetConfigName("boxgrid")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("BOXGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults and env vars.
	}
	return nil
}
