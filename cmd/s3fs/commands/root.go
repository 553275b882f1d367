// Package commands implements the s3fs CLI commands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/s3fs-go/s3fs/internal/logger"
	"github.com/s3fs-go/s3fs/pkg/config"
	"github.com/s3fs-go/s3fs/pkg/metrics"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Global flags.
	cfgFile       string
	logLevel      string
	enableMetrics bool

	// cfg is loaded once by the root PersistentPreRunE.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "s3fs",
	Short: "s3fs - hierarchical paths over S3 object stores",
	Long: `s3fs treats S3 bucket/key locations as hierarchical paths.

Paths of the form "/bucket/key/parts" are absolute; "key/parts" is
relative. The parse, resolve and relativize commands work purely on path
values; ls and stat talk to the configured store.

Use "s3fs [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if err := logger.Init(logger.Config(cfg.Logging)); err != nil {
			return err
		}

		if enableMetrics {
			metrics.InitRegistry()
		}
		return nil
	},
}

// Execute runs the root command. Called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/s3fs/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().BoolVar(&enableMetrics, "metrics", false, "collect store operation metrics and log them on completion")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(relativizeCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(statCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
