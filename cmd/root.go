package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/holowatch/config"
	"github.com/s0up4200/holowatch/holodex"
	"github.com/s0up4200/holowatch/watch"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	client     *holodex.Client
	operations *watch.Operations
	formatter  *watch.ConsoleFormatter

	// Command flags
	filterExpr string
	preset     string
	orgFlag    string
	limitFlag  int
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records build information injected by the linker.
func SetVersion(v, t string) {
	version = v
	buildTime = t
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "holowatch",
	Short: "A tool to browse VTuber streams and clips through the Holodex API",
	Long: `holowatch is a CLI tool for the Holodex video-metadata API. It lists
live streams, searches videos and timestamped comments, and inspects
channels, with expr-based filter expressions over the results.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Holodex client
	client, err = holodex.NewClient(
		cfg.Holodex.URL,
		cfg.Holodex.APIKey,
		logger,
		holodex.WithTimeout(time.Duration(cfg.Holodex.Timeout)*time.Second),
		holodex.WithUserAgent("holowatch/"+version),
	)
	if err != nil {
		return fmt.Errorf("failed to create Holodex client: %w", err)
	}

	operations = watch.NewOperations(client, logger)
	formatter = watch.NewConsoleFormatter()

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when configured and attached to a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression resolves --filter and --preset into one expression
func getFilterExpression() (string, error) {
	if filterExpr != "" && preset != "" {
		return "", fmt.Errorf("--filter and --preset are mutually exclusive")
	}
	if preset != "" {
		expr, ok := cfg.Presets[preset]
		if !ok {
			return "", fmt.Errorf("preset %q not found in config", preset)
		}
		return expr, nil
	}
	return filterExpr, nil
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// No config or client needed.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("holowatch %s (built %s)\n", version, buildTime)
	},
}
