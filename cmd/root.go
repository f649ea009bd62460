package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/omdbctl/omdbctl/config"
	"github.com/omdbctl/omdbctl/omdb"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *omdb.Client

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "omdbctl",
	Short: "Query the OMDb movie/TV metadata API from the command line",
	Long: `omdbctl is a CLI for the OMDb API. It fetches single titles by IMDb id
or title text, searches the catalog with optional type/year filters and
expression-based result filtering, and lists a show's full episode table.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records the build metadata shown by the version command.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the OMDb client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create OMDb client
	opts := []omdb.Option{}
	if cfg.OMDb.TimeoutMS > 0 {
		opts = append(opts, omdb.WithTimeout(time.Duration(cfg.OMDb.TimeoutMS)*time.Millisecond))
	}
	client, err = omdb.NewClient(cfg.OMDb.APIKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create OMDb client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
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

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd prints the build metadata
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("omdbctl %s (built %s)\n", version, buildTime)
	},
	// No config or client needed to print the version.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

// testCmd verifies the configured API key works
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the OMDb API key",
	Long:  `Issue a probe search against the OMDb API to verify the configured key works.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Println("Testing OMDb API key...")

	ctx := context.Background()
	page, err := client.Search(ctx, omdb.SearchRequest{Query: "the matrix"})
	if err != nil {
		return fmt.Errorf("probe search failed: %w", err)
	}

	fmt.Println("✓ API key works!")
	fmt.Printf("- Probe query returned %d total results\n", page.TotalResults)
	fmt.Printf("- Request timeout: %s\n", client.Timeout())
	return nil
}
