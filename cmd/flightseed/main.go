package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tordrt/flightseed"
	"github.com/tordrt/flightseed/internal/config"
	"github.com/tordrt/flightseed/internal/db"
	"github.com/tordrt/flightseed/internal/formatter"
	"github.com/tordrt/flightseed/internal/report"
)

type cliFlags struct {
	dbURL      string
	configPath string
	seed       uint64
	sample     int
	routes     string
	format     string
	outputFile string
	outputDir  string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	f := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:   "flightseed",
		Short: "Seed a database with a synthetic flight network",
		Long: `flightseed generates a synthetic flight network over Indian airports and stores it in
PostgreSQL, MySQL, SQLite or a CSV file. The network always includes direct, one-stop and
two-stop itineraries from AMD to BLR for exercising K-shortest-path searches.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, f)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().Uint64Var(&f.seed, "seed", 0, "Random seed for a reproducible network")
	rootCmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")
	addStoreFlags(rootCmd, f)

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a network and store it unless the store already has flights",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, f)
		},
	}
	addStoreFlags(seedCmd, f)

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Report the flights held by a store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, f)
		},
	}
	addStoreFlags(verifyCmd, f)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated network as CSV without touching a store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f)
		},
	}
	generateCmd.Flags().StringVarP(&f.outputFile, "output", "o", "", "Output file (default: stdout)")

	rootCmd.AddCommand(seedCmd, verifyCmd, generateCmd)
	return rootCmd
}

func addStoreFlags(cmd *cobra.Command, f *cliFlags) {
	cmd.Flags().StringVar(&f.dbURL, "db-url", "", "Database URL (default: $"+config.EnvDatabaseURL+")")
	cmd.Flags().IntVar(&f.sample, "sample", config.DefaultSampleSize, "Number of flights to list after the run")
	cmd.Flags().StringVarP(&f.routes, "routes", "r", "", "Routes to report (comma-separated SRC-DST, optional)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "text", "Output format: text or markdown (default: text)")
	cmd.Flags().StringVarP(&f.outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "d", "", "Output directory for multi-file output")
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// resolveConfig layers flags that were set explicitly over the loaded config
func resolveConfig(cmd *cobra.Command, f *cliFlags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("db-url") {
		cfg.DatabaseURL = f.dbURL
	}
	if flags.Changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if flags.Changed("sample") {
		cfg.SampleSize = f.sample
	}
	if flags.Changed("format") {
		cfg.Format = f.format
	}
	if flags.Changed("routes") {
		routes, err := config.ParseRoutes(f.routes)
		if err != nil {
			return nil, err
		}
		cfg.Routes = routes
	}

	if !formatter.ValidFormat(cfg.Format) {
		return nil, fmt.Errorf("invalid format: %s (must be 'text' or 'markdown')", cfg.Format)
	}
	return cfg, nil
}

func options(cfg *config.Config, logger *slog.Logger) (*flightseed.Options, error) {
	reg, err := cfg.Registry()
	if err != nil {
		return nil, err
	}

	sample := cfg.SampleSize
	if sample == 0 {
		sample = -1
	}
	return &flightseed.Options{
		Registry:   reg,
		Seed:       cfg.Seed,
		SampleSize: sample,
		Routes:     cfg.Routes,
		Logger:     logger,
	}, nil
}

func runSeed(cmd *cobra.Command, f *cliFlags) error {
	return runStore(cmd, f, flightseed.Seed)
}

func runVerify(cmd *cobra.Command, f *cliFlags) error {
	return runStore(cmd, f, flightseed.Verify)
}

type storeFunc func(ctx context.Context, databaseURL string, opts *flightseed.Options) (*report.Report, error)

func runStore(cmd *cobra.Command, f *cliFlags, run storeFunc) error {
	if f.outputDir != "" && f.outputFile != "" {
		return fmt.Errorf("cannot use both --output-dir and --output flags")
	}

	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("--db-url or %s must be specified", config.EnvDatabaseURL)
	}

	logger := newLogger(cmd.ErrOrStderr(), f.verbose)
	opts, err := options(cfg, logger)
	if err != nil {
		return err
	}

	rep, err := run(cmd.Context(), cfg.DatabaseURL, opts)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), rep, cfg.Format, f.outputFile, f.outputDir)
}

func writeReport(stdout io.Writer, rep *report.Report, format, outputFile, outputDir string) error {
	// Multi-file output
	if outputDir != "" {
		multiFormatter := formatter.NewMultiFileFormatter(outputDir, format)
		if err := multiFormatter.Format(rep); err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		return nil
	}

	// Single-file output
	writer := stdout
	if outputFile != "" {
		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to close output file: %v\n", err)
			}
		}()
		writer = file
	}

	var err error
	switch format {
	case "markdown":
		err = formatter.NewMarkdownFormatter(writer).Format(rep)
	default:
		err = formatter.NewTextFormatter(writer).Format(rep)
	}
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	return nil
}

func runGenerate(cmd *cobra.Command, f *cliFlags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), f.verbose)
	opts, err := options(cfg, logger)
	if err != nil {
		return err
	}

	net, err := flightseed.Generate(opts)
	if err != nil {
		return err
	}
	logger.Info("generated network",
		"flights", net.Summary.Total,
		"direct", net.Summary.Direct,
		"one_stop", net.Summary.OneStop,
		"two_stop", net.Summary.TwoStop,
		"bulk", net.Summary.Bulk)

	// a file output goes through the CSV sink so it is replaced atomically
	if f.outputFile != "" {
		sink := db.NewCSVFile(f.outputFile)
		if err := sink.EnsureSchema(cmd.Context()); err != nil {
			return err
		}
		return sink.WriteBatch(cmd.Context(), net.Edges)
	}
	return db.EncodeCSV(cmd.OutOrStdout(), net.Edges)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
