package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/esimports/eis/pkg/config"
	"github.com/esimports/eis/pkg/errors"
	"github.com/esimports/eis/pkg/processor"
	"github.com/esimports/eis/pkg/utils"
	"github.com/esimports/eis/pkg/version"
	"github.com/esimports/eis/pkg/watcher"
)

const (
	UseDescription   = "eis [flags] PATH"
	ShortDescription = "ECMAScript import sorter - a tool to normalize JavaScript and TypeScript imports"
	LongDescription  = `eis is a command-line tool that normalizes the import statements of
JavaScript and TypeScript sources.

Import statements are grouped by origin:
1. Framework (react)
2. Bare modules
3. Aliased project paths (configurable prefixes)
4. Relative paths

Within each group, statements can be ordered by path or by rendered length,
and the named bindings inside a statement can be ordered as well. Everything
else in the file is left exactly as it was.

PATH can be a single source file, a directory, or - to read from standard
input. When a directory is specified, all JavaScript and TypeScript files in
the directory and subdirectories will be processed recursively. In stdin
mode only the sorted import block is printed.`
)

var (
	configPath        string
	prefixes          []string
	priority          []string
	sortBy            string
	sortBindings      bool
	sortBindingsBy    string
	separateOrigins   bool
	separateMultiline bool
	write             bool
	check             bool
	diffMode          bool
	watchMode         bool
	verbose           bool
	showVersion       bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:               UseDescription,
	Short:             ShortDescription,
	Long:              LongDescription,
	Args:              validateArgs,
	RunE:              run,
	PersistentPreRunE: initLogger,
	PersistentPostRun: syncLogger,
	SilenceUsage:      true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get().String())
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default " + config.FileName + " in the current directory",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to an explicit configuration file (default: nearest "+config.FileName+")")
	rootCmd.PersistentFlags().StringSliceVar(&prefixes, "prefixes", []string{}, "Comma-separated path prefixes treated as aliased project roots (e.g., common,app)")
	rootCmd.PersistentFlags().StringSliceVar(&priority, "priority", []string{}, "Comma-separated origin order (framework,module,aliased-module,relative-path)")
	rootCmd.PersistentFlags().StringVar(&sortBy, "sort-by", "", "Statement order inside each group: none, ascending, descending, shorter-first, longer-first")
	rootCmd.PersistentFlags().BoolVar(&sortBindings, "sort-bindings", false, "Order the named bindings inside each statement")
	rootCmd.PersistentFlags().StringVar(&sortBindingsBy, "sort-bindings-by", "", "Named-binding order: ascending, descending, shorter-first, longer-first")
	rootCmd.PersistentFlags().BoolVar(&separateOrigins, "separate-origins", false, "Separate origin groups with a blank line")
	rootCmd.PersistentFlags().BoolVar(&separateMultiline, "separate-multiline", false, "Put a blank line before statements whose bindings spanned several lines")
	rootCmd.PersistentFlags().BoolVar(&write, "write", false, "Modify files in place instead of printing to stdout")
	rootCmd.PersistentFlags().BoolVar(&check, "check", false, "Report files whose imports are not normalized and exit nonzero")
	rootCmd.PersistentFlags().BoolVar(&diffMode, "diff", false, "Print a unified diff instead of the full result")
	rootCmd.PersistentFlags().BoolVar(&watchMode, "watch", false, "Keep running and re-process files as they are saved")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
}

func initLogger(cmd *cobra.Command, args []string) error {
	zapConfig := zap.NewProductionConfig()
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func syncLogger(cmd *cobra.Command, args []string) {
	if logger != nil {
		_ = logger.Sync()
	}
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if showVersion {
		return nil
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		fmt.Println(version.Get().Short())
		return nil
	}

	target := args[0]

	cfg, err := resolveConfig(cmd, target)
	if err != nil {
		return err
	}

	sorterConfig, err := cfg.ToSorter()
	if err != nil {
		return err
	}

	p := processor.New(processor.Config{
		Sorter: sorterConfig,
		Write:  write,
		Check:  check,
		Diff:   diffMode,
	})

	if target == "-" {
		return p.ProcessStdin()
	}

	if watchMode {
		if err := p.ProcessPath(target); err != nil {
			logger.Warn("Initial pass reported errors", zap.Error(err))
		}
		return runWatch(target, p)
	}

	return p.ProcessPath(target)
}

// resolveConfig loads the configuration file governing target and layers
// any explicitly set flags on top of it.
func resolveConfig(cmd *cobra.Command, target string) (*config.Config, error) {
	searchFrom := target
	if target == "-" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, pkgerrors.Wrap(err, errors.ErrMsgFailedToGetWorkingDir)
		}
		searchFrom = wd
	}

	cfg, err := config.Load(config.Discover(configPath, searchFrom))
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("prefixes") {
		cfg.PathPrefixes = prefixes
	}
	if flags.Changed("priority") {
		cfg.Priority = priority
	}
	if flags.Changed("sort-by") {
		cfg.SortBy = sortBy
	}
	if flags.Changed("sort-bindings") {
		cfg.SortBindings = sortBindings
	}
	if flags.Changed("sort-bindings-by") {
		cfg.SortBindingsBy = sortBindingsBy
	}
	if flags.Changed("separate-origins") {
		cfg.SeparateOrigins = separateOrigins
	}
	if flags.Changed("separate-multiline") {
		cfg.SeparateMultiline = separateMultiline
	}

	return cfg, nil
}

// runInit bootstraps a project configuration file with the defaults. An
// existing file is never overwritten.
func runInit(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return pkgerrors.Wrap(err, errors.ErrMsgFailedToGetWorkingDir)
	}

	path := filepath.Join(wd, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf(errors.ErrMsgConfigAlreadyExists, path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}

	fmt.Printf(errors.InfoMsgConfigCreated+"\n", path)
	return nil
}

// runWatch keeps re-processing files under the target as they change,
// until an interrupt arrives.
func runWatch(target string, p watcher.Processor) error {
	isDir, err := utils.IsDirectory(target)
	if err != nil {
		return pkgerrors.Wrap(err, errors.ErrMsgFailedToCheckPath)
	}

	root := target
	if !isDir {
		root = filepath.Dir(target)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received shutdown signal")
		cancel()
	}()

	w, err := watcher.New(root, p, logger)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	fmt.Printf(errors.InfoMsgWatchingPath+"\n", root)

	<-ctx.Done()
	w.Stop()
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}
