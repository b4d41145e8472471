package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	simplex2docx "github.com/alnah/go-simplex2docx"
	"github.com/alnah/go-simplex2docx/internal/config"
	"github.com/alnah/go-simplex2docx/internal/fileutil"
	"github.com/alnah/go-simplex2docx/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUnexpectedArgs = errors.New("unexpected arguments")
	ErrInputDir       = errors.New("cannot read input folder")
	ErrOutputDir      = errors.New("cannot create output folder")
)

// runConvert loads the config, merges flags over it and converts every
// report of the input folder.
func runConvert(ctx context.Context, flags *runFlags, env *Environment) error {
	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	// CLI wins over the config file
	mergeFlags(flags, cfg)

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	defer func() { _ = logger.Sync() }()

	conv, err := simplex2docx.NewConverter(converterOptions(cfg, logger)...)
	if err != nil {
		if errors.Is(err, simplex2docx.ErrStyleNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(simplex2docx.AvailableStyles()))
		}
		return err
	}

	inputDir := resolveInputDir(cfg)
	outputDir := resolveOutputDir(cfg)

	files, err := discoverFiles(inputDir, outputDir, resolvePrefix(cfg))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !flags.common.quiet {
			fmt.Fprintf(env.Stderr, "no .html reports found in %s%s\n", inputDir, hints.ForNoReports(inputDir))
		}
		return nil
	}
	logger.Debug("discovered reports",
		zap.String("input", inputDir),
		zap.String("output", outputDir),
		zap.Int("count", len(files)))

	if !flags.dryRun {
		if err := fileutil.EnsureDir(outputDir); err != nil {
			return fmt.Errorf("%w: %v%s", ErrOutputDir, err, hints.ForOutputDirectory())
		}
	}

	results, err := convertBatch(ctx, conv, files, flags.dryRun, env.Now)
	printResults(results, flags, env)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		printHints(results, cfg, env)
	}
	return nil
}

// loadConfig returns the config named by nameOrPath, or an empty config
// when nameOrPath is empty.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(nameOrPath) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *runFlags, cfg *config.Config) {
	if flags.input != "" {
		cfg.Input.Dir = flags.input
	}
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.style != "" {
		cfg.Document.Style = flags.style
	}
}

func resolveInputDir(cfg *config.Config) string {
	return firstNonEmpty(cfg.Input.Dir, defaultInputDir)
}

func resolveOutputDir(cfg *config.Config) string {
	return firstNonEmpty(cfg.Output.Dir, defaultOutputDir)
}

func resolvePrefix(cfg *config.Config) string {
	return firstNonEmpty(cfg.Output.Prefix, defaultPrefix)
}

// converterOptions maps config values onto library options. Unset values
// keep the library defaults field by field.
func converterOptions(cfg *config.Config, logger *zap.Logger) []simplex2docx.Option {
	markers := simplex2docx.DefaultMarkers()
	if len(cfg.Markers.Objective) > 0 {
		markers.Objective = cfg.Markers.Objective
	}
	if len(cfg.Markers.Constraints) > 0 {
		markers.Constraints = cfg.Markers.Constraints
	}
	if len(cfg.Markers.Final) > 0 {
		markers.Final = cfg.Markers.Final
	}

	highlight := simplex2docx.Highlight{
		SourceFill:    firstNonEmpty(cfg.Highlight.SourceFill, simplex2docx.DefaultSourceFill),
		ExcludeHeader: firstNonEmpty(cfg.Highlight.ExcludeHeader, simplex2docx.DefaultExcludeHeader),
		OutputFill:    firstNonEmpty(cfg.Highlight.OutputFill, simplex2docx.DefaultOutputFill),
	}

	headings := simplex2docx.Headings{
		File:  firstNonEmpty(cfg.Document.FileHeading, simplex2docx.DefaultFileHeading),
		Table: firstNonEmpty(cfg.Document.TableHeading, simplex2docx.DefaultTableHeading),
	}

	return []simplex2docx.Option{
		simplex2docx.WithMarkers(markers),
		simplex2docx.WithHighlight(highlight),
		simplex2docx.WithHeadings(headings),
		simplex2docx.WithStyle(cfg.Document.Style),
		simplex2docx.WithAssetPath(cfg.Assets.BasePath),
		simplex2docx.WithLogger(logger),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
