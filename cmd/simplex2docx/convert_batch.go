package main

import (
	"context"
	"fmt"
	"time"

	simplex2docx "github.com/alnah/go-simplex2docx"
	"github.com/alnah/go-simplex2docx/internal/config"
	"github.com/alnah/go-simplex2docx/internal/fileutil"
	"github.com/alnah/go-simplex2docx/internal/hints"
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	ConvertFile(ctx context.Context, path string) (*simplex2docx.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*simplex2docx.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath    string
	OutputPath   string
	Tables       int
	Coefficients int
	Duration     time.Duration
}

// convertBatch converts files one after the other and stops at the first
// failure. The results of the files converted before it are returned with
// the error. With dryRun nothing is written.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, dryRun bool, now func() time.Time) ([]ConversionResult, error) {
	results := make([]ConversionResult, 0, len(files))

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		start := now()
		converted, err := conv.ConvertFile(ctx, f.InputPath)
		if err != nil {
			return results, err
		}

		if !dryRun {
			if err := fileutil.WriteFileAtomic(f.OutputPath, converted.DOCX); err != nil {
				return results, fmt.Errorf("%w: %s: %v", simplex2docx.ErrWriteDocument, f.OutputPath, err)
			}
		}

		results = append(results, ConversionResult{
			InputPath:    f.InputPath,
			OutputPath:   f.OutputPath,
			Tables:       len(converted.Section.Tables),
			Coefficients: len(converted.Report.Coefficients),
			Duration:     now().Sub(start),
		})
	}

	return results, nil
}

// printResults outputs one line per converted file, plus a count when
// several files were converted.
func printResults(results []ConversionResult, flags *runFlags, env *Environment) {
	if flags.common.quiet {
		return
	}

	for _, r := range results {
		switch {
		case flags.dryRun:
			fmt.Fprintf(env.Stdout, "Would create %s (%d tables)\n", r.OutputPath, r.Tables)
		case flags.common.verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d documents\n", len(results))
	}
}

// printHints reports, once per run, reports that produced no tables or no
// coefficients.
func printHints(results []ConversionResult, cfg *config.Config, env *Environment) {
	var noTables, noCoefficients int
	for _, r := range results {
		if r.Tables == 0 {
			noTables++
		}
		if r.Coefficients == 0 {
			noCoefficients++
		}
	}

	if noTables > 0 {
		fill := firstNonEmpty(cfg.Highlight.SourceFill, simplex2docx.DefaultSourceFill)
		fmt.Fprintf(env.Stderr, "%d report(s) without tables%s\n", noTables, hints.ForNoMarkedTables(fill))
	}
	if noCoefficients > 0 {
		fmt.Fprintf(env.Stderr, "%d report(s) without coefficients%s\n", noCoefficients, hints.ForNoCoefficients())
	}
}
