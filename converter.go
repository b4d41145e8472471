package simplex2docx

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-simplex2docx/internal/fileutil"
)

// Converter runs the report-to-document pipeline: extraction, table
// transformation and rendering. Create with NewConverter. A Converter is
// safe for sequential reuse.
type Converter struct {
	cfg       converterConfig
	logger    *zap.Logger
	extractor *Extractor
	renderer  *Renderer
}

// Input is one report to convert.
type Input struct {
	Name string // report name used in the file heading
	HTML []byte // raw report bytes, any charset the parser can detect
}

// ConvertResult holds the outputs of one conversion.
type ConvertResult struct {
	DOCX    []byte
	Report  *Report
	Section Section
}

// NewConverter creates a Converter with default markers, fills, headings
// and style sheet, adjusted by opts.
// Returns an error if a setting is invalid or the style sheet cannot be
// loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:    defaultConverterConfig(),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	loader := c.cfg.styleLoader
	if loader == nil {
		var err error
		loader, err = NewStyleLoader(c.cfg.assetPath)
		if err != nil {
			return nil, err
		}
	}

	styles, err := loader.LoadStyle(c.cfg.style)
	if err != nil {
		return nil, fmt.Errorf("loading style %q: %w", c.cfg.style, err)
	}

	c.extractor, err = NewExtractor(c.cfg.markers, c.cfg.highlight)
	if err != nil {
		return nil, err
	}

	c.renderer, err = NewRenderer(styles, c.cfg.highlight.OutputFill, c.cfg.headings)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("converter ready",
		zap.String("style", c.cfg.style),
		zap.String("assetPath", c.cfg.assetPath),
		zap.Bool("customLoader", c.cfg.styleLoader != nil))

	return c, nil
}

// Extractor returns the extractor configured for this converter.
func (c *Converter) Extractor() *Extractor {
	return c.extractor
}

// Renderer returns the renderer configured for this converter.
func (c *Converter) Renderer() *Renderer {
	return c.renderer
}

// Convert parses one report, transforms its tables and renders the
// document. The context is checked between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	start := time.Now()
	log := c.logger.With(zap.String("report", input.Name))

	report, err := c.extractor.Parse(bytes.NewReader(input.HTML), input.Name)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	log.Debug("extracted",
		zap.Int("tables", len(report.Tables)),
		zap.Ints("coefficients", report.Coefficients))
	c.warnIncomplete(log, report)

	section := c.BuildSection(report)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	data, err := c.renderer.Render([]Section{section})
	if err != nil {
		return nil, err
	}
	log.Debug("rendered", zap.Int("bytes", len(data)), zap.Duration("elapsed", time.Since(start)))

	return &ConvertResult{DOCX: data, Report: report, Section: section}, nil
}

// ConvertFile reads the report at path and converts it.
// The report name is the file's base name without extension.
func (c *Converter) ConvertFile(ctx context.Context, path string) (*ConvertResult, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadReport, err)
	}

	result, err := c.Convert(ctx, Input{
		Name: fileutil.TrimExt(filepath.Base(path)),
		HTML: content,
	})
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", path, err)
	}
	return result, nil
}

// BuildSection transforms every table of report into its section.
func (c *Converter) BuildSection(report *Report) Section {
	results := make([]TableResult, 0, len(report.Tables))
	for _, raw := range report.Tables {
		matrix, mark := Transform(raw, report.Coefficients)
		results = append(results, TableResult{Matrix: matrix, Mark: mark})
	}
	return c.renderer.NewSection(report.Name, results)
}

func (c *Converter) warnIncomplete(log *zap.Logger, report *Report) {
	if len(report.Tables) == 0 {
		log.Warn("no highlighted or final tables found")
	}
	if len(report.Coefficients) == 0 {
		log.Warn("no objective-function coefficients found")
	}
}
