package simplex2docx

import "go.uber.org/zap"

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the settings gathered from options before
// NewConverter resolves them.
type converterConfig struct {
	markers     Markers
	highlight   Highlight
	headings    Headings
	style       string
	assetPath   string
	styleLoader StyleLoader
}

func defaultConverterConfig() converterConfig {
	return converterConfig{
		markers:   DefaultMarkers(),
		highlight: DefaultHighlight(),
		headings:  DefaultHeadings(),
		style:     DefaultStyle,
	}
}

// WithMarkers sets the phrases that locate the objective function, its
// terminator and the final table.
func WithMarkers(m Markers) Option {
	return func(c *Converter) {
		c.cfg.markers = m
	}
}

// WithHighlight sets the source fill, excluded column header and output fill.
func WithHighlight(h Highlight) Option {
	return func(c *Converter) {
		c.cfg.highlight = h
	}
}

// WithHeadings sets the document heading formats.
func WithHeadings(h Headings) Option {
	return func(c *Converter) {
		c.cfg.headings = h
	}
}

// WithStyle selects the Word style sheet by name. Empty keeps the default.
func WithStyle(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.cfg.style = name
		}
	}
}

// WithAssetPath sets a directory whose styles/ folder overrides the
// embedded style sheets.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithStyleLoader sets a custom style source. It takes precedence over
// WithAssetPath.
func WithStyleLoader(l StyleLoader) Option {
	return func(c *Converter) {
		c.cfg.styleLoader = l
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Converter) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}
