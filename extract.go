package simplex2docx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"

	"github.com/alnah/go-simplex2docx/internal/fileutil"
)

// ReportExtension is the extension of source reports, without the dot.
const ReportExtension = "html"

// coefficientPattern matches an integer immediately followed by a
// variable token such as "x1".
var coefficientPattern = regexp.MustCompile(`(\d+)x\d`)

// Extractor scrapes raw tables and objective coefficients from reports.
// It is safe for sequential reuse across files.
type Extractor struct {
	markers   Markers
	highlight Highlight
	objective *regexp.Regexp
}

// NewExtractor creates an Extractor for the given phrases and fills.
func NewExtractor(markers Markers, highlight Highlight) (*Extractor, error) {
	if err := markers.Validate(); err != nil {
		return nil, err
	}
	if err := highlight.Validate(); err != nil {
		return nil, err
	}

	pattern := alternation(markers.Objective) + `([\s\S]*?)` + alternation(markers.Constraints)
	return &Extractor{
		markers:   markers,
		highlight: highlight,
		objective: regexp.MustCompile(pattern),
	}, nil
}

// alternation builds a non-capturing group matching any phrase literally.
func alternation(phrases []string) string {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}

// ExtractCoefficients returns the coefficients written between the
// objective-function phrase and the constraints phrase, left to right.
// Returns an empty list when either phrase is missing.
func (e *Extractor) ExtractCoefficients(text string) CoefficientList {
	m := e.objective.FindStringSubmatch(text)
	if m == nil {
		return CoefficientList{}
	}

	matches := coefficientPattern.FindAllStringSubmatch(m[1], -1)
	coefficients := make(CoefficientList, 0, len(matches))
	for _, match := range matches {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		coefficients = append(coefficients, n)
	}
	return coefficients
}

// FindMarkedTables returns every table containing at least one cell filled
// with the source highlight color.
//
// Each table keeps a single mark: scanning data rows in order, every
// highlighted cell outside the excluded column replaces the previous one,
// so the last match wins. Mark rows are 1-based relative to the data rows.
func (e *Extractor) FindMarkedTables(doc *html.Node) []RawTable {
	var tables []RawTable

	for _, tbl := range findAll(doc, atom.Table) {
		if !e.hasMarkedCell(tbl) {
			continue
		}

		rows := findAll(tbl, atom.Tr)
		if len(rows) == 0 {
			continue
		}

		raw := tableFromRows(rows)
		excluded := -1
		if e.highlight.ExcludeHeader != "" {
			excluded = indexOf(raw.Header, e.highlight.ExcludeHeader)
		}

		for r, row := range rows[1:] {
			for c, cell := range findAll(row, atom.Td, atom.Th) {
				if c == excluded || !e.isMarked(cell) {
					continue
				}
				raw.Mark = &HighlightMark{Value: cellText(cell), Row: r + 1, Col: c}
			}
		}

		tables = append(tables, raw)
	}

	return tables
}

// FindFinalTable returns the table introduced by a final-answer phrase:
// the first <br> whose next sibling is text containing the phrase, followed
// by a table. Returns an empty RawTable when no such table exists.
func (e *Extractor) FindFinalTable(doc *html.Node) RawTable {
	for _, br := range findAll(doc, atom.Br) {
		next := br.NextSibling
		if next == nil || next.Type != html.TextNode || !containsAny(next.Data, e.markers.Final) {
			continue
		}

		tbl := nextSiblingElement(br, atom.Table)
		if tbl == nil {
			// The HTML5 parser moves tables out of <p> elements.
			tbl = nextElement(br, atom.Table)
		}
		if tbl == nil {
			continue
		}

		rows := findAll(tbl, atom.Tr)
		if len(rows) == 0 {
			continue
		}
		return tableFromRows(rows)
	}

	return RawTable{}
}

// Parse reads one report. The character set is detected from the content
// (BOM, <meta charset>), so legacy encodings such as windows-1251 decode
// correctly. name becomes Report.Name.
func (e *Extractor) Parse(r io.Reader, name string) (*Report, error) {
	decoded, err := charset.NewReader(r, "")
	if err != nil {
		return nil, fmt.Errorf("%w: detecting charset: %v", ErrHTMLParse, err)
	}

	doc, err := html.Parse(decoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}

	tables := e.FindMarkedTables(doc)
	if final := e.FindFinalTable(doc); !final.IsEmpty() {
		tables = append(tables, final)
	}

	return &Report{
		Name:         name,
		Tables:       tables,
		Coefficients: e.ExtractCoefficients(textContent(doc)),
	}, nil
}

// ParseFile reads and parses the report at path.
// Report.Name is the file's base name without extension.
func (e *Extractor) ParseFile(path string) (*Report, error) {
	f, err := os.Open(path) // #nosec G304 -- discovered path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadReport, err)
	}
	defer func() { _ = f.Close() }()

	report, err := e.Parse(f, fileutil.TrimExt(filepath.Base(path)))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return report, nil
}

// ProcessFolder parses every .html file directly inside dir, ordered by
// file name. Stops at the first failure.
func (e *Extractor) ProcessFolder(dir string) ([]*Report, error) {
	paths, err := fileutil.ListFiles(dir, ReportExtension)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadReport, err)
	}

	reports := make([]*Report, 0, len(paths))
	for _, path := range paths {
		report, err := e.ParseFile(path)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (e *Extractor) hasMarkedCell(tbl *html.Node) bool {
	for _, cell := range findAll(tbl, atom.Td, atom.Th) {
		if e.isMarked(cell) {
			return true
		}
	}
	return false
}

func (e *Extractor) isMarked(cell *html.Node) bool {
	fill := attr(cell, "bgcolor")
	return fill != "" && normalizeFill(fill) == normalizeFill(e.highlight.SourceFill)
}

// tableFromRows splits <tr> nodes into header (row 0) and data rows.
func tableFromRows(rows []*html.Node) RawTable {
	raw := RawTable{Header: rowTexts(rows[0])}
	for _, row := range rows[1:] {
		raw.Rows = append(raw.Rows, rowTexts(row))
	}
	return raw
}

func rowTexts(row *html.Node) []string {
	cells := findAll(row, atom.Td, atom.Th)
	texts := make([]string, len(cells))
	for i, cell := range cells {
		texts[i] = cellText(cell)
	}
	return texts
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
