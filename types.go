package simplex2docx

import (
	"fmt"
	"regexp"
	"strings"
)

// Default marker phrases. The Russian phrases match the reports produced by
// the simplex solver; the English ones cover translated reports.
var (
	DefaultObjectivePhrases   = []string{"целевой функции F(X) =", "objective function F(X) ="}
	DefaultConstraintPhrases  = []string{"при следующих", "subject to the following"}
	DefaultFinalAnswerPhrases = []string{"Окончательный", "Final", "Conclusive"}
)

// Highlight defaults.
const (
	DefaultSourceFill    = "FFA0A0" // pivot cells in the source reports
	DefaultExcludeHeader = "min"    // ratio column, never a pivot
	DefaultOutputFill    = "FFFF00" // shading applied in the document
)

// Heading defaults. FileHeading takes the report name, TableHeading the
// 1-based table number.
const (
	DefaultFileHeading  = "Data from file %s"
	DefaultTableHeading = "Table %d"
)

var hexFill = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// RawTable is a table as scraped from a report, before re-shaping.
// Mark is the single retained highlighted cell, nil when the table has none.
type RawTable struct {
	Header []string
	Rows   [][]string
	Mark   *HighlightMark
}

// IsEmpty reports whether the table has no header.
// An empty final table is treated as absent.
func (t RawTable) IsEmpty() bool {
	return len(t.Header) == 0
}

// HighlightMark locates one cell to emphasize.
type HighlightMark struct {
	Value string
	Row   int
	Col   int
}

// CoefficientList holds objective-function coefficients.
// Index i is the coefficient of decision variable x(i+1).
type CoefficientList []int

// FinalMatrix is a transformed, render-ready table.
// Row 0 is the composite header, row 1 the variable header.
type FinalMatrix [][]string

// Height returns the number of rows.
func (m FinalMatrix) Height() int {
	return len(m)
}

// Width returns the length of the first row, 0 for an empty matrix.
func (m FinalMatrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Report is the extraction result for one source file.
type Report struct {
	Name         string // base name without extension
	Tables       []RawTable
	Coefficients CoefficientList
}

// TableResult pairs a transformed table with its relocated mark.
type TableResult struct {
	Matrix FinalMatrix
	Mark   *HighlightMark
}

// Section is the rendered content of one report.
type Section struct {
	Heading string
	Tables  []TableResult
}

// Markers holds the phrases used to locate report sections.
// Matching is exact and case-sensitive.
type Markers struct {
	Objective   []string // introduces the objective function
	Constraints []string // terminates the objective function text
	Final       []string // text right after the <br> preceding the final table
}

// DefaultMarkers returns the built-in marker phrases.
func DefaultMarkers() Markers {
	return Markers{
		Objective:   append([]string(nil), DefaultObjectivePhrases...),
		Constraints: append([]string(nil), DefaultConstraintPhrases...),
		Final:       append([]string(nil), DefaultFinalAnswerPhrases...),
	}
}

// Validate checks that every phrase group has at least one non-blank phrase.
func (m Markers) Validate() error {
	groups := []struct {
		name    string
		phrases []string
	}{
		{"objective", m.Objective},
		{"constraints", m.Constraints},
		{"final", m.Final},
	}
	for _, g := range groups {
		if len(g.phrases) == 0 {
			return fmt.Errorf("%w: %s: at least one phrase required", ErrInvalidMarkers, g.name)
		}
		for i, p := range g.phrases {
			if strings.TrimSpace(p) == "" {
				return fmt.Errorf("%w: %s[%d] is blank", ErrInvalidMarkers, g.name, i)
			}
		}
	}
	return nil
}

// Highlight configures how pivot cells are detected and shaded.
type Highlight struct {
	SourceFill    string // bgcolor of marked cells in the HTML
	ExcludeHeader string // header of the column ignored when collecting marks
	OutputFill    string // shading of the mark cell in the document
}

// DefaultHighlight returns the built-in highlight settings.
func DefaultHighlight() Highlight {
	return Highlight{
		SourceFill:    DefaultSourceFill,
		ExcludeHeader: DefaultExcludeHeader,
		OutputFill:    DefaultOutputFill,
	}
}

// Validate checks that both fills are 6-digit hex colors.
func (h Highlight) Validate() error {
	if !hexFill.MatchString(h.SourceFill) {
		return fmt.Errorf("%w: source fill %q", ErrInvalidFill, h.SourceFill)
	}
	if !hexFill.MatchString(h.OutputFill) {
		return fmt.Errorf("%w: output fill %q", ErrInvalidFill, h.OutputFill)
	}
	return nil
}

// Headings holds the fmt formats of document headings.
type Headings struct {
	File  string // one %s verb: report name
	Table string // one %d verb: table number
}

// DefaultHeadings returns the built-in heading formats.
func DefaultHeadings() Headings {
	return Headings{File: DefaultFileHeading, Table: DefaultTableHeading}
}

// Validate checks that each format carries exactly its one verb.
func (h Headings) Validate() error {
	if err := validateVerb(h.File, "%s"); err != nil {
		return fmt.Errorf("%w: file heading: %v", ErrInvalidHeading, err)
	}
	if err := validateVerb(h.Table, "%d"); err != nil {
		return fmt.Errorf("%w: table heading: %v", ErrInvalidHeading, err)
	}
	return nil
}

func validateVerb(format, verb string) error {
	rest := strings.ReplaceAll(format, "%%", "")
	if strings.Count(rest, "%") != 1 || !strings.Contains(rest, verb) {
		return fmt.Errorf("%q must contain exactly one %s", format, verb)
	}
	return nil
}

// normalizeFill strips a leading '#' and upper-cases the hex digits.
func normalizeFill(fill string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(fill), "#"))
}
