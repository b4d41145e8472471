package simplex2docx

import (
	"strconv"
	"strings"
)

// Structural offsets between a raw table and its FinalMatrix.
const (
	// HeaderRows is the number of rows stacked above the raw data rows
	// (composite header and variable header).
	HeaderRows = 2

	// LeadingColumns is the number of columns inserted before each row.
	LeadingColumns = 1

	// scanOffset skips the structural rows and columns of the raw table
	// when searching for the mark value.
	scanOffset = 2
)

// variablePrefix starts the basis-variable cells (x1, x2, ...).
const variablePrefix = "x"

// Transform re-shapes raw into its presentation matrix and returns the mark
// relocated into matrix coordinates. raw is not modified.
//
// The steps are, in order: relocate the mark against the original rows,
// stack the composite header and variable header above copies of the rows,
// prepend the leading cell to every row, then pad rows to the widest one.
func Transform(raw RawTable, coefficients CoefficientList) (FinalMatrix, *HighlightMark) {
	mark := RelocateMark(raw.Mark, raw.Rows)

	width := len(raw.Header)
	stacked := make([][]string, 0, len(raw.Rows)+HeaderRows)
	stacked = append(stacked, CompositeHeader(width, coefficients), VariableHeader(width))
	for _, row := range raw.Rows {
		stacked = append(stacked, append([]string(nil), row...))
	}

	for i, row := range stacked {
		stacked[i] = prependLeadingCell(row, coefficients)
	}

	return padRows(stacked), mark
}

// ShiftToFinal converts raw-row coordinates into FinalMatrix coordinates.
func ShiftToFinal(row, col int) (int, int) {
	return row + HeaderRows, col + LeadingColumns
}

// RelocateMark searches rows for the first cell equal to mark.Value,
// skipping the first two rows and columns, and returns a mark pointing at
// that cell in FinalMatrix coordinates.
//
// When nothing matches, the returned mark keeps the coordinates assigned at
// extraction time unchanged. Returns nil when mark is nil.
func RelocateMark(mark *HighlightMark, rows [][]string) *HighlightMark {
	if mark == nil {
		return nil
	}

	for i := scanOffset; i < len(rows); i++ {
		for j := scanOffset; j < len(rows[i]); j++ {
			if rows[i][j] != mark.Value {
				continue
			}
			r, c := ShiftToFinal(i, j)
			return &HighlightMark{Value: mark.Value, Row: r, Col: c}
		}
	}

	relocated := *mark
	return &relocated
}

// CompositeHeader builds the coefficient header row: "C", "-", the
// coefficients, then "0" padding up to width. Coefficients that do not fit
// widen the row instead of being dropped.
func CompositeHeader(width int, coefficients CoefficientList) []string {
	pad := max(0, width-len(coefficients)-2)

	header := make([]string, 0, 2+len(coefficients)+pad)
	header = append(header, "C", "-")
	for _, c := range coefficients {
		header = append(header, strconv.Itoa(c))
	}
	for range pad {
		header = append(header, "0")
	}
	return header
}

// VariableHeader builds the "B", "A0", "A1", ... row for a table whose
// raw header has width cells.
func VariableHeader(width int) []string {
	n := max(0, width-2)

	header := make([]string, 0, 2+n)
	header = append(header, "B", "A0")
	for i := 1; i <= n; i++ {
		header = append(header, "A"+strconv.Itoa(i))
	}
	return header
}

// LeadingCell returns the cell inserted before a row whose first cell is
// first. Basis-variable rows ("x3") get their objective coefficient, or "0"
// when the variable has none; every other row gets an empty cell.
func LeadingCell(first string, coefficients CoefficientList) string {
	if !strings.HasPrefix(first, variablePrefix) {
		return ""
	}

	index, err := strconv.Atoi(strings.TrimPrefix(first, variablePrefix))
	if err != nil || index < 1 || index > len(coefficients) {
		return "0"
	}
	return strconv.Itoa(coefficients[index-1])
}

func prependLeadingCell(row []string, coefficients CoefficientList) []string {
	first := ""
	if len(row) > 0 {
		first = row[0]
	}

	out := make([]string, 0, len(row)+LeadingColumns)
	out = append(out, LeadingCell(first, coefficients))
	return append(out, row...)
}

// padRows right-pads every row with empty cells to the widest row.
func padRows(rows [][]string) FinalMatrix {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}
	return FinalMatrix(rows)
}
