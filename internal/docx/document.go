package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for document writing.
var (
	ErrMissingStyles = errors.New("styles part is empty")
	ErrMarshal       = errors.New("failed to marshal document part")
	ErrPackage       = errors.New("failed to write document package")
)

// Alignment is a paragraph or table justification.
type Alignment string

// Alignment values.
const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// BorderStyle is a cell border line style. The empty value leaves the
// border to the table style.
type BorderStyle string

// Border styles.
const (
	BorderNone   BorderStyle = "nil"
	BorderSingle BorderStyle = "single"
)

// Heading levels supported by the bundled style sheets.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 2
)

// Page and table geometry in twentieths of a point (A4, 3cm/1.5cm margins).
const (
	pageWidth     = 11906
	pageHeight    = 16838
	marginLeft    = 1701
	marginRight   = 850
	marginTop     = 1134
	marginBottom  = 1134
	contentWidth  = pageWidth - marginLeft - marginRight
	borderSize    = 4 // eighths of a point
	headerMargin  = 708
	footerMargin  = 708
	defaultBorder = "auto"
)

// Document accumulates body content and writes it as a .docx package.
type Document struct {
	styles []byte
	blocks []any
}

// New creates an empty document using styles as word/styles.xml.
func New(styles []byte) *Document {
	return &Document{styles: styles}
}

// AddHeading appends a heading paragraph using the "Heading<level>" style.
// level is clamped to the supported range.
func (d *Document) AddHeading(text string, level int, align Alignment) {
	level = min(max(level, MinHeadingLevel), MaxHeadingLevel)
	p := newParagraph(text, align)
	p.Props.Style = &xmlVal{Val: fmt.Sprintf("Heading%d", level)}
	d.blocks = append(d.blocks, p)
}

// AddParagraph appends a body paragraph. An empty text yields a blank line.
func (d *Document) AddParagraph(text string, align Alignment) {
	d.blocks = append(d.blocks, newParagraph(text, align))
}

// AddPageBreak appends a paragraph holding a page break.
func (d *Document) AddPageBreak() {
	d.blocks = append(d.blocks, xmlParagraph{
		Runs: []xmlRun{{Break: &xmlBreak{Type: "page"}}},
	})
}

// AddTable appends t. Later changes to t are not reflected.
func (d *Document) AddTable(t *Table) {
	d.blocks = append(d.blocks, t.toXML())
}

// Write writes the document package to w.
func (d *Document) Write(w io.Writer) error {
	if len(d.styles) == 0 {
		return ErrMissingStyles
	}

	body, err := d.marshalBody()
	if err != nil {
		return err
	}

	parts := []struct {
		name string
		data []byte
	}{
		{contentTypesPath, []byte(contentTypesXML)},
		{rootRelsPath, []byte(rootRelsXML)},
		{documentPath, body},
		{stylesPath, d.styles},
		{documentRelsPath, []byte(documentRelsXML)},
	}

	zw := zip.NewWriter(w)
	for _, p := range parts {
		fw, err := zw.Create(p.name)
		if err != nil {
			_ = zw.Close()
			return fmt.Errorf("%w: creating %s: %v", ErrPackage, p.name, err)
		}
		if _, err := fw.Write(p.data); err != nil {
			_ = zw.Close()
			return fmt.Errorf("%w: writing %s: %v", ErrPackage, p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrPackage, err)
	}
	return nil
}

// Bytes returns the document package.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Document) marshalBody() ([]byte, error) {
	doc := xmlDocument{
		NamespaceW: namespaceW,
		Body: xmlBody{
			Blocks: d.blocks,
			Section: xmlSection{
				PageSize: xmlPageSize{W: pageWidth, H: pageHeight},
				Margins: xmlPageMargins{
					Top: marginTop, Right: marginRight, Bottom: marginBottom, Left: marginLeft,
					Header: headerMargin, Footer: footerMargin,
				},
			},
		},
	}

	out, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshal, err)
	}
	return append([]byte(xml.Header), out...), nil
}

// CellBorders overrides individual borders of a cell.
type CellBorders struct {
	Top    BorderStyle
	Left   BorderStyle
	Bottom BorderStyle
	Right  BorderStyle
}

// Cell is one table cell holding a single paragraph.
type Cell struct {
	Text    string
	Align   Alignment
	Fill    string // hex background, "" for none
	Borders *CellBorders
}

// Row is one table row.
type Row struct {
	Cells []*Cell
}

// Table is a grid of cells with a fixed column count.
type Table struct {
	Style string
	Align Alignment
	Rows  []*Row
	cols  int
}

// NewTable creates a table with rows x cols empty cells.
func NewTable(rows, cols int) *Table {
	t := &Table{cols: max(cols, 0)}
	for range rows {
		t.AddRow()
	}
	return t
}

// AddRow appends a row of empty cells and returns it.
func (t *Table) AddRow() *Row {
	row := &Row{Cells: make([]*Cell, t.cols)}
	for i := range row.Cells {
		row.Cells[i] = &Cell{}
	}
	t.Rows = append(t.Rows, row)
	return row
}

// Cols returns the column count.
func (t *Table) Cols() int {
	return t.cols
}

// Cell returns the cell at (row, col), or nil when out of range.
func (t *Table) Cell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= t.cols {
		return nil
	}
	return t.Rows[row].Cells[col]
}

func (t *Table) toXML() xmlTable {
	colWidth := 0
	if t.cols > 0 {
		colWidth = contentWidth / t.cols
	}

	tbl := xmlTable{
		Props: xmlTableProps{Width: xmlWidth{W: 0, Type: "auto"}},
	}
	if t.Style != "" {
		tbl.Props.Style = &xmlVal{Val: t.Style}
	}
	if t.Align != "" {
		tbl.Props.Justify = &xmlVal{Val: string(t.Align)}
	}
	for range t.cols {
		tbl.Grid.Cols = append(tbl.Grid.Cols, xmlGridCol{W: colWidth})
	}

	for _, row := range t.Rows {
		xr := xmlTableRow{}
		for _, cell := range row.Cells {
			xr.Cells = append(xr.Cells, cell.toXML(colWidth))
		}
		tbl.Rows = append(tbl.Rows, xr)
	}
	return tbl
}

func (c *Cell) toXML(width int) xmlTableCell {
	xc := xmlTableCell{
		Props:     xmlCellProps{Width: xmlWidth{W: width, Type: "dxa"}},
		Paragraph: newParagraph(c.Text, c.Align),
	}
	if c.Borders != nil {
		xc.Props.Borders = &xmlCellBorders{
			Top:    newBorder(c.Borders.Top),
			Left:   newBorder(c.Borders.Left),
			Bottom: newBorder(c.Borders.Bottom),
			Right:  newBorder(c.Borders.Right),
		}
	}
	if c.Fill != "" {
		xc.Props.Shading = &xmlShading{Val: "clear", Color: defaultBorder, Fill: c.Fill}
	}
	return xc
}

func newBorder(style BorderStyle) *xmlBorder {
	switch style {
	case "":
		return nil
	case BorderNone:
		return &xmlBorder{Val: string(BorderNone)}
	default:
		return &xmlBorder{Val: string(style), Size: borderSize, Color: defaultBorder}
	}
}

// newParagraph builds a paragraph; newlines in text become line breaks.
func newParagraph(text string, align Alignment) xmlParagraph {
	p := xmlParagraph{Props: &xmlParagraphProps{}}
	if align != "" {
		p.Props.Justify = &xmlVal{Val: string(align)}
	}
	if text == "" {
		return p
	}

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			p.Runs = append(p.Runs, xmlRun{Break: &xmlBreak{}})
		}
		p.Runs = append(p.Runs, xmlRun{Text: &xmlText{Space: "preserve", Value: line}})
	}
	return p
}
