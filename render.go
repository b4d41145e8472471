package simplex2docx

import (
	"fmt"

	"github.com/alnah/go-simplex2docx/internal/docx"
	"github.com/alnah/go-simplex2docx/internal/fileutil"
)

// TableStyle is the style id applied to every rendered table.
// Style sheets loaded through a StyleLoader must define it.
const TableStyle = "TableGrid"

// Heading levels used in documents.
const (
	fileHeadingLevel  = 1
	tableHeadingLevel = 2
)

// firstColumnBorders hides the leading column's outer frame, keeping the
// rule that separates it from the data.
var firstColumnBorders = docx.CellBorders{
	Top:    docx.BorderNone,
	Left:   docx.BorderNone,
	Bottom: docx.BorderNone,
	Right:  docx.BorderSingle,
}

// Renderer lays out transformed tables as a Word document.
type Renderer struct {
	styles     []byte
	outputFill string
	headings   Headings
}

// NewRenderer creates a Renderer. styles is the word/styles.xml part;
// outputFill is the hex shading of mark cells.
func NewRenderer(styles []byte, outputFill string, headings Headings) (*Renderer, error) {
	if len(styles) == 0 {
		return nil, fmt.Errorf("%w: empty style sheet", ErrDocumentRender)
	}
	if !hexFill.MatchString(outputFill) {
		return nil, fmt.Errorf("%w: output fill %q", ErrInvalidFill, outputFill)
	}
	if err := headings.Validate(); err != nil {
		return nil, err
	}

	return &Renderer{
		styles:     styles,
		outputFill: normalizeFill(outputFill),
		headings:   headings,
	}, nil
}

// NewSection builds the section for one report, formatting its heading.
func (r *Renderer) NewSection(name string, tables []TableResult) Section {
	return Section{
		Heading: fmt.Sprintf(r.headings.File, name),
		Tables:  tables,
	}
}

// Render lays out sections and returns the .docx package.
// Each section gets a centered level-1 heading; each table a centered
// level-2 "Table N" heading, the table, and a blank paragraph. A page
// break closes every section.
func (r *Renderer) Render(sections []Section) ([]byte, error) {
	doc := docx.New(r.styles)

	for _, section := range sections {
		doc.AddHeading(section.Heading, fileHeadingLevel, docx.AlignCenter)

		for i, result := range section.Tables {
			doc.AddHeading(fmt.Sprintf(r.headings.Table, i+1), tableHeadingLevel, docx.AlignCenter)
			if tbl := r.buildTable(result); tbl != nil {
				doc.AddTable(tbl)
			}
			doc.AddParagraph("", "")
		}

		doc.AddPageBreak()
	}

	data, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return data, nil
}

// WriteDocument renders sections and writes the package to path.
// The file is replaced atomically.
func (r *Renderer) WriteDocument(path string, sections []Section) error {
	data, err := r.Render(sections)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	return nil
}

// buildTable converts one matrix. The column count is the width of row 0;
// cells past it overwrite the row's last cell. Returns nil for an empty
// matrix.
func (r *Renderer) buildTable(result TableResult) *docx.Table {
	cols := result.Matrix.Width()
	if cols == 0 {
		return nil
	}

	tbl := docx.NewTable(result.Matrix.Height(), cols)
	tbl.Style = TableStyle
	tbl.Align = docx.AlignCenter

	for i, row := range result.Matrix {
		for j, value := range row {
			cell := tbl.Cell(i, min(j, cols-1))
			cell.Text = value
			cell.Align = columnAlignment(j)
		}
		tbl.Cell(i, 0).Borders = &firstColumnBorders
	}

	if mark := result.Mark; mark != nil {
		if cell := tbl.Cell(mark.Row, mark.Col); cell != nil {
			cell.Fill = r.outputFill
		}
	}

	return tbl
}

func columnAlignment(col int) docx.Alignment {
	if col == 0 {
		return docx.AlignRight
	}
	return docx.AlignCenter
}
