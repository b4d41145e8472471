package docx

import "encoding/xml"

const namespaceW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Package part names.
const (
	contentTypesPath = "[Content_Types].xml"
	rootRelsPath     = "_rels/.rels"
	documentPath     = "word/document.xml"
	stylesPath       = "word/styles.xml"
	documentRelsPath = "word/_rels/document.xml.rels"
)

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const rootRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

// Child element order inside each *Props struct follows the schema
// sequence; Word rejects out-of-order properties.

type xmlDocument struct {
	XMLName    xml.Name `xml:"w:document"`
	NamespaceW string   `xml:"xmlns:w,attr"`
	Body       xmlBody  `xml:"w:body"`
}

type xmlBody struct {
	Blocks  []any      // xmlParagraph or xmlTable
	Section xmlSection `xml:"w:sectPr"`
}

type xmlSection struct {
	PageSize xmlPageSize    `xml:"w:pgSz"`
	Margins  xmlPageMargins `xml:"w:pgMar"`
}

type xmlPageSize struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type xmlPageMargins struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
}

type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

type xmlWidth struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type xmlParagraph struct {
	XMLName xml.Name           `xml:"w:p"`
	Props   *xmlParagraphProps `xml:"w:pPr,omitempty"`
	Runs    []xmlRun
}

type xmlParagraphProps struct {
	Style   *xmlVal `xml:"w:pStyle,omitempty"`
	Justify *xmlVal `xml:"w:jc,omitempty"`
}

type xmlRun struct {
	XMLName xml.Name  `xml:"w:r"`
	Break   *xmlBreak `xml:"w:br,omitempty"`
	Text    *xmlText  `xml:"w:t,omitempty"`
}

type xmlBreak struct {
	Type string `xml:"w:type,attr,omitempty"`
}

type xmlText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

type xmlTable struct {
	XMLName xml.Name      `xml:"w:tbl"`
	Props   xmlTableProps `xml:"w:tblPr"`
	Grid    xmlTableGrid  `xml:"w:tblGrid"`
	Rows    []xmlTableRow `xml:"w:tr"`
}

type xmlTableProps struct {
	Style   *xmlVal  `xml:"w:tblStyle,omitempty"`
	Width   xmlWidth `xml:"w:tblW"`
	Justify *xmlVal  `xml:"w:jc,omitempty"`
}

type xmlTableGrid struct {
	Cols []xmlGridCol `xml:"w:gridCol"`
}

type xmlGridCol struct {
	W int `xml:"w:w,attr"`
}

type xmlTableRow struct {
	Cells []xmlTableCell `xml:"w:tc"`
}

type xmlTableCell struct {
	Props     xmlCellProps `xml:"w:tcPr"`
	Paragraph xmlParagraph
}

type xmlCellProps struct {
	Width   xmlWidth        `xml:"w:tcW"`
	Borders *xmlCellBorders `xml:"w:tcBorders,omitempty"`
	Shading *xmlShading     `xml:"w:shd,omitempty"`
}

type xmlCellBorders struct {
	Top    *xmlBorder `xml:"w:top,omitempty"`
	Left   *xmlBorder `xml:"w:left,omitempty"`
	Bottom *xmlBorder `xml:"w:bottom,omitempty"`
	Right  *xmlBorder `xml:"w:right,omitempty"`
}

type xmlBorder struct {
	Val   string `xml:"w:val,attr"`
	Size  int    `xml:"w:sz,attr,omitempty"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr,omitempty"`
}

type xmlShading struct {
	Val   string `xml:"w:val,attr"`
	Color string `xml:"w:color,attr"`
	Fill  string `xml:"w:fill,attr"`
}
