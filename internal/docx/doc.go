// Package docx writes minimal WordprocessingML (.docx) packages.
//
// It covers exactly what the report documents need: headings, plain
// paragraphs, page breaks, and tables with per-cell alignment, borders and
// shading. The style sheet (word/styles.xml) is supplied by the caller so
// it can be overridden without touching the writer.
//
// # Package Layout
//
// A written document is an OPC zip archive with these parts:
//
//	[Content_Types].xml
//	_rels/.rels
//	word/document.xml
//	word/styles.xml
//	word/_rels/document.xml.rels
//
// Element structs use literal "w:" prefixed names, so encoding/xml emits
// the prefixes verbatim; the namespace is declared once on w:document.
package docx
