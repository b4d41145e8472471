package simplex2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrHTMLParse      = errors.New("HTML parsing failed")
	ErrReadReport     = errors.New("failed to read report file")
	ErrDocumentRender = errors.New("document rendering failed")
	ErrWriteDocument  = errors.New("failed to write document")

	// Settings validation errors.
	ErrInvalidMarkers = errors.New("invalid marker phrases")
	ErrInvalidFill    = errors.New("invalid fill color")
	ErrInvalidHeading = errors.New("invalid heading format")

	// Asset errors.
	ErrStyleNotFound     = errors.New("style not found")
	ErrInvalidStyleSheet = errors.New("invalid style sheet")
	ErrInvalidAssetPath  = errors.New("invalid asset path")
)
