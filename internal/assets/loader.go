package assets

// StyleLoader defines the contract for loading Word style sheets.
type StyleLoader interface {
	// LoadStyle loads a style sheet by name (without .xml extension).
	// Returns ErrStyleNotFound if the sheet doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	// Returns ErrInvalidStyleSheet if the content is not a styles part.
	LoadStyle(name string) ([]byte, error)
}
