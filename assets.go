package simplex2docx

import (
	"errors"

	"github.com/alnah/go-simplex2docx/internal/assets"
)

// DefaultStyle is the name of the built-in Word style sheet.
const DefaultStyle = "default"

// StyleLoader defines the contract for loading Word style sheets
// (the word/styles.xml part). Implementations may load from the filesystem,
// embedded assets, S3, a database, etc.
//
// The library provides NewStyleLoader() for filesystem-based loading with
// fallback to embedded sheets. Implement this interface for custom backends.
type StyleLoader interface {
	// LoadStyle loads a style sheet by name (without .xml extension).
	// Returns ErrStyleNotFound if the sheet doesn't exist.
	LoadStyle(name string) ([]byte, error)
}

// NewStyleLoader creates a StyleLoader for the given base path.
// If basePath is empty, returns a loader using only embedded sheets.
// If basePath is set, sheets in {basePath}/styles/{name}.xml take precedence
// with fallback to embedded.
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewStyleLoader(basePath string) (StyleLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &styleLoaderAdapter{resolver: resolver}, nil
}

// AvailableStyles returns the names of the built-in style sheets.
func AvailableStyles() []string {
	return assets.AvailableStyles()
}

// styleLoaderAdapter wraps internal AssetResolver to return public errors.
type styleLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *styleLoaderAdapter) LoadStyle(name string) ([]byte, error) {
	content, err := a.resolver.LoadStyle(name)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return content, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrStyleNotFound):
		return wrapError(ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrInvalidStyleSheet):
		return wrapError(ErrInvalidStyleSheet, err)
	case errors.Is(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrStyleNotFound, err) // Invalid name means not found
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
