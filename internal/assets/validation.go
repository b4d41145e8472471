package assets

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// ValidateStyleSheet checks that content is well-formed XML whose root
// element is w:styles.
func ValidateStyleSheet(content []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(content))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: no root element", ErrInvalidStyleSheet)
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStyleSheet, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "styles" {
			return fmt.Errorf("%w: root element is %q, want \"styles\"", ErrInvalidStyleSheet, start.Name.Local)
		}
		break
	}

	// Read to the end so truncated sheets are rejected.
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStyleSheet, err)
		}
	}
}
