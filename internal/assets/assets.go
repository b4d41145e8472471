package assets

import "strings"

// DefaultStyleName is the name of the built-in style sheet.
const DefaultStyleName = "default"

// styleExtension is the file extension of style sheets, without the dot.
const styleExtension = "xml"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in style sheet by name using the embedded loader.
// The name should not include the .xml extension or path components.
// Returns ErrStyleNotFound if the sheet does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) ([]byte, error) {
	return defaultLoader.LoadStyle(name)
}

// AvailableStyles returns the names of the built-in style sheets, sorted.
func AvailableStyles() []string {
	entries, err := styles.ReadDir("styles")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), "."+styleExtension); ok {
			names = append(names, name)
		}
	}
	return names
}
