package assets

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		styleName string
		wantErr   error
	}{
		{
			name:      "default style returns content",
			styleName: DefaultStyleName,
			wantErr:   nil,
		},
		{
			name:      "gost style returns content",
			styleName: "gost",
			wantErr:   nil,
		},
		{
			name:      "nonexistent style returns ErrStyleNotFound",
			styleName: "nonexistent",
			wantErr:   ErrStyleNotFound,
		},
		{
			name:      "empty name returns ErrInvalidAssetName",
			styleName: "",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "path traversal returns ErrInvalidAssetName",
			styleName: "../secret",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "name with extension returns ErrInvalidAssetName",
			styleName: "default.xml",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "valid name with hyphen",
			styleName: "my-style",
			wantErr:   ErrStyleNotFound, // valid name but doesn't exist
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content, err := LoadStyle(tt.styleName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if len(content) == 0 {
				t.Errorf("LoadStyle(%q) returned empty content", tt.styleName)
			}
		})
	}
}

// Every built-in sheet must define the style ids the document writer uses.
func TestLoadStyle_BuiltinSheetsComplete(t *testing.T) {
	t.Parallel()

	required := []string{
		`w:styleId="Normal"`,
		`w:styleId="Heading1"`,
		`w:styleId="Heading2"`,
		`w:styleId="TableGrid"`,
	}

	for _, name := range []string{DefaultStyleName, "gost"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			content, err := LoadStyle(name)
			if err != nil {
				t.Fatalf("LoadStyle(%q) error = %v", name, err)
			}
			if err := ValidateStyleSheet(content); err != nil {
				t.Errorf("ValidateStyleSheet(%q) error = %v", name, err)
			}
			for _, id := range required {
				if !strings.Contains(string(content), id) {
					t.Errorf("sheet %q missing %s", name, id)
				}
			}
		})
	}
}

func TestAvailableStyles(t *testing.T) {
	t.Parallel()

	want := []string{"default", "gost"}
	if diff := cmp.Diff(want, AvailableStyles()); diff != "" {
		t.Errorf("AvailableStyles() mismatch (-want +got):\n%s", diff)
	}
}
