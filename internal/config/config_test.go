package config

// Notes:
// - The user config directory branch of SearchPaths depends on HOME /
//   XDG_CONFIG_HOME; tests only check it is searched after the local files.
// - os.ReadFile failures other than not-exist (permissions) are not tested:
//   they depend on the test runner's privileges.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestDefaultConfig - Nothing set
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff(&Config{}, DefaultConfig()); diff != "" {
		t.Errorf("DefaultConfig() mismatch (-want +got):\n%s", diff)
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestValidateFieldLength - Length limits
// ---------------------------------------------------------------------------

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fieldName string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "test", "", 10, false},
		{"value at limit is valid", "test", "1234567890", 10, false},
		{"value under limit is valid", "test", "12345", 10, false},
		{"value over limit returns error", "test.field", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength(tt.fieldName, tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Field rules
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "fully populated config is valid",
			cfg: Config{
				Input:  InputConfig{Dir: "parse_data"},
				Output: OutputConfig{Dir: "output_data", Prefix: "output_"},
				Markers: MarkersConfig{
					Objective:   []string{"целевой функции F(X) ="},
					Constraints: []string{"при следующих"},
					Final:       []string{"Окончательный"},
				},
				Highlight: HighlightConfig{SourceFill: "FFA0A0", ExcludeHeader: "min", OutputFill: "#ffff00"},
				Document: DocumentConfig{
					FileHeading:  "Данные из файла %s",
					TableHeading: "Таблица %d",
					Style:        "gost",
				},
				Assets: AssetsConfig{BasePath: "/srv/assets"},
			},
			wantErr: nil,
		},
		{
			name:    "input.dir too long",
			cfg:     Config{Input: InputConfig{Dir: strings.Repeat("a", MaxPathLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "output.prefix too long",
			cfg:     Config{Output: OutputConfig{Prefix: strings.Repeat("p", MaxPrefixLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "output.prefix with separator",
			cfg:     Config{Output: OutputConfig{Prefix: "../out_"}},
			wantErr: ErrInvalidField,
		},
		{
			name:    "blank marker phrase",
			cfg:     Config{Markers: MarkersConfig{Final: []string{"Final", "  "}}},
			wantErr: ErrInvalidField,
		},
		{
			name:    "marker phrase too long",
			cfg:     Config{Markers: MarkersConfig{Objective: []string{strings.Repeat("x", MaxPhraseLength+1)}}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "too many marker phrases",
			cfg:     Config{Markers: MarkersConfig{Constraints: make([]string, MaxPhrases+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "source fill not hex",
			cfg:     Config{Highlight: HighlightConfig{SourceFill: "red"}},
			wantErr: ErrInvalidField,
		},
		{
			name:    "output fill wrong length",
			cfg:     Config{Highlight: HighlightConfig{OutputFill: "FFF"}},
			wantErr: ErrInvalidField,
		},
		{
			name:    "file heading without verb",
			cfg:     Config{Document: DocumentConfig{FileHeading: "Data from file"}},
			wantErr: ErrInvalidField,
		},
		{
			name:    "table heading with wrong verb",
			cfg:     Config{Document: DocumentConfig{TableHeading: "Table %s"}},
			wantErr: ErrInvalidField,
		},
		{
			name:    "heading with two verbs",
			cfg:     Config{Document: DocumentConfig{FileHeading: "%s and %s"}},
			wantErr: ErrInvalidField,
		},
		{
			name:    "escaped percent is allowed",
			cfg:     Config{Document: DocumentConfig{TableHeading: "Table %d (100%%)"}},
			wantErr: nil,
		},
		{
			name:    "style with extension",
			cfg:     Config{Document: DocumentConfig{Style: "gost.xml"}},
			wantErr: ErrInvalidField,
		},
		{
			name:    "style too long",
			cfg:     Config{Document: DocumentConfig{Style: strings.Repeat("s", MaxStyleLength+1)}},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File loading
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		t.Parallel()

		content := `input:
  dir: reports
output:
  dir: docs
  prefix: "simplex_"
markers:
  objective: ["целевой функции F(X) ="]
  constraints: ["при следующих"]
  final: ["Окончательный", "Final"]
highlight:
  sourceFill: ffa0a0
  excludeHeader: min
  outputFill: "#FFFF00"
document:
  fileHeading: "Данные из файла %s"
  tableHeading: "Таблица %d"
  style: gost
assets:
  basePath: ""
`
		path := writeConfig(t, t.TempDir(), "simplex.yaml", content)

		got, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		want := &Config{
			Input:  InputConfig{Dir: "reports"},
			Output: OutputConfig{Dir: "docs", Prefix: "simplex_"},
			Markers: MarkersConfig{
				Objective:   []string{"целевой функции F(X) ="},
				Constraints: []string{"при следующих"},
				Final:       []string{"Окончательный", "Final"},
			},
			Highlight: HighlightConfig{SourceFill: "ffa0a0", ExcludeHeader: "min", OutputFill: "#FFFF00"},
			Document: DocumentConfig{
				FileHeading:  "Данные из файла %s",
				TableHeading: "Таблица %d",
				Style:        "gost",
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("partial config leaves other fields unset", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "partial.yaml", "output:\n  dir: out\n")

		got, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		want := &Config{Output: OutputConfig{Dir: "out"}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown name returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("no-such-config-abc123xyz")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
		if err != nil && !strings.Contains(err.Error(), "no-such-config-abc123xyz.yaml") {
			t.Errorf("error %q should list the tried paths", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "invalid.yaml", "input: [unclosed")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "unknown.yaml", "output:\n  dir: out\n  format: pdf\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("empty file returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "empty.yaml", "\n  \n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("oversized file returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		content := "# " + strings.Repeat("x", MaxFileSize) + "\n"
		path := writeConfig(t, t.TempDir(), "big.yaml", content)

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("validation runs after decoding", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "badfill.yaml", "highlight:\n  outputFill: yellow\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidField) {
			t.Errorf("error = %v, want ErrInvalidField", err)
		}
	})
}

// Not parallel: changes the working directory.
func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "lab.yml", "input:\n  dir: lab_reports\n")
	t.Chdir(dir)

	cfg, err := LoadConfig("lab")
	if err != nil {
		t.Fatalf("LoadConfig(\"lab\") error = %v", err)
	}
	if cfg.Input.Dir != "lab_reports" {
		t.Errorf("Input.Dir = %q, want %q", cfg.Input.Dir, "lab_reports")
	}
}

// ---------------------------------------------------------------------------
// TestSearchPaths - Lookup order
// ---------------------------------------------------------------------------

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("simplex")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least the two local candidates", paths)
	}
	if diff := cmp.Diff([]string{"simplex.yaml", "simplex.yml"}, paths[:2]); diff != "" {
		t.Errorf("local candidates mismatch (-want +got):\n%s", diff)
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, AppDirName) {
			t.Errorf("user candidate %q not under %s", p, AppDirName)
		}
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}
