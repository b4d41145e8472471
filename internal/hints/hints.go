// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-simplex2docx/internal/fileutil"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path, or creating a config in the user config dir.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-simplex2docx/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForNoReports returns hints when an input folder holds no .html reports.
// Points out near-miss extensions (.htm, .HTML) found in dir.
func ForNoReports(dir string) string {
	var hints []string

	for _, ext := range []string{"htm", "HTML", "HTM"} {
		files, err := fileutil.ListFiles(dir, ext)
		if err == nil && len(files) > 0 {
			hints = append(hints, "rename ."+ext+" files to .html")
			break
		}
	}
	hints = append(hints, "use --input to read another folder")

	return formatHints(hints)
}

// ForNoMarkedTables returns a hint when a report has no table with the
// source highlight color.
func ForNoMarkedTables(sourceFill string) string {
	return format("no cell has bgcolor " + sourceFill + "; set highlight.sourceFill in the config")
}

// ForNoCoefficients returns a hint when the objective function was not found.
func ForNoCoefficients() string {
	return format("objective phrase not found; set markers.objective and markers.constraints in the config")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
