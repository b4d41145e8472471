package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		quiet     bool
		verbose   bool
		wantDebug bool
		wantInfo  bool
		wantError bool
	}{
		{"default", false, false, false, true, true},
		{"verbose", false, true, true, true, true},
		{"quiet", true, false, false, false, true},
		{"quiet wins over verbose", true, true, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := newLogger(&buf, tt.quiet, tt.verbose)
			logger.Debug("debug-line")
			logger.Info("info-line")
			logger.Error("error-line")
			_ = logger.Sync()

			out := buf.String()
			checks := []struct {
				msg  string
				want bool
			}{
				{"debug-line", tt.wantDebug},
				{"info-line", tt.wantInfo},
				{"error-line", tt.wantError},
			}
			for _, c := range checks {
				if got := strings.Contains(out, c.msg); got != c.want {
					t.Errorf("output contains %q = %v, want %v\noutput: %s", c.msg, got, c.want, out)
				}
			}
		})
	}
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(&buf, false, false)
	logger.Warn("no tables")
	_ = logger.Sync()

	out := buf.String()
	if !strings.HasPrefix(out, "WARN\tno tables") {
		t.Errorf("output = %q, want console line starting with level", out)
	}
}
