package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: simplex2docx [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert HTML simplex-method reports into Word documents.")
	fmt.Fprintln(w, "Each <name>.html in the input folder becomes <prefix><name>.docx.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintf(w, "  -i, --input <dir>         Report folder (default: %s)\n", defaultInputDir)
	fmt.Fprintf(w, "  -o, --output <dir>        Document folder (default: %s)\n", defaultOutputDir)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -n, --dry-run             Parse and transform, write nothing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "  -s, --style <name>        Style sheet: default, gost, or a custom name")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timings")
	fmt.Fprintln(w, "      --version             Print version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config lookup for --config <name>:")
	fmt.Fprintln(w, "  ./<name>.yaml, ./<name>.yml, then <user config dir>/go-simplex2docx/")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Precedence: flags > config file > built-in defaults.")
}
