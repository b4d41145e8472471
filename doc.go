// Package simplex2docx converts HTML simplex-method reports into Word
// documents.
//
// A report is the HTML written by a simplex solver: iteration tables in
// which the pivot cell is highlighted, a final-answer table, and the
// objective function in running text. Each report becomes one .docx with
// the tables re-shaped into the labeled matrix form and the pivot shaded.
//
// # Quick Start
//
//	conv, err := simplex2docx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.ConvertFile(ctx, "parse_data/lab1.html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output_lab1.docx", result.DOCX, 0o644)
//
// # Pipeline
//
//  1. Extraction: tables holding a cell filled with the source color
//     (FFA0A0), the table introduced by a final-answer phrase, and the
//     integer coefficients of the objective function.
//  2. Transformation: each table gains a coefficient header ("C", "-", ...),
//     a variable header ("B", "A0", ...) and a leading column holding the
//     coefficient of each basis variable. The highlighted cell is located
//     again in the new coordinates.
//  3. Rendering: a heading per report, a numbered heading per table, and
//     the tables with the pivot cell shaded (FFFF00).
//
// Transform and its helpers are pure functions and can be used on their own.
//
// # Configuration
//
//	conv, err := simplex2docx.NewConverter(
//	    simplex2docx.WithMarkers(simplex2docx.Markers{
//	        Objective:   []string{"objective function F(X) ="},
//	        Constraints: []string{"subject to the following"},
//	        Final:       []string{"Final"},
//	    }),
//	    simplex2docx.WithStyle("gost"),
//	    simplex2docx.WithLogger(logger),
//	)
//
// # Custom Style Sheets
//
// Documents take their styles from a word/styles.xml part. Built-in sheets
// are "default" and "gost". Override or add sheets with an asset directory:
//
//	assets/
//	└── styles/
//	    └── custom.xml
//
// A sheet must define the Heading1, Heading2 and TableGrid styles.
//
// # Error Handling
//
// Errors wrap the sentinels declared in errors.go; match them with
// errors.Is:
//
//	if errors.Is(err, simplex2docx.ErrStyleNotFound) {
//	    // unknown style name
//	}
package simplex2docx
