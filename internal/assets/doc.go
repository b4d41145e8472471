// Package assets provides the Word style sheets used for generated documents.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in sheets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in sheets ("default" and "gost")
// embedded at compile time.
//
// FilesystemLoader allows users to provide custom sheets from a directory,
// with path traversal protection and symlink resolution.
//
// AssetResolver is the loader used by the converter. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the sheet is not
// found. This enables overriding one sheet while keeping the others.
//
// # Directory Structure
//
//	{basePath}/
//	└── styles/
//	    └── {name}.xml           # word/styles.xml part (e.g., gost.xml)
//
// A sheet must define the paragraph styles Normal, Heading1 and Heading2
// and the table style TableGrid; the document writer references them by id.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
