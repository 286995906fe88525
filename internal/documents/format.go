package documents

import "path/filepath"

// Format is the closed set of document formats, derived from the file
// extension alone.
type Format int

const (
	FormatUnknown Format = iota
	FormatPlainText
	FormatMarkdown
)

const (
	ExtPlainText = ".txt"
	ExtMarkdown  = ".md"
)

// FormatOf classifies a document name. Matching is case sensitive and a
// leading dot alone (".md") is not an extension.
func FormatOf(name string) Format {
	switch Extension(name) {
	case ExtPlainText:
		return FormatPlainText
	case ExtMarkdown:
		return FormatMarkdown
	default:
		return FormatUnknown
	}
}

// Extension returns the extension of name including the dot, or "" when the
// name has none.
func Extension(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return ext
}

func (f Format) String() string {
	switch f {
	case FormatPlainText:
		return "text"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}
