package interfaces

// MarkdownParser converts raw Markdown bytes into HTML.
type MarkdownParser interface {
	Parse(markdown []byte) ([]byte, error)
}

// ParseOptions customises Markdown parsing. An empty Extensions list means
// plain CommonMark: headings, emphasis, lists and links only.
type ParseOptions struct {
	Extensions    []string
	HardWraps     bool
	Unsafe        bool
	AutoHeadingID bool
	// FrontMatter strips a leading metadata block and uses its title for the
	// page. When false the block is converted like any other Markdown.
	FrontMatter bool
}

// FrontMatter holds the optional metadata block at the top of a Markdown
// document. Only Title is interpreted; everything else is kept in Raw.
type FrontMatter struct {
	Title string         `yaml:"title" json:"title"`
	Raw   map[string]any `yaml:"-" json:"raw"`
}
