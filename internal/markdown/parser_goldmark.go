package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-filecms/pkg/interfaces"
)

// GoldmarkParser renders document bodies with goldmark. The engine for the
// default options is built once and shared across requests.
type GoldmarkParser struct {
	engine goldmark.Markdown
}

var _ interfaces.MarkdownParser = (*GoldmarkParser)(nil)

// NewGoldmarkParser builds the parser. Zero options give plain CommonMark with
// raw HTML replaced by an omission comment.
func NewGoldmarkParser(defaults interfaces.ParseOptions) *GoldmarkParser {
	return &GoldmarkParser{engine: goldmark.New(engineOptions(defaults)...)}
}

func (p *GoldmarkParser) Parse(source []byte) ([]byte, error) {
	return convert(p.engine, source)
}

func convert(engine goldmark.Markdown, source []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := engine.Convert(source, &out); err != nil {
		return nil, fmt.Errorf("markdown: convert: %w", err)
	}
	return out.Bytes(), nil
}

func engineOptions(opts interfaces.ParseOptions) []goldmark.Option {
	var options []goldmark.Option
	if opts.AutoHeadingID {
		options = append(options, goldmark.WithParserOptions(parser.WithAutoHeadingID()))
	}

	var rendering []renderer.Option
	if opts.HardWraps {
		rendering = append(rendering, html.WithHardWraps())
	}
	if opts.Unsafe {
		rendering = append(rendering, html.WithUnsafe())
	}
	if len(rendering) > 0 {
		options = append(options, goldmark.WithRendererOptions(rendering...))
	}

	if extenders := resolveExtensions(opts.Extensions); len(extenders) > 0 {
		options = append(options, goldmark.WithExtensions(extenders...))
	}
	return options
}

var extensions = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

func extensionKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// KnownExtension reports whether name selects a goldmark extension.
func KnownExtension(name string) bool {
	_, ok := extensions[extensionKey(name)]
	return ok
}

// resolveExtensions drops unknown and repeated names, keeping first-seen order.
func resolveExtensions(names []string) []goldmark.Extender {
	seen := make(map[string]bool, len(names))
	var out []goldmark.Extender
	for _, name := range names {
		key := extensionKey(name)
		ext, ok := extensions[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ext)
	}
	return out
}
