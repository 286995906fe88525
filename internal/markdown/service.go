package markdown

import (
	"github.com/goliatone/go-filecms/pkg/interfaces"
)

// Rendered is a Markdown document converted to an HTML fragment.
type Rendered struct {
	Title string
	HTML  []byte
}

// Service converts document bodies, optionally splitting front matter first.
type Service struct {
	parser      interfaces.MarkdownParser
	frontMatter bool
}

// NewService wraps parser. When parser is nil a GoldmarkParser with opts is
// created.
func NewService(parser interfaces.MarkdownParser, opts interfaces.ParseOptions) *Service {
	if parser == nil {
		parser = NewGoldmarkParser(opts)
	}
	return &Service{parser: parser, frontMatter: opts.FrontMatter}
}

// Render converts source. With front matter enabled the leading metadata block
// is removed and its title reported; otherwise the source is converted as is.
func (s *Service) Render(source []byte) (Rendered, error) {
	var out Rendered
	body := source
	if s.frontMatter {
		var fm interfaces.FrontMatter
		fm, body = SplitFrontMatter(source)
		out.Title = fm.Title
	}

	html, err := s.parser.Parse(body)
	if err != nil {
		return Rendered{}, err
	}
	out.HTML = html
	return out, nil
}
