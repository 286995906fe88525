package render

import (
	"bytes"
	"errors"
	"html/template"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-filecms/internal/documents"
	"github.com/goliatone/go-filecms/internal/markdown"
)

const (
	ContentTypeHTML  = "text/html; charset=utf-8"
	ContentTypePlain = "text/plain; charset=utf-8"
)

// ErrUnsupportedFormat is returned for documents whose extension has no
// renderer.
var ErrUnsupportedFormat = errors.New("render: unsupported document format")

// Output is a rendered document ready to be written to a response.
type Output struct {
	Body        []byte
	ContentType string
}

// Renderer turns stored document content into a response body according to
// the document format.
type Renderer struct {
	markdown *markdown.Service
	page     *template.Template
}

// New returns a Renderer that converts Markdown through svc. A nil svc uses
// the default goldmark configuration.
func New(svc *markdown.Service) *Renderer {
	if svc == nil {
		svc = markdown.NewService(nil, markdownDefaults)
	}
	return &Renderer{
		markdown: svc,
		page:     template.Must(template.New("document").Parse(documentPage)),
	}
}

// Render dispatches on the format of name.
func (r *Renderer) Render(name string, content []byte) (Output, error) {
	format := documents.FormatOf(name)
	switch format {
	case documents.FormatPlainText:
		return Output{Body: content, ContentType: ContentTypePlain}, nil
	case documents.FormatMarkdown:
		return r.renderMarkdown(name, content)
	case documents.FormatUnknown:
		return Output{}, unsupported(name)
	default:
		return Output{}, unsupported(name)
	}
}

func (r *Renderer) renderMarkdown(name string, content []byte) (Output, error) {
	rendered, err := r.markdown.Render(content)
	if err != nil {
		return Output{}, goerrors.Wrap(err, goerrors.CategoryInternal, "markdown render failed").
			WithMetadata(map[string]any{"document": name})
	}

	title := rendered.Title
	if title == "" {
		title = name
	}

	var buf bytes.Buffer
	err = r.page.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{
		Title: title,
		Body:  template.HTML(rendered.HTML),
	})
	if err != nil {
		return Output{}, goerrors.Wrap(err, goerrors.CategoryInternal, "document page render failed")
	}
	return Output{Body: buf.Bytes(), ContentType: ContentTypeHTML}, nil
}

func unsupported(name string) error {
	return goerrors.Wrap(ErrUnsupportedFormat, goerrors.CategoryInternal, "no renderer for "+name).
		WithTextCode("DOCUMENT_FORMAT_UNSUPPORTED").
		WithMetadata(map[string]any{"document": name, "extension": documents.Extension(name)})
}
