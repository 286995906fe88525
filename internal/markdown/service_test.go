package markdown

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-filecms/pkg/interfaces"
)

func TestServiceRenderKeepsLeadingBlockByDefault(t *testing.T) {
	svc := NewService(nil, interfaces.ParseOptions{})

	out, err := svc.Render([]byte("---\nauthor: me\n---\n# Title\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out.HTML)
	if !strings.Contains(html, "<hr>") || !strings.Contains(html, "author: me") {
		t.Fatalf("expected the leading block to be converted, got %q", html)
	}
	if !strings.Contains(html, "<h1>Title</h1>") {
		t.Fatalf("unexpected HTML %q", html)
	}
	if out.Title != "" {
		t.Fatalf("expected no title, got %q", out.Title)
	}
}

func TestServiceRenderSplitsFrontMatterWhenEnabled(t *testing.T) {
	svc := NewService(nil, interfaces.ParseOptions{FrontMatter: true})

	out, err := svc.Render([]byte("---\ntitle: Changes\n---\n# Heading\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out.Title != "Changes" {
		t.Fatalf("expected title Changes, got %q", out.Title)
	}
	if !strings.Contains(string(out.HTML), "<h1>Heading</h1>") {
		t.Fatalf("unexpected HTML %q", out.HTML)
	}
	if strings.Contains(string(out.HTML), "title:") {
		t.Fatalf("front matter leaked into HTML: %q", out.HTML)
	}
}

func TestServiceRenderPropagatesParserError(t *testing.T) {
	svc := NewService(failingParser{}, interfaces.ParseOptions{})

	if _, err := svc.Render([]byte("# x")); !errors.Is(err, errParse) {
		t.Fatalf("expected parser error, got %v", err)
	}
}

var errParse = errors.New("boom")

type failingParser struct{}

func (failingParser) Parse([]byte) ([]byte, error) { return nil, errParse }
