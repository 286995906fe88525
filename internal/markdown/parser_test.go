package markdown

import (
	"strings"
	"testing"

	"github.com/goliatone/go-filecms/pkg/interfaces"
)

func TestParseFrontMatter(t *testing.T) {
	source := []byte("---\ntitle: About Ruby\ntags: [lang]\n---\n# Ruby is...\n")

	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Title != "About Ruby" {
		t.Fatalf("FrontMatter Title mismatch, got %q", fm.Title)
	}
	if _, ok := fm.Raw["tags"]; !ok {
		t.Fatalf("expected raw tags, got %#v", fm.Raw)
	}
	if strings.Contains(string(body), "title:") || !strings.Contains(string(body), "# Ruby is...") {
		t.Fatalf("Markdown body not returned correctly: %q", string(body))
	}
}

func TestParseFrontMatterWithoutBlock(t *testing.T) {
	source := []byte("# Ruby is...")

	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Title != "" {
		t.Fatalf("expected empty title, got %q", fm.Title)
	}
	if string(body) != string(source) {
		t.Fatalf("expected body unchanged, got %q", body)
	}
}

func TestSplitFrontMatterToleratesMalformedBlock(t *testing.T) {
	source := []byte("---\ntitle: [unterminated\n---\nbody\n")

	fm, body := SplitFrontMatter(source)
	if fm.Title != "" {
		t.Fatalf("expected no title, got %q", fm.Title)
	}
	if string(body) != string(source) {
		t.Fatalf("expected whole source back, got %q", body)
	}
}

func TestGoldmarkParser_Parse(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Ruby is...\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1>Ruby is...</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Ruby is...</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestGoldmarkParser_SuppressesRawHTMLByDefault(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("<script>alert(1)</script>\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Fatalf("expected raw HTML to be omitted, got %q", html)
	}

	html, err = NewGoldmarkParser(interfaces.ParseOptions{Unsafe: true}).Parse([]byte("<script>alert(1)</script>\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(html), "<script>") {
		t.Fatalf("expected raw HTML with Unsafe, got %q", html)
	}
}

func TestGoldmarkParser_RendererOptions(t *testing.T) {
	html, err := NewGoldmarkParser(interfaces.ParseOptions{HardWraps: true}).Parse([]byte("line one\nline two"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}

	html, err = NewGoldmarkParser(interfaces.ParseOptions{AutoHeadingID: true}).Parse([]byte("# Title"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(html), `<h1 id="title">`) {
		t.Fatalf("expected heading id, got %q", html)
	}
}

func TestGoldmarkParser_Extensions(t *testing.T) {
	source := []byte("~~gone~~")

	plain, err := NewGoldmarkParser(interfaces.ParseOptions{}).Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if strings.Contains(string(plain), "<del>") {
		t.Fatalf("expected no strikethrough without extensions, got %q", plain)
	}

	extended, err := NewGoldmarkParser(interfaces.ParseOptions{Extensions: []string{" Strikethrough ", "unknown"}}).Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(extended), "<del>gone</del>") {
		t.Fatalf("expected strikethrough extension, got %q", extended)
	}

	if !KnownExtension("GFM") || KnownExtension("mermaid") {
		t.Fatal("unexpected KnownExtension result")
	}
}
