package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-filecms/pkg/interfaces"
)

// ParseFrontMatter splits an optional YAML, TOML or JSON metadata block from
// the Markdown body. Sources without a block return an empty FrontMatter and
// the source unchanged.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	raw := map[string]any{}

	body, err := frontmatter.Parse(bytes.NewReader(source), &raw)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	fm := interfaces.FrontMatter{Raw: raw}
	if title, ok := raw["title"].(string); ok {
		fm.Title = strings.TrimSpace(title)
	}
	return fm, body, nil
}

// SplitFrontMatter is the lenient form of ParseFrontMatter: a malformed block
// is treated as ordinary content and the whole source is returned as body.
func SplitFrontMatter(source []byte) (interfaces.FrontMatter, []byte) {
	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		return interfaces.FrontMatter{}, source
	}
	return fm, body
}
