package documents_test

import (
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-filecms/internal/documents"
)

func TestValidateName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"history.txt", ""},
		{"about.md", ""},
		{"", documents.MessageNameRequired},
		{"hello", documents.MessageInvalidExtension},
		{"page.html", documents.MessageInvalidExtension},
		{"README.MD", documents.MessageInvalidExtension},
		{".md", documents.MessageInvalidExtension},
		{"nested/notes.md", documents.MessageNameNotPlain},
		{"..\\up.txt", documents.MessageNameNotPlain},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := documents.ValidateName(tc.name)
			if tc.want == "" {
				if err != nil {
					t.Fatalf("ValidateName(%q) returned %v", tc.name, err)
				}
				return
			}
			if !goerrors.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if got := documents.ValidationMessage(err); got != tc.want {
				t.Fatalf("ValidationMessage() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatOf(t *testing.T) {
	cases := map[string]documents.Format{
		"changes.txt":    documents.FormatPlainText,
		"about.md":       documents.FormatMarkdown,
		"archive.tar.md": documents.FormatMarkdown,
		"notes.rtf":      documents.FormatUnknown,
		"Makefile":       documents.FormatUnknown,
		".txt":           documents.FormatUnknown,
	}
	for name, want := range cases {
		if got := documents.FormatOf(name); got != want {
			t.Fatalf("FormatOf(%q) = %s, want %s", name, got, want)
		}
	}
	if documents.FormatMarkdown.String() != "markdown" || documents.FormatUnknown.String() != "unknown" {
		t.Fatal("unexpected Format.String output")
	}
}
