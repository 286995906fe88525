package documents

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeNotFound    = "DOCUMENT_NOT_FOUND"
	textCodeInvalidName = "DOCUMENT_INVALID_NAME"
	textCodeIO          = "DOCUMENT_IO_FAILED"
	textCodeValidation  = "DOCUMENT_NAME_INVALID"
)

var (
	// ErrNotFound reports that no regular file exists under the given name.
	ErrNotFound = errors.New("documents: not found")
	// ErrInvalidName reports a name that would escape the store directory.
	ErrInvalidName = errors.New("documents: invalid name")
)

func notFound(name string) error {
	return goerrors.Wrap(ErrNotFound, goerrors.CategoryNotFound, name+" does not exist").
		WithTextCode(textCodeNotFound).
		WithMetadata(map[string]any{"document": name})
}

func invalidName(name string) error {
	return goerrors.Wrap(ErrInvalidName, goerrors.CategoryBadInput, "document name escapes the store directory").
		WithTextCode(textCodeInvalidName).
		WithMetadata(map[string]any{"document": name})
}

func ioFailure(err error, op, name string) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, "document "+op+" failed").
		WithTextCode(textCodeIO).
		WithMetadata(map[string]any{"document": name, "operation": op})
}

// IsMissing reports whether err means the document cannot be addressed,
// either because it does not exist or because its name is not a plain file
// name.
func IsMissing(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidName)
}
