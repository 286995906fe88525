package documents

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

// User facing validation messages.
const (
	MessageNameRequired     = "A name is required."
	MessageInvalidExtension = "File extension must be '.txt' or '.md'."
	MessageNameNotPlain     = "A name may not contain path separators."
)

// FieldFilename is the form field validation errors are reported against.
const FieldFilename = "filename"

var (
	errInvalidExtension = validation.NewError("validation_document_extension", MessageInvalidExtension)
	errNameNotPlain     = validation.NewError("validation_document_plain_name", MessageNameNotPlain)
)

// ValidateName checks a name proposed for a new or updated document. Rules
// run in order and the first failure is reported.
func ValidateName(name string) error {
	err := validation.Validate(name,
		validation.Required.Error(MessageNameRequired),
		validation.By(extensionRule),
		validation.By(plainNameRule),
	)
	if err == nil {
		return nil
	}
	return goerrors.FromOzzoValidation(validation.Errors{FieldFilename: err}, "invalid document name").
		WithTextCode(textCodeValidation)
}

// ValidationMessage returns the first field message carried by a validation
// error, falling back to the error text.
func ValidationMessage(err error) string {
	if err == nil {
		return ""
	}
	if fields, ok := goerrors.GetValidationErrors(err); ok && len(fields) > 0 {
		return fields[0].Message
	}
	return err.Error()
}

func extensionRule(value any) error {
	switch FormatOf(value.(string)) {
	case FormatPlainText, FormatMarkdown:
		return nil
	default:
		return errInvalidExtension
	}
}

func plainNameRule(value any) error {
	if !isPlainName(value.(string)) {
		return errNameNotPlain
	}
	return nil
}

// isPlainName reports whether name addresses a file directly inside the
// store directory.
func isPlainName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\\x00")
}
