package errors

import (
	"slices"
	"strings"
	"unicode"
)

// Label locations accepted by the DOT writer.
const (
	LabelInternal = "internal"
	LabelExternal = "external"
)

// Render formats accepted by the render command.
var renderFormats = []string{"svg", "png", "pdf", "dot", "json"}

// ValidatePath validates a file path given on the command line or in a
// config file. It prevents control characters and unreasonable lengths; the
// path may be absolute.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateColorScheme checks that scheme is one of the known named-color
// schemes. The empty string selects the default scheme and is accepted.
func ValidateColorScheme(scheme string, known []string) error {
	if scheme == "" {
		return nil
	}
	if !slices.Contains(known, strings.ToLower(scheme)) {
		return New(ErrCodeInvalidInput, "unknown color scheme %q (known: %s)", scheme, strings.Join(known, ", "))
	}
	return nil
}

// ValidateLabelLocation checks a writer label location.
func ValidateLabelLocation(loc string) error {
	switch loc {
	case "", LabelInternal, LabelExternal:
		return nil
	}
	return New(ErrCodeInvalidInput, "label location must be %q or %q, got %q", LabelInternal, LabelExternal, loc)
}

// ValidateFormat checks an output format name.
func ValidateFormat(format string) error {
	if !slices.Contains(renderFormats, strings.ToLower(format)) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (supported: %s)", format, strings.Join(renderFormats, ", "))
	}
	return nil
}

// ValidateWorkers checks a worker count. Zero selects the default.
func ValidateWorkers(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidConfig, "workers must not be negative, got %d", n)
	}
	return nil
}
