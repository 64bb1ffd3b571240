package errors

import (
	"strings"
	"unicode"
)

// MaxGridSize bounds the side length accepted from user input.
// Enumeration is exponential in size², so anything above this is unusable.
const MaxGridSize = 64

// ValidateGridSize checks a grid side length supplied by a user.
func ValidateGridSize(size int) error {
	if size < 1 {
		return New(ErrCodeInvalidInput, "grid size must be at least 1, got %d", size)
	}
	if size > MaxGridSize {
		return New(ErrCodeInvalidInput, "grid size too large (max %d), got %d", MaxGridSize, size)
	}
	return nil
}

// ValidateFlatCode performs a cheap syntactic check of a layout flat code
// before it is parsed: non-empty, bounded length, letters and underscores only.
// Whether each letter names a known tile kind is decided by the tile catalog.
func ValidateFlatCode(code string) error {
	if code == "" {
		return New(ErrCodeInvalidInput, "layout code cannot be empty")
	}

	const maxCodeLength = MaxGridSize * (MaxGridSize + 1)
	if len(code) > maxCodeLength {
		return New(ErrCodeInvalidInput, "layout code too long (max %d characters)", maxCodeLength)
	}

	for _, r := range code {
		if r != '_' && !unicode.IsLetter(r) {
			return New(ErrCodeInvalidInput, "layout code contains invalid character %q", r)
		}
	}

	if strings.HasPrefix(code, "_") || strings.HasSuffix(code, "_") || strings.Contains(code, "__") {
		return New(ErrCodeMalformedGrid, "layout code has an empty row")
	}

	return nil
}

// ValidatePath validates an output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
//
// Absolute paths are allowed: output directories are chosen by the local user.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
