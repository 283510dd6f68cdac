package errors

import "unicode"

// MaxNodeIDLength bounds node identifiers accepted from files and the API.
const MaxNodeIDLength = 256

// ValidateNodeID validates a node identifier read from untrusted input.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters (this also rejects newlines and null bytes)
//   - No whitespace, so edge lines stay unambiguous
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNode, "node ID cannot be empty")
	}

	if len(id) > MaxNodeIDLength {
		return New(ErrCodeInvalidNode, "node ID too long (max %d characters)", MaxNodeIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNode, "node ID contains invalid control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidNode, "node ID cannot contain whitespace: %q", id)
		}
	}

	return nil
}

// ValidatePath rejects file paths that cannot name a graph file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
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

	return nil
}
