package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// MaxNodeIDLength bounds node identifiers so edge IDs stay readable.
const MaxNodeIDLength = 256

// ValidateNodeID validates an argument-map node identifier.
//
// The rules are conservative because IDs end up in edge IDs, SVG element
// IDs and cache keys:
//   - No empty IDs
//   - No control characters or whitespace
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidMap, "node id cannot be empty")
	}

	if len(id) > MaxNodeIDLength {
		return New(ErrCodeInvalidMap, "node id too long (max %d characters)", MaxNodeIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidMap, "node id %q contains control characters", id)
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidMap, "node id %q contains whitespace", id)
		}
	}

	return nil
}

// ValidateStrength checks that a strength lies in [0, max].
func ValidateStrength(strength, max int) error {
	if strength < 0 || strength > max {
		return New(ErrCodeInvalidStrength, "strength %d out of range [0, %d]", strength, max)
	}
	return nil
}

// ValidatePolarity checks a polarity name. The empty string means unset and is accepted.
func ValidatePolarity(p string) error {
	switch p {
	case "", "tailwind", "headwind", "neutral":
		return nil
	}
	return New(ErrCodeInvalidPolarity, "unknown polarity %q (want tailwind, headwind or neutral)", p)
}

// ValidatePath validates an input or output file path.
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

// ValidateURL validates a source link attached to a node.
// It ensures the URL has a safe scheme (http or https) and a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "malformed URL")
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL must include a host")
	}

	return nil
}
