package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// tileIDRegex matches valid tile identifiers: lowercase slugs such as
// "wind" or "rain-today".
var tileIDRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateTileID validates a tile identifier for safety and correctness.
// Tile ids appear in persisted documents, config files, and URL paths, so
// the rules are intentionally conservative:
//   - No empty ids
//   - No control characters
//   - Maximum length of 64 characters
//   - Lowercase slug format (letters, digits, single hyphens)
func ValidateTileID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidTileID, "tile id cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidTileID, "tile id too long (max 64 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTileID, "tile id contains control characters")
		}
	}

	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidTileID, "tile id cannot contain path separators")
	}

	if !tileIDRegex.MatchString(id) {
		return New(ErrCodeInvalidTileID, "invalid tile id: %q", id)
	}

	return nil
}

// ValidateSpan validates a column span against the given grid bounds.
// Mutators clamp out-of-range spans instead of rejecting them; this is the
// check for callers that want to report bad input rather than repair it.
func ValidateSpan(span, min, max int) error {
	if min < 1 || max < min {
		return New(ErrCodeInternal, "invalid span bounds [%d, %d]", min, max)
	}
	if span < min || span > max {
		return New(ErrCodeOutOfRange, "span %d outside [%d, %d]", span, min, max)
	}
	return nil
}
