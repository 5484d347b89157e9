package models

import (
	"strings"
	"time"
)

// Image represents one entry of the hosted image catalog.
// Field names follow the upstream image API wire format, so the struct
// round-trips both the upstream list response and the cached catalog JSON.
type Image struct {
	// Opaque upstream identifier
	// Example: '2cdc28f0-017a-49c4-9ed7-87056c83901'
	ID string `json:"id"`

	// Filename as uploaded, extension included
	// Example: 'whiskers.png'
	Filename string `json:"filename"`

	// Upload timestamp reported by the upstream service
	Uploaded time.Time `json:"uploaded"`

	// Whether the upstream service requires signed delivery URLs
	RequireSignedURLs bool `json:"requireSignedURLs"`

	// Full delivery URLs, one per configured variant
	// Example: 'https://imagedelivery.net/<hash>/<id>/public'
	Variants []string `json:"variants"`
}

// Catalog is the complete image listing cached between refreshes.
// A refresh always replaces the whole catalog; entries are never
// mutated in place.
type Catalog []Image

// MatchesNeedle reports whether the entry matches a lookup needle that
// already had its file extension stripped. Filename prefix is checked
// before ID prefix; either suffices.
func (i Image) MatchesNeedle(needle string) bool {
	return strings.HasPrefix(i.Filename, needle) || strings.HasPrefix(i.ID, needle)
}
