// Package entity defines the entities and errors used in the application.
// It includes the URL struct, which represents a shortened URL, along with its
// associated metadata, and any relevant error definitions.
package entity

import (
	"errors"
	"time"
)

var (
	// ErrShortCodeExists is returned when attempting to create a URL with a short code that already exists.
	ErrShortCodeExists = errors.New("short code exists")
	// ErrURLNotFound is returned when a URL with the specified short code cannot be found.
	ErrURLNotFound = errors.New("url not found")
	// ErrInvalidURL is returned when the URL to shorten is not an absolute http(s) URL with a host.
	ErrInvalidURL = errors.New("invalid url")
)

// URL represents a shortened URL.
type URL struct {
	ShortCode   string    // ShortCode is the generated code used to shorten the original URL.
	OriginalURL string    // OriginalURL is the normalized URL that the short code resolves to.
	URLStats              // URLStats contains statistics about the URL.
	CreatedAt   time.Time // CreatedAt is the timestamp when the URL was created.
}

// URLStats contains statistics related to a shortened URL.
type URLStats struct {
	Clicks int64 // Clicks is the number of successful redirects through the short code.
}
