// Package shortcode generates random alphanumeric short codes.
package shortcode

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Alphabet holds the 62 symbols a short code is drawn from.
	Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// DefaultLength is the length of generated short codes.
	DefaultLength = 6
)

// Generator produces fixed-length codes. It keeps no state between calls and
// does not check codes against any store.
type Generator struct {
	length int
}

// NewGenerator returns a Generator for codes of the given length.
// A non-positive length falls back to DefaultLength.
func NewGenerator(length int) *Generator {
	if length <= 0 {
		length = DefaultLength
	}
	return &Generator{length: length}
}

// Length returns the length of the codes produced by g.
func (g *Generator) Length() int {
	return g.length
}

// Generate returns a code of g.Length() symbols picked uniformly from Alphabet.
func (g *Generator) Generate() (string, error) {
	const op = "shortcode.Generator.Generate"

	code, err := gonanoid.Generate(Alphabet, g.length)
	if err != nil {
		return "", fmt.Errorf("%s: failed to generate short code: %w", op, err)
	}

	return code, nil
}
