package urlnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "https", input: "https://example.com", want: "https://example.com"},
		{name: "http", input: "http://example.com", want: "http://example.com"},
		{name: "no scheme", input: "example.com", want: "https://example.com"},
		{name: "no scheme with www", input: "www.example.com", want: "https://www.example.com"},
		{name: "no scheme with port", input: "example.com:8080/path", want: "https://example.com:8080/path"},
		{name: "other scheme", input: "ftp://example.com", want: "ftp://example.com"},
		{name: "surrounding whitespace", input: "  example.com\n", want: "https://example.com"},
		{name: "empty", input: "", want: ""},
		{name: "blank", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "normalize must be idempotent")
		})
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "https with www", url: "https://www.example.com", want: true},
		{name: "http", url: "http://example.com", want: true},
		{name: "path and query", url: "https://example.com/path?param=value", want: true},
		{name: "with port", url: "https://example.com:8080", want: true},
		{name: "upper case scheme", url: "HTTPS://example.com", want: true},
		{name: "no scheme", url: "not-a-url", want: false},
		{name: "normalized without dot", url: "https://not-a-url", want: false},
		{name: "empty", url: "", want: false},
		{name: "path only", url: "/just/a/path", want: false},
		{name: "scheme only", url: "https://", want: false},
		{name: "short host", url: "https://a.b", want: false},
		{name: "other scheme", url: "ftp://example.com", want: false},
		{name: "malformed", url: "https://exa mple.com/%zz", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.url))
		})
	}
}
