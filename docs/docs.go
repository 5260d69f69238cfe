// Package docs embeds the OpenAPI description of the HTTP API.
package docs

import (
	_ "embed"
	"net/http"
)

//go:embed swagger.yml
var Swagger []byte

// ServeSwagger writes the embedded OpenAPI document.
func ServeSwagger(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(Swagger)
}
