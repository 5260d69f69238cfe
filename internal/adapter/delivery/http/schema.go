package http

import (
	"time"

	"github.com/vadimbarashkov/memshort/internal/entity"
)

const statusError = "error"

// shortenRequest represents the structure for a request to shorten a URL.
// URL is a pointer so that a missing field can be told apart from an empty one.
type shortenRequest struct {
	URL *string `json:"url"`
}

// shortenResponse represents the structure for a response containing the issued short code.
type shortenResponse struct {
	ShortCode string `json:"short_code"`
	ShortURL  string `json:"short_url"`
}

// urlStatsResponse represents the structure for a response containing URL statistics.
type urlStatsResponse struct {
	URL       string    `json:"url"`
	ShortCode string    `json:"short_code"`
	Clicks    int64     `json:"clicks"`
	CreatedAt time.Time `json:"created_at"`
}

// toURLStatsResponse converts an entity.URL to a urlStatsResponse.
func toURLStatsResponse(url *entity.URL) urlStatsResponse {
	return urlStatsResponse{
		URL:       url.OriginalURL,
		ShortCode: url.ShortCode,
		Clicks:    url.Clicks,
		CreatedAt: url.CreatedAt,
	}
}

type rootResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// errorResponse represents a structured error response.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Predefined error responses for common scenarios.
var (
	emptyRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "empty request body",
	}

	invalidRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "invalid request body",
	}

	missingURLResponse = errorResponse{
		Status:  statusError,
		Message: "missing 'url' field in request body",
	}

	emptyURLResponse = errorResponse{
		Status:  statusError,
		Message: "url cannot be empty",
	}

	invalidURLResponse = errorResponse{
		Status:  statusError,
		Message: "invalid url format",
	}

	invalidShortCodeResponse = errorResponse{
		Status:  statusError,
		Message: "invalid short code format",
	}

	urlNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "short code not found",
	}

	notFoundResponse = errorResponse{
		Status:  statusError,
		Message: "resource not found",
	}

	methodNotAllowedResponse = errorResponse{
		Status:  statusError,
		Message: "method not allowed",
	}

	serverErrorResponse = errorResponse{
		Status:  statusError,
		Message: "server error occurred",
	}
)
