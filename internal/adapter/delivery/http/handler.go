package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/vadimbarashkov/memshort/internal/entity"
	"github.com/vadimbarashkov/memshort/internal/metrics"
)

const serviceName = "URL Shortener API"

func handleRoot(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, rootResponse{
		Status:  "healthy",
		Service: serviceName,
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, healthResponse{
		Status:  "ok",
		Message: serviceName + " is running",
	})
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, notFoundResponse)
}

func handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusMethodNotAllowed)
	render.JSON(w, r, methodNotAllowedResponse)
}

type urlUseCase interface {
	ShortenURL(ctx context.Context, rawURL string) (*entity.URL, error)
	ResolveShortCode(ctx context.Context, shortCode string) (*entity.URL, error)
	GetURLStats(ctx context.Context, shortCode string) (*entity.URL, error)
}

type urlHandler struct {
	useCase       urlUseCase
	validate      *validator.Validate
	shortCodeRule string
	baseURL       string
	metrics       *metrics.Metrics
}

func newURLHandler(useCase urlUseCase, validate *validator.Validate, opts RouterOptions) *urlHandler {
	return &urlHandler{
		useCase:       useCase,
		validate:      validate,
		shortCodeRule: fmt.Sprintf("len=%d,alphanum", opts.ShortCodeLength),
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		metrics:       opts.Metrics,
	}
}

func (h *urlHandler) validShortCode(shortCode string) bool {
	return h.validate.Var(shortCode, h.shortCodeRule) == nil
}

// shortURL joins the base URL with shortCode, falling back to the request's own origin.
func (h *urlHandler) shortURL(r *http.Request, shortCode string) string {
	base := h.baseURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	return base + "/" + shortCode
}

func (h *urlHandler) shortenURL(w http.ResponseWriter, r *http.Request) {
	var req shortenRequest

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, emptyRequestBodyResponse)
			return
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return
	}

	if req.URL == nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, missingURLResponse)
		return
	}

	if strings.TrimSpace(*req.URL) == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, emptyURLResponse)
		return
	}

	url, err := h.useCase.ShortenURL(r.Context(), *req.URL)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidURL) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, invalidURLResponse)
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	h.metrics.RecordURLShortened()

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, shortenResponse{
		ShortCode: url.ShortCode,
		ShortURL:  h.shortURL(r, url.ShortCode),
	})
}

func (h *urlHandler) redirect(w http.ResponseWriter, r *http.Request) {
	shortCode := chi.URLParam(r, "shortCode")

	if !h.validShortCode(shortCode) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, urlNotFoundResponse)
		return
	}

	url, err := h.useCase.ResolveShortCode(r.Context(), shortCode)
	if err != nil {
		if errors.Is(err, entity.ErrURLNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, urlNotFoundResponse)
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	h.metrics.RecordRedirect()

	http.Redirect(w, r, url.OriginalURL, http.StatusFound)
}

func (h *urlHandler) getURLStats(w http.ResponseWriter, r *http.Request) {
	shortCode := chi.URLParam(r, "shortCode")

	if !h.validShortCode(shortCode) {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidShortCodeResponse)
		return
	}

	url, err := h.useCase.GetURLStats(r.Context(), shortCode)
	if err != nil {
		if errors.Is(err, entity.ErrURLNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, urlNotFoundResponse)
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toURLStatsResponse(url))
}
