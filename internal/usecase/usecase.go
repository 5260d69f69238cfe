package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/vadimbarashkov/memshort/internal/entity"
	"github.com/vadimbarashkov/memshort/pkg/urlnorm"
)

const maxRetries = 5

var ErrMaxRetriesExceeded = errors.New("maximum retries exceeded for generating short code")

type urlRepository interface {
	Put(shortCode, originalURL string) (*entity.URL, error)
	RecordClick(shortCode string) (*entity.URL, error)
	Stats(shortCode string) (*entity.URL, error)
}

type shortCodeGenerator interface {
	Generate() (string, error)
}

type URLUseCase struct {
	generator shortCodeGenerator
	urlRepo   urlRepository
}

func NewURLUseCase(generator shortCodeGenerator, urlRepo urlRepository) *URLUseCase {
	return &URLUseCase{
		generator: generator,
		urlRepo:   urlRepo,
	}
}

// ShortenURL normalizes rawURL and stores it under a freshly generated short code.
// A code that is already taken is regenerated, up to maxRetries attempts.
func (uc *URLUseCase) ShortenURL(ctx context.Context, rawURL string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ShortenURL"

	originalURL := urlnorm.Normalize(rawURL)
	if !urlnorm.IsValid(originalURL) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidURL)
	}

	for i := 0; i < maxRetries; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		shortCode, err := uc.generator.Generate()
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate short code: %w", op, err)
		}

		url, err := uc.urlRepo.Put(shortCode, originalURL)
		if err != nil {
			if errors.Is(err, entity.ErrShortCodeExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to shorten url: %w", op, err)
		}

		return url, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrMaxRetriesExceeded)
}

// ResolveShortCode returns the mapping for shortCode and counts the click.
func (uc *URLUseCase) ResolveShortCode(ctx context.Context, shortCode string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ResolveShortCode"

	url, err := uc.urlRepo.RecordClick(shortCode)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve short code: %w", op, err)
	}

	return url, nil
}

func (uc *URLUseCase) GetURLStats(ctx context.Context, shortCode string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.GetURLStats"

	url, err := uc.urlRepo.Stats(shortCode)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get url stats: %w", op, err)
	}

	return url, nil
}
