package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/memshort/internal/entity"
	"github.com/vadimbarashkov/memshort/mocks/usecase"
)

type URLUseCaseTestSuite struct {
	suite.Suite
	errUnknown    error
	generatorMock *usecase.MockShortCodeGenerator
	urlRepoMock   *usecase.MockUrlRepository
	uc            *URLUseCase
}

func (suite *URLUseCaseTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
}

func (suite *URLUseCaseTestSuite) SetupSubTest() {
	suite.generatorMock = usecase.NewMockShortCodeGenerator(suite.T())
	suite.urlRepoMock = usecase.NewMockUrlRepository(suite.T())
	suite.uc = NewURLUseCase(suite.generatorMock, suite.urlRepoMock)
}

func (suite *URLUseCaseTestSuite) TearDownSubTest() {
	suite.generatorMock.AssertExpectations(suite.T())
	suite.urlRepoMock.AssertExpectations(suite.T())
}

func (suite *URLUseCaseTestSuite) TestShortenURL() {
	suite.Run("invalid url", func() {
		for _, raw := range []string{"", "   ", "not-a-url", "ftp://example.com", "https://"} {
			url, err := suite.uc.ShortenURL(context.Background(), raw)

			suite.Error(err)
			suite.ErrorIs(err, entity.ErrInvalidURL)
			suite.Nil(url)
		}
	})

	suite.Run("canceled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		url, err := suite.uc.ShortenURL(ctx, "https://example.com")

		suite.Error(err)
		suite.ErrorIs(err, context.Canceled)
		suite.Nil(url)
	})

	suite.Run("short code generation error", func() {
		suite.generatorMock.
			On("Generate").
			Once().
			Return("", suite.errUnknown)

		url, err := suite.uc.ShortenURL(context.Background(), "https://example.com")

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(url)
	})

	suite.Run("maximum retries error", func() {
		suite.generatorMock.
			On("Generate").
			Times(maxRetries).
			Return("abc123", nil)
		suite.urlRepoMock.
			On("Put", "abc123", "https://example.com").
			Times(maxRetries).
			Return(nil, entity.ErrShortCodeExists)

		url, err := suite.uc.ShortenURL(context.Background(), "https://example.com")

		suite.Error(err)
		suite.ErrorIs(err, ErrMaxRetriesExceeded)
		suite.Nil(url)
	})

	suite.Run("unknown error", func() {
		suite.generatorMock.
			On("Generate").
			Once().
			Return("abc123", nil)
		suite.urlRepoMock.
			On("Put", "abc123", "https://example.com").
			Once().
			Return(nil, suite.errUnknown)

		url, err := suite.uc.ShortenURL(context.Background(), "https://example.com")

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(url)
	})

	suite.Run("regenerates on collision", func() {
		suite.generatorMock.
			On("Generate").
			Once().
			Return("abc123", nil)
		suite.generatorMock.
			On("Generate").
			Once().
			Return("def456", nil)
		suite.urlRepoMock.
			On("Put", "abc123", "https://example.com").
			Once().
			Return(nil, entity.ErrShortCodeExists)
		suite.urlRepoMock.
			On("Put", "def456", "https://example.com").
			Once().
			Return(&entity.URL{
				ShortCode:   "def456",
				OriginalURL: "https://example.com",
			}, nil)

		url, err := suite.uc.ShortenURL(context.Background(), "https://example.com")

		suite.NoError(err)
		suite.NotNil(url)
		suite.Equal("def456", url.ShortCode)
	})

	suite.Run("success with normalization", func() {
		suite.generatorMock.
			On("Generate").
			Once().
			Return("abc123", nil)
		suite.urlRepoMock.
			On("Put", "abc123", "https://example.com").
			Once().
			Return(&entity.URL{
				ShortCode:   "abc123",
				OriginalURL: "https://example.com",
			}, nil)

		url, err := suite.uc.ShortenURL(context.Background(), " example.com ")

		suite.NoError(err)
		suite.NotNil(url)
		suite.Equal("abc123", url.ShortCode)
		suite.Equal("https://example.com", url.OriginalURL)
		suite.Zero(url.Clicks)
	})
}

func (suite *URLUseCaseTestSuite) TestResolveShortCode() {
	suite.Run("url not found", func() {
		suite.urlRepoMock.
			On("RecordClick", "abc123").
			Once().
			Return(nil, entity.ErrURLNotFound)

		url, err := suite.uc.ResolveShortCode(context.Background(), "abc123")

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		suite.urlRepoMock.
			On("RecordClick", "abc123").
			Once().
			Return(&entity.URL{
				ShortCode:   "abc123",
				OriginalURL: "https://example.com",
				URLStats: entity.URLStats{
					Clicks: 1,
				},
			}, nil)

		url, err := suite.uc.ResolveShortCode(context.Background(), "abc123")

		suite.NoError(err)
		suite.NotNil(url)
		suite.Equal("https://example.com", url.OriginalURL)
		suite.Equal(int64(1), url.Clicks)
	})
}

func (suite *URLUseCaseTestSuite) TestGetURLStats() {
	suite.Run("url not found", func() {
		suite.urlRepoMock.
			On("Stats", "abc123").
			Once().
			Return(nil, entity.ErrURLNotFound)

		url, err := suite.uc.GetURLStats(context.Background(), "abc123")

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrURLNotFound)
		suite.Nil(url)
	})

	suite.Run("success", func() {
		suite.urlRepoMock.
			On("Stats", "abc123").
			Once().
			Return(&entity.URL{
				ShortCode:   "abc123",
				OriginalURL: "https://example.com",
				URLStats: entity.URLStats{
					Clicks: 2,
				},
			}, nil)

		url, err := suite.uc.GetURLStats(context.Background(), "abc123")

		suite.NoError(err)
		suite.NotNil(url)
		suite.Equal("abc123", url.ShortCode)
		suite.Equal(int64(2), url.Clicks)
	})
}

func TestURLUseCase(t *testing.T) {
	suite.Run(t, new(URLUseCaseTestSuite))
}
