package usecase

import (
	"github.com/stretchr/testify/mock"
	"github.com/vadimbarashkov/memshort/internal/entity"
)

// MockUrlRepository is a mock type for the urlRepository type.
type MockUrlRepository struct {
	mock.Mock
}

func (_m *MockUrlRepository) Put(shortCode string, originalURL string) (*entity.URL, error) {
	ret := _m.Called(shortCode, originalURL)
	url, _ := ret.Get(0).(*entity.URL)
	return url, ret.Error(1)
}

func (_m *MockUrlRepository) RecordClick(shortCode string) (*entity.URL, error) {
	ret := _m.Called(shortCode)
	url, _ := ret.Get(0).(*entity.URL)
	return url, ret.Error(1)
}

func (_m *MockUrlRepository) Stats(shortCode string) (*entity.URL, error) {
	ret := _m.Called(shortCode)
	url, _ := ret.Get(0).(*entity.URL)
	return url, ret.Error(1)
}

// NewMockUrlRepository creates a new instance of MockUrlRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUrlRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUrlRepository {
	m := &MockUrlRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
