package usecase

import "github.com/stretchr/testify/mock"

// MockShortCodeGenerator is a mock type for the shortCodeGenerator type.
type MockShortCodeGenerator struct {
	mock.Mock
}

func (_m *MockShortCodeGenerator) Generate() (string, error) {
	ret := _m.Called()
	return ret.String(0), ret.Error(1)
}

// NewMockShortCodeGenerator creates a new instance of MockShortCodeGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockShortCodeGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockShortCodeGenerator {
	m := &MockShortCodeGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
