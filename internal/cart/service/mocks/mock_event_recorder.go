package mocks

import "github.com/stretchr/testify/mock"

type MockEventRecorder struct {
	mock.Mock
}

func (m *MockEventRecorder) ItemAdded(quantity int) {
	m.Called(quantity)
}

func (m *MockEventRecorder) AddRejected(reason string) {
	m.Called(reason)
}

func (m *MockEventRecorder) LineRemoved() {
	m.Called()
}

func (m *MockEventRecorder) CartCleared() {
	m.Called()
}

func (m *MockEventRecorder) CartChanged(lines int, totalMinor int64) {
	m.Called(lines, totalMinor)
}
