package testutil

import (
	"github.com/stretchr/testify/mock"
)

type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) DirectoryNotFound(abiDir string) {
	m.Called(abiDir)
}

func (m *MockReporter) FileNotFound(path string) {
	m.Called(path)
}

func (m *MockReporter) Processing(path string) {
	m.Called(path)
}

func (m *MockReporter) Fixed(path string) {
	m.Called(path)
}

func (m *MockReporter) Done() {
	m.Called()
}

// NewPermissiveMockReporter returns a reporter that accepts every call, for tests that
// only look at the file system or the returned summary.
func NewPermissiveMockReporter() *MockReporter {
	reporter := new(MockReporter)
	reporter.On("DirectoryNotFound", mock.Anything).Return()
	reporter.On("FileNotFound", mock.Anything).Return()
	reporter.On("Processing", mock.Anything).Return()
	reporter.On("Fixed", mock.Anything).Return()
	reporter.On("Done").Return()
	return reporter
}
