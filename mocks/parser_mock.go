package mocks

import "github.com/stretchr/testify/mock"

// MockParser satisfies both services.PDFParserService and services.DocxParserService.
type MockParser struct {
	mock.Mock
}

func (m *MockParser) ExtractText(content []byte) (string, error) {
	args := m.Called(content)
	return args.String(0), args.Error(1)
}
