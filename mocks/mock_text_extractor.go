package mocks

import (
	"github.com/stretchr/testify/mock"

	"alfredoptarigan/resume-critiquer/internal/models"
)

type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(doc models.UploadedDocument) (string, error) {
	args := m.Called(doc)
	return args.String(0), args.Error(1)
}
