package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockInferenceClient struct {
	mock.Mock
}

func (m *MockInferenceClient) Critique(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockInferenceClient) Provider() string {
	return "mock"
}
