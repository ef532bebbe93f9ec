package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/interview-warmup/internal/services"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateStructured(ctx context.Context, prompt string, shape *services.Shape) (string, error) {
	args := m.Called(ctx, prompt, shape)
	return args.String(0), args.Error(1)
}
