package services_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"yocc-backend/internal/gemini"
	"yocc-backend/internal/models"
	"yocc-backend/internal/openai"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	args := m.Called(ctx, order)
	if o := args.Get(0); o != nil {
		return o.(*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *mockRepo) ListAll(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, id, status)
	if o := args.Get(0); o != nil {
		return o.(*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockImages struct {
	mock.Mock
}

func (m *mockImages) Upload(ctx context.Context, folder string, data []byte, contentType string) (models.ImageRef, error) {
	args := m.Called(ctx, folder, data, contentType)
	return args.Get(0).(models.ImageRef), args.Error(1)
}

func (m *mockImages) Delete(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

type mockOpenAI struct {
	mock.Mock
}

func (m *mockOpenAI) GenerateImage(ctx context.Context, req openai.ImageRequest) (*openai.ImageResponse, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*openai.ImageResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOpenAI) ChatCompletion(ctx context.Context, req openai.ChatRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type mockGemini struct {
	mock.Mock
}

func (m *mockGemini) GenerateContent(ctx context.Context, model string, req gemini.GenerateContentRequest) (*gemini.GenerateContentResponse, error) {
	args := m.Called(ctx, model, req)
	if r := args.Get(0); r != nil {
		return r.(*gemini.GenerateContentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
