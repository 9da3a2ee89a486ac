package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"yocc-backend/internal/apperrors"
	"yocc-backend/internal/imagecodec"
	"yocc-backend/internal/models"
	"yocc-backend/internal/services"
	"yocc-backend/internal/storage"
)

var (
	mainBytes  = []byte("\x89PNG main")
	extraBytes = []byte("\xff\xd8 extra")
)

func validRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		Nama:               "Budi",
		Email:              "budi@x.com",
		Alamat:             "Jl. X",
		Warna:              "#0463AC",
		Jumlah:             2,
		Prompt:             "blue velvet sofa",
		MainReferenceImage: imagecodec.EncodeBytes(mainBytes, "image/png"),
	}
}

func TestOrderService_Create(t *testing.T) {
	repo := new(mockRepo)
	images := new(mockImages)
	svc := services.NewOrderService(repo, images, zap.NewNop())
	userID := uuid.New()

	mainRef := models.ImageRef{URL: "https://cdn/custom_orders/a.png", PublicID: "custom_orders/a.png"}
	images.On("Upload", mock.Anything, storage.OrdersFolder, mainBytes, "image/png").Return(mainRef, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
		return o.UserID == userID && o.Jumlah == 2 && o.MainReferenceImage == mainRef && o.AdditionalReferenceImage == nil
	})).Return(&models.Order{ID: uuid.New(), UserID: userID, Jumlah: 2, Status: models.StatusPending}, nil)

	order, err := svc.Create(context.Background(), userID, validRequest())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, order.Status)

	repo.AssertExpectations(t)
	images.AssertExpectations(t)
}

func TestOrderService_Create_ValidationBeforeUpload(t *testing.T) {
	tests := map[string]func(*models.CreateOrderRequest){
		"missing name":   func(r *models.CreateOrderRequest) { r.Nama = "" },
		"bad email":      func(r *models.CreateOrderRequest) { r.Email = "budi" },
		"zero quantity":  func(r *models.CreateOrderRequest) { r.Jumlah = 0 },
		"bad color":      func(r *models.CreateOrderRequest) { r.Warna = "blue" },
		"not a data uri": func(r *models.CreateOrderRequest) { r.MainReferenceImage = "https://example.com/a.png" },
		"not an image": func(r *models.CreateOrderRequest) {
			r.MainReferenceImage = imagecodec.EncodeBytes([]byte("hi"), "text/plain")
		},
		"bad additional": func(r *models.CreateOrderRequest) {
			bad := "data:image/png;base64,***"
			r.AdditionalReferenceImage = &bad
		},
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			repo := new(mockRepo)
			images := new(mockImages)
			svc := services.NewOrderService(repo, images, zap.NewNop())

			req := validRequest()
			mutate(&req)

			_, err := svc.Create(context.Background(), uuid.New(), req)
			assert.True(t, apperrors.IsValidation(err), "got %v", err)
			images.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_Create_AdditionalUploadFailsRemovesMain(t *testing.T) {
	repo := new(mockRepo)
	images := new(mockImages)
	svc := services.NewOrderService(repo, images, zap.NewNop())

	req := validRequest()
	extra := imagecodec.EncodeBytes(extraBytes, "image/jpeg")
	req.AdditionalReferenceImage = &extra

	images.On("Upload", mock.Anything, storage.OrdersFolder, mainBytes, "image/png").
		Return(models.ImageRef{PublicID: "custom_orders/main.png"}, nil)
	images.On("Upload", mock.Anything, storage.OrdersFolder, extraBytes, "image/jpeg").
		Return(models.ImageRef{}, errors.New("bucket full"))
	images.On("Delete", mock.Anything, "custom_orders/main.png").Return(nil)

	_, err := svc.Create(context.Background(), uuid.New(), req)
	assert.True(t, apperrors.IsUpstream(err))

	images.AssertExpectations(t)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_Create_InsertFailsRemovesUploads(t *testing.T) {
	repo := new(mockRepo)
	images := new(mockImages)
	svc := services.NewOrderService(repo, images, zap.NewNop())

	req := validRequest()
	extra := imagecodec.EncodeBytes(extraBytes, "image/jpeg")
	req.AdditionalReferenceImage = &extra

	images.On("Upload", mock.Anything, storage.OrdersFolder, mainBytes, "image/png").
		Return(models.ImageRef{PublicID: "custom_orders/main.png"}, nil)
	images.On("Upload", mock.Anything, storage.OrdersFolder, extraBytes, "image/jpeg").
		Return(models.ImageRef{PublicID: "custom_orders/extra.jpg"}, nil)
	images.On("Delete", mock.Anything, "custom_orders/main.png").Return(nil)
	images.On("Delete", mock.Anything, "custom_orders/extra.jpg").Return(errors.New("ignored"))
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Create(context.Background(), uuid.New(), req)
	assert.ErrorContains(t, err, "db down")
	images.AssertExpectations(t)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	repo := new(mockRepo)
	svc := services.NewOrderService(repo, new(mockImages), zap.NewNop())
	id := uuid.New()

	repo.On("UpdateStatus", mock.Anything, id, models.StatusShipped).
		Return(&models.Order{ID: id, Status: models.StatusShipped}, nil)

	order, err := svc.UpdateStatus(context.Background(), id, "Shipped")
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, order.Status)
}

func TestOrderService_UpdateStatus_InvalidNeverTouchesStore(t *testing.T) {
	repo := new(mockRepo)
	svc := services.NewOrderService(repo, new(mockImages), zap.NewNop())

	for _, status := range []string{"", "shipped", "Lost", "PENDING"} {
		_, err := svc.UpdateStatus(context.Background(), uuid.New(), status)
		assert.True(t, apperrors.IsValidation(err), status)
	}
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	repo := new(mockRepo)
	svc := services.NewOrderService(repo, new(mockImages), zap.NewNop())
	id := uuid.New()

	repo.On("UpdateStatus", mock.Anything, id, models.StatusShipped).Return(nil, apperrors.NotFound("Order not found."))

	_, err := svc.UpdateStatus(context.Background(), id, "Shipped")
	assert.True(t, apperrors.IsNotFound(err))
}
