package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"yocc-backend/internal/apperrors"
	"yocc-backend/internal/imagecodec"
	"yocc-backend/internal/models"
	"yocc-backend/internal/storage"
)

// OrderRepository is the persistence the order service needs.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

type OrderService struct {
	repo   OrderRepository
	images storage.ImageStore
	logger *zap.Logger
}

func NewOrderService(repo OrderRepository, images storage.ImageStore, logger *zap.Logger) *OrderService {
	return &OrderService{repo: repo, images: images, logger: logger}
}

type decodedImage struct {
	data     []byte
	mimeType string
}

// Create validates req, uploads its reference images and persists a Pending
// order owned by userID. Nothing stays uploaded when any step fails.
func (s *OrderService) Create(ctx context.Context, userID uuid.UUID, req models.CreateOrderRequest) (*models.Order, error) {
	if err := models.Validate(req); err != nil {
		return nil, apperrors.Validation("Invalid order data.", err)
	}

	main, err := decodeImage(req.MainReferenceImage)
	if err != nil {
		return nil, apperrors.Validation("Invalid main reference image.", err)
	}

	var additional *decodedImage
	if req.AdditionalReferenceImage != nil && strings.TrimSpace(*req.AdditionalReferenceImage) != "" {
		additional, err = decodeImage(*req.AdditionalReferenceImage)
		if err != nil {
			return nil, apperrors.Validation("Invalid additional reference image.", err)
		}
	}

	var uploaded []string
	mainRef, err := s.images.Upload(ctx, storage.OrdersFolder, main.data, main.mimeType)
	if err != nil {
		return nil, apperrors.Upstream("Failed to upload reference image.", err)
	}
	uploaded = append(uploaded, mainRef.PublicID)

	order := &models.Order{
		UserID:             userID,
		Nama:               strings.TrimSpace(req.Nama),
		Email:              strings.TrimSpace(req.Email),
		Alamat:             strings.TrimSpace(req.Alamat),
		Warna:              req.Warna,
		Jumlah:             req.Jumlah,
		Prompt:             req.Prompt,
		MainReferenceImage: mainRef,
	}

	if additional != nil {
		ref, err := s.images.Upload(ctx, storage.OrdersFolder, additional.data, additional.mimeType)
		if err != nil {
			s.discard(ctx, uploaded)
			return nil, apperrors.Upstream("Failed to upload reference image.", err)
		}
		uploaded = append(uploaded, ref.PublicID)
		order.AdditionalReferenceImage = &ref
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		s.discard(ctx, uploaded)
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("order_id", created.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("jumlah", created.Jumlah),
	)
	return created, nil
}

// discard removes uploaded images after a failed submission. It runs even
// when the request context is already cancelled.
func (s *OrderService) discard(ctx context.Context, publicIDs []string) {
	ctx = context.WithoutCancel(ctx)
	for _, id := range publicIDs {
		if err := s.images.Delete(ctx, id); err != nil {
			s.logger.Warn("failed to remove orphaned image", zap.String("public_id", id), zap.Error(err))
		}
	}
}

func decodeImage(uri string) (*decodedImage, error) {
	mimeType, data, err := imagecodec.DecodeDataURI(uri)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, apperrors.Validation("Invalid image data.", nil)
	}
	if len(data) == 0 {
		return nil, apperrors.Validation("Image is empty.", nil)
	}
	return &decodedImage{data: data, mimeType: mimeType}, nil
}

func (s *OrderService) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus moves the order to status. Any status may follow any other;
// an unknown status is rejected before the store is touched.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	st, err := models.ParseStatus(status)
	if err != nil {
		return nil, apperrors.Validation("Invalid status.", err)
	}

	order, err := s.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status updated",
		zap.String("order_id", id.String()),
		zap.String("status", string(st)),
	)
	return order, nil
}
