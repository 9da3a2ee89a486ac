// Package storage keeps order reference images in an object store.
package storage

import (
	"context"
	"path"

	"github.com/google/uuid"
	"yocc-backend/internal/models"
)

// OrdersFolder holds every order reference image.
const OrdersFolder = "custom_orders"

// ImageStore uploads images and returns where they can be read back. The
// returned PublicID is the handle Delete takes.
type ImageStore interface {
	Upload(ctx context.Context, folder string, data []byte, contentType string) (models.ImageRef, error)
	Delete(ctx context.Context, publicID string) error
}

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// objectKey builds a unique key under folder for contentType.
func objectKey(folder, contentType string) string {
	return path.Join(folder, uuid.NewString()+extensions[contentType])
}
