package models

import (
	"time"

	"github.com/google/uuid"
)

// ImageRef points at a reference image held by the image store.
type ImageRef struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type Order struct {
	ID                       uuid.UUID   `json:"id"`
	UserID                   uuid.UUID   `json:"user"`
	Nama                     string      `json:"nama"`
	Email                    string      `json:"email"`
	Alamat                   string      `json:"alamat"`
	Warna                    string      `json:"warna"`
	Jumlah                   int         `json:"jumlah"`
	Prompt                   string      `json:"prompt"`
	MainReferenceImage       ImageRef    `json:"mainReferenceImage"`
	AdditionalReferenceImage *ImageRef   `json:"additionalReferenceImage,omitempty"`
	Status                   OrderStatus `json:"status"`
	Owner                    *Owner      `json:"owner,omitempty"`
	CreatedAt                time.Time   `json:"createdAt"`
	UpdatedAt                time.Time   `json:"updatedAt"`
}

// Owner is the denormalized identity of the user who placed an order.
type Owner struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
}

type Profile struct {
	UserID    uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	UpdatedAt time.Time `json:"updatedAt"`
}
