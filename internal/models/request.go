package models

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// CreateOrderRequest is the body of POST /orders. Images are data URIs.
type CreateOrderRequest struct {
	Nama                     string  `json:"nama" binding:"required"`
	Email                    string  `json:"email" binding:"required,email"`
	Alamat                   string  `json:"alamat" binding:"required"`
	Warna                    string  `json:"warna" binding:"required,hexcolor"`
	Jumlah                   int     `json:"jumlah" binding:"required,min=1"`
	Prompt                   string  `json:"prompt" binding:"required"`
	MainReferenceImage       string  `json:"mainReferenceImage" binding:"required"`
	AdditionalReferenceImage *string `json:"additionalReferenceImage"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type DescribeRequest struct {
	Base64Image string `json:"base64Image"`
	Color       string `json:"color"`
}

type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

type ProfileRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"required,email"`
	Address   string `json:"address"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validate checks struct tags using the same "binding" tag gin reads, so
// callers outside HTTP get identical rules.
func Validate(v any) error {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.SetTagName("binding")
	})
	return validate.Struct(v)
}
