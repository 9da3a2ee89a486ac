package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"yocc-backend/internal/models"
)

func validOrderRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		Nama:               "Budi",
		Email:              "budi@x.com",
		Alamat:             "Jl. X",
		Warna:              "#0463AC",
		Jumlah:             2,
		Prompt:             "blue sofa",
		MainReferenceImage: "data:image/png;base64,AAAA",
	}
}

func TestValidate_CreateOrderRequest(t *testing.T) {
	req := validOrderRequest()
	assert.NoError(t, models.Validate(req))

	cases := map[string]func(r *models.CreateOrderRequest){
		"missing name":    func(r *models.CreateOrderRequest) { r.Nama = "" },
		"invalid email":   func(r *models.CreateOrderRequest) { r.Email = "budi" },
		"missing address": func(r *models.CreateOrderRequest) { r.Alamat = "" },
		"invalid color":   func(r *models.CreateOrderRequest) { r.Warna = "blue" },
		"zero quantity":   func(r *models.CreateOrderRequest) { r.Jumlah = 0 },
		"negative qty":    func(r *models.CreateOrderRequest) { r.Jumlah = -3 },
		"missing prompt":  func(r *models.CreateOrderRequest) { r.Prompt = "" },
		"missing image":   func(r *models.CreateOrderRequest) { r.MainReferenceImage = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := validOrderRequest()
			mutate(&r)
			assert.Error(t, models.Validate(r))
		})
	}
}

func TestValidate_ShortHexColor(t *testing.T) {
	req := validOrderRequest()
	req.Warna = "#fff"
	assert.NoError(t, models.Validate(req))
}
