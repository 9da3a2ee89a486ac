package client

import (
	"context"
	"errors"

	"yocc-backend/internal/imagecodec"
	"yocc-backend/internal/models"
	"yocc-backend/internal/prompts"
)

// OrderForm is what the customer fills in. MainImage is required;
// AdditionalImage may be left zero.
type OrderForm struct {
	Nama            string
	Email           string
	Alamat          string
	Warna           string
	Jumlah          int
	Prompt          string
	MainImage       imagecodec.Source
	AdditionalImage imagecodec.Source
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
}

// SubmitOrder encodes the form's images and places the order in a single
// request. When any image fails to encode nothing is sent and the returned
// error is an *imagecodec.EncodingError.
func SubmitOrder(ctx context.Context, api OrderCreator, enc *imagecodec.Encoder, form OrderForm) (*models.Order, error) {
	if form.MainImage.IsZero() {
		return nil, &imagecodec.EncodingError{Source: "mainReferenceImage", Err: errors.New("main reference image is required")}
	}

	mainURI, err := enc.Encode(ctx, form.MainImage)
	if err != nil {
		return nil, err
	}

	var additional *string
	if !form.AdditionalImage.IsZero() {
		uri, err := enc.Encode(ctx, form.AdditionalImage)
		if err != nil {
			return nil, err
		}
		additional = &uri
	}

	return api.CreateOrder(ctx, models.CreateOrderRequest{
		Nama:                     form.Nama,
		Email:                    form.Email,
		Alamat:                   form.Alamat,
		Warna:                    form.Warna,
		Jumlah:                   form.Jumlah,
		Prompt:                   form.Prompt,
		MainReferenceImage:       mainURI,
		AdditionalReferenceImage: additional,
	})
}

// ColorFromPrompt returns the first hex color code in prompt, or the
// fallback color when there is none.
func ColorFromPrompt(prompt string) string {
	if c, ok := prompts.ColorFromText(prompt); ok {
		return c
	}
	return prompts.FallbackColor
}

// ArtifactToOrderForm prefills an order from a generated image. The caller
// still supplies the recipient fields.
func ArtifactToOrderForm(a *Artifact) OrderForm {
	form := OrderForm{
		Warna:  ColorFromPrompt(a.Prompt),
		Jumlah: 1,
		Prompt: a.Prompt,
	}
	if len(a.Data) > 0 {
		form.MainImage = imagecodec.FromBytes(a.Data, a.MimeType)
	} else {
		form.MainImage = imagecodec.FromRef(a.URL)
	}
	return form
}
