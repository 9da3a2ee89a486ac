package handlers_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"yocc-backend/internal/apperrors"
	"yocc-backend/internal/handlers"
	"yocc-backend/internal/models"
	"yocc-backend/internal/palette"
	"yocc-backend/internal/services"
)

type mockGeneration struct {
	mock.Mock
}

func (m *mockGeneration) Generate(ctx context.Context, prompt string) (*models.GenerateResponse, error) {
	args := m.Called(ctx, prompt)
	if r := args.Get(0); r != nil {
		return r.(*models.GenerateResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGeneration) Describe(ctx context.Context, req models.DescribeRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockGeneration) EditWithTexture(ctx context.Context, in services.TextureEditInput) (*services.ImageFile, error) {
	args := m.Called(ctx, in)
	if r := args.Get(0); r != nil {
		return r.(*services.ImageFile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGeneration) Palette(ctx context.Context, data []byte) (*palette.Palette, error) {
	args := m.Called(ctx, data)
	if r := args.Get(0); r != nil {
		return r.(*palette.Palette), args.Error(1)
	}
	return nil, args.Error(1)
}

func newGenerationRouter(svc handlers.GenerationService) http.Handler {
	h := handlers.NewGenerationHandler(svc)
	r := newRouter(uuid.New())
	r.POST("/dalle", h.Generate)
	r.POST("/dalle/describe", h.Describe)
	r.POST("/dalle/edit-with-texture", h.EditWithTexture)
	r.POST("/palette", h.Palette)
	return r
}

type formFile struct {
	field, name, contentType string
	data                     []byte
}

func multipartRequest(t *testing.T, path string, files []formFile, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestGenerate(t *testing.T) {
	svc := new(mockGeneration)
	svc.On("Generate", mock.Anything, "red chair").Return(&models.GenerateResponse{
		Images: []models.GeneratedImage{{B64JSON: "AAAA"}},
		Prompt: "red chair",
	}, nil)

	w := doJSON(t, newGenerationRouter(svc), http.MethodPost, "/dalle", models.GenerateRequest{Prompt: "red chair"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.GenerateResponse](t, w)
	require.Len(t, resp.Images, 1)
	assert.Equal(t, "AAAA", resp.Images[0].B64JSON)
	svc.AssertExpectations(t)
}

func TestGenerate_UpstreamFailureIsGeneric(t *testing.T) {
	svc := new(mockGeneration)
	svc.On("Generate", mock.Anything, "").
		Return(nil, apperrors.Upstream("Image generation failed.", assert.AnError))

	w := doJSON(t, newGenerationRouter(svc), http.MethodPost, "/dalle", models.GenerateRequest{})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	resp := decode[models.ErrorResponse](t, w)
	assert.Equal(t, "Image generation failed.", resp.Error)
	assert.Empty(t, resp.Message)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestDescribe(t *testing.T) {
	svc := new(mockGeneration)
	req := models.DescribeRequest{Base64Image: "data:image/png;base64,AAAA", Color: "#ff0000"}
	svc.On("Describe", mock.Anything, req).Return("A red sofa.", nil)

	w := doJSON(t, newGenerationRouter(svc), http.MethodPost, "/dalle/describe", req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A red sofa.", decode[models.DescribeResponse](t, w).Result)
}

func TestEditWithTexture(t *testing.T) {
	svc := new(mockGeneration)
	svc.On("EditWithTexture", mock.Anything, mock.MatchedBy(func(in services.TextureEditInput) bool {
		return string(in.Base.Data) == "base" &&
			in.Base.MimeType == "image/jpeg" &&
			string(in.Texture.Data) == "texture" &&
			in.Prompt == "apply it" &&
			in.Hex == "#ff0000" &&
			in.Mode == "recolor" &&
			in.Product == "riders"
	})).Return(&services.ImageFile{Data: []byte("edited"), MimeType: "image/png"}, nil)

	req := multipartRequest(t, "/dalle/edit-with-texture",
		[]formFile{
			{field: "baseImage", name: "base.jpg", contentType: "image/jpeg", data: []byte("base")},
			{field: "textureImage", name: "tex.jpg", contentType: "image/jpeg", data: []byte("texture")},
		},
		map[string]string{"prompt": "apply it", "hex": "#ff0000", "mode": "recolor", "product": "riders"},
	)
	w := httptest.NewRecorder()
	newGenerationRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "edited", w.Body.String())
	svc.AssertExpectations(t)
}

func TestEditWithTexture_MissingBaseImage(t *testing.T) {
	svc := new(mockGeneration)

	req := multipartRequest(t, "/dalle/edit-with-texture",
		[]formFile{{field: "textureImage", name: "tex.jpg", contentType: "image/jpeg", data: []byte("texture")}},
		map[string]string{"prompt": "apply it"},
	)
	w := httptest.NewRecorder()
	newGenerationRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Error: Missing input.", decode[models.ErrorResponse](t, w).Error)
	svc.AssertNotCalled(t, "EditWithTexture", mock.Anything, mock.Anything)
}

func TestEditWithTexture_MissingPrompt(t *testing.T) {
	svc := new(mockGeneration)

	req := multipartRequest(t, "/dalle/edit-with-texture",
		[]formFile{
			{field: "baseImage", name: "base.jpg", contentType: "image/jpeg", data: []byte("base")},
			{field: "textureImage", name: "tex.jpg", contentType: "image/jpeg", data: []byte("texture")},
		}, nil)
	w := httptest.NewRecorder()
	newGenerationRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "EditWithTexture", mock.Anything, mock.Anything)
}

func TestEditWithTexture_FileTooLarge(t *testing.T) {
	svc := new(mockGeneration)

	req := multipartRequest(t, "/dalle/edit-with-texture",
		[]formFile{
			{field: "baseImage", name: "base.jpg", contentType: "image/jpeg", data: make([]byte, handlers.MaxUploadBytes+1)},
			{field: "textureImage", name: "tex.jpg", contentType: "image/jpeg", data: []byte("texture")},
		},
		map[string]string{"prompt": "apply it"},
	)
	w := httptest.NewRecorder()
	newGenerationRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "EditWithTexture", mock.Anything, mock.Anything)
}

func TestPalette(t *testing.T) {
	svc := new(mockGeneration)
	svc.On("Palette", mock.Anything, []byte("img")).Return(&palette.Palette{}, nil)

	req := multipartRequest(t, "/palette",
		[]formFile{{field: "image", name: "tex.png", contentType: "image/png", data: []byte("img")}}, nil)
	w := httptest.NewRecorder()
	newGenerationRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.PaletteResponse](t, w)
	assert.Len(t, resp.Swatches, len(palette.Names))
	for _, hex := range resp.Swatches {
		assert.Nil(t, hex)
	}
}
