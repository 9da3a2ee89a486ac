package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"yocc-backend/internal/apperrors"
	"yocc-backend/internal/models"
	"yocc-backend/internal/palette"
	"yocc-backend/internal/services"
)

// MaxUploadBytes is the per-file limit on multipart image uploads.
const MaxUploadBytes = 10 << 20

type GenerationService interface {
	Generate(ctx context.Context, prompt string) (*models.GenerateResponse, error)
	Describe(ctx context.Context, req models.DescribeRequest) (string, error)
	EditWithTexture(ctx context.Context, in services.TextureEditInput) (*services.ImageFile, error)
	Palette(ctx context.Context, data []byte) (*palette.Palette, error)
}

type GenerationHandler struct {
	generation GenerationService
}

func NewGenerationHandler(generation GenerationService) *GenerationHandler {
	return &GenerationHandler{generation: generation}
}

// Generate godoc
// @Summary     Generate an image
// @Description Generates one 1024x1024 image. A blank prompt uses the default seating texture prompt.
// @Tags        dalle
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.GenerateRequest false "Prompt"
// @Success     200 {object} models.GenerateResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /dalle [post]
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(apperrors.Validation("Invalid request body.", err))
			return
		}
	}

	resp, err := h.generation.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Describe godoc
// @Summary     Describe an image
// @Description Returns a prompt that recreates the image with the furniture in the given color.
// @Tags        dalle
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.DescribeRequest true "Data URI image and color"
// @Success     200 {object} models.DescribeResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /dalle/describe [post]
func (h *GenerationHandler) Describe(c *gin.Context) {
	var req models.DescribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Validation("Invalid image data.", err))
		return
	}

	result, err := h.generation.Describe(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.DescribeResponse{Result: result})
}

// EditWithTexture godoc
// @Summary     Apply a texture to a product photo
// @Description Sends the base image and texture to the image editing model and returns the edited image bytes.
// @Tags        dalle
// @Accept      multipart/form-data
// @Produce     image/png
// @Security    Bearer
// @Param       baseImage    formData file   true  "Product photo"
// @Param       textureImage formData file   true  "Texture"
// @Param       prompt       formData string true  "Edit instruction"
// @Param       hex          formData string false "Selected color"
// @Param       mode         formData string false "keep or recolor"
// @Param       product      formData string false "Catalog product"
// @Success     200 {file} binary
// @Failure     400 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /dalle/edit-with-texture [post]
func (h *GenerationHandler) EditWithTexture(c *gin.Context) {
	base, err := readImageField(c, "baseImage")
	if err != nil {
		_ = c.Error(err)
		return
	}
	texture, err := readImageField(c, "textureImage")
	if err != nil {
		_ = c.Error(err)
		return
	}

	prompt := c.PostForm("prompt")
	if prompt == "" {
		_ = c.Error(apperrors.Validation("Error: Missing input.", nil))
		return
	}

	img, err := h.generation.EditWithTexture(c.Request.Context(), services.TextureEditInput{
		Base:    *base,
		Texture: *texture,
		Prompt:  prompt,
		Hex:     c.PostForm("hex"),
		Mode:    c.PostForm("mode"),
		Product: c.PostForm("product"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Data(http.StatusOK, img.MimeType, img.Data)
}

// Palette godoc
// @Summary     Extract swatches
// @Description Returns the Vibrant, DarkVibrant, LightVibrant and Muted swatches of an image. Absent swatches are null.
// @Tags        palette
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       image formData file true "Texture image"
// @Success     200 {object} models.PaletteResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /palette [post]
func (h *GenerationHandler) Palette(c *gin.Context) {
	img, err := readImageField(c, "image")
	if err != nil {
		_ = c.Error(err)
		return
	}

	p, err := h.generation.Palette(c.Request.Context(), img.Data)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, models.PaletteResponse{Swatches: p.Hexes()})
}

// readImageField reads one multipart file, enforcing MaxUploadBytes. The MIME
// type comes from the part header and is sniffed when missing or generic.
func readImageField(c *gin.Context, field string) (*services.ImageFile, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, apperrors.Validation("Error: Missing input.", fmt.Errorf("%s: %w", field, err))
	}
	if fh.Size > MaxUploadBytes {
		return nil, apperrors.Validation(fmt.Sprintf("%s exceeds the 10 MB limit.", field), nil)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("open %s: %w", field, err))
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("read %s: %w", field, err))
	}
	if len(data) > MaxUploadBytes {
		return nil, apperrors.Validation(fmt.Sprintf("%s exceeds the 10 MB limit.", field), nil)
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = mimetype.Detect(data).String()
	}
	return &services.ImageFile{Data: data, MimeType: mimeType}, nil
}
