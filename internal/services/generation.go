package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"yocc-backend/internal/apperrors"
	"yocc-backend/internal/gemini"
	"yocc-backend/internal/models"
	"yocc-backend/internal/openai"
	"yocc-backend/internal/palette"
	"yocc-backend/internal/prompts"
)

const (
	imageSize      = "1024x1024"
	describeTokens = 2000

	msgGenerationFailed = "Image generation failed."
	msgMissingInput     = "Error: Missing input."
)

type OpenAIAPI interface {
	GenerateImage(ctx context.Context, req openai.ImageRequest) (*openai.ImageResponse, error)
	ChatCompletion(ctx context.Context, req openai.ChatRequest) (string, error)
}

type GeminiAPI interface {
	GenerateContent(ctx context.Context, model string, req gemini.GenerateContentRequest) (*gemini.GenerateContentResponse, error)
}

type GenerationModels struct {
	Image  string
	Vision string
	Edit   string
}

// GenerationService fronts the AI providers. Provider errors are logged by
// the error middleware and never returned verbatim to clients.
type GenerationService struct {
	openai OpenAIAPI
	gemini GeminiAPI
	names  GenerationModels
	logger *zap.Logger
}

func NewGenerationService(openaiClient OpenAIAPI, geminiClient GeminiAPI, m GenerationModels, logger *zap.Logger) *GenerationService {
	return &GenerationService{
		openai: openaiClient,
		gemini: geminiClient,
		names:  m,
		logger: logger,
	}
}

// Generate produces one image for prompt, or for the default seating
// texture prompt when prompt is blank.
func (s *GenerationService) Generate(ctx context.Context, prompt string) (*models.GenerateResponse, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		prompt = prompts.DefaultGeneration()
	}

	resp, err := s.openai.GenerateImage(ctx, openai.ImageRequest{
		Model:          s.names.Image,
		Prompt:         prompt,
		N:              1,
		Size:           imageSize,
		ResponseFormat: "b64_json",
	})
	if err != nil {
		return nil, apperrors.Upstream(msgGenerationFailed, err)
	}

	images := make([]models.GeneratedImage, 0, len(resp.Data))
	for _, d := range resp.Data {
		images = append(images, models.GeneratedImage{B64JSON: d.B64JSON})
	}
	return &models.GenerateResponse{Images: images, Prompt: prompt}, nil
}

// Describe asks the vision model for a recreation prompt of the image with
// the furniture recolored.
func (s *GenerationService) Describe(ctx context.Context, req models.DescribeRequest) (string, error) {
	if !strings.HasPrefix(req.Base64Image, "data:image") {
		return "", apperrors.Validation("Invalid image data.", nil)
	}

	result, err := s.openai.ChatCompletion(ctx, openai.ChatRequest{
		Model: s.names.Vision,
		Messages: []openai.Message{{
			Role: "user",
			Content: []openai.ContentPart{
				openai.TextPart(prompts.Describe(req.Color)),
				openai.ImagePart(req.Base64Image),
			},
		}},
		MaxTokens: describeTokens,
	})
	if err != nil {
		return "", apperrors.Upstream(msgGenerationFailed, err)
	}
	return result, nil
}

// ImageFile is an uploaded image.
type ImageFile struct {
	Data     []byte
	MimeType string
}

type TextureEditInput struct {
	Base    ImageFile
	Texture ImageFile
	Prompt  string
	Hex     string
	Mode    string
	Product string
}

// EditWithTexture sends the base image, the texture and the instruction to
// the image editing model and returns the single edited image.
func (s *GenerationService) EditWithTexture(ctx context.Context, in TextureEditInput) (*ImageFile, error) {
	if len(in.Base.Data) == 0 || len(in.Texture.Data) == 0 || strings.TrimSpace(in.Prompt) == "" {
		return nil, apperrors.Validation(msgMissingInput, nil)
	}

	s.logger.Info("editing image with texture",
		zap.String("mode", in.Mode),
		zap.String("product", in.Product),
		zap.String("hex", in.Hex),
		zap.Int("base_bytes", len(in.Base.Data)),
		zap.Int("texture_bytes", len(in.Texture.Data)),
	)

	resp, err := s.gemini.GenerateContent(ctx, s.names.Edit, gemini.GenerateContentRequest{
		Contents: []gemini.Content{{
			Role: "user",
			Parts: []gemini.Part{
				gemini.TextPart(in.Prompt),
				gemini.InlinePart(in.Base.Data, in.Base.MimeType),
				gemini.TextPart(prompts.TextureSeparator),
				gemini.InlinePart(in.Texture.Data, in.Texture.MimeType),
			},
		}},
		GenerationConfig: &gemini.GenerationConfig{
			ResponseModalities: []string{gemini.ModalityImage, gemini.ModalityText},
		},
	})
	if err != nil {
		return nil, apperrors.Upstream(msgGenerationFailed, err)
	}

	img, ok := resp.FirstImage()
	if !ok {
		text := resp.FirstText()
		if text == "" {
			text = "No text response found."
		}
		s.logger.Warn("model returned no image", zap.String("text", text))
		return nil, apperrors.Upstream(msgGenerationFailed, fmt.Errorf("no image in response: %s", text))
	}

	mimeType := img.MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}
	return &ImageFile{Data: img.Data, MimeType: mimeType}, nil
}

// Palette extracts the named swatches of an uploaded image.
func (s *GenerationService) Palette(ctx context.Context, data []byte) (*palette.Palette, error) {
	if len(data) == 0 {
		return nil, apperrors.Validation(msgMissingInput, nil)
	}
	p, err := palette.Extract(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.Validation("Unsupported image.", err)
	}
	return p, nil
}
