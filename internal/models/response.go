package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type OrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Order   *Order `json:"order"`
}

type GeneratedImage struct {
	B64JSON string `json:"b64_json"`
}

type GenerateResponse struct {
	Images []GeneratedImage `json:"images"`
	Prompt string           `json:"prompt"`
}

type DescribeResponse struct {
	Result string `json:"result"`
}

// PaletteResponse maps swatch name to hex color; absent swatches are null.
type PaletteResponse struct {
	Swatches map[string]*string `json:"swatches"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
