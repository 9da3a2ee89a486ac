// Package client talks to the YOCC API and implements the customer and
// administrator flows on top of it: order submission, the optimistic admin
// board and the texture edit wizard.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
	"yocc-backend/internal/models"
)

const apiPrefix = "/api/v1"

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient returns a client for the server at baseURL authenticating with
// the bearer token. Generation requests can take a while, hence the timeout.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 180 * time.Second,
		},
	}
}

// BaseURL is the server root, used to resolve catalog texture assets.
func (c *Client) BaseURL() string { return c.baseURL }

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: status %d: %s (%s)", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	var resp models.OrderResponse
	if err := c.doJSON(ctx, http.MethodPost, "/orders", req, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.doJSON(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.doJSON(ctx, http.MethodGet, "/orders/manages", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	var resp models.OrderResponse
	body := models.UpdateStatusRequest{Status: string(status)}
	if err := c.doJSON(ctx, http.MethodPut, "/orders/manages/"+id.String(), body, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

func (c *Client) Generate(ctx context.Context, prompt string) (*models.GenerateResponse, error) {
	var resp models.GenerateResponse
	if err := c.doJSON(ctx, http.MethodPost, "/dalle", models.GenerateRequest{Prompt: prompt}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Describe(ctx context.Context, dataURI, color string) (string, error) {
	var resp models.DescribeResponse
	req := models.DescribeRequest{Base64Image: dataURI, Color: color}
	if err := c.doJSON(ctx, http.MethodPost, "/dalle/describe", req, &resp); err != nil {
		return "", err
	}
	return resp.Result, nil
}

func (c *Client) GetProfile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.doJSON(ctx, http.MethodGet, "/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req models.ProfileRequest) (*models.Profile, error) {
	var p models.Profile
	if err := c.doJSON(ctx, http.MethodPut, "/profile", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// File is one multipart upload.
type File struct {
	Name     string
	MimeType string
	Data     []byte
}

type EditRequest struct {
	Base    File
	Texture File
	Prompt  string
	Hex     string
	Mode    Mode
	Product string
}

// EditWithTexture posts the multipart edit request and returns the edited
// image bytes and their MIME type.
func (c *Client) EditWithTexture(ctx context.Context, req EditRequest) ([]byte, string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := writeFile(mw, "baseImage", req.Base); err != nil {
		return nil, "", err
	}
	if err := writeFile(mw, "textureImage", req.Texture); err != nil {
		return nil, "", err
	}
	fields := []struct{ name, value string }{
		{"prompt", req.Prompt},
		{"hex", req.Hex},
		{"mode", string(req.Mode)},
		{"product", req.Product},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("failed to write %s: %w", f.name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart body: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/dalle/edit-with-texture", mw.FormDataContentType(), &body)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// Palette asks the server to extract swatches from an image.
func (c *Client) Palette(ctx context.Context, img File) (map[string]*string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := writeFile(mw, "image", img); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/palette", mw.FormDataContentType(), &body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out models.PaletteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return out.Swatches, nil
}

func writeFile(mw *multipart.Writer, field string, f File) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, f.Name))
	h.Set("Content-Type", f.MimeType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", field, err)
	}
	if _, err := part.Write(f.Data); err != nil {
		return fmt.Errorf("failed to write %s: %w", field, err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		jsonData, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(jsonData)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, path, contentType, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// do sends the request and turns non-2xx answers into *APIError. The caller
// closes the body of a successful response.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		respBody, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
		var envelope models.ErrorResponse
		if json.Unmarshal(respBody, &envelope) == nil && envelope.Error != "" {
			apiErr.Message = envelope.Error
			apiErr.Detail = envelope.Message
		}
		return nil, apiErr
	}
	return resp, nil
}
