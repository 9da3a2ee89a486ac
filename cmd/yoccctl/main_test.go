package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yocc-backend/internal/models"
)

func writePNG(t *testing.T, path string, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestPaletteLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.png")
	writePNG(t, path, color.RGBA{R: 30, G: 100, B: 220, A: 255})

	var out bytes.Buffer
	require.NoError(t, newApp(&out).Run([]string{"yoccctl", "palette", path}))

	var resp models.PaletteResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	require.NotNil(t, resp.Swatches["Vibrant"])
	assert.Equal(t, "#1e64dc", *resp.Swatches["Vibrant"])
}

func TestAdminSetStatus(t *testing.T) {
	id := uuid.New()
	order := models.Order{ID: id, Status: models.StatusPending}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/orders/manages":
			_ = json.NewEncoder(w).Encode([]models.Order{order})
		case r.Method == http.MethodPut && r.URL.Path == "/api/v1/orders/manages/"+id.String():
			var req models.UpdateStatusRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			order.Status = models.OrderStatus(req.Status)
			_ = json.NewEncoder(w).Encode(models.OrderResponse{Success: true, Order: &order})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := newApp(&out).Run([]string{"yoccctl", "--server", srv.URL, "--token", "admin-token",
		"admin", "set-status", id.String(), "Shipped"})
	require.NoError(t, err)

	var got models.Order
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, models.StatusShipped, got.Status)
}

func TestAdminSetStatus_InvalidStatus(t *testing.T) {
	var out bytes.Buffer
	err := newApp(&out).Run([]string{"yoccctl", "--server", "http://127.0.0.1:1",
		"admin", "set-status", uuid.NewString(), "Lost"})
	assert.Error(t, err)
}
