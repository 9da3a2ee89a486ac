package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"yocc-backend/internal/database"
	"yocc-backend/internal/handlers"
	"yocc-backend/internal/models"
	"yocc-backend/internal/services"
	"yocc-backend/internal/store"
)

const pngDataURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

type orderEnv struct {
	user   uuid.UUID
	store  *store.OrderStore
	images *memImages
	router http.Handler
}

func newOrderEnv(t *testing.T) *orderEnv {
	t.Helper()

	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	st := store.NewOrderStore(database.NewTestDB(t), func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	})
	images := newMemImages()
	svc := services.NewOrderService(st, images, zap.NewNop())
	h := handlers.NewOrdersHandler(svc)

	user := uuid.New()
	r := newRouter(user)
	r.POST("/orders", h.CreateOrder)
	r.GET("/orders", h.ListOrders)
	r.GET("/orders/manages", h.ListAllOrders)
	r.PUT("/orders/manages/:id", h.UpdateOrderStatus)

	return &orderEnv{user: user, store: st, images: images, router: r}
}

func orderBody() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		Nama:               "Budi",
		Email:              "budi@x.com",
		Alamat:             "Jl. Merdeka 1",
		Warna:              "#0463AC",
		Jumlah:             2,
		Prompt:             "blue sofa",
		MainReferenceImage: pngDataURI,
	}
}

func TestCreateOrder(t *testing.T) {
	env := newOrderEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/orders", orderBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decode[models.OrderResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Order created successfully!", resp.Message)
	require.NotNil(t, resp.Order)
	assert.Equal(t, models.StatusPending, resp.Order.Status)
	assert.Equal(t, env.user, resp.Order.UserID)
	assert.Equal(t, 2, resp.Order.Jumlah)
	assert.NotEmpty(t, resp.Order.MainReferenceImage.URL)
	assert.Nil(t, resp.Order.AdditionalReferenceImage)
	assert.Equal(t, 1, env.images.count())

	w = doJSON(t, env.router, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.Order](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, resp.Order.ID, list[0].ID)
}

func TestCreateOrder_WithAdditionalImage(t *testing.T) {
	env := newOrderEnv(t)

	body := orderBody()
	extra := pngDataURI
	body.AdditionalReferenceImage = &extra

	w := doJSON(t, env.router, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decode[models.OrderResponse](t, w)
	require.NotNil(t, resp.Order.AdditionalReferenceImage)
	assert.Equal(t, 2, env.images.count())
}

func TestCreateOrder_Invalid(t *testing.T) {
	env := newOrderEnv(t)

	body := orderBody()
	body.Jumlah = 0
	w := doJSON(t, env.router, http.MethodPost, "/orders", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = orderBody()
	body.MainReferenceImage = "data:text/plain;base64,aGVsbG8="
	w = doJSON(t, env.router, http.MethodPost, "/orders", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Zero(t, env.images.count())

	w = doJSON(t, env.router, http.MethodGet, "/orders", nil)
	assert.Empty(t, decode[[]models.Order](t, w))
}

func TestListOrders_Empty(t *testing.T) {
	env := newOrderEnv(t)

	w := doJSON(t, env.router, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestUpdateOrderStatus(t *testing.T) {
	env := newOrderEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/orders", orderBody())
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.OrderResponse](t, w).Order

	w = doJSON(t, env.router, http.MethodPut, "/orders/manages/"+created.ID.String(),
		models.UpdateStatusRequest{Status: "Shipped"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[models.OrderResponse](t, w)
	assert.Equal(t, "Order status updated successfully.", resp.Message)
	assert.Equal(t, models.StatusShipped, resp.Order.Status)
	assert.True(t, resp.Order.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.MainReferenceImage, resp.Order.MainReferenceImage)

	w = doJSON(t, env.router, http.MethodGet, "/orders/manages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[[]models.Order](t, w)
	require.Len(t, all, 1)
	assert.Equal(t, models.StatusShipped, all[0].Status)
}

func TestUpdateOrderStatus_Errors(t *testing.T) {
	env := newOrderEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/orders", orderBody())
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.OrderResponse](t, w).Order

	t.Run("unknown order", func(t *testing.T) {
		w := doJSON(t, env.router, http.MethodPut, "/orders/manages/"+uuid.NewString(),
			models.UpdateStatusRequest{Status: "Shipped"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Order not found.", decode[models.ErrorResponse](t, w).Error)
	})

	t.Run("invalid status", func(t *testing.T) {
		w := doJSON(t, env.router, http.MethodPut, "/orders/manages/"+created.ID.String(),
			models.UpdateStatusRequest{Status: "Delivered"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid status.", decode[models.ErrorResponse](t, w).Error)
	})

	for _, id := range []string{"UNKNOWN", "not-a-uuid"} {
		t.Run("malformed id "+id, func(t *testing.T) {
			w := doJSON(t, env.router, http.MethodPut, "/orders/manages/"+id,
				models.UpdateStatusRequest{Status: "Shipped"})
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "Order not found.", decode[models.ErrorResponse](t, w).Error)
		})
	}

	t.Run("status checked before id", func(t *testing.T) {
		w := doJSON(t, env.router, http.MethodPut, "/orders/manages/UNKNOWN",
			models.UpdateStatusRequest{Status: "Delivered"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid status.", decode[models.ErrorResponse](t, w).Error)
	})

	got, err := env.store.Get(t.Context(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
}
