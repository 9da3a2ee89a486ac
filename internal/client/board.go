package client

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"yocc-backend/internal/models"
)

type BoardAPI interface {
	ListAllOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

// AdminBoard is the administrator's local view of every order. Status
// changes are applied locally before the server confirms them.
type AdminBoard struct {
	api BoardAPI

	mu     sync.Mutex
	orders []models.Order
}

func NewAdminBoard(api BoardAPI) *AdminBoard {
	return &AdminBoard{api: api}
}

// Refresh replaces the local list with the server's.
func (b *AdminBoard) Refresh(ctx context.Context) error {
	orders, err := b.api.ListAllOrders(ctx)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.orders = orders
	b.mu.Unlock()
	return nil
}

// Orders returns a snapshot of the local list.
func (b *AdminBoard) Orders() []models.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.orders)
}

// UpdateStatus sets the status locally, then on the server. When the server
// rejects the change the list is re-fetched and the server's error returned.
// If the refetch fails too, the local status is put back and both errors are
// returned.
func (b *AdminBoard) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	b.mu.Lock()
	var previous models.OrderStatus
	for i := range b.orders {
		if b.orders[i].ID == id {
			previous = b.orders[i].Status
			b.orders[i].Status = status
			break
		}
	}
	b.mu.Unlock()

	updated, err := b.api.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		if refreshErr := b.Refresh(ctx); refreshErr != nil {
			b.restore(id, status, previous)
			return errors.Join(err, fmt.Errorf("refetch orders: %w", refreshErr))
		}
		return err
	}
	if updated == nil {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.orders {
		if b.orders[i].ID == id {
			owner := b.orders[i].Owner
			b.orders[i] = *updated
			if b.orders[i].Owner == nil {
				b.orders[i].Owner = owner
			}
			break
		}
	}
	return nil
}

// restore undoes an optimistic change that is still in place.
func (b *AdminBoard) restore(id uuid.UUID, optimistic, previous models.OrderStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.orders {
		if b.orders[i].ID == id && b.orders[i].Status == optimistic {
			b.orders[i].Status = previous
			return
		}
	}
}
