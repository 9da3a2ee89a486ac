package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"yocc-backend/internal/apperrors"
	"yocc-backend/internal/database"
	"yocc-backend/internal/models"
)

const orderNotFound = "Order not found."

// OrderStore persists orders. Orders are created Pending, their reference
// images never change, and they are never deleted.
type OrderStore struct {
	db  *database.DB
	now func() time.Time
}

// NewOrderStore returns a store using db. now defaults to time.Now.
func NewOrderStore(db *database.DB, now func() time.Time) *OrderStore {
	if now == nil {
		now = time.Now
	}
	return &OrderStore{db: db, now: now}
}

func (s *OrderStore) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

const orderColumns = `
	o.id, o.user_id, o.nama, o.email, o.alamat, o.warna, o.jumlah, o.prompt,
	o.main_image_url, o.main_image_public_id,
	o.additional_image_url, o.additional_image_public_id,
	o.status, o.created_at, o.updated_at`

// Create inserts order with a fresh id when none is set, status Pending and
// both timestamps set to now. Fields are expected to be validated already.
func (s *OrderStore) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := s.timestamp()

	var addURL, addID sql.NullString
	if ref := order.AdditionalReferenceImage; ref != nil {
		addURL = sql.NullString{String: ref.URL, Valid: true}
		addID = sql.NullString{String: ref.PublicID, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO orders (
			id, user_id, nama, email, alamat, warna, jumlah, prompt,
			main_image_url, main_image_public_id,
			additional_image_url, additional_image_public_id,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`), order.ID, order.UserID, order.Nama, order.Email, order.Alamat, order.Warna, order.Jumlah, order.Prompt,
		order.MainReferenceImage.URL, order.MainReferenceImage.PublicID,
		addURL, addID,
		string(models.StatusPending), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return s.Get(ctx, order.ID)
}

func (s *OrderStore) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	row := s.db.QueryRowContext(ctx, s.db.Rebind(`
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.id = $1
	`), id)

	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound(orderNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// ListByOwner returns the user's orders newest first. No rows is an empty
// slice, not an error.
func (s *OrderStore) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx, s.db.Rebind(`
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC, o.id DESC
	`), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// ListAll returns every order newest first with the owner's profile
// attached when one exists.
func (s *OrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+orderColumns+`,
			p.first_name, p.last_name, p.email, p.address
		FROM orders o
		LEFT JOIN profiles p ON p.user_id = o.user_id
		ORDER BY o.created_at DESC, o.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list all orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var first, last, email, address sql.NullString
		order, err := scanOrder(rows, &first, &last, &email, &address)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if first.Valid {
			order.Owner = &models.Owner{
				ID:        order.UserID,
				FirstName: first.String,
				LastName:  last.String,
				Email:     email.String,
				Address:   address.String,
			}
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list all orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus replaces the order's status in one statement and returns the
// updated record. Concurrent updates are last write wins.
func (s *OrderStore) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, apperrors.Validation("Invalid status.", fmt.Errorf("unknown status %q", status))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, s.db.Rebind(`
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE id = $3
	`), string(status), s.timestamp(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if n == 0 {
		return nil, apperrors.NotFound(orderNotFound)
	}

	row := tx.QueryRowContext(ctx, s.db.Rebind(`
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.id = $1
	`), id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("failed to read updated order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit status update: %w", err)
	}
	return order, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner, extra ...any) (*models.Order, error) {
	var (
		order         models.Order
		addURL, addID sql.NullString
		status        string
	)
	dest := []any{
		&order.ID, &order.UserID, &order.Nama, &order.Email, &order.Alamat, &order.Warna, &order.Jumlah, &order.Prompt,
		&order.MainReferenceImage.URL, &order.MainReferenceImage.PublicID,
		&addURL, &addID,
		&status, &order.CreatedAt, &order.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	if addURL.Valid {
		order.AdditionalReferenceImage = &models.ImageRef{URL: addURL.String, PublicID: addID.String}
	}
	order.Status = models.OrderStatus(status)
	order.CreatedAt = order.CreatedAt.UTC()
	order.UpdatedAt = order.UpdatedAt.UTC()
	return &order, nil
}
