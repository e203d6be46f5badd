package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/devops-shopcarts/shopcart-service/internal/models"
	"github.com/devops-shopcarts/shopcart-service/internal/utils"
)

type ItemRepository interface {
	CreateItem(ctx context.Context, item *models.Item) error
	GetItemByID(ctx context.Context, shopcartID, itemID int64) (*models.Item, error)
	UpdateItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, shopcartID, itemID int64) (int64, error)
	ListItemsByShopcart(ctx context.Context, shopcartID int64) ([]*models.Item, error)
	FindByNameWithinShopcart(ctx context.Context, shopcartID int64, name string) ([]*models.Item, error)
}

type itemRepository struct {
	DB *sql.DB
}

func NewItemRepo(db *sql.DB) ItemRepository {
	return &itemRepository{DB: db}
}

func (r *itemRepository) CreateItem(ctx context.Context, item *models.Item) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO items (shopcart_id, name, description, price, quantity, is_urgent)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, last_updated
	`

	return r.DB.QueryRowContext(dbCtx, query, item.ShopcartID, item.Name, item.Description, item.Price, item.Quantity, item.IsUrgent).Scan(&item.ID, &item.CreatedAt, &item.LastUpdated)
}

func (r *itemRepository) GetItemByID(ctx context.Context, shopcartID, itemID int64) (*models.Item, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	item := &models.Item{}

	query := `
		SELECT id, shopcart_id, name, description, price, quantity, is_urgent, created_at, last_updated
		FROM items
		WHERE id = $1 AND shopcart_id = $2`

	err := r.DB.QueryRowContext(dbCtx, query, itemID, shopcartID).Scan(&item.ID, &item.ShopcartID, &item.Name, &item.Description, &item.Price, &item.Quantity, &item.IsUrgent, &item.CreatedAt, &item.LastUpdated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return item, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *models.Item) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE items SET name = $1, description = $2, price = $3, quantity = $4, is_urgent = $5, last_updated = NOW()
		WHERE id = $6 AND shopcart_id = $7
		RETURNING last_updated
	`

	return r.DB.QueryRowContext(dbCtx, query, item.Name, item.Description, item.Price, item.Quantity, item.IsUrgent, item.ID, item.ShopcartID).Scan(&item.LastUpdated)
}

// DeleteItem reports rows affected so callers can stay idempotent.
func (r *itemRepository) DeleteItem(ctx context.Context, shopcartID, itemID int64) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM items WHERE id = $1 AND shopcart_id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, itemID, shopcartID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete the item: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get deleted rows: %w", err)
	}

	return deletedRows, nil
}

func (r *itemRepository) ListItemsByShopcart(ctx context.Context, shopcartID int64) ([]*models.Item, error) {

	query := `
		SELECT id, shopcart_id, name, description, price, quantity, is_urgent, created_at, last_updated
		FROM items
		WHERE shopcart_id = $1
		ORDER BY id
	`

	return r.queryItems(ctx, query, shopcartID)
}

func (r *itemRepository) FindByNameWithinShopcart(ctx context.Context, shopcartID int64, name string) ([]*models.Item, error) {

	query := `
		SELECT id, shopcart_id, name, description, price, quantity, is_urgent, created_at, last_updated
		FROM items
		WHERE shopcart_id = $1 AND name = $2
		ORDER BY id
	`

	return r.queryItems(ctx, query, shopcartID, name)
}

func (r *itemRepository) queryItems(ctx context.Context, query string, args ...any) ([]*models.Item, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	items := []*models.Item{}

	for rows.Next() {
		item := &models.Item{}

		err := rows.Scan(&item.ID, &item.ShopcartID, &item.Name, &item.Description, &item.Price, &item.Quantity, &item.IsUrgent, &item.CreatedAt, &item.LastUpdated)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
