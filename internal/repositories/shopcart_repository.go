package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/devops-shopcarts/shopcart-service/internal/models"
	"github.com/devops-shopcarts/shopcart-service/internal/utils"
	"github.com/lib/pq"
)

type ShopcartRepository interface {
	CreateShopcart(ctx context.Context, shopcart *models.Shopcart) error
	GetShopcartByID(ctx context.Context, id int64) (*models.Shopcart, error)
	ShopcartExists(ctx context.Context, id int64) (bool, error)
	UpdateShopcart(ctx context.Context, shopcart *models.Shopcart) error
	DeleteShopcart(ctx context.Context, id int64) (int64, error)
	ListShopcarts(ctx context.Context) ([]*models.Shopcart, error)
	FindByCustomerName(ctx context.Context, customerName string) ([]*models.Shopcart, error)
	EmptyShopcart(ctx context.Context, id int64) (*models.Shopcart, error)
}

type shopcartRepository struct {
	DB *sql.DB
}

func NewShopcartRepo(db *sql.DB) ShopcartRepository {
	return &shopcartRepository{DB: db}
}

func (r *shopcartRepository) CreateShopcart(ctx context.Context, shopcart *models.Shopcart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO shopcarts (customer_name)
			  VALUES ($1)
			  RETURNING id, created_at, last_updated
	`

	return r.DB.QueryRowContext(dbCtx, query, shopcart.CustomerName).Scan(&shopcart.ID, &shopcart.CreatedAt, &shopcart.LastUpdated)
}

func (r *shopcartRepository) GetShopcartByID(ctx context.Context, id int64) (*models.Shopcart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	shopcart := &models.Shopcart{Items: []*models.Item{}}

	query := `
		SELECT id, customer_name, created_at, last_updated
		FROM shopcarts
		WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&shopcart.ID, &shopcart.CustomerName, &shopcart.CreatedAt, &shopcart.LastUpdated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	itemsByCart, err := r.loadItems(dbCtx, []int64{shopcart.ID})
	if err != nil {
		return nil, err
	}

	if items, ok := itemsByCart[shopcart.ID]; ok {
		shopcart.Items = items
	}

	return shopcart, nil
}

func (r *shopcartRepository) ShopcartExists(ctx context.Context, id int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM shopcarts WHERE id = $1)`

	if err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("querying database: %w", err)
	}

	return exists, nil
}

func (r *shopcartRepository) UpdateShopcart(ctx context.Context, shopcart *models.Shopcart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE shopcarts SET customer_name = $1, last_updated = NOW()
		WHERE id = $2
		RETURNING last_updated
	`

	return r.DB.QueryRowContext(dbCtx, query, shopcart.CustomerName, shopcart.ID).Scan(&shopcart.LastUpdated)
}

// DeleteShopcart reports rows affected so callers can stay idempotent.
// Items go with the cart via ON DELETE CASCADE.
func (r *shopcartRepository) DeleteShopcart(ctx context.Context, id int64) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM shopcarts WHERE id = $1`

	result, err := r.DB.ExecContext(dbCtx, query, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete the shopcart: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get deleted rows: %w", err)
	}

	return deletedRows, nil
}

func (r *shopcartRepository) ListShopcarts(ctx context.Context) ([]*models.Shopcart, error) {

	query := `
		SELECT id, customer_name, created_at, last_updated
		FROM shopcarts
		ORDER BY id
	`

	return r.queryShopcarts(ctx, query)
}

func (r *shopcartRepository) FindByCustomerName(ctx context.Context, customerName string) ([]*models.Shopcart, error) {

	query := `
		SELECT id, customer_name, created_at, last_updated
		FROM shopcarts
		WHERE customer_name = $1
		ORDER BY id
	`

	return r.queryShopcarts(ctx, query, customerName)
}

// EmptyShopcart removes every item of the cart and touches last_updated in a
// single transaction, keeping the cart row itself intact.
func (r *shopcartRepository) EmptyShopcart(ctx context.Context, id int64) (*models.Shopcart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	deleteQuery := `DELETE FROM items WHERE shopcart_id = $1`

	if _, err := tx.ExecContext(dbCtx, deleteQuery, id); err != nil {
		return nil, fmt.Errorf("failed to clear shopcart items: %w", err)
	}

	shopcart := &models.Shopcart{Items: []*models.Item{}}

	touchQuery := `
		UPDATE shopcarts SET last_updated = NOW()
		WHERE id = $1
		RETURNING id, customer_name, created_at, last_updated
	`

	err = tx.QueryRowContext(dbCtx, touchQuery, id).Scan(&shopcart.ID, &shopcart.CustomerName, &shopcart.CreatedAt, &shopcart.LastUpdated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("failed to touch shopcart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return shopcart, nil
}

func (r *shopcartRepository) queryShopcarts(ctx context.Context, query string, args ...any) ([]*models.Shopcart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	shopcarts := []*models.Shopcart{}
	var ids []int64

	for rows.Next() {
		shopcart := &models.Shopcart{Items: []*models.Item{}}

		err := rows.Scan(&shopcart.ID, &shopcart.CustomerName, &shopcart.CreatedAt, &shopcart.LastUpdated)
		if err != nil {
			return nil, err
		}

		shopcarts = append(shopcarts, shopcart)
		ids = append(ids, shopcart.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return shopcarts, nil
	}

	itemsByCart, err := r.loadItems(dbCtx, ids)
	if err != nil {
		return nil, err
	}

	for _, shopcart := range shopcarts {
		if items, ok := itemsByCart[shopcart.ID]; ok {
			shopcart.Items = items
		}
	}

	return shopcarts, nil
}

// loadItems fetches the items of all the given carts in one query.
func (r *shopcartRepository) loadItems(ctx context.Context, shopcartIDs []int64) (map[int64][]*models.Item, error) {

	query := `
		SELECT id, shopcart_id, name, description, price, quantity, is_urgent, created_at, last_updated
		FROM items
		WHERE shopcart_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(shopcartIDs))
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	itemsByCart := make(map[int64][]*models.Item)

	for rows.Next() {
		item := &models.Item{}

		err := rows.Scan(&item.ID, &item.ShopcartID, &item.Name, &item.Description, &item.Price, &item.Quantity, &item.IsUrgent, &item.CreatedAt, &item.LastUpdated)
		if err != nil {
			return nil, err
		}

		itemsByCart[item.ShopcartID] = append(itemsByCart[item.ShopcartID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return itemsByCart, nil
}
