package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	appErrors "github.com/devops-shopcarts/shopcart-service/internal/errors"
	"github.com/devops-shopcarts/shopcart-service/internal/models"
	repository "github.com/devops-shopcarts/shopcart-service/internal/repositories"
)

type ItemService interface {
	EnsureShopcart(ctx context.Context, shopcartID int64) error
	AddItem(ctx context.Context, shopcartID int64, req *models.CreateItemRequest) (*models.Item, error)
	GetItem(ctx context.Context, shopcartID, itemID int64) (*models.Item, error)
	UpdateItem(ctx context.Context, shopcartID, itemID int64, req *models.UpdateItemRequest) (*models.Item, error)
	RemoveItem(ctx context.Context, shopcartID, itemID int64) error
	ListItems(ctx context.Context, shopcartID int64) ([]*models.Item, error)
	SearchItems(ctx context.Context, shopcartID int64, name string) ([]*models.Item, error)
}

type itemService struct {
	itemRepo     repository.ItemRepository
	shopcartRepo repository.ShopcartRepository
}

func NewItemService(itemRepo repository.ItemRepository, shopcartRepo repository.ShopcartRepository) ItemService {
	return &itemService{itemRepo: itemRepo, shopcartRepo: shopcartRepo}
}

// EnsureShopcart answers NotFound when the parent cart is absent. Handlers
// call it before touching the request body, so an absent cart wins over
// invalid item fields.
func (s *itemService) EnsureShopcart(ctx context.Context, shopcartID int64) error {
	return s.checkShopcart(ctx, shopcartID)
}

func (s *itemService) AddItem(ctx context.Context, shopcartID int64, req *models.CreateItemRequest) (*models.Item, error) {

	if err := s.checkShopcart(ctx, shopcartID); err != nil {
		return nil, err
	}

	item := &models.Item{
		ShopcartID:  shopcartID,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Quantity:    *req.Quantity,
		IsUrgent:    req.IsUrgent,
	}

	if err := s.itemRepo.CreateItem(ctx, item); err != nil {
		return nil, appErrors.DatabaseError("Failed to create item").WithError(err)
	}

	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, shopcartID, itemID int64) (*models.Item, error) {

	item, err := s.itemRepo.GetItemByID(ctx, shopcartID, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError(fmt.Sprintf("Item with id '%d' could not be found in shopcart '%d'", itemID, shopcartID)).WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch item").WithError(err)
	}

	return item, nil
}

// UpdateItem replaces the full mutable field set; id and shopcart_id stay put.
func (s *itemService) UpdateItem(ctx context.Context, shopcartID, itemID int64, req *models.UpdateItemRequest) (*models.Item, error) {

	item, err := s.GetItem(ctx, shopcartID, itemID)
	if err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = *req.Price
	item.Quantity = *req.Quantity
	item.IsUrgent = req.IsUrgent

	if err := s.itemRepo.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError(fmt.Sprintf("Item with id '%d' could not be found in shopcart '%d'", itemID, shopcartID)).WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update item").WithError(err)
	}

	return item, nil
}

// RemoveItem is idempotent: deleting an absent item is not an error.
func (s *itemService) RemoveItem(ctx context.Context, shopcartID, itemID int64) error {

	if _, err := s.itemRepo.DeleteItem(ctx, shopcartID, itemID); err != nil {
		return appErrors.DatabaseError("Failed to delete item").WithError(err)
	}

	return nil
}

func (s *itemService) ListItems(ctx context.Context, shopcartID int64) ([]*models.Item, error) {

	if err := s.checkShopcart(ctx, shopcartID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListItemsByShopcart(ctx, shopcartID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch items").WithError(err)
	}

	return items, nil
}

func (s *itemService) SearchItems(ctx context.Context, shopcartID int64, name string) ([]*models.Item, error) {

	if err := s.checkShopcart(ctx, shopcartID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindByNameWithinShopcart(ctx, shopcartID, name)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to search items").WithError(err)
	}

	return items, nil
}

func (s *itemService) checkShopcart(ctx context.Context, shopcartID int64) error {

	exists, err := s.shopcartRepo.ShopcartExists(ctx, shopcartID)
	if err != nil {
		return appErrors.DatabaseError("Failed to check shopcart").WithError(err)
	}

	if !exists {
		return appErrors.NotFoundError(fmt.Sprintf("Shopcart with id '%d' could not be found", shopcartID))
	}

	return nil
}
