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

type ShopcartService interface {
	CreateShopcart(ctx context.Context, req *models.CreateShopcartRequest) (*models.Shopcart, error)
	GetShopcart(ctx context.Context, id int64) (*models.Shopcart, error)
	UpdateShopcart(ctx context.Context, id int64, req *models.UpdateShopcartRequest) (*models.Shopcart, error)
	DeleteShopcart(ctx context.Context, id int64) error
	ListShopcarts(ctx context.Context) ([]*models.Shopcart, error)
	SearchShopcarts(ctx context.Context, customerName string) ([]*models.Shopcart, error)
	EmptyShopcart(ctx context.Context, id int64) (*models.Shopcart, error)
}

type shopcartService struct {
	repo repository.ShopcartRepository
}

func NewShopcartService(repo repository.ShopcartRepository) ShopcartService {
	return &shopcartService{repo: repo}
}

func (s *shopcartService) CreateShopcart(ctx context.Context, req *models.CreateShopcartRequest) (*models.Shopcart, error) {

	shopcart := &models.Shopcart{
		CustomerName: req.CustomerName,
		Items:        []*models.Item{},
	}

	err := s.repo.CreateShopcart(ctx, shopcart)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to create shopcart").WithError(err)
	}

	return shopcart, nil
}

func (s *shopcartService) GetShopcart(ctx context.Context, id int64) (*models.Shopcart, error) {

	shopcart, err := s.repo.GetShopcartByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError(fmt.Sprintf("Shopcart with id '%d' could not be found", id)).WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch shopcart").WithError(err)
	}

	return shopcart, nil
}

// UpdateShopcart replaces the full mutable field set of the cart.
func (s *shopcartService) UpdateShopcart(ctx context.Context, id int64, req *models.UpdateShopcartRequest) (*models.Shopcart, error) {

	shopcart, err := s.GetShopcart(ctx, id)
	if err != nil {
		return nil, err
	}

	shopcart.CustomerName = req.CustomerName

	if err := s.repo.UpdateShopcart(ctx, shopcart); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError(fmt.Sprintf("Shopcart with id '%d' could not be found", id)).WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update shopcart").WithError(err)
	}

	return shopcart, nil
}

// DeleteShopcart is idempotent: deleting an absent cart is not an error.
func (s *shopcartService) DeleteShopcart(ctx context.Context, id int64) error {

	if _, err := s.repo.DeleteShopcart(ctx, id); err != nil {
		return appErrors.DatabaseError("Failed to delete shopcart").WithError(err)
	}

	return nil
}

func (s *shopcartService) ListShopcarts(ctx context.Context) ([]*models.Shopcart, error) {

	shopcarts, err := s.repo.ListShopcarts(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch shopcarts").WithError(err)
	}

	return shopcarts, nil
}

func (s *shopcartService) SearchShopcarts(ctx context.Context, customerName string) ([]*models.Shopcart, error) {

	shopcarts, err := s.repo.FindByCustomerName(ctx, customerName)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to search shopcarts").WithError(err)
	}

	return shopcarts, nil
}

func (s *shopcartService) EmptyShopcart(ctx context.Context, id int64) (*models.Shopcart, error) {

	shopcart, err := s.repo.EmptyShopcart(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError(fmt.Sprintf("Shopcart with id '%d' could not be found", id)).WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to empty shopcart").WithError(err)
	}

	return shopcart, nil
}
