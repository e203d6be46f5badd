package models

import (
	"time"
)

// Shopcart is the aggregate root. Items live and die with their cart.
type Shopcart struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customer_name"`
	Items        []*Item   `json:"items"`
	CreatedAt    time.Time `json:"created_at"`
	LastUpdated  time.Time `json:"last_updated"`
}

type CreateShopcartRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
}

// PUT replaces the full mutable field set; the id stays server-owned.
type UpdateShopcartRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
}
