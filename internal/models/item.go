package models

import (
	"time"
)

type Item struct {
	ID          int64     `json:"id"`
	ShopcartID  int64     `json:"shopcart_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	IsUrgent    bool      `json:"is_urgent"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
}

// Price and Quantity are pointers so that "missing" and "zero" stay
// distinguishable: price 0 is legal, a missing price is not.
type CreateItemRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"       validate:"required,min=0"`
	Quantity    *int     `json:"quantity"    validate:"required,min=1"`
	IsUrgent    bool     `json:"is_urgent"`
}

type UpdateItemRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"       validate:"required,min=0"`
	Quantity    *int     `json:"quantity"    validate:"required,min=1"`
	IsUrgent    bool     `json:"is_urgent"`
}
