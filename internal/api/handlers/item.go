package handlers

import (
	"net/http"

	"github.com/devops-shopcarts/shopcart-service/internal/api/middleware"
	"github.com/devops-shopcarts/shopcart-service/internal/models"
	service "github.com/devops-shopcarts/shopcart-service/internal/services"
	"github.com/devops-shopcarts/shopcart-service/internal/utils"
	"github.com/devops-shopcarts/shopcart-service/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ItemHandler struct {
	itemService service.ItemService
	validator   *validator.Validate
}

func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService, validator: validator.New()}
}

func (h *ItemHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		shopcartID, err := utils.ParseIDParam(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		// The cart must exist before the body is even looked at.
		if err := h.itemService.EnsureShopcart(r.Context(), shopcartID); err != nil {
			logger.Error("Shopcart lookup failed before item creation", "error", err.Error(), "shopcartId", shopcartID)
			response.Error(w, err)

			return
		}

		var req models.CreateItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		item, err := h.itemService.AddItem(r.Context(), shopcartID, &req)
		if err != nil {
			logger.Error("Error during item creation", "error", err.Error(), "shopcartId", shopcartID)
			response.Error(w, err)

			return
		}

		logger.Info("Item created successfully", "itemId", item.ID, "shopcartId", shopcartID)
		w.Header().Set("Location", utils.ItemLocation(shopcartID, item.ID))
		response.Success(w, http.StatusCreated, item)

	}
}

func (h *ItemHandler) GetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		shopcartID, itemID, err := parseItemPath(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		item, err := h.itemService.GetItem(r.Context(), shopcartID, itemID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, item)

	}
}

func (h *ItemHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		shopcartID, itemID, err := parseItemPath(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.UpdateItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		item, err := h.itemService.UpdateItem(r.Context(), shopcartID, itemID, &req)
		if err != nil {
			logger.Error("Error during item update", "error", err.Error(), "itemId", itemID, "shopcartId", shopcartID)
			response.Error(w, err)

			return
		}

		logger.Info("Item updated successfully", "itemId", item.ID, "shopcartId", shopcartID)
		response.Success(w, http.StatusOK, item)

	}
}

// RemoveItem always answers 204, present or not.
func (h *ItemHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		shopcartID, itemID, err := parseItemPath(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		if err := h.itemService.RemoveItem(r.Context(), shopcartID, itemID); err != nil {
			logger.Error("Error during item deletion", "error", err.Error(), "itemId", itemID, "shopcartId", shopcartID)
			response.Error(w, err)

			return
		}

		logger.Info("Item deleted", "itemId", itemID, "shopcartId", shopcartID)
		w.WriteHeader(http.StatusNoContent)

	}
}

// for eg: GET /shopcarts/{id}/items?name=hat
func (h *ItemHandler) ListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		shopcartID, err := utils.ParseIDParam(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		var items []*models.Item

		if name := r.URL.Query().Get("name"); name != "" {
			items, err = h.itemService.SearchItems(r.Context(), shopcartID, name)
		} else {
			items, err = h.itemService.ListItems(r.Context(), shopcartID)
		}

		if err != nil {
			logger.Error("Failed to fetch items", "error", err.Error(), "shopcartId", shopcartID)
			response.Error(w, err)

			return
		}

		logger.Info("Returning items", "count", len(items), "shopcartId", shopcartID)
		response.Success(w, http.StatusOK, items)

	}
}

func parseItemPath(r *http.Request) (int64, int64, error) {

	shopcartID, err := utils.ParseIDParam(r, "id")
	if err != nil {
		return 0, 0, err
	}

	itemID, err := utils.ParseIDParam(r, "item_id")
	if err != nil {
		return 0, 0, err
	}

	return shopcartID, itemID, nil
}
