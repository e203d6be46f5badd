package handlers

import (
	"fmt"
	"net/http"

	"github.com/devops-shopcarts/shopcart-service/internal/api/middleware"
	"github.com/devops-shopcarts/shopcart-service/internal/models"
	service "github.com/devops-shopcarts/shopcart-service/internal/services"
	"github.com/devops-shopcarts/shopcart-service/internal/utils"
	"github.com/devops-shopcarts/shopcart-service/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ShopcartHandler struct {
	shopcartService service.ShopcartService
	validator       *validator.Validate
}

func NewShopcartHandler(shopcartService service.ShopcartService) *ShopcartHandler {
	return &ShopcartHandler{shopcartService: shopcartService, validator: validator.New()}
}

func (h *ShopcartHandler) CreateShopcart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateShopcartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		shopcart, err := h.shopcartService.CreateShopcart(r.Context(), &req)
		if err != nil {
			logger.Error("Error during shopcart creation", "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Shopcart created successfully", "shopcartId", shopcart.ID)
		w.Header().Set("Location", fmt.Sprintf("/api/v1/shopcarts/%d", shopcart.ID))
		response.Success(w, http.StatusCreated, shopcart)

	}
}

func (h *ShopcartHandler) GetShopcart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseIDParam(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		shopcart, err := h.shopcartService.GetShopcart(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, shopcart)

	}
}

func (h *ShopcartHandler) UpdateShopcart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseIDParam(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		var req models.UpdateShopcartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		shopcart, err := h.shopcartService.UpdateShopcart(r.Context(), id, &req)
		if err != nil {
			logger.Error("Error during shopcart update", "error", err.Error(), "shopcartId", id)
			response.Error(w, err)

			return
		}

		logger.Info("Shopcart updated successfully", "shopcartId", shopcart.ID)
		response.Success(w, http.StatusOK, shopcart)

	}
}

// DeleteShopcart always answers 204, present or not.
func (h *ShopcartHandler) DeleteShopcart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseIDParam(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		if err := h.shopcartService.DeleteShopcart(r.Context(), id); err != nil {
			logger.Error("Error during shopcart deletion", "error", err.Error(), "shopcartId", id)
			response.Error(w, err)

			return
		}

		logger.Info("Shopcart deleted", "shopcartId", id)
		w.WriteHeader(http.StatusNoContent)

	}
}

// for eg: GET /shopcarts?customer_name=Alice
func (h *ShopcartHandler) ListShopcarts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var shopcarts []*models.Shopcart
		var err error

		if customerName := r.URL.Query().Get("customer_name"); customerName != "" {
			shopcarts, err = h.shopcartService.SearchShopcarts(r.Context(), customerName)
		} else {
			shopcarts, err = h.shopcartService.ListShopcarts(r.Context())
		}

		if err != nil {
			logger.Error("Failed to fetch shopcarts", "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Returning shopcarts", "count", len(shopcarts))
		response.Success(w, http.StatusOK, shopcarts)

	}
}

func (h *ShopcartHandler) EmptyShopcart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseIDParam(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		shopcart, err := h.shopcartService.EmptyShopcart(r.Context(), id)
		if err != nil {
			logger.Error("Error during shopcart emptying", "error", err.Error(), "shopcartId", id)
			response.Error(w, err)

			return
		}

		logger.Info("Shopcart emptied", "shopcartId", shopcart.ID)
		response.Success(w, http.StatusOK, shopcart)

	}
}
