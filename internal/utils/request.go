package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	appErrors "github.com/devops-shopcarts/shopcart-service/internal/errors"
	"github.com/devops-shopcarts/shopcart-service/internal/api/middleware"
	"github.com/devops-shopcarts/shopcart-service/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

func DecodeJSONBody(r *http.Request, dest any) error {

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	defer r.Body.Close()

	if len(body) == 0 {
		return errors.New("request body cannot be empty")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	return nil
}

// ParseAndValidate decodes the body into dest and runs struct validation,
// writing the error response itself. Returns false when the handler should
// stop.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	logger := middleware.LoggerFromContext(r.Context())

	if err := DecodeJSONBody(r, dest); err != nil {
		logger.Warn("Failed to parse request body", "error", err.Error(), "endpoint", r.URL.Path)
		response.Error(w, appErrors.BadRequestError("Failed to parse request body").WithError(err))

		return false
	}

	if err := validate.Struct(dest); err != nil {

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			logger.Warn("Request validation failed", "error", validationErrs.Error())
			response.ValidationError(w, validationErrs)

			return false
		}

		logger.Error("Unexpected validation error", "error", err.Error())
		response.Error(w, appErrors.InternalError("Unexpected validation error").WithError(err))

		return false
	}

	return true
}

// ItemLocation builds the canonical URL of an item resource, used for the
// Location header on create.
func ItemLocation(shopcartID, itemID int64) string {
	return fmt.Sprintf("/api/v1/shopcarts/%d/items/%d", shopcartID, itemID)
}

// ParseIDParam reads an integer path parameter such as {id} or {item_id}.
func ParseIDParam(r *http.Request, name string) (int64, error) {

	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, appErrors.BadRequestError(fmt.Sprintf("Invalid value for path parameter '%s'", name)).WithError(err)
	}

	return id, nil
}
