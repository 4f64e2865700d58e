package common

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateAndDecode decodes the request body into payload and runs struct
// validation on it. A non-nil AppError is ready to be returned from the
// handler; both failure modes map to 400.
func ValidateAndDecode(r *http.Request, payload interface{}) *AppError {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	if err := validate.Struct(payload); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		return NewAppError(http.StatusBadRequest, validationErrors.Error(), err)
	}

	return nil
}
