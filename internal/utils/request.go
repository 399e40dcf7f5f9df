package utils

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	appErrors "github.com/aaravmahajanofficial/catalog-admin/internal/errors"
	"github.com/aaravmahajanofficial/catalog-admin/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()))
		return false
	}

	return Validate(w, dest, validate)

}

// Validate writes the field errors of data and reports whether it is valid.
func Validate(w http.ResponseWriter, data any, validate *validator.Validate) bool {

	if err := ValidateStruct(validate, data); err != nil {
		slog.Warn("Validation failed", slog.String("error", err.Error()))

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
			return false
		}

		response.Error(w, appErrors.ValidationError("Invalid input data"))
		return false
	}

	return true
}

func ParseID(r *http.Request, name string) (uuid.UUID, error) {

	raw := r.PathValue(name)
	if raw == "" {
		return uuid.Nil, appErrors.BadRequestError(fmt.Sprintf("Missing %s", name))
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, appErrors.BadRequestError(fmt.Sprintf("Invalid %s format", name)).WithDetail(raw).WithError(err)
	}

	return id, nil
}

// QueryBool reads an optional boolean query parameter. Absent values yield nil.
func QueryBool(r *http.Request, name string) (*bool, error) {

	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, appErrors.ValidationError(fmt.Sprintf("Query parameter %s must be true or false", name)).WithDetail(raw)
	}

	return &v, nil
}

func QueryInt(r *http.Request, name string, fallback int) (int, error) {

	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, appErrors.ValidationError(fmt.Sprintf("Query parameter %s must be an integer", name)).WithDetail(raw)
	}

	return v, nil
}

func QueryFloat(r *http.Request, name string) (*float64, error) {

	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, appErrors.ValidationError(fmt.Sprintf("Query parameter %s must be a number", name)).WithDetail(raw)
	}

	return &v, nil
}
