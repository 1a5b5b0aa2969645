package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"tripgen/internal/itinerary"
)

// RegisterValidators adds the trip specific tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	if err := v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := itinerary.ParseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("tripLanguage", func(fl validator.FieldLevel) bool {
		return itinerary.IsSupported(fl.Field().String())
	})
}

// DescribeValidationError turns binding errors into one readable line.
func DescribeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must not be empty", fe.Field()))
		case "isodate":
			parts = append(parts, fmt.Sprintf("%s must be a date (YYYY-MM-DD)", fe.Field()))
		case "tripLanguage":
			parts = append(parts, fmt.Sprintf("%s must be one of tr, en, es, fr, it", fe.Field()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return strings.Join(parts, "; ")
}
