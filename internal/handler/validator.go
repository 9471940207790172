package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bulbacards/packmint/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("pack_id", validatePackID)
	_ = v.RegisterValidation("mint_amount", validateMintAmount)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lower-cased field name, without leaking struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "eth_addr":
			errs[field] = "Must be a 0x-prefixed 20-byte hex address"
		case "pack_id":
			errs[field] = fmt.Sprintf("Must be a pack id between %d and %d", domain.PackIDMin, domain.PackIDMax)
		case "mint_amount":
			errs[field] = fmt.Sprintf("Must be at most %d", domain.MaxMintAmount)
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "unique":
			errs[field] = "Must not contain duplicates"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateMintAmount(fl validator.FieldLevel) bool {
	return fl.Field().Int() <= domain.MaxMintAmount
}

func validatePackID(fl validator.FieldLevel) bool {
	return domain.IsPackID(fl.Field().Uint())
}
