package validator

import (
	"github.com/go-playground/validator/v10"

	"switchboard/internal/directory/listing"
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Custom validators
	v.RegisterValidation("sort_mode", validateSortMode)

	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func validateSortMode(fl validator.FieldLevel) bool {
	switch listing.SortMode(fl.Field().String()) {
	case listing.SortByHierarchy, listing.SortByName, listing.SortByExtension:
		return true
	}
	return false
}
