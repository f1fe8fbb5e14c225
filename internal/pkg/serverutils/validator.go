package serverutils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateRequest checks a DTO against its `validate` tags.
func ValidateRequest(req any) error {
	return validate.Struct(req)
}
