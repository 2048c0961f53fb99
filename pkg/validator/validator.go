package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

// Message renders the failure the way API clients see it.
func (e *ErrorResponse) Message() string {
	switch e.Tag {
	case "required", "uuid_required":
		return fmt.Sprintf("%s is required", e.FailedField)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.FailedField)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.FailedField, e.Value)
	case "gt", "gte", "lte":
		return fmt.Sprintf("%s failed on '%s=%s'", e.FailedField, e.Tag, e.Value)
	case "datetime":
		return fmt.Sprintf("%s must use the format YYYY-MM-DD", e.FailedField)
	}
	return fmt.Sprintf("%s failed on tag '%s'", e.FailedField, e.Tag)
}

var validate = validator.New()

func init() {
	// Report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Register custom validation for UUID
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})

	// Monetary fields are validated as numbers (gte, lte)
	validate.RegisterCustomTypeFunc(func(v reflect.Value) interface{} {
		if d, ok := v.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.Field()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// Messages flattens ValidateStruct into client-facing messages.
func Messages(data interface{}) []string {
	errs := ValidateStruct(data)
	if len(errs) == 0 {
		return nil
	}
	messages := make([]string, len(errs))
	for i, e := range errs {
		messages[i] = e.Message()
	}
	return messages
}
