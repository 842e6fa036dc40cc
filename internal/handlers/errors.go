package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation failures under the field's json name, not the Go
	// struct field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// fieldErrors turns a binding failure into a field-keyed error map. Errors
// that are not attributable to a field fall back to a single error message.
func fieldErrors(err error) gin.H {
	var validationErrs validator.ValidationErrors

	if !errors.As(err, &validationErrs) {
		return gin.H{"error": "Invalid request"}
	}

	out := gin.H{}

	for _, fieldErr := range validationErrs {
		out[fieldErr.Field()] = validationMessage(fieldErr)
	}

	return out
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "min":
		return "ensure this field has at least " + fieldErr.Param() + " characters"
	case "max":
		return "ensure this field has no more than " + fieldErr.Param() + " characters"
	default:
		return "invalid value"
	}
}
