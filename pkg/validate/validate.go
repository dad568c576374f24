package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

type Option func(v *validator.Validate)

// WithTag registers a field-level validation under tag.
func WithTag(tag string, fn validator.Func) Option {
	return func(v *validator.Validate) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

func WithStructLevel(fn validator.StructLevelFunc, types ...interface{}) Option {
	return func(v *validator.Validate) {
		v.RegisterStructValidation(fn, types...)
	}
}

func WithCustomType(fn validator.CustomTypeFunc, types ...interface{}) Option {
	return func(v *validator.Validate) {
		v.RegisterCustomTypeFunc(fn, types...)
	}
}

func NewCustomValidator(opts ...Option) *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	for _, opt := range opts {
		opt(v)
	}
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator. A failure is always validator.ValidationErrors.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
