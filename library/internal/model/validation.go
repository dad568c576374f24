package model

import (
	"reflect"
	"strings"
	"time"

	"github.com/Astemirdum/library-membership/pkg/validate"
	"github.com/go-playground/validator/v10"
)

// NewValidator returns the validator carrying every domain rule.
func NewValidator() *validate.CustomValidator {
	return validate.NewCustomValidator(
		validate.WithCustomType(dateValue, Date{}),
		validate.WithTag("notblank", notBlank),
		validate.WithTag("notfuture", notFuture),
		validate.WithTag("notfutureyear", notFutureYear),
		validate.WithStructLevel(locationStructLevel, Location{}),
		validate.WithStructLevel(membershipStructLevel, Membership{}),
	)
}

func dateValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(Date); ok {
		return d.Time
	}
	return nil
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func notFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.After(time.Now())
}

func notFutureYear(fl validator.FieldLevel) bool {
	return fl.Field().Int() <= int64(time.Now().Year())
}

// locationStructLevel reports one violation for the whole Location, whichever field is wrong.
func locationStructLevel(sl validator.StructLevel) {
	loc := sl.Current().Interface().(Location)
	if !loc.Valid() {
		sl.ReportError(loc, "location", "Location", "location", "")
	}
}

func membershipStructLevel(sl validator.StructLevel) {
	m := sl.Current().Interface().(Membership)
	if m.StartDate.IsZero() || m.EndDate.IsZero() {
		return
	}
	if !m.DurationValid() {
		sl.ReportError(m.EndDate, "endDate", "EndDate", "duration", "")
	}
}
