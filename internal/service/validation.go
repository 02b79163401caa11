package service

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" {
			return name
		}
		return fld.Name
	})
	_ = v.RegisterValidation("whole", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return f == math.Trunc(f)
	})
	_ = internal.RegisterActivityValidation(v)
	return v
}

// firstFieldError turns the first validator failure into a ValidationError
// naming the offending field.
func firstFieldError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return internal.NewValidationError(fe.Field(), reasonFor(fe.Tag()))
}

func reasonFor(tag string) error {
	switch tag {
	case "required":
		return internal.ErrRequired
	case "gte", "lte", "whole", "min", "max":
		return internal.ErrOutOfRange
	}
	return internal.ErrInvalidFormat
}

func validateStruct(s any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = validate.StructPartial(s, fields...)
	} else {
		err = validate.Struct(s)
	}
	if err != nil {
		return firstFieldError(err)
	}
	return nil
}

func trim(s string) string { return strings.TrimSpace(s) }
