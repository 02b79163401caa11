package internal

import "github.com/go-playground/validator/v10"

// ActivityTag is the validator tag accepting only known ActivityType values.
const ActivityTag = "activity"

func RegisterActivityValidation(v *validator.Validate) error {
	return v.RegisterValidation(ActivityTag, func(fl validator.FieldLevel) bool {
		return ActivityType(fl.Field().String()).Valid()
	})
}
