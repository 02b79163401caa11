package api

import (
	"errors"
	"reflect"
	"strings"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// Rules live here rather than in struct tags so the shared entities stay
// free of server concerns.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = internal.RegisterActivityValidation(v)

	score := "gte=0,lte=10"
	optScore := "omitempty,gte=0,lte=10"
	v.RegisterStructValidationMapRules(map[string]string{
		"StressLevel":  score,
		"Mood":         score,
		"Energy":       score,
		"SleepQuality": score,
	}, internal.SelfAssessment{})
	v.RegisterStructValidationMapRules(map[string]string{
		"StressLevel":  optScore,
		"Mood":         optScore,
		"Energy":       optScore,
		"SleepQuality": optScore,
	}, internal.SelfAssessmentPatch{})
	v.RegisterStructValidationMapRules(map[string]string{
		"Title":        "required",
		"Description":  "required",
		"ActivityType": "required,activity",
	}, internal.Recommendation{})
	v.RegisterStructValidationMapRules(map[string]string{
		"ActivityType": "omitempty,activity",
	}, internal.RecommendationPatch{})
	v.RegisterStructValidationMapRules(map[string]string{
		"FirstName": "required",
		"LastName":  "required",
		"Email":     "required,email",
		"CPF":       "omitempty,numeric,len=11",
		"Sex":       "omitempty,oneof=MASCULINO FEMININO",
	}, internal.CreateUserRequest{})
	v.RegisterStructValidationMapRules(map[string]string{
		"Username": "required",
		"Password": "required,min=6",
	}, internal.Credentials{})
	v.RegisterStructValidationMapRules(map[string]string{
		"Username": "required",
		"Password": "required",
	}, internal.LoginRequest{})
	return v
}

func validateSelfAssessment(a *internal.SelfAssessment) error {
	if a.Date.IsZero() {
		return errors.New("data is required")
	}
	return validate.Struct(a)
}

func validateRecommendation(r *internal.Recommendation) error {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	return validate.Struct(r)
}

func validateRecommendationPatch(p *internal.RecommendationPatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return errors.New("titulo must not be blank")
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		return errors.New("descricao must not be blank")
	}
	return validate.Struct(p)
}
