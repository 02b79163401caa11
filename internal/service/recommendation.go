package service

import (
	"context"

	"github.com/Kauesamartino/WorksafeApp/internal"
)

type RecommendationAPI interface {
	CreateRecommendation(ctx context.Context, r internal.Recommendation) (*internal.Recommendation, error)
	UpdateRecommendation(ctx context.Context, id int64, patch internal.RecommendationPatch) (*internal.Recommendation, error)
}

type RecommendationForm struct {
	Title        string                `form:"titulo" validate:"required"`
	Description  string                `form:"descricao" validate:"required"`
	ActivityType internal.ActivityType `form:"tipoAtividade" validate:"required,activity"`
	CreatedAt    string                `form:"createdAt"`
	Consumed     bool                  `form:"consumido"`
}

func NewRecommendationForm() RecommendationForm {
	return RecommendationForm{
		ActivityType: internal.ActivityRest,
		CreatedAt:    internal.Today().String(),
	}
}

func FormFromRecommendation(r internal.Recommendation) RecommendationForm {
	return RecommendationForm{
		Title:        r.Title,
		Description:  r.Description,
		ActivityType: r.ActivityType,
		CreatedAt:    r.CreatedAt.String(),
		Consumed:     r.Consumed,
	}
}

// ValidateRecommendation requires a non-blank title and description.
func ValidateRecommendation(f RecommendationForm) error {
	f.Title = trim(f.Title)
	f.Description = trim(f.Description)
	return validateStruct(f)
}

func (f RecommendationForm) ToRecommendation() (internal.Recommendation, error) {
	if err := ValidateRecommendation(f); err != nil {
		return internal.Recommendation{}, err
	}
	created := internal.Today()
	if f.CreatedAt != "" {
		d, err := internal.ParseDate(f.CreatedAt)
		if err != nil {
			return internal.Recommendation{}, internal.NewValidationError("createdAt", internal.ErrInvalidFormat)
		}
		created = d
	}
	return internal.Recommendation{
		ActivityType: f.ActivityType,
		Title:        trim(f.Title),
		Description:  trim(f.Description),
		CreatedAt:    created,
		Consumed:     f.Consumed,
	}, nil
}

func SubmitRecommendation(ctx context.Context, api RecommendationAPI, id int64, f RecommendationForm) (*internal.Recommendation, error) {
	r, err := f.ToRecommendation()
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return api.CreateRecommendation(ctx, r)
	}
	return api.UpdateRecommendation(ctx, id, internal.RecommendationPatch{
		ActivityType: &r.ActivityType,
		Title:        &r.Title,
		Description:  &r.Description,
		CreatedAt:    &r.CreatedAt,
		Consumed:     &r.Consumed,
	})
}
