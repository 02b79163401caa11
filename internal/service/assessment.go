package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/Kauesamartino/WorksafeApp/internal"
)

// SelfAssessmentAPI is the slice of the domain client a self-assessment form
// submits through.
type SelfAssessmentAPI interface {
	CreateSelfAssessment(ctx context.Context, a internal.SelfAssessment) (*internal.SelfAssessment, error)
	UpdateSelfAssessment(ctx context.Context, id int64, patch internal.SelfAssessmentPatch) (*internal.SelfAssessment, error)
}

// SelfAssessmentForm holds raw form input. Scores are float64 so that
// non-integral or non-finite input can be rejected instead of truncated.
type SelfAssessmentForm struct {
	StressLevel  float64 `form:"estresse" validate:"gte=0,lte=10,whole"`
	Mood         float64 `form:"humor" validate:"gte=0,lte=10,whole"`
	Energy       float64 `form:"energia" validate:"gte=0,lte=10,whole"`
	SleepQuality float64 `form:"qualidadeSono" validate:"gte=0,lte=10,whole"`
	Date         string  `form:"data" validate:"required"`
	Comments     string  `form:"comentarios"`
}

// NewSelfAssessmentForm returns the form's starting state: today, all scores 5.
func NewSelfAssessmentForm() SelfAssessmentForm {
	return SelfAssessmentForm{
		StressLevel:  5,
		Mood:         5,
		Energy:       5,
		SleepQuality: 5,
		Date:         internal.Today().String(),
	}
}

// FormFromSelfAssessment prefills the form for editing.
func FormFromSelfAssessment(a internal.SelfAssessment) SelfAssessmentForm {
	return SelfAssessmentForm{
		StressLevel:  float64(a.StressLevel),
		Mood:         float64(a.Mood),
		Energy:       float64(a.Energy),
		SleepQuality: float64(a.SleepQuality),
		Date:         a.Date.String(),
		Comments:     a.Comments,
	}
}

// ParseScore reads a typed score. Text that is not a number is out of range.
func ParseScore(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, internal.NewValidationError(field, internal.ErrOutOfRange)
	}
	return v, nil
}

func ValidateSelfAssessment(f SelfAssessmentForm) error {
	if err := validateStruct(f); err != nil {
		return err
	}
	if _, err := internal.ParseDate(f.Date); err != nil {
		return internal.NewValidationError("data", internal.ErrInvalidFormat)
	}
	return nil
}

// ToSelfAssessment validates f and converts it to the wire entity.
func (f SelfAssessmentForm) ToSelfAssessment() (internal.SelfAssessment, error) {
	if err := ValidateSelfAssessment(f); err != nil {
		return internal.SelfAssessment{}, err
	}
	date, _ := internal.ParseDate(f.Date)
	return internal.SelfAssessment{
		Date:         date,
		StressLevel:  int(f.StressLevel),
		Mood:         int(f.Mood),
		Energy:       int(f.Energy),
		SleepQuality: int(f.SleepQuality),
		Comments:     f.Comments,
	}, nil
}

// SubmitSelfAssessment validates the form and creates (id == 0) or updates the
// record. An invalid form never reaches the network.
func SubmitSelfAssessment(ctx context.Context, api SelfAssessmentAPI, id int64, f SelfAssessmentForm) (*internal.SelfAssessment, error) {
	a, err := f.ToSelfAssessment()
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return api.CreateSelfAssessment(ctx, a)
	}
	return api.UpdateSelfAssessment(ctx, id, internal.SelfAssessmentPatch{
		Date:         &a.Date,
		StressLevel:  &a.StressLevel,
		Mood:         &a.Mood,
		Energy:       &a.Energy,
		SleepQuality: &a.SleepQuality,
		Comments:     &a.Comments,
	})
}
