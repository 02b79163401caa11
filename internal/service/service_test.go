package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	creates int
	updates int
	lastID  int64
	last    any
}

func (f *fakeAPI) CreateSelfAssessment(ctx context.Context, a internal.SelfAssessment) (*internal.SelfAssessment, error) {
	f.creates++
	a.ID = 1
	f.last = a
	return &a, nil
}

func (f *fakeAPI) UpdateSelfAssessment(ctx context.Context, id int64, p internal.SelfAssessmentPatch) (*internal.SelfAssessment, error) {
	f.updates++
	f.lastID = id
	f.last = p
	return &internal.SelfAssessment{ID: id}, nil
}

func (f *fakeAPI) CreateRecommendation(ctx context.Context, r internal.Recommendation) (*internal.Recommendation, error) {
	f.creates++
	f.last = r
	return &r, nil
}

func (f *fakeAPI) UpdateRecommendation(ctx context.Context, id int64, p internal.RecommendationPatch) (*internal.Recommendation, error) {
	f.updates++
	f.lastID = id
	f.last = p
	return &internal.Recommendation{ID: id}, nil
}

func (f *fakeAPI) Register(ctx context.Context, req internal.CreateUserRequest) (*internal.User, error) {
	f.creates++
	f.last = req
	return &internal.User{ID: 7, Name: req.FirstName}, nil
}

type fakeLookup struct{ calls int }

func (l *fakeLookup) LookupPostalCode(ctx context.Context, code string) (*internal.PostalAddress, error) {
	l.calls++
	return &internal.PostalAddress{Code: "01310-100", Street: "Avenida Paulista", Neighborhood: "Bela Vista", City: "São Paulo", State: "SP"}, nil
}

func TestSubmitSelfAssessment_OutOfRangeBlocksSubmission(t *testing.T) {
	cases := map[string]func(*SelfAssessmentForm){
		"estresse":      func(f *SelfAssessmentForm) { f.StressLevel = 11 },
		"humor":         func(f *SelfAssessmentForm) { f.Mood = -1 },
		"energia":       func(f *SelfAssessmentForm) { f.Energy = math.NaN() },
		"qualidadeSono": func(f *SelfAssessmentForm) { f.SleepQuality = math.Inf(1) },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			api := &fakeAPI{}
			f := NewSelfAssessmentForm()
			mutate(&f)

			_, err := SubmitSelfAssessment(context.Background(), api, 0, f)
			var verr *internal.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, field, verr.Field)
			assert.ErrorIs(t, err, internal.ErrOutOfRange)
			assert.Zero(t, api.creates+api.updates, "no network call")
		})
	}
}

func TestSubmitSelfAssessment_Boundaries(t *testing.T) {
	api := &fakeAPI{}
	f := NewSelfAssessmentForm()
	f.StressLevel, f.Mood, f.Energy, f.SleepQuality = 0, 10, 0, 10
	f.Date = "2024-06-01"

	got, err := SubmitSelfAssessment(context.Background(), api, 0, f)
	require.NoError(t, err)
	assert.Equal(t, 1, api.creates)
	assert.Equal(t, 10, got.Mood)
	assert.Equal(t, "2024-06-01", got.Date.String())
}

func TestSubmitSelfAssessment_Update(t *testing.T) {
	api := &fakeAPI{}
	f := FormFromSelfAssessment(internal.SelfAssessment{Date: internal.NewDate(2024, 1, 2), Mood: 3, Comments: "ok"})
	_, err := SubmitSelfAssessment(context.Background(), api, 42, f)
	require.NoError(t, err)
	assert.Equal(t, 1, api.updates)
	assert.Equal(t, int64(42), api.lastID)
	patch := api.last.(internal.SelfAssessmentPatch)
	assert.Equal(t, 3, *patch.Mood)
	assert.Equal(t, "ok", *patch.Comments)
}

func TestSelfAssessment_FractionalAndDate(t *testing.T) {
	f := NewSelfAssessmentForm()
	f.Energy = 4.5
	err := ValidateSelfAssessment(f)
	assert.ErrorIs(t, err, internal.ErrOutOfRange)

	f = NewSelfAssessmentForm()
	f.Date = ""
	assert.ErrorIs(t, ValidateSelfAssessment(f), internal.ErrRequired)

	f.Date = "01/06/2024"
	assert.ErrorIs(t, ValidateSelfAssessment(f), internal.ErrInvalidFormat)
}

func TestParseScore(t *testing.T) {
	v, err := ParseScore("humor", " 7 ")
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = ParseScore("humor", "sete")
	var verr *internal.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "humor", verr.Field)
}

func TestSubmitRecommendation_RequiredFields(t *testing.T) {
	api := &fakeAPI{}
	f := NewRecommendationForm()
	f.Title = "   "
	f.Description = "Levante e alongue"

	_, err := SubmitRecommendation(context.Background(), api, 0, f)
	var verr *internal.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "titulo", verr.Field)
	assert.ErrorIs(t, err, internal.ErrRequired)

	f.Title = "Pausa"
	f.Description = ""
	_, err = SubmitRecommendation(context.Background(), api, 0, f)
	assert.ErrorIs(t, err, internal.ErrRequired)
	assert.Zero(t, api.creates)

	f.Description = " Levante "
	got, err := SubmitRecommendation(context.Background(), api, 0, f)
	require.NoError(t, err)
	assert.Equal(t, "Levante", got.Description)
	assert.Equal(t, internal.ActivityRest, got.ActivityType)
	assert.Equal(t, 1, api.creates)
}

func TestRecommendation_InvalidActivity(t *testing.T) {
	f := NewRecommendationForm()
	f.Title, f.Description = "a", "b"
	f.ActivityType = "YOGA"
	assert.ErrorIs(t, ValidateRecommendation(f), internal.ErrInvalidFormat)
}

func validRegistration() RegistrationForm {
	return RegistrationForm{
		FirstName:       "Ana",
		LastName:        "Souza",
		Email:           "ana@example.com",
		Username:        "ana",
		Password:        "segredo1",
		ConfirmPassword: "segredo1",
		CPF:             "123.456.789-09",
		Sex:             "FEMININO",
		Phone:           "11912345678",
		BirthDate:       "31/12/1990",
	}
}

func TestRegistrationSteps(t *testing.T) {
	f := validRegistration()
	require.NoError(t, ValidateRegistration(f))

	bad := f
	bad.Email = "ana@"
	assert.ErrorIs(t, ValidateRegistrationStep(bad, 1), internal.ErrInvalidFormat)

	bad = f
	bad.LastName = "  "
	assert.ErrorIs(t, ValidateRegistrationStep(bad, 1), internal.ErrRequired)

	bad = f
	bad.ConfirmPassword = "outra"
	var verr *internal.ValidationError
	require.ErrorAs(t, ValidateRegistrationStep(bad, 2), &verr)
	assert.Equal(t, "confirmPassword", verr.Field)

	bad = f
	bad.Password, bad.ConfirmPassword = "abc", "abc"
	require.ErrorAs(t, ValidateRegistrationStep(bad, 2), &verr)
	assert.Equal(t, "password", verr.Field)

	bad = f
	bad.Address.PostalCode = "01310-100"
	require.ErrorAs(t, ValidateRegistrationStep(bad, 3), &verr)
	assert.Equal(t, "logradouro", verr.Field)

	assert.Error(t, ValidateRegistrationStep(f, 4))
}

func TestRegister_BuildsCanonicalPayload(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{}
	lookup := &fakeLookup{}
	f := validRegistration()
	f.Address.PostalCode = "0131010"
	require.NoError(t, FillAddress(ctx, lookup, &f))
	assert.Zero(t, lookup.calls, "incomplete postal code is not looked up")

	f.Address.PostalCode = "01310100"
	f.Address.Number = "1000"
	require.NoError(t, FillAddress(ctx, lookup, &f))
	assert.Equal(t, 1, lookup.calls)

	user, err := Register(ctx, api, f)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)

	req := api.last.(internal.CreateUserRequest)
	assert.Equal(t, "12345678909", req.CPF)
	assert.Equal(t, "1990-12-31", req.BirthDate)
	assert.Equal(t, "(11) 91234-5678", req.Phone)
	assert.Equal(t, "01310-100", req.Address.PostalCode)
	assert.Equal(t, "Avenida Paulista", req.Address.Street)
	assert.Equal(t, "São Paulo", req.Address.City)
	assert.Equal(t, "ana", req.Credentials.Username)
}

func TestRegister_InvalidMakesNoCall(t *testing.T) {
	api := &fakeAPI{}
	f := validRegistration()
	f.Username = ""
	_, err := Register(context.Background(), api, f)
	assert.True(t, errors.Is(err, internal.ErrRequired))
	assert.Zero(t, api.creates)
}

func TestMasks(t *testing.T) {
	assert.Equal(t, "12", FormatDate("12"))
	assert.Equal(t, "12/05", FormatDate("1205"))
	assert.Equal(t, "12/05/19", FormatDate("120519"))
	assert.Equal(t, "12/05/1990", FormatDate("12/05/19901234"))

	assert.Equal(t, "", DisplayDateToWire("12/05/199"))
	assert.Equal(t, "1990-05-12", DisplayDateToWire("12051990"))

	assert.Equal(t, "11", FormatPhone("11"))
	assert.Equal(t, "(11) 9123", FormatPhone("119123"))
	assert.Equal(t, "(11) 91234-5678", FormatPhone("(11) 91234-5678"))

	assert.Equal(t, "123.45", FormatCPF("12345"))
	assert.Equal(t, "123.456.78", FormatCPF("12345678"))
	assert.Equal(t, "123.456.789-09", FormatCPF("12345678909"))

	assert.Equal(t, "01310", FormatPostalCode("01310"))
	assert.Equal(t, "01310-100", FormatPostalCode("01310100"))
	assert.Equal(t, "01310100", DigitsOnly("01310-100"))
}
