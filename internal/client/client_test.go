package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/api"
	"github.com/Kauesamartino/WorksafeApp/internal/config"
	"github.com/Kauesamartino/WorksafeApp/internal/session"
	"github.com/Kauesamartino/WorksafeApp/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	client   *Client
	tokens   *session.TokenStore
	cepCalls *atomic.Int32
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := storage.NewMemoryRepository()
	_, err := api.SeedDemo(context.Background(), repo, time.Now())
	require.NoError(t, err)
	apiSrv := httptest.NewServer(api.NewRouter(api.NewMemoryApp(repo, internal.NopLogger())))
	t.Cleanup(apiSrv.Close)

	var cepCalls atomic.Int32
	cepSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cepCalls.Add(1)
		assert.Empty(t, r.Header.Get("Authorization"), "cep lookups never carry credentials")
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/01310100/json/":
			_, _ = w.Write([]byte(`{"cep":"01310-100","logradouro":"Avenida Paulista","bairro":"Bela Vista","localidade":"São Paulo","uf":"SP"}`))
		default:
			_, _ = w.Write([]byte(`{"erro":true}`))
		}
	}))
	t.Cleanup(cepSrv.Close)

	cfg := config.Defaults()
	cfg.APIBaseURL = apiSrv.URL + "/api"
	cfg.CEPBaseURL = cepSrv.URL
	cfg.RetryDelay = time.Millisecond

	tokens := session.NewTokenStore(storage.NewMemoryStore(), internal.NopLogger())
	return &fixture{
		client:   NewFromConfig(cfg, tokens, nil, internal.NopLogger()),
		tokens:   tokens,
		cepCalls: &cepCalls,
	}
}

func (f *fixture) login(t *testing.T) {
	t.Helper()
	_, err := f.client.Login(context.Background(), internal.LoginRequest{Username: api.DemoUsername, Password: api.DemoPassword})
	require.NoError(t, err)
}

func TestLoginLogout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.client.Login(ctx, internal.LoginRequest{Username: api.DemoUsername, Password: api.DemoPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, resp.Token, f.tokens.GetToken(ctx))
	assert.Equal(t, api.DemoUsername, f.tokens.GetUsername(ctx))

	f.client.Logout(ctx)
	assert.Empty(t, f.tokens.GetToken(ctx))
	assert.Empty(t, f.tokens.GetUsername(ctx))
	assert.False(t, f.client.Session(ctx).Active())
}

func TestLogin_WrongPasswordKeepsNoSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.client.Login(ctx, internal.LoginRequest{Username: api.DemoUsername, Password: "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, internal.ErrUnauthorized)
	assert.Equal(t, "Invalid username or password", internal.UserMessage(err))
	assert.Empty(t, f.tokens.GetToken(ctx))
}

func TestUnauthorizedClearsSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.tokens.SaveToken(ctx, "stale-token")
	f.tokens.SaveUsername(ctx, api.DemoUsername)

	_, err := f.client.ListAlerts(ctx)
	assert.ErrorIs(t, err, internal.ErrUnauthorized)
	assert.Empty(t, f.tokens.GetToken(ctx))
	assert.Empty(t, f.tokens.GetUsername(ctx))
}

func TestUserInfo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.client.UserInfo(ctx)
	assert.ErrorIs(t, err, internal.ErrNoSession)

	f.login(t)
	user, err := f.client.UserInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "demo@worksafe.app", user.Email)
}

type staticResolver struct{ user internal.User }

func (s staticResolver) CurrentUser(ctx context.Context) (*internal.User, error) { return &s.user, nil }

func TestUserInfo_CustomResolver(t *testing.T) {
	f := newFixture(t)
	f.client.SetProfileResolver(staticResolver{user: internal.User{ID: 99}})
	user, err := f.client.UserInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(99), user.ID)
}

func TestSelfAssessmentLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t)

	before, err := f.client.ListSelfAssessments(ctx)
	require.NoError(t, err)

	created, err := f.client.CreateSelfAssessment(ctx, internal.SelfAssessment{
		Date: internal.Today(), StressLevel: 2, Mood: 8, Energy: 7, SleepQuality: 9, Comments: "bem",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	energy := 3
	updated, err := f.client.UpdateSelfAssessment(ctx, created.ID, internal.SelfAssessmentPatch{Energy: &energy})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Energy)
	assert.Equal(t, "bem", updated.Comments)

	require.NoError(t, f.client.DeleteSelfAssessment(ctx, created.ID))
	after, err := f.client.ListSelfAssessments(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))

	err = f.client.DeleteSelfAssessment(ctx, created.ID)
	assert.ErrorIs(t, err, internal.ErrNotFound)
}

func TestRecommendationLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t)

	rec, err := f.client.CreateRecommendation(ctx, internal.Recommendation{
		ActivityType: internal.ActivityHydration, Title: "Água", Description: "Beba um copo", CreatedAt: internal.Today(),
	})
	require.NoError(t, err)
	assert.False(t, rec.Consumed)

	toggled, err := f.client.ToggleConsumed(ctx, *rec)
	require.NoError(t, err)
	assert.True(t, toggled.Consumed)
	toggled, err = f.client.ToggleConsumed(ctx, *toggled)
	require.NoError(t, err)
	assert.False(t, toggled.Consumed)

	_, err = f.client.CreateRecommendation(ctx, internal.Recommendation{ActivityType: internal.ActivityRest})
	var apiErr *internal.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)

	require.NoError(t, f.client.DeleteRecommendation(ctx, rec.ID))
}

func TestReadOnlyFeeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.login(t)

	alerts, err := f.client.ListAlerts(ctx)
	require.NoError(t, err)
	assert.Len(t, alerts, 5)

	readings, err := f.client.ListWearableReadings(ctx)
	require.NoError(t, err)
	assert.Len(t, readings, 6)
}

func TestRegisterIsPublic(t *testing.T) {
	f := newFixture(t)
	user, err := f.client.Register(context.Background(), internal.CreateUserRequest{
		FirstName: "Ana", LastName: "Souza", Email: "ana@example.com",
		Credentials: internal.Credentials{Username: "ana", Password: "segredo1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", user.Name)
}

func TestLookupPostalCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	addr, err := f.client.LookupPostalCode(ctx, "01310-100")
	require.NoError(t, err)
	assert.Equal(t, int32(1), f.cepCalls.Load())
	assert.Equal(t, "Avenida Paulista", addr.Street)
	assert.Equal(t, "Bela Vista", addr.Neighborhood)
	assert.Equal(t, "São Paulo", addr.City)
	assert.Equal(t, "SP", addr.State)

	_, err = f.client.LookupPostalCode(ctx, "123")
	assert.ErrorIs(t, err, internal.ErrInvalidPostalCode)
	assert.Equal(t, int32(1), f.cepCalls.Load())

	_, err = f.client.LookupPostalCode(ctx, "99999-999")
	assert.ErrorIs(t, err, internal.ErrPostalCodeNotFound)
}
