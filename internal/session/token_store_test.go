package session

import (
	"context"
	"errors"
	"testing"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockKV struct {
	mock.Mock
}

func (m *mockKV) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockKV) Set(ctx context.Context, key, value string) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *mockKV) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockKV) Close() error { return nil }

func TestTokenStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewTokenStore(storage.NewMemoryStore(), internal.NopLogger())

	assert.Equal(t, "", s.GetToken(ctx))
	assert.False(t, s.Session(ctx).Active())

	s.SaveToken(ctx, "tok-1")
	s.SaveUsername(ctx, "ana")
	assert.Equal(t, "tok-1", s.GetToken(ctx))
	assert.Equal(t, "ana", s.GetUsername(ctx))
	assert.Equal(t, internal.Session{Token: "tok-1", Username: "ana"}, s.Session(ctx))

	s.RemoveToken(ctx)
	assert.Equal(t, "", s.GetToken(ctx))
	assert.Equal(t, "", s.GetUsername(ctx))
}

func TestTokenStore_FailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	kv := new(mockKV)
	kv.On("Set", ctx, TokenKey, "tok").Return(boom)
	kv.On("Get", ctx, TokenKey).Return("", false, boom)
	kv.On("Delete", ctx, TokenKey).Return(boom)
	kv.On("Delete", ctx, UsernameKey).Return(nil)

	s := NewTokenStore(kv, internal.NopLogger())
	assert.NotPanics(t, func() { s.SaveToken(ctx, "tok") })
	assert.Equal(t, "", s.GetToken(ctx))
	s.RemoveToken(ctx)

	// username is still cleared when the token delete fails
	kv.AssertCalled(t, "Delete", ctx, UsernameKey)
	kv.AssertExpectations(t)
}
