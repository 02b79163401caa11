package storage

import (
	"context"
	"errors"

	"github.com/Kauesamartino/WorksafeApp/internal"
)

var (
	ErrNotFound = errors.New("storage: record not found")
	ErrConflict = errors.New("storage: record already exists")
)

// KeyValueStore is the persistent client-side state (session token and username).
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type SelfAssessmentRepository interface {
	ListSelfAssessments(ctx context.Context, userID int64) ([]internal.SelfAssessment, error)
	CreateSelfAssessment(ctx context.Context, a *internal.SelfAssessment) error
	UpdateSelfAssessment(ctx context.Context, userID, id int64, patch internal.SelfAssessmentPatch) (*internal.SelfAssessment, error)
	DeleteSelfAssessment(ctx context.Context, userID, id int64) error
}

type RecommendationRepository interface {
	ListRecommendations(ctx context.Context, userID int64) ([]internal.Recommendation, error)
	CreateRecommendation(ctx context.Context, r *internal.Recommendation) error
	UpdateRecommendation(ctx context.Context, userID, id int64, patch internal.RecommendationPatch) (*internal.Recommendation, error)
	DeleteRecommendation(ctx context.Context, userID, id int64) error
}

type AlertRepository interface {
	ListAlerts(ctx context.Context, userID int64) ([]internal.Alert, error)
}

type WearableRepository interface {
	ListWearableReadings(ctx context.Context, userID int64) ([]internal.WearableReading, error)
}

// Account is a registered user together with its login data.
type Account struct {
	internal.User
	Username     string
	PasswordHash []byte
}

type UserRepository interface {
	CreateAccount(ctx context.Context, acc *Account) error
	GetAccountByUsername(ctx context.Context, username string) (*Account, error)
}
