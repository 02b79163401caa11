package api

import (
	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/auth"
	"github.com/Kauesamartino/WorksafeApp/internal/storage"
)

// App is what the fake API handlers depend on.
type App interface {
	Logger() internal.Logger
	Auth() auth.Provider
	UserRepo() storage.UserRepository
	AssessmentRepo() storage.SelfAssessmentRepository
	RecommendationRepo() storage.RecommendationRepository
	AlertRepo() storage.AlertRepository
	WearableRepo() storage.WearableRepository
}

type memoryApp struct {
	repo     *storage.MemoryRepository
	provider *auth.LocalProvider
	logger   internal.Logger
}

// NewMemoryApp serves every resource from repo and issues tokens locally.
func NewMemoryApp(repo *storage.MemoryRepository, logger internal.Logger) App {
	return &memoryApp{
		repo:     repo,
		provider: auth.NewLocalProvider(repo, logger),
		logger:   logger,
	}
}

func (a *memoryApp) Logger() internal.Logger                              { return a.logger }
func (a *memoryApp) Auth() auth.Provider                                  { return a.provider }
func (a *memoryApp) UserRepo() storage.UserRepository                     { return a.repo }
func (a *memoryApp) AssessmentRepo() storage.SelfAssessmentRepository     { return a.repo }
func (a *memoryApp) RecommendationRepo() storage.RecommendationRepository { return a.repo }
func (a *memoryApp) AlertRepo() storage.AlertRepository                   { return a.repo }
func (a *memoryApp) WearableRepo() storage.WearableRepository             { return a.repo }
