package storage

import (
	"context"
	"sync"

	"github.com/Kauesamartino/WorksafeApp/internal"
)

// MemoryStore is a KeyValueStore that lives only as long as the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryStore) Close() error { return nil }

// MemoryRepository backs the fake API. Each instance owns its data; nothing is
// shared between instances.
type MemoryRepository struct {
	mu          sync.RWMutex
	nextID      int64
	assessments []internal.SelfAssessment
	recs        []internal.Recommendation
	alerts      []internal.Alert
	wearables   []internal.WearableReading
	accounts    map[string]*Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]*Account)}
}

func (m *MemoryRepository) newID() int64 {
	m.nextID++
	return m.nextID
}

// --- SelfAssessmentRepository ---
func (m *MemoryRepository) ListSelfAssessments(ctx context.Context, userID int64) ([]internal.SelfAssessment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []internal.SelfAssessment{}
	for _, a := range m.assessments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MemoryRepository) CreateSelfAssessment(ctx context.Context, a *internal.SelfAssessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = m.newID()
	m.assessments = append(m.assessments, *a)
	return nil
}

func (m *MemoryRepository) UpdateSelfAssessment(ctx context.Context, userID, id int64, p internal.SelfAssessmentPatch) (*internal.SelfAssessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.assessments {
		a := &m.assessments[i]
		if a.ID != id || a.UserID != userID {
			continue
		}
		if p.Date != nil {
			a.Date = *p.Date
		}
		if p.StressLevel != nil {
			a.StressLevel = *p.StressLevel
		}
		if p.Mood != nil {
			a.Mood = *p.Mood
		}
		if p.Energy != nil {
			a.Energy = *p.Energy
		}
		if p.SleepQuality != nil {
			a.SleepQuality = *p.SleepQuality
		}
		if p.Comments != nil {
			a.Comments = *p.Comments
		}
		updated := *a
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepository) DeleteSelfAssessment(ctx context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.assessments {
		if a.ID == id && a.UserID == userID {
			m.assessments = append(m.assessments[:i], m.assessments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// --- RecommendationRepository ---
func (m *MemoryRepository) ListRecommendations(ctx context.Context, userID int64) ([]internal.Recommendation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []internal.Recommendation{}
	for _, r := range m.recs {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MemoryRepository) CreateRecommendation(ctx context.Context, r *internal.Recommendation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = m.newID()
	m.recs = append(m.recs, *r)
	return nil
}

func (m *MemoryRepository) UpdateRecommendation(ctx context.Context, userID, id int64, p internal.RecommendationPatch) (*internal.Recommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.recs {
		r := &m.recs[i]
		if r.ID != id || r.UserID != userID {
			continue
		}
		if p.ActivityType != nil {
			r.ActivityType = *p.ActivityType
		}
		if p.Title != nil {
			r.Title = *p.Title
		}
		if p.Description != nil {
			r.Description = *p.Description
		}
		if p.CreatedAt != nil {
			r.CreatedAt = *p.CreatedAt
		}
		if p.Consumed != nil {
			r.Consumed = *p.Consumed
		}
		updated := *r
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepository) DeleteRecommendation(ctx context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.recs {
		if r.ID == id && r.UserID == userID {
			m.recs = append(m.recs[:i], m.recs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// --- AlertRepository / WearableRepository ---
func (m *MemoryRepository) ListAlerts(ctx context.Context, userID int64) ([]internal.Alert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []internal.Alert{}
	for _, a := range m.alerts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MemoryRepository) ListWearableReadings(ctx context.Context, userID int64) ([]internal.WearableReading, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []internal.WearableReading{}
	for _, w := range m.wearables {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

// AddAlert and AddWearableReading stand in for the server-side producers.
func (m *MemoryRepository) AddAlert(a internal.Alert) internal.Alert {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = m.newID()
	m.alerts = append(m.alerts, a)
	return a
}

func (m *MemoryRepository) AddWearableReading(w internal.WearableReading) internal.WearableReading {
	m.mu.Lock()
	defer m.mu.Unlock()
	w.ID = m.newID()
	m.wearables = append(m.wearables, w)
	return w
}

// --- UserRepository ---
func (m *MemoryRepository) CreateAccount(ctx context.Context, acc *Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.accounts[acc.Username]; exists {
		return ErrConflict
	}
	acc.ID = m.newID()
	stored := *acc
	m.accounts[acc.Username] = &stored
	return nil
}

func (m *MemoryRepository) GetAccountByUsername(ctx context.Context, username string) (*Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	acc, ok := m.accounts[username]
	if !ok {
		return nil, ErrNotFound
	}
	out := *acc
	return &out, nil
}

// --- Compile-time assertions ---
var _ KeyValueStore = (*MemoryStore)(nil)
var _ SelfAssessmentRepository = (*MemoryRepository)(nil)
var _ RecommendationRepository = (*MemoryRepository)(nil)
var _ AlertRepository = (*MemoryRepository)(nil)
var _ WearableRepository = (*MemoryRepository)(nil)
var _ UserRepository = (*MemoryRepository)(nil)
