package planner

import (
	"sync"

	"github.com/dharmasatrya/travelplanner/internal/models"
)

// Store keeps generated plans in memory so the export link can be
// served after the generating request completes. Entries live until an
// explicit Clear.
type Store struct {
	mu    sync.RWMutex
	plans map[string]*models.TravelPlan
}

func NewStore() *Store {
	return &Store{plans: make(map[string]*models.TravelPlan)}
}

func (s *Store) Put(plan *models.TravelPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.plans[plan.ID] = plan
}

func (s *Store) Get(id string) (*models.TravelPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plan, ok := s.plans[id]
	return plan, ok
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.plans = make(map[string]*models.TravelPlan)
}
