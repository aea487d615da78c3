package repositories

import (
	"context"
	"delivery-cost-service/internal/domain"
	"sync"
	"time"
)

// In-memory implementation of the CoefficientStore port.
// Used as a test substitute for the SQL-backed stores.
type MemoryCoefficientStore struct {
	mu      sync.RWMutex
	current domain.Coefficients
}

func NewMemoryCoefficientStore() *MemoryCoefficientStore {
	return &MemoryCoefficientStore{current: domain.DefaultCoefficients()}
}

func (s *MemoryCoefficientStore) Get(ctx context.Context) (domain.Coefficients, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, nil
}

func (s *MemoryCoefficientStore) Set(ctx context.Context, distanceCoefficient, weightCoefficient float64) (domain.Coefficients, error) {
	c := domain.Coefficients{
		DistanceCoefficient: distanceCoefficient,
		WeightCoefficient:   weightCoefficient,
		UpdatedAt:           time.Now().UTC(),
	}
	if err := c.Validate(); err != nil {
		return domain.Coefficients{}, err
	}

	s.mu.Lock()
	s.current = c
	s.mu.Unlock()
	return c, nil
}

// In-memory implementation of the CalculationLog port.
type MemoryCalculationLog struct {
	mu    sync.Mutex
	calcs []domain.Calculation
}

func NewMemoryCalculationLog() *MemoryCalculationLog {
	return &MemoryCalculationLog{}
}

func (l *MemoryCalculationLog) Record(ctx context.Context, calc domain.Calculation) (domain.Calculation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	calc.ID = int64(len(l.calcs) + 1)
	l.calcs = append(l.calcs, calc)
	return calc, nil
}

func (l *MemoryCalculationLog) ListRecent(ctx context.Context, page, perPage int) ([]domain.Calculation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if page < 1 {
		page = 1
	}

	out := make([]domain.Calculation, 0, perPage)
	// newest first
	start := len(l.calcs) - 1 - (page-1)*perPage
	for i := start; i >= 0 && len(out) < perPage; i-- {
		out = append(out, l.calcs[i])
	}
	return out, nil
}

// In-memory implementation of the ContactRepository port.
type MemoryContactRepository struct {
	mu   sync.Mutex
	subs []domain.ContactSubmission
}

func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{}
}

func (r *MemoryContactRepository) Save(ctx context.Context, sub domain.ContactSubmission) (domain.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub.ID = int64(len(r.subs) + 1)
	r.subs = append(r.subs, sub)
	return sub, nil
}

func (r *MemoryContactRepository) ListRecent(ctx context.Context, page, perPage int) ([]domain.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if page < 1 {
		page = 1
	}

	out := make([]domain.ContactSubmission, 0, perPage)
	start := len(r.subs) - 1 - (page-1)*perPage
	for i := start; i >= 0 && len(out) < perPage; i-- {
		out = append(out, r.subs[i])
	}
	return out, nil
}
