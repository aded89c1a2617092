package insults

import (
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/utkarsh5026/coderoast/pkg/level"
)

// Picker returns an index in [0, n). n is always positive.
type Picker func(n int) int

// Store owns every insult: the generic pool and the categorized pools.
//
// Insults are only ever appended. Duplicates are kept on purpose: an insult
// added twice is twice as likely to be picked, since selection is uniform
// over the flattened pool.
type Store struct {
	mu         sync.RWMutex
	generic    *pool
	categories map[string]*pool
	pick       Picker
}

// Option configures a Store
type Option func(*Store)

// WithPicker replaces the random index source. Tests use it to make
// selection deterministic.
func WithPicker(p Picker) Option {
	return func(s *Store) {
		if p != nil {
			s.pick = p
		}
	}
}

// NewStore creates an empty store
func NewStore(opts ...Option) *Store {
	s := &Store{
		generic:    newPool(),
		categories: make(map[string]*pool),
		pick:       rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDefaultStore creates a store preloaded with DefaultCorpus.
func NewDefaultStore(opts ...Option) *Store {
	s := NewStore(opts...)
	s.Load(DefaultCorpus())
	return s
}

// Load merges a corpus into the store and returns the number of insults accepted.
func (s *Store) Load(c Corpus) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := loadTiers(s.generic, c.Generic)
	for category, tiers := range c.Categories {
		n += loadTiers(s.categoryLocked(category), tiers)
	}
	return n
}

func loadTiers(p *pool, t Tiers) int {
	n := p.add(t.Any)
	n += p.addTier(level.Mild, t.Mild)
	n += p.addTier(level.Medium, t.Medium)
	n += p.addTier(level.Brutal, t.Brutal)
	return n
}

// GetRandom picks from the generic pool: its untiered insults plus the
// ones registered for lvl.
func (s *Store) GetRandom(lvl level.Level) (string, error) {
	if err := lvl.Validate(); err != nil {
		return "", err
	}

	s.mu.RLock()
	eligible := s.generic.at(lvl)
	s.mu.RUnlock()

	if len(eligible) == 0 {
		return "", NewEmptyPoolError("get_random", "")
	}
	return eligible[s.pick(len(eligible))], nil
}

// GetByCategory picks from every insult of category, whatever its tier.
func (s *Store) GetByCategory(category string) (string, error) {
	key := NormalizeCategory(category)

	s.mu.RLock()
	p, ok := s.categories[key]
	var eligible []string
	if ok {
		eligible = p.all()
	}
	s.mu.RUnlock()

	if !ok {
		return "", NewUnknownCategoryError("get_by_category", category)
	}
	if len(eligible) == 0 {
		return "", NewEmptyPoolError("get_by_category", key)
	}
	return eligible[s.pick(len(eligible))], nil
}

// GetByCategoryAt picks from the insults of category eligible at lvl.
func (s *Store) GetByCategoryAt(category string, lvl level.Level) (string, error) {
	if err := lvl.Validate(); err != nil {
		return "", err
	}
	key := NormalizeCategory(category)

	s.mu.RLock()
	p, ok := s.categories[key]
	var eligible []string
	if ok {
		eligible = p.at(lvl)
	}
	s.mu.RUnlock()

	if !ok {
		return "", NewUnknownCategoryError("get_by_category_at", category)
	}
	if len(eligible) == 0 {
		return "", NewEmptyPoolError("get_by_category_at", key)
	}
	return eligible[s.pick(len(eligible))], nil
}

// AddInsults appends texts to the generic pool and returns how many were
// accepted. Blank strings are skipped; duplicates are not.
func (s *Store) AddInsults(texts []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generic.add(texts)
}

// AddCategorizedInsult appends texts to category, creating it if needed,
// and returns how many were accepted. An empty category targets the
// generic pool.
func (s *Store) AddCategorizedInsult(category string, texts []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if NormalizeCategory(category) == "" {
		return s.generic.add(texts)
	}
	return s.categoryLocked(category).add(texts)
}

// AddLeveledInsults appends texts to the lvl sub-bucket of category. An
// empty category targets the generic pool.
func (s *Store) AddLeveledInsults(category string, lvl level.Level, texts []string) (int, error) {
	if err := lvl.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if NormalizeCategory(category) == "" {
		return s.generic.addTier(lvl, texts), nil
	}
	return s.categoryLocked(category).addTier(lvl, texts), nil
}

// ListCategories returns the registered category keys, sorted.
func (s *Store) ListCategories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.categories))
	for key := range s.categories {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether category is registered.
func (s *Store) Has(category string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.categories[NormalizeCategory(category)]
	return ok
}

// Len returns the total number of insults, duplicates included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.generic.len()
	for _, p := range s.categories {
		n += p.len()
	}
	return n
}

// CategoryLen returns the number of insults in category, or 0 if unknown.
func (s *Store) CategoryLen(category string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.categories[NormalizeCategory(category)]; ok {
		return p.len()
	}
	return 0
}

// categoryLocked returns the pool for category, creating it.
// Caller must hold the write lock.
func (s *Store) categoryLocked(category string) *pool {
	key := NormalizeCategory(category)
	p, ok := s.categories[key]
	if !ok {
		p = newPool()
		s.categories[key] = p
	}
	return p
}
