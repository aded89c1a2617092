// Package roast owns the activation state and hands out insults.
//
// An Engine ties an insults.Store to a classify.Classifier and carries the
// ActivationState: whether interception is live and the current roast
// level. Retrieval is always allowed; only interception consults IsActive.
//
// The state is guarded per call, but multi-step sequences such as a scoped
// Override are not atomic across goroutines. Concurrent overrides can leak
// into each other.
package roast

import (
	"log/slog"
	"sync"

	"github.com/utkarsh5026/coderoast/pkg/classify"
	"github.com/utkarsh5026/coderoast/pkg/common/logger"
	"github.com/utkarsh5026/coderoast/pkg/insults"
	"github.com/utkarsh5026/coderoast/pkg/level"
)

// Roast is one insult together with what it was picked for.
type Roast struct {
	Kind     classify.Kind
	Category string
	Level    level.Level
	Text     string
}

// Engine hands out insults and owns the activation state.
type Engine struct {
	mu     sync.RWMutex
	active bool
	level  level.Level

	store      *insults.Store
	classifier *classify.Classifier
	log        *slog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithStore sets the insult store. Defaults to insults.NewDefaultStore().
func WithStore(s *insults.Store) Option {
	return func(e *Engine) {
		if s != nil {
			e.store = s
		}
	}
}

// WithClassifier sets the classifier. Defaults to classify.New().
func WithClassifier(c *classify.Classifier) Option {
	return func(e *Engine) {
		if c != nil {
			e.classifier = c
		}
	}
}

// WithLevel sets the initial roast level. Invalid levels are ignored.
func WithLevel(l level.Level) Option {
	return func(e *Engine) {
		if l.IsValid() {
			e.level = l
		}
	}
}

// WithActive sets the initial activation state.
func WithActive(active bool) Option {
	return func(e *Engine) {
		e.active = active
	}
}

// WithLogger sets the diagnostics logger. Defaults to logger.Default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// New creates an engine in its initial state: active, at level.Default.
func New(opts ...Option) *Engine {
	e := &Engine{
		active: true,
		level:  level.Default,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.store == nil {
		e.store = insults.NewDefaultStore()
	}
	if e.classifier == nil {
		e.classifier = classify.New()
	}
	e.log = logger.OrDefault(e.log)

	return e
}

// Activate turns interception on. Calling it again has no further effect.
func (e *Engine) Activate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = true
}

// Deactivate turns interception off. Calling it again has no further effect.
func (e *Engine) Deactivate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = false
}

// IsActive reports whether interception is live
func (e *Engine) IsActive() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.active
}

// SetRoastLevel changes the current level. Levels outside Mild..Brutal
// are rejected with a level.InvalidLevelError.
func (e *Engine) SetRoastLevel(l level.Level) error {
	if err := l.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.level = l
	return nil
}

// RoastLevel returns the current level
func (e *Engine) RoastLevel() level.Level {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.level
}

// Override switches to l until the returned restore func is called, which
// puts back the level that was current before. Restore is safe to call
// more than once; only the first call has an effect.
func (e *Engine) Override(l level.Level) (restore func(), err error) {
	if err := l.Validate(); err != nil {
		return func() {}, err
	}

	e.mu.Lock()
	prev := e.level
	e.level = l
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			e.level = prev
			e.mu.Unlock()
		})
	}, nil
}

// GetInsult picks from the generic pool at the current level.
func (e *Engine) GetInsult() (string, error) {
	return e.store.GetRandom(e.RoastLevel())
}

// GetInsultByCategory picks from every insult of category regardless of
// level or activation state. Unknown categories yield an
// insults.UnknownCategoryError.
func (e *Engine) GetInsultByCategory(category string) (string, error) {
	return e.store.GetByCategory(category)
}

// GetInsultByError classifies kind and picks from its category at the
// current level, falling back to GetInsult when the category has nothing
// to offer.
func (e *Engine) GetInsultByError(kind classify.Kind) (string, error) {
	r, err := e.RoastKind(kind)
	if err != nil {
		return "", err
	}
	return r.Text, nil
}

// RoastKind is GetInsultByError with the details of the pick.
func (e *Engine) RoastKind(kind classify.Kind) (Roast, error) {
	lvl := e.RoastLevel()
	category := e.classifier.Classify(kind)

	r := Roast{Kind: kind, Category: category, Level: lvl}

	text, err := e.store.GetByCategoryAt(category, lvl)
	if insults.IsUnknownCategory(err) || insults.IsEmptyPool(err) {
		e.log.Debug("category has nothing to offer, using generic pool",
			"kind", kind, "category", category, "level", lvl)
		text, err = e.store.GetRandom(lvl)
	}
	if err != nil {
		return Roast{}, err
	}

	r.Text = text
	return r, nil
}

// InsultFor roasts an arbitrary panic value or error.
func (e *Engine) InsultFor(v any) (Roast, error) {
	return e.RoastKind(classify.KindOf(v))
}

// Classify returns the category kind maps to.
func (e *Engine) Classify(kind classify.Kind) string {
	return e.classifier.Classify(kind)
}

// AvailableCategories returns the registered category keys, sorted.
func (e *Engine) AvailableCategories() []string {
	return e.store.ListCategories()
}

// AddInsults appends texts to the generic pool. See insults.Store.AddInsults.
func (e *Engine) AddInsults(texts []string) int {
	return e.store.AddInsults(texts)
}

// AddCategorizedInsult appends texts to category, creating it if needed.
func (e *Engine) AddCategorizedInsult(category string, texts []string) int {
	return e.store.AddCategorizedInsult(category, texts)
}

// Store returns the underlying insult store
func (e *Engine) Store() *insults.Store {
	return e.store
}

// Classifier returns the underlying classifier
func (e *Engine) Classifier() *classify.Classifier {
	return e.classifier
}
