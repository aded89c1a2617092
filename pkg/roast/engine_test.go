package roast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utkarsh5026/coderoast/pkg/classify"
	"github.com/utkarsh5026/coderoast/pkg/insults"
	"github.com/utkarsh5026/coderoast/pkg/level"
)

var sinkInt int

func firstPicker(int) int { return 0 }

// tieredEngine builds an engine whose math category and generic pool only
// carry leveled insults, so the emitted text names the level it came from.
func tieredEngine(t *testing.T) *Engine {
	t.Helper()

	store := insults.NewStore(insults.WithPicker(firstPicker))
	for _, lvl := range level.All() {
		_, err := store.AddLeveledInsults("", lvl, []string{"generic " + lvl.String()})
		require.NoError(t, err)
		_, err = store.AddLeveledInsults(insults.CategoryMath, lvl, []string{"math " + lvl.String()})
		require.NoError(t, err)
	}
	return New(WithStore(store))
}

func TestNew_InitialState(t *testing.T) {
	e := New()

	assert.True(t, e.IsActive())
	assert.Equal(t, level.Medium, e.RoastLevel())
	assert.NotEmpty(t, e.AvailableCategories())
}

func TestNew_Options(t *testing.T) {
	e := New(WithActive(false), WithLevel(level.Brutal))
	assert.False(t, e.IsActive())
	assert.Equal(t, level.Brutal, e.RoastLevel())

	e = New(WithLevel(level.Level(42)))
	assert.Equal(t, level.Default, e.RoastLevel(), "invalid levels are ignored")
}

func TestActivateDeactivate_Idempotent(t *testing.T) {
	e := New()

	e.Deactivate()
	e.Deactivate()
	assert.False(t, e.IsActive())

	e.Activate()
	e.Activate()
	assert.True(t, e.IsActive())
}

func TestSetRoastLevel(t *testing.T) {
	e := New()

	require.NoError(t, e.SetRoastLevel(level.Mild))
	assert.Equal(t, level.Mild, e.RoastLevel())

	for _, bad := range []level.Level{0, 4, -1} {
		err := e.SetRoastLevel(bad)
		assert.True(t, level.IsInvalidLevel(err), "level %d", bad)
		assert.Equal(t, level.Mild, e.RoastLevel(), "rejected levels leave state unchanged")
	}
}

func TestGetInsult_Deactivated(t *testing.T) {
	e := New(WithActive(false))

	text, err := e.GetInsult()
	require.NoError(t, err)
	assert.NotEmpty(t, text, "retrieval does not depend on activation")
}

func TestGetInsult_FollowsLevel(t *testing.T) {
	e := tieredEngine(t)

	for _, lvl := range level.All() {
		require.NoError(t, e.SetRoastLevel(lvl))
		got, err := e.GetInsult()
		require.NoError(t, err)
		assert.Equal(t, "generic "+lvl.String(), got)
	}
}

func TestGetInsultByCategory(t *testing.T) {
	e := New()

	text, err := e.GetInsultByCategory("syntax")
	require.NoError(t, err)
	assert.NotEmpty(t, text)

	_, err = e.GetInsultByCategory("nonexistent")
	assert.True(t, insults.IsUnknownCategory(err))
}

func TestGetInsultByError_UsesCategoryAtLevel(t *testing.T) {
	e := tieredEngine(t)
	require.NoError(t, e.SetRoastLevel(level.Brutal))

	got, err := e.GetInsultByError(classify.KindDivideByZero)
	require.NoError(t, err)
	assert.Equal(t, "math brutal", got)
}

// Unmapped kinds classify to the general category. Only when general has
// nothing to offer does the pick fall through to the generic pool.
func TestGetInsultByError_UnmappedKindUsesGeneralCategory(t *testing.T) {
	e := tieredEngine(t)
	require.NoError(t, e.SetRoastLevel(level.Mild))
	_, err := e.Store().AddLeveledInsults(classify.Fallback, level.Mild, []string{"general mild"})
	require.NoError(t, err)

	r, err := e.RoastKind("NoSuchKind")
	require.NoError(t, err)
	assert.Equal(t, classify.Fallback, r.Category)
	assert.Equal(t, "general mild", r.Text, "the general category wins over the generic pool")
}

func TestGetInsultByError_FallsBackToGenericPool(t *testing.T) {
	e := tieredEngine(t)
	require.NoError(t, e.SetRoastLevel(level.Mild))
	require.False(t, e.Store().Has(classify.Fallback))

	got, err := e.GetInsultByError("NoSuchKind")
	require.NoError(t, err)
	assert.Equal(t, "generic mild", got, "with no general category the generic pool answers")

	got, err = e.GetInsultByError(classify.KindNilPointer)
	require.NoError(t, err)
	assert.Equal(t, "generic mild", got, "a mapped category missing from the store also uses the generic pool")
}

func TestGetInsultByError_EmptyEverywhere(t *testing.T) {
	e := New(WithStore(insults.NewStore()))

	_, err := e.GetInsultByError(classify.KindDivideByZero)
	assert.True(t, insults.IsEmptyPool(err))
}

func TestOverride_RestoresPreviousLevel(t *testing.T) {
	e := tieredEngine(t)
	require.NoError(t, e.SetRoastLevel(level.Mild))

	restore, err := e.Override(level.Brutal)
	require.NoError(t, err)

	got, err := e.GetInsultByError(classify.KindDivideByZero)
	require.NoError(t, err)
	assert.Equal(t, "math brutal", got)

	restore()
	restore()
	assert.Equal(t, level.Mild, e.RoastLevel())
}

func TestOverride_InvalidLevel(t *testing.T) {
	e := New()

	restore, err := e.Override(level.Level(7))
	require.Error(t, err)
	require.NotNil(t, restore)
	restore()
	assert.Equal(t, level.Medium, e.RoastLevel())
}

func TestInsultFor(t *testing.T) {
	e := tieredEngine(t)

	var v any
	func() {
		defer func() { v = recover() }()
		zero := 0
		sinkInt = 1 / zero
	}()
	require.NotNil(t, v)

	r, err := e.InsultFor(v)
	require.NoError(t, err)
	assert.Equal(t, classify.KindDivideByZero, r.Kind)
	assert.Equal(t, insults.CategoryMath, r.Category)
	assert.Equal(t, level.Medium, r.Level)
	assert.Equal(t, "math medium", r.Text)
}

func TestAddInsults(t *testing.T) {
	e := New(WithStore(insults.NewStore()))

	assert.Equal(t, 1, e.AddInsults([]string{"only one"}))
	got, err := e.GetInsult()
	require.NoError(t, err)
	assert.Equal(t, "only one", got)

	assert.Equal(t, 2, e.AddCategorizedInsult("logic", []string{"a", "b"}))
	assert.Equal(t, []string{"logic"}, e.AvailableCategories())
}
