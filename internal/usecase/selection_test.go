package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/winery-map/internal/domain"
	"github.com/winery-map/internal/state"
	"github.com/winery-map/internal/usecase"
)

// MockSelectionRecorder is a mock of SelectionRecorder
type MockSelectionRecorder struct {
	mock.Mock
}

func (m *MockSelectionRecorder) ObserveSelection(intent string, changed bool) {
	m.Called(intent, changed)
}

func newController(t *testing.T, location string) (*usecase.SelectionController, *state.URLStore) {
	t.Helper()

	store, err := state.NewURLStore(location)
	require.NoError(t, err)

	return usecase.NewSelectionController(store, nil, zap.NewNop()), store
}

func TestSelectionController_SelectThenRead(t *testing.T) {
	sc, store := newController(t, "/")
	coll := usecase.Normalize(&domain.RecordSet{Docs: sampleDocs()})

	assert.True(t, sc.Select("tharsys"))

	rec, ok := sc.Selected(coll)
	require.True(t, ok)
	assert.Equal(t, "tharsys", rec.ID)
	assert.Equal(t, "/?winery=tharsys", store.URL())
}

func TestSelectionController_SelectUnknownResolvesEmpty(t *testing.T) {
	sc, _ := newController(t, "/")
	coll := usecase.Normalize(&domain.RecordSet{Docs: sampleDocs()})

	sc.Select("stale-link")

	_, ok := sc.Selected(coll)
	assert.False(t, ok)
	assert.Equal(t, "stale-link", sc.SelectedID(), "unknown id stays in the store")
}

func TestSelectionController_Idempotent(t *testing.T) {
	sc, store := newController(t, "/?winery=murviedro")

	assert.False(t, sc.Select("murviedro"))
	assert.Equal(t, 0, store.Pushes())

	assert.True(t, sc.Clear())
	assert.False(t, sc.Clear())
	assert.Equal(t, 1, store.Pushes())
	assert.Equal(t, "/", store.URL())
}

func TestSelectionController_ClearSurvivesCollectionChange(t *testing.T) {
	sc, _ := newController(t, "/")

	sc.Select("murviedro")
	sc.Clear()

	// collection rebuilt in between
	coll := usecase.Normalize(&domain.RecordSet{Docs: sampleDocs()[:1]})

	_, ok := sc.Selected(coll)
	assert.False(t, ok)
	assert.Equal(t, "", sc.SelectedID())
}

func TestSelectionController_DerivedNotCached(t *testing.T) {
	sc, _ := newController(t, "/?winery=tharsys")

	full := usecase.Normalize(&domain.RecordSet{Docs: sampleDocs()})
	_, ok := sc.Selected(full)
	require.True(t, ok)

	// record removed upstream: next read sees it immediately
	reduced := usecase.Normalize(&domain.RecordSet{Docs: sampleDocs()[:1]})
	_, ok = sc.Selected(reduced)
	assert.False(t, ok)
}

func TestSelectionController_SelectBeforeDataLoads(t *testing.T) {
	sc, _ := newController(t, "/")

	sc.Select("murviedro")

	_, ok := sc.Selected(nil)
	assert.False(t, ok)

	coll := usecase.Normalize(&domain.RecordSet{Docs: sampleDocs()})
	rec, ok := sc.Selected(coll)
	require.True(t, ok)
	assert.Equal(t, "murviedro", rec.ID)
}

func TestSelectionController_EmptyIDClears(t *testing.T) {
	sc, store := newController(t, "/?winery=tharsys")

	assert.True(t, sc.Select(""))
	assert.Equal(t, "/", store.URL())
}

func TestSelectionController_RecordsIntents(t *testing.T) {
	store, err := state.NewURLStore("/")
	require.NoError(t, err)

	recorder := &MockSelectionRecorder{}
	recorder.On("ObserveSelection", "select", true).Once()
	recorder.On("ObserveSelection", "select", false).Once()
	recorder.On("ObserveSelection", "clear", true).Once()

	sc := usecase.NewSelectionController(store, recorder, zap.NewNop())
	sc.Select("a")
	sc.Select("a")
	sc.Clear()

	recorder.AssertExpectations(t)
}

func TestSelectionController_NotifiesSubscribers(t *testing.T) {
	sc, store := newController(t, "/")

	var seen []string
	store.Subscribe(func(key, value string) {
		seen = append(seen, value)
	})

	sc.Select("a")
	sc.Select("a")
	sc.Select("b")
	sc.Clear()

	assert.Equal(t, []string{"a", "b", ""}, seen)
}
