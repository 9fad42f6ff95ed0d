package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/winery-map/internal/domain"
	apperrors "github.com/winery-map/internal/pkg/errors"
	"github.com/winery-map/internal/usecase"
	"github.com/winery-map/internal/usecase/dto"
)

// MockPresentationRecorder is a mock of PresentationRecorder
type MockPresentationRecorder struct {
	mock.Mock
}

func (m *MockPresentationRecorder) ObserveSelection(intent string, changed bool) {
	m.Called(intent, changed)
}

func (m *MockPresentationRecorder) ObserveSurface(surface domain.Surface) {
	m.Called(surface)
}

func loadedDirectory(t *testing.T, docs []domain.RawRecord) *usecase.DirectoryUseCase {
	t.Helper()

	ctx := context.Background()
	repo := &MockRecordRepository{}
	repo.On("FetchRecords", ctx, 100).Return(docs, nil).Once()

	dir := newDirectory(repo)
	dir.Load(ctx)
	return dir
}

func TestSelectionUseCase_SelectAndClear(t *testing.T) {
	uc := usecase.NewSelectionUseCase(loadedDirectory(t, sampleDocs()), nil, zap.NewNop(), 768, domain.WideModePanel)

	nav, err := uc.Select(dto.SelectRequest{URL: "/", ID: "murviedro"})
	require.NoError(t, err)
	assert.Equal(t, "/?winery=murviedro", nav.URL)
	assert.True(t, nav.Changed)

	nav, err = uc.Select(dto.SelectRequest{URL: nav.URL, ID: "murviedro"})
	require.NoError(t, err)
	assert.False(t, nav.Changed)

	nav, err = uc.Clear(dto.ClearRequest{URL: nav.URL})
	require.NoError(t, err)
	assert.Equal(t, "/", nav.URL)
	assert.True(t, nav.Changed)
}

func TestSelectionUseCase_InvalidLocation(t *testing.T) {
	uc := usecase.NewSelectionUseCase(loadedDirectory(t, sampleDocs()), nil, zap.NewNop(), 768, domain.WideModePanel)

	_, err := uc.Select(dto.SelectRequest{URL: "http://[::1", ID: "x"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidLocation)
}

func TestSelectionUseCase_Resolve(t *testing.T) {
	recorder := &MockPresentationRecorder{}
	recorder.On("ObserveSurface", mock.Anything).Return()

	uc := usecase.NewSelectionUseCase(loadedDirectory(t, sampleDocs()), recorder, zap.NewNop(), 768, domain.WideModePanel)

	wide := uc.Resolve(dto.SelectionQuery{ID: "tharsys", Width: 1280})
	assert.True(t, wide.Found)
	assert.Equal(t, domain.ViewportWide, wide.Viewport)
	assert.Equal(t, domain.SurfaceSidePanel, wide.Decision.Surface)
	require.NotNil(t, wide.Detail)
	assert.Equal(t, "Pago de Tharsys", wide.Detail.Name)

	narrow := uc.Resolve(dto.SelectionQuery{ID: "tharsys", Width: 390})
	assert.Equal(t, domain.SurfaceBottomSheet, narrow.Decision.Surface)
	assert.Equal(t, wide.SelectedID, narrow.SelectedID)
	assert.Equal(t, wide.Decision.RecordID, narrow.Decision.RecordID)

	none := uc.Resolve(dto.SelectionQuery{Width: 390})
	assert.False(t, none.Found)
	assert.Equal(t, domain.SurfaceNone, none.Decision.Surface)
	assert.Nil(t, none.Detail)

	recorder.AssertCalled(t, "ObserveSurface", domain.SurfaceSidePanel)
	recorder.AssertCalled(t, "ObserveSurface", domain.SurfaceBottomSheet)
	recorder.AssertCalled(t, "ObserveSurface", domain.SurfaceNone)
}

func TestSelectionUseCase_ResolveStaleAndLoading(t *testing.T) {
	uc := usecase.NewSelectionUseCase(loadedDirectory(t, sampleDocs()), nil, zap.NewNop(), 768, domain.WideModePanel)

	stale := uc.Resolve(dto.SelectionQuery{ID: "gone", Width: 1280})
	assert.False(t, stale.Found)
	assert.Equal(t, "gone", stale.SelectedID)
	assert.Equal(t, domain.SurfaceNone, stale.Decision.Surface)

	loading := usecase.NewSelectionUseCase(newDirectory(&MockRecordRepository{}), nil, zap.NewNop(), 768, domain.WideModePanel)
	view := loading.Resolve(dto.SelectionQuery{ID: "tharsys", Width: 1280})
	assert.False(t, view.Found)
	assert.Equal(t, domain.SurfaceNone, view.Decision.Surface)
}

func TestSelectionUseCase_NavigationPushesHistory(t *testing.T) {
	uc := usecase.NewSelectionUseCase(loadedDirectory(t, sampleDocs()), nil, zap.NewNop(), 768, domain.WideModePanel)

	nav, err := uc.Select(dto.SelectRequest{URL: "/?winery=murviedro", ID: "tharsys"})
	require.NoError(t, err)
	assert.True(t, nav.Changed)
	assert.True(t, nav.Push)

	nav, err = uc.Clear(dto.ClearRequest{URL: "/"})
	require.NoError(t, err)
	assert.False(t, nav.Changed)
	assert.False(t, nav.Push)
	assert.Equal(t, "/", nav.URL)
}

func TestSelectionUseCase_ResolveResize(t *testing.T) {
	uc := usecase.NewSelectionUseCase(loadedDirectory(t, sampleDocs()), nil, zap.NewNop(), 768, domain.WideModePopup)

	tests := []struct {
		name         string
		from, width  int
		reclassified bool
		surface      domain.Surface
	}{
		{name: "wide to narrow", from: 1280, width: 390, reclassified: true, surface: domain.SurfaceBottomSheet},
		{name: "narrow to wide", from: 390, width: 1280, reclassified: true, surface: domain.SurfacePopup},
		{name: "within wide", from: 1280, width: 1024, reclassified: false, surface: domain.SurfacePopup},
		{name: "no previous width", width: 390, reclassified: false, surface: domain.SurfaceBottomSheet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := uc.Resolve(dto.SelectionQuery{ID: "tharsys", Width: tt.width, From: tt.from})
			assert.Equal(t, tt.reclassified, view.Reclassified)
			assert.Equal(t, tt.surface, view.Decision.Surface)
			assert.True(t, view.Found)
			assert.Equal(t, "tharsys", view.Decision.RecordID)
		})
	}
}
