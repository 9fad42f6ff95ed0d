package usecase

import (
	"net/url"

	"github.com/winery-map/internal/domain"
	"github.com/winery-map/internal/pkg/errors"
	"github.com/winery-map/internal/state"
	"github.com/winery-map/internal/usecase/dto"
	"go.uber.org/zap"
)

// PresentationRecorder получает события выбора и решения о поверхности (метрики)
type PresentationRecorder interface {
	SelectionRecorder
	ObserveSurface(surface domain.Surface)
}

// SelectionUseCase собирает контроллер выбора и маршрутизатор поверхностей
// для одного запроса: состояние живёт в URL клиента, на сервере не хранится.
type SelectionUseCase struct {
	directory  *DirectoryUseCase
	recorder   PresentationRecorder
	logger     *zap.Logger
	breakpoint int
	mode       domain.WideMode
}

func NewSelectionUseCase(
	directory *DirectoryUseCase,
	recorder PresentationRecorder,
	logger *zap.Logger,
	breakpoint int,
	mode domain.WideMode,
) *SelectionUseCase {
	return &SelectionUseCase{
		directory:  directory,
		recorder:   recorder,
		logger:     logger,
		breakpoint: breakpoint,
		mode:       mode,
	}
}

// Select применяет намерение выбора к адресу страницы клиента
func (uc *SelectionUseCase) Select(req dto.SelectRequest) (*dto.NavigationResponse, error) {
	store, err := uc.store(req.URL)
	if err != nil {
		return nil, err
	}

	return uc.navigate(store, func(sc *SelectionController) { sc.Select(req.ID) }), nil
}

// Clear снимает выбор в адресе страницы клиента
func (uc *SelectionUseCase) Clear(req dto.ClearRequest) (*dto.NavigationResponse, error) {
	store, err := uc.store(req.URL)
	if err != nil {
		return nil, err
	}

	return uc.navigate(store, func(sc *SelectionController) { sc.Clear() }), nil
}

// navigate применяет намерение и собирает ответ из уведомлений хранилища:
// changed ставится только подпиской, холостая запись её не будит
func (uc *SelectionUseCase) navigate(store *state.URLStore, intent func(*SelectionController)) *dto.NavigationResponse {
	changed := false
	unsubscribe := store.Subscribe(func(key, value string) {
		if key != SelectionParam {
			return
		}
		changed = true
		uc.logger.Debug("Page state changed", zap.String("key", key), zap.String("value", value))
	})
	defer unsubscribe()

	intent(uc.controller(store))

	return &dto.NavigationResponse{
		URL:     store.URL(),
		Changed: changed,
		Push:    store.Pushes() > 0,
	}
}

// Resolve выводит выбранную запись и поверхность для ширины окна.
// Пока данные грузятся или загрузка упала, выбор пуст и поверхность не показывается.
// С From состояние строится для прежней ширины и проходит через Resize, выбор при этом не меняется.
func (uc *SelectionUseCase) Resolve(q dto.SelectionQuery) dto.SelectionView {
	location := "/"
	if q.ID != "" {
		location = "/?" + url.Values{SelectionParam: {q.ID}}.Encode()
	}

	// location собран из url.Values и всегда разбирается
	store, _ := state.NewURLStore(location)
	start := q.Width
	if q.From > 0 {
		start = q.From
	}
	view := NewViewState(uc.controller(store), start, uc.breakpoint, uc.mode)
	reclassified := view.Resize(q.Width)

	snap := uc.directory.Snapshot()
	decision := view.Decision(snap.Collection)
	if uc.recorder != nil {
		uc.recorder.ObserveSurface(decision.Surface)
	}

	result := dto.SelectionView{
		SelectedID:   q.ID,
		Viewport:     view.Class(),
		Reclassified: reclassified,
		Decision:     decision,
	}

	if rec, ok := view.Selection().Selected(snap.Collection); ok {
		detail := BuildDetailView(rec)
		result.Found = true
		result.Detail = &detail
	} else if q.ID != "" {
		uc.logger.Debug("Selected winery not found",
			zap.String("id", q.ID),
			zap.String("state", string(snap.State)))
	}

	return result
}

func (uc *SelectionUseCase) controller(store state.Store) *SelectionController {
	return NewSelectionController(store, uc.recorder, uc.logger)
}

func (uc *SelectionUseCase) store(location string) (*state.URLStore, error) {
	store, err := state.NewURLStore(location)
	if err != nil {
		uc.logger.Debug("Invalid page location", zap.String("url", location), zap.Error(err))
		return nil, errors.ErrInvalidLocation
	}
	return store, nil
}
