package usecase

import (
	"github.com/winery-map/internal/domain"
	"github.com/winery-map/internal/state"
	"go.uber.org/zap"
)

// SelectionParam - query-параметр, в котором живёт выбранная винодельня
const SelectionParam = "winery"

// SelectionRecorder получает события намерений выбора (метрики)
type SelectionRecorder interface {
	ObserveSelection(intent string, changed bool)
}

// SelectionController - единственный источник истины о выбранной записи.
// Хранит только id во внешнем хранилище состояния; сама запись выводится при чтении.
type SelectionController struct {
	store    state.Store
	recorder SelectionRecorder
	logger   *zap.Logger
}

func NewSelectionController(store state.Store, recorder SelectionRecorder, logger *zap.Logger) *SelectionController {
	return &SelectionController{
		store:    store,
		recorder: recorder,
		logger:   logger,
	}
}

// Select записывает id как цель выбора. Существование id не проверяется:
// выбор, сделанный до загрузки данных, разрешится после неё.
func (sc *SelectionController) Select(id string) bool {
	if id == "" {
		return sc.Clear()
	}

	changed := sc.store.Get(SelectionParam) != id
	if changed {
		sc.store.Set(SelectionParam, id, true)
		sc.logger.Debug("Winery selected", zap.String("id", id))
	}

	sc.observe("select", changed)
	return changed
}

// Clear убирает выбор. Повторный вызов ничего не меняет.
func (sc *SelectionController) Clear() bool {
	changed := sc.store.Get(SelectionParam) != ""
	if changed {
		sc.store.Delete(SelectionParam, true)
		sc.logger.Debug("Selection cleared")
	}

	sc.observe("clear", changed)
	return changed
}

// SelectedID - сырой id из хранилища (может не существовать в коллекции)
func (sc *SelectionController) SelectedID() string {
	return sc.store.Get(SelectionParam)
}

// Selected выводит выбранную запись из текущей коллекции.
// Нет id, нет данных или устаревшая ссылка - пустой выбор, а не ошибка.
func (sc *SelectionController) Selected(collection *domain.SpatialCollection) (domain.Record, bool) {
	return collection.Lookup(sc.SelectedID())
}

func (sc *SelectionController) observe(intent string, changed bool) {
	if sc.recorder != nil {
		sc.recorder.ObserveSelection(intent, changed)
	}
}
