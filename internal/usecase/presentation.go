package usecase

import (
	"github.com/winery-map/internal/domain"
)

// ClassifyViewport относит ширину окна к узкому или широкому классу.
// Неизвестная ширина (0) считается широкой - как первый рендер на десктопе.
func ClassifyViewport(width, breakpoint int) domain.ViewportClass {
	if breakpoint <= 0 {
		breakpoint = domain.DefaultBreakpoint
	}
	if width > 0 && width < breakpoint {
		return domain.ViewportNarrow
	}
	return domain.ViewportWide
}

// Route решает, какая поверхность показывает выбранную запись.
// Чистая функция: состояние выбора от поверхности не зависит.
func Route(selected *domain.Record, class domain.ViewportClass, mode domain.WideMode) domain.SurfaceDecision {
	if selected == nil {
		return domain.SurfaceDecision{Surface: domain.SurfaceNone}
	}

	if class == domain.ViewportNarrow {
		return domain.SurfaceDecision{
			Surface:       domain.SurfaceBottomSheet,
			Modal:         true,
			Anchor:        "bottom",
			WidthFraction: 1,
			RecordID:      selected.ID,
		}
	}

	if mode == domain.WideModePopup {
		pos := selected.Position
		return domain.SurfaceDecision{
			Surface:  domain.SurfacePopup,
			Modal:    false,
			Anchor:   "top",
			RecordID: selected.ID,
			Position: &pos,
		}
	}

	return domain.SurfaceDecision{
		Surface:       domain.SurfaceSidePanel,
		Modal:         false,
		Anchor:        "right",
		WidthFraction: 1.0 / 3.0,
		RecordID:      selected.ID,
	}
}

// ViewState связывает выбор с текущим классом окна одного клиента
type ViewState struct {
	selection  *SelectionController
	breakpoint int
	mode       domain.WideMode
	class      domain.ViewportClass
}

func NewViewState(selection *SelectionController, width, breakpoint int, mode domain.WideMode) *ViewState {
	return &ViewState{
		selection:  selection,
		breakpoint: breakpoint,
		mode:       mode,
		class:      ClassifyViewport(width, breakpoint),
	}
}

// Resize пересчитывает класс окна. Выбор не трогается.
func (v *ViewState) Resize(width int) bool {
	class := ClassifyViewport(width, v.breakpoint)
	changed := class != v.class
	v.class = class
	return changed
}

func (v *ViewState) Class() domain.ViewportClass {
	return v.class
}

func (v *ViewState) Selection() *SelectionController {
	return v.selection
}

// Decision - активная поверхность для текущей коллекции
func (v *ViewState) Decision(collection *domain.SpatialCollection) domain.SurfaceDecision {
	rec, ok := v.selection.Selected(collection)
	if !ok {
		return Route(nil, v.class, v.mode)
	}
	return Route(&rec, v.class, v.mode)
}

// Close - общий путь закрытия для всех поверхностей
func (v *ViewState) Close() bool {
	return v.selection.Clear()
}
