package domain

// ViewportClass - класс ширины окна просмотра
type ViewportClass string

const (
	ViewportNarrow ViewportClass = "narrow"
	ViewportWide   ViewportClass = "wide"
)

// DefaultBreakpoint - граница между узким и широким окном, px
const DefaultBreakpoint = 768

// Surface - область интерфейса, показывающая выбранную винодельню
type Surface string

const (
	SurfaceNone        Surface = "none"
	SurfaceSidePanel   Surface = "side_panel"
	SurfaceBottomSheet Surface = "bottom_sheet"
	SurfacePopup       Surface = "popup"
)

// WideMode - вариант поверхности для широкого окна
type WideMode string

const (
	WideModePanel WideMode = "panel"
	WideModePopup WideMode = "popup"
)

// SurfaceDecision - какая поверхность активна и как она расположена
type SurfaceDecision struct {
	Surface       Surface     `json:"surface"`
	Modal         bool        `json:"modal"`
	Anchor        string      `json:"anchor,omitempty"`
	WidthFraction float64     `json:"width_fraction,omitempty"`
	RecordID      string      `json:"record_id,omitempty"`
	Position      *[2]float64 `json:"position,omitempty"`
}

// Active - показана ли какая-либо поверхность
func (d SurfaceDecision) Active() bool {
	return d.Surface != SurfaceNone
}

// Lon и Lat - координаты якоря всплывающей карточки; 0 без позиции
func (d SurfaceDecision) Lon() float64 {
	if d.Position == nil {
		return 0
	}
	return d.Position[0]
}

func (d SurfaceDecision) Lat() float64 {
	if d.Position == nil {
		return 0
	}
	return d.Position[1]
}

// DetailView - поля выбранной записи, готовые к отображению
type DetailView struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address,omitempty"`
	Website        string   `json:"website,omitempty"`
	Classification string   `json:"classification,omitempty"`
	Services       []string `json:"services"`
	TourLanguages  []string `json:"tour_languages"`
	Highlights     []string `json:"highlights"`
}

// MarkerStyle - визуальные параметры точек на карте
type MarkerStyle struct {
	Radius      float64 `json:"circle-radius"`
	Color       string  `json:"circle-color"`
	Opacity     float64 `json:"circle-opacity"`
	StrokeWidth float64 `json:"circle-stroke-width"`
	StrokeColor string  `json:"circle-stroke-color"`
}

// DefaultMarkerStyle - стиль слоя точек виноделен
func DefaultMarkerStyle() MarkerStyle {
	return MarkerStyle{
		Radius:      6,
		Color:       "#c94de8",
		Opacity:     0.6,
		StrokeWidth: 1.5,
		StrokeColor: "#9f32ba",
	}
}
