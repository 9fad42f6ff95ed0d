package dto

import "github.com/winery-map/internal/domain"

// NavigationResponse - новая адресная строка после намерения выбора.
// Клиент применяет её через history.pushState, без перезагрузки страницы.
type NavigationResponse struct {
	URL     string `json:"url"`
	Changed bool   `json:"changed"`
	Push    bool   `json:"push"` // false - replaceState вместо pushState
}

// SelectionView - выведенный выбор и поверхность для текущего окна
type SelectionView struct {
	SelectedID string               `json:"selected_id,omitempty"`
	Found      bool                 `json:"found"`
	Viewport   domain.ViewportClass `json:"viewport"`
	// Reclassified - ресайз с From на Width пересёк брейкпоинт
	Reclassified bool                   `json:"reclassified"`
	Decision     domain.SurfaceDecision `json:"decision"`
	Detail       *domain.DetailView     `json:"detail,omitempty"`
}
