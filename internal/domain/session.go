package domain

// LoadState - состояние загрузки данных сессии
type LoadState string

const (
	StateLoading LoadState = "loading"
	StateErrored LoadState = "errored"
	StateReady   LoadState = "ready"
)

// Snapshot - согласованный срез состояния сессии для рендеринга
type Snapshot struct {
	SessionID  string
	State      LoadState
	Collection *SpatialCollection
	Error      string
}

// HasData - есть ли точки для отрисовки слоя
func (s Snapshot) HasData() bool {
	return s.State == StateReady && s.Collection != nil
}
