package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

// Keys of the raw record fields the service reads
const (
	FieldID             = "id"
	FieldLocation       = "location"
	FieldName           = "name"
	FieldAddress        = "address"
	FieldWebsite        = "website"
	FieldClassification = "do"
	FieldServices       = "services"
	FieldTourLanguages  = "tour_languages"
)

// RawRecord - один документ из массива docs хранилища записей, как есть
type RawRecord map[string]any

// ID возвращает идентификатор записи в строковом виде.
// Postgres-адаптер хранилища отдаёт числовые id, mongo-адаптер - строки.
func (r RawRecord) ID() string {
	switch v := r[FieldID].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// Position возвращает координаты точки [lon, lat].
// Значения не проверяются: некорректная позиция - проблема качества данных источника.
func (r RawRecord) Position() [2]float64 {
	var pos [2]float64

	coords, ok := r[FieldLocation].([]any)
	if !ok {
		return pos
	}

	for i := 0; i < len(coords) && i < 2; i++ {
		pos[i] = toFloat(coords[i])
	}

	return pos
}

// String возвращает строковое поле записи или пустую строку
func (r RawRecord) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Copy - поверхностная копия записи
func (r RawRecord) Copy() RawRecord {
	out := make(RawRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// RecordSet - результат одной загрузки записей за сессию.
// Идентичность указателя используется для мемоизации нормализации.
type RecordSet struct {
	SessionID string
	Docs      []RawRecord
	FetchedAt time.Time
}

// Len возвращает количество записей (nil-safe)
func (s *RecordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Docs)
}

// Record - типизированное представление записи винодельни
type Record struct {
	ID         string     `json:"id"`
	Position   [2]float64 `json:"position"` // [lon, lat]
	Attributes RawRecord  `json:"attributes"`
}

// NewRecord строит Record из сырого документа
func NewRecord(raw RawRecord) Record {
	return Record{
		ID:         raw.ID(),
		Position:   raw.Position(),
		Attributes: raw,
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	default:
		return 0
	}
}
