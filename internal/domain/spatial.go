package domain

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// SpatialCollection - коллекция точек для рендерера карты.
// Строится целиком при каждой смене набора записей и не изменяется после сборки.
type SpatialCollection struct {
	features *geojson.FeatureCollection
	byID     map[string]*geojson.Feature
}

// NewSpatialCollection собирает коллекцию и индекс по id из готовых фич
func NewSpatialCollection(features []*geojson.Feature) *SpatialCollection {
	fc := geojson.NewFeatureCollection()
	byID := make(map[string]*geojson.Feature, len(features))

	for _, f := range features {
		fc.Append(f)
		if id, ok := f.ID.(string); ok && id != "" {
			if _, dup := byID[id]; !dup {
				byID[id] = f
			}
		}
	}

	return &SpatialCollection{
		features: fc,
		byID:     byID,
	}
}

// Len возвращает количество точек (nil-safe)
func (c *SpatialCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.features.Features)
}

// Lookup ищет запись по id за O(1)
func (c *SpatialCollection) Lookup(id string) (Record, bool) {
	if c == nil || id == "" {
		return Record{}, false
	}

	f, ok := c.byID[id]
	if !ok {
		return Record{}, false
	}

	return featureRecord(id, f), true
}

// Records возвращает записи в исходном порядке
func (c *SpatialCollection) Records() []Record {
	if c == nil {
		return nil
	}

	out := make([]Record, 0, len(c.features.Features))
	for _, f := range c.features.Features {
		id, _ := f.ID.(string)
		out = append(out, featureRecord(id, f))
	}
	return out
}

// Bound - охватывающий прямоугольник всех точек
func (c *SpatialCollection) Bound() orb.Bound {
	if c == nil || len(c.features.Features) == 0 {
		return orb.Bound{}
	}

	b := c.features.Features[0].Geometry.Bound()
	for _, f := range c.features.Features[1:] {
		b = b.Union(f.Geometry.Bound())
	}
	return b
}

// MarshalJSON сериализует коллекцию как GeoJSON FeatureCollection
func (c *SpatialCollection) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	return c.features.MarshalJSON()
}

func featureRecord(id string, f *geojson.Feature) Record {
	var pos [2]float64
	if p, ok := f.Geometry.(orb.Point); ok {
		pos = [2]float64{p.Lon(), p.Lat()}
	}

	return Record{
		ID:         id,
		Position:   pos,
		Attributes: RawRecord(f.Properties),
	}
}
