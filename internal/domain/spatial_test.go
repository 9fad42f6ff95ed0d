package domain

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feature(id string, lon, lat float64, props geojson.Properties) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{lon, lat})
	f.ID = id
	f.Properties = props
	return f
}

func TestSpatialCollection_Lookup(t *testing.T) {
	coll := NewSpatialCollection([]*geojson.Feature{
		feature("a", -1.09, 39.48, geojson.Properties{"id": "a", "name": "First"}),
		feature("b", -0.52, 38.76, geojson.Properties{"id": "b", "name": "Second"}),
		feature("a", 0, 0, geojson.Properties{"id": "a", "name": "Duplicate"}),
	})

	tests := []struct {
		name  string
		id    string
		found bool
		label string
	}{
		{name: "existing", id: "b", found: true, label: "Second"},
		{name: "first duplicate wins", id: "a", found: true, label: "First"},
		{name: "unknown", id: "zzz", found: false},
		{name: "empty id", id: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := coll.Lookup(tt.id)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.id, rec.ID)
				assert.Equal(t, tt.label, rec.Attributes.String("name"))
			}
		})
	}

	assert.Equal(t, 3, coll.Len())
	assert.Len(t, coll.Records(), 3)
}

func TestSpatialCollection_Nil(t *testing.T) {
	var coll *SpatialCollection

	assert.Equal(t, 0, coll.Len())
	assert.Nil(t, coll.Records())
	assert.Equal(t, orb.Bound{}, coll.Bound())

	_, ok := coll.Lookup("a")
	assert.False(t, ok)

	data, err := json.Marshal(coll)
	require.NoError(t, err)
	assert.JSONEq(t, "null", string(data))
}

func TestSpatialCollection_Bound(t *testing.T) {
	coll := NewSpatialCollection([]*geojson.Feature{
		feature("a", -1.09, 39.48, nil),
		feature("b", -0.52, 38.76, nil),
	})

	b := coll.Bound()
	assert.Equal(t, orb.Point{-1.09, 38.76}, b.Min)
	assert.Equal(t, orb.Point{-0.52, 39.48}, b.Max)
}

func TestSpatialCollection_MarshalJSON(t *testing.T) {
	coll := NewSpatialCollection([]*geojson.Feature{
		feature("a", -1.09, 39.48, geojson.Properties{"id": "a"}),
	})

	data, err := json.Marshal(coll)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "FeatureCollection", out["type"])

	features := out["features"].([]any)
	require.Len(t, features, 1)
	geom := features[0].(map[string]any)["geometry"].(map[string]any)
	assert.Equal(t, "Point", geom["type"])
	assert.Equal(t, []any{-1.09, 39.48}, geom["coordinates"])
}

func TestSurfaceDecision_Position(t *testing.T) {
	pos := [2]float64{-1.09, 39.48}
	d := SurfaceDecision{Surface: SurfacePopup, Position: &pos}

	assert.True(t, d.Active())
	assert.Equal(t, -1.09, d.Lon())
	assert.Equal(t, 39.48, d.Lat())

	none := SurfaceDecision{Surface: SurfaceNone}
	assert.False(t, none.Active())
	assert.Equal(t, 0.0, none.Lon())
}
