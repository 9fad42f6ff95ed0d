package docs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"github.com/tidwall/gjson"

	"github.com/winery-map/docs"
)

func TestSwaggerDoc_Routes(t *testing.T) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)
	require.True(t, gjson.Valid(doc))

	assert.Equal(t, "Winery Map API", gjson.Get(doc, "info.title").String())
	assert.Equal(t, []interface{}{"http", "https"}, gjson.Get(doc, "schemes").Value())

	for _, route := range []string{
		`paths.\/api\/v1\/selection.get`,
		`paths.\/api\/v1\/selection\/select.post`,
		`paths.\/api\/v1\/selection\/clear.post`,
		`paths.\/api\/v1\/wineries.get`,
	} {
		assert.True(t, gjson.Get(doc, route).Exists(), route)
	}
}

func TestSwaggerDoc_SelectionParams(t *testing.T) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var names []string
	gjson.Get(doc, `paths.\/api\/v1\/selection.get.parameters.#.name`).ForEach(func(_, v gjson.Result) bool {
		names = append(names, v.String())
		return true
	})
	assert.Equal(t, []string{"winery", "width", "from"}, names)

	assert.Equal(t, "url", gjson.Get(doc, "definitions.dto\\.SelectRequest.required.0").String())
	assert.Equal(t, int64(2048), gjson.Get(doc, "definitions.dto\\.ClearRequest.properties.url.maxLength").Int())
}
