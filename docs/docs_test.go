package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/aaravmahajanofficial/supplements-storefront/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocument(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "Supplements Storefront API", doc.Info.Title)
	assert.Contains(t, doc.Paths["/api/v1/cart/promo"], "post")
	assert.Contains(t, doc.Paths["/api/v1/admin/products/import/preview"], "post")
	assert.Contains(t, doc.Paths["/api/cart/abandoned"], "post")
	assert.Len(t, doc.Paths, 14)

	for _, method := range []string{"patch", "delete"} {
		var op struct {
			Responses map[string]json.RawMessage `json:"responses"`
		}
		require.NoError(t, json.Unmarshal(doc.Paths["/api/v1/cart/items/{id}"][method], &op), method)
		assert.Contains(t, op.Responses, "200", method)
		assert.NotContains(t, op.Responses, "404", method)
	}
}
