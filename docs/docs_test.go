package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/jhoicas/Propostas-api/docs"
)

func TestSwagger_Registrado(t *testing.T) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var spec map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))
	paths := spec["paths"].(map[string]any)
	assert.Contains(t, paths, "/api/quotes")
	assert.Contains(t, paths, "/api/draft/save")
	assert.Contains(t, paths, "/api/dashboard/performance")
}
