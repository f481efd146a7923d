package routes_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/linskybing/form-platform/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDocListsRoutes(t *testing.T) {
	env := testutils.NewEnv(t)

	w := env.Do(http.MethodGet, "/swagger/doc.json", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	assert.Contains(t, doc.Paths["/forms"], "post")
	assert.Contains(t, doc.Paths["/tasks/{id}"], "patch")
	assert.Contains(t, doc.Paths["/tasks/{id}/assign"], "delete")
	assert.Contains(t, doc.Paths["/form-responses/{id}"], "put")
	assert.Contains(t, doc.Paths["/audit/logs"], "get")
}
