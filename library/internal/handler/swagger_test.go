package handler_test

import (
	"net/http"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/Astemirdum/library-membership/swagger"
)

func TestRouter_RoutesAreDocumented(t *testing.T) {
	t.Parallel()
	e, _ := newRouter(t)

	doc, err := swag.ReadDoc(swagger.SwaggerInfo.InstanceName())
	require.NoError(t, err)
	var spec struct {
		Paths map[string]map[string]jsoniter.RawMessage `json:"paths"`
	}
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(doc, &spec))

	methods := map[string]bool{
		http.MethodGet: true, http.MethodPost: true, http.MethodPut: true,
		http.MethodPatch: true, http.MethodDelete: true,
	}
	var documented int
	for _, r := range e.Routes() {
		if !methods[r.Method] || strings.HasPrefix(r.Path, "/swagger") {
			continue
		}
		path := strings.ReplaceAll(r.Path, ":id", "{id}")
		require.Contains(t, spec.Paths, path, r.Method+" "+r.Path)
		require.Contains(t, spec.Paths[path], strings.ToLower(r.Method), r.Method+" "+r.Path)
		documented++
	}
	require.Equal(t, 44, documented)
}
