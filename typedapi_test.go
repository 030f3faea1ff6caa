package typedapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	typedapi "github.com/mutablelogic/go-typedapi"
	schema "github.com/mutablelogic/go-typedapi/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

type Api string

const (
	Test Api = "test"
)

// The process-wide registry can only be initialized once, so the lifecycle
// is exercised in order within a single test
func Test_Default(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), map[string]string{
			"method": r.Method,
			"path":   r.URL.Path,
		})
	}))
	defer srv.Close()

	t.Run("NoOptions", func(t *testing.T) {
		assert.NotPanics(func() {
			assert.NotNil(typedapi.Default())
		})
	})

	t.Run("WithoutInit", func(t *testing.T) {
		_, err := typedapi.UseTypedApi[Api]()
		assert.ErrorIs(err, schema.ErrNotInitialized)
		assert.Nil(typedapi.Default().Context())
	})

	t.Run("Initialize", func(t *testing.T) {
		require.NoError(t, typedapi.Initialize(schema.ServiceConfig[Api]{
			BaseURL:   srv.URL,
			Endpoints: schema.Endpoints[Api]{Test: "/test"},
		}))
		assert.Equal(srv.URL, typedapi.UseRequestsConfig().BaseURL())
		assert.Same(typedapi.Default(), typedapi.Default())
	})

	t.Run("Typed", func(t *testing.T) {
		services, err := typedapi.UseTypedApi[Api]()
		require.NoError(t, err)
		require.Contains(t, services, Test)

		resp, err := services[Test].Get(context.Background())
		require.NoError(t, err)
		assert.Equal(http.StatusOK, resp.Status)
		assert.Equal(map[string]any{"method": "GET", "path": "/test"}, resp.Data)
	})

	t.Run("InitializeAgain", func(t *testing.T) {
		ctx := typedapi.Default().Context()
		require.NoError(t, typedapi.Initialize(schema.ServiceConfig[Api]{BaseURL: "http://other.io"}))
		assert.Same(ctx, typedapi.Default().Context())
		assert.Equal(srv.URL, typedapi.UseRequestsConfig().BaseURL())
	})

	t.Run("Raw", func(t *testing.T) {
		assert.True(typedapi.UseRequestsConfig().UseBaseURL())
		resp, err := typedapi.UseRawApi()(srv.URL + "/raw").Delete(context.Background())
		require.NoError(t, err)
		assert.Equal(http.StatusOK, resp.Status)
		assert.Equal(map[string]any{"method": "DELETE", "path": "/raw"}, resp.Data)
		assert.False(typedapi.UseRequestsConfig().UseBaseURL())
	})
}
