package chat

import (
	"testing"

	"hungngan-chat-backend/service/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRegistryManifest(t *testing.T) {
	registry := NewCatalogRegistry(catalog.NewClient("http://catalog.local"))

	manifest := registry.Manifest()
	require.Len(t, manifest, 6)

	names := make([]string, 0, len(manifest))
	for _, tool := range manifest {
		names = append(names, tool.Function.Name)
	}
	assert.Equal(t, []string{
		"get_categories",
		"get_top_food",
		"get_service",
		"get_top_restaurants",
		"get_service_advertisements",
		"get_popular_advertisements",
	}, names)
}

func TestRegistryResolve(t *testing.T) {
	registry := NewCatalogRegistry(catalog.NewClient("http://catalog.local"))

	fn, err := registry.Resolve("get_categories")
	require.NoError(t, err)
	assert.NotNil(t, fn)

	_, err = registry.Resolve("get_weather")
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestIntArg(t *testing.T) {
	args := map[string]any{
		"service_id": float64(3),
		"limit":      "5",
	}

	assert.Equal(t, 3, intArg(args, "service_id", 0))
	assert.Equal(t, 5, intArg(args, "limit", 10))
	assert.Equal(t, 10, intArg(args, "missing", 10))
	assert.Equal(t, 10, intArg(map[string]any{"limit": "abc"}, "limit", 10))
}
