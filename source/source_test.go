package source

import (
	"sort"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	s := Map(map[string]any{
		"name": "svc",
		"endpoint": map[string]any{
			"host": "localhost",
		},
	})

	v, ok := s.Lookup("name")
	require.True(t, ok)
	assert.Equal(t, "svc", v)

	node, ok := s.Lookup("endpoint")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"host": "localhost"}, node)

	_, ok = s.Lookup("missing")
	assert.False(t, ok)

	keys := s.Keys()
	sort.Strings(keys)
	assert.Equal(t, []string{"endpoint", "name"}, keys)
}

func TestMap_NilValues(t *testing.T) {
	s := Map(nil)
	_, ok := s.Lookup("anything")
	assert.False(t, ok)
	assert.Empty(t, s.Keys())
}

func TestFromViper(t *testing.T) {
	v := viper.New()
	v.Set("appname", "svc")
	v.Set("endpoint.host", "localhost")
	v.Set("endpoint.port", 8080)

	s := FromViper(v)

	name, ok := s.Lookup("appname")
	require.True(t, ok)
	assert.Equal(t, "svc", name)

	node, ok := s.Lookup("endpoint")
	require.True(t, ok)
	assert.Equal(t, "localhost", node.(map[string]any)["host"])

	_, ok = s.Lookup("missing")
	assert.False(t, ok)

	keys := s.Keys()
	sort.Strings(keys)
	assert.Equal(t, []string{"appname", "endpoint"}, keys)
}
