package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gurkankaymak/hocon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndAccessors(t *testing.T) {
	content := `
server {
  port = 9090
  debug = true
}
s3 {
  region = eu-west-1
  endpoint = "http://localhost:9000"
}
api {
  default_sort = desc
}
`
	path := filepath.Join(t.TempDir(), "application.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, Int(c, "server.port", 8080))
	assert.True(t, Bool(c, "server.debug", false))
	assert.Equal(t, "eu-west-1", String(c, "s3.region", "us-east-1"))
	assert.Equal(t, "http://localhost:9000", String(c, "s3.endpoint", ""))
	assert.Equal(t, "desc", String(c, "api.default_sort", "asc"))
}

func TestAccessorDefaults(t *testing.T) {
	c, err := hocon.ParseString(`server { port = not-a-number }`)
	require.NoError(t, err)

	assert.Equal(t, 8080, Int(c, "server.port", 8080))
	assert.Equal(t, 20, Int(c, "api.rate_limit", 20))
	assert.False(t, Bool(c, "db.enabled", false))
	assert.Equal(t, "asc", String(c, "api.default_sort", "asc"))

	assert.Equal(t, "x", String(nil, "any", "x"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.conf"))
	assert.Error(t, err)
}
