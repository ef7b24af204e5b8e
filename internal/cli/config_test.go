package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("IOTA_SERVER", "http://iota.test:9000")
	t.Setenv("IOTA_TOKEN", "gt_abc")
	t.Setenv("IOTA_TOKEN_FILE", "/tmp/iota-token")
	t.Setenv("IOTA_OUTPUT", "json")
	t.Setenv("IOTA_VERBOSE", "true")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://iota.test:9000", c.ServerURL)
	assert.Equal(t, "gt_abc", c.Token)
	assert.Equal(t, "/tmp/iota-token", c.TokenFile)
	assert.Equal(t, "json", c.Output)
	assert.True(t, c.Verbose)
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"IOTA_SERVER", "IOTA_TOKEN_FILE", "IOTA_OUTPUT", "IOTA_VERBOSE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.ServerURL)
	assert.Equal(t, "text", c.Output)
	assert.True(t, strings.HasSuffix(c.TokenFile, filepath.Join(".iota", "token")), c.TokenFile)
	assert.False(t, c.Verbose)
}

func TestLoadConfigInvalidVerbose(t *testing.T) {
	t.Setenv("IOTA_VERBOSE", "sometimes")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	c := &Config{TokenFile: filepath.Join(t.TempDir(), "nested", "token")}

	require.NoError(t, c.LoadToken())
	assert.Empty(t, c.Token)

	require.NoError(t, c.SaveToken("gt_saved"))
	info, err := os.Stat(c.TokenFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded := &Config{TokenFile: c.TokenFile}
	require.NoError(t, loaded.LoadToken())
	assert.Equal(t, "gt_saved", loaded.Token)
}

func TestValidateOutput(t *testing.T) {
	assert.NoError(t, (&Config{ServerURL: "http://x", Output: "json"}).Validate())
	assert.Error(t, (&Config{ServerURL: "http://x", Output: "xml"}).Validate())
	assert.Error(t, (&Config{Output: "text"}).Validate())
}
