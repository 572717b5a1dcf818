package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_endpoint_addr": "http://json.example.com",
		"poll_interval": "25s"
	}`), 0o600))

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cli", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	require.Equal(t, "http://json.example.com", cfg.ServerEndpointAddr)
	require.Equal(t, 25*time.Second, cfg.PollInterval)
	// Field absent from the file keeps its default.
	require.Equal(t, "photokeeper.db", cfg.DatabaseFile)
}

func TestParseJson_NoFlagNoEffect(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cli"}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	require.Equal(t, "http://127.0.0.1:8000", cfg.ServerEndpointAddr)
}
