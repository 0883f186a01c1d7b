package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareprompts/internal/config"
	"shareprompts/internal/errors"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DatabaseDSN: filepath.Join(t.TempDir(), "test.db"),
		DBDriver:    config.DriverSQLite,
	}
}

func TestConnectMissingDSN(t *testing.T) {
	manager := NewManager(&config.Config{DBDriver: config.DriverSQLite})

	// No DSN is a soft failure: Connect succeeds, queries do not.
	assert.NoError(t, manager.Connect())

	_, err := manager.DB()
	assert.ErrorIs(t, err, errors.ErrNotConnected)
}

func TestConnectIsIdempotent(t *testing.T) {
	manager := NewManager(sqliteConfig(t))

	require.NoError(t, manager.Connect())
	first, err := manager.DB()
	require.NoError(t, err)

	require.NoError(t, manager.Connect())
	second, err := manager.DB()
	require.NoError(t, err)

	// The second Connect must not reopen: same handle.
	assert.Same(t, first, second)
}

func TestCloseResetsHandle(t *testing.T) {
	manager := NewManager(sqliteConfig(t))
	require.NoError(t, manager.Connect())

	require.NoError(t, manager.Close())
	_, err := manager.DB()
	assert.ErrorIs(t, err, errors.ErrNotConnected)

	// Connect after Close reopens from scratch.
	require.NoError(t, manager.Connect())
	_, err = manager.DB()
	assert.NoError(t, err)
}

func TestCloseWithoutConnect(t *testing.T) {
	manager := NewManager(sqliteConfig(t))
	assert.NoError(t, manager.Close())
}

func TestWithTimeouts(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{
			name: "bare dsn gains all three",
			dsn:  "user:pass@tcp(localhost:3306)/app",
			want: "user:pass@tcp(localhost:3306)/app?timeout=30s&readTimeout=45s&writeTimeout=45s",
		},
		{
			name: "existing params are appended to",
			dsn:  "user:pass@tcp(localhost:3306)/app?parseTime=True",
			want: "user:pass@tcp(localhost:3306)/app?parseTime=True&timeout=30s&readTimeout=45s&writeTimeout=45s",
		},
		{
			name: "caller-set timeouts win",
			dsn:  "user:pass@tcp(localhost:3306)/app?timeout=5s&readTimeout=5s&writeTimeout=5s",
			want: "user:pass@tcp(localhost:3306)/app?timeout=5s&readTimeout=5s&writeTimeout=5s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withTimeouts(tt.dsn))
		})
	}
}
