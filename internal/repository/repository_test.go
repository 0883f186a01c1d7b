package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"shareprompts/internal/config"
	"shareprompts/internal/db"
	"shareprompts/internal/model"
)

// newTestConn opens a connected manager on a throwaway sqlite file with the
// schema migrated.
func newTestConn(t *testing.T) db.Conn {
	t.Helper()
	manager := db.NewManager(&config.Config{
		DatabaseDSN: filepath.Join(t.TempDir(), "test.db"),
		DBDriver:    config.DriverSQLite,
	})
	require.NoError(t, manager.Connect())
	gormDB, err := manager.DB()
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.User{}, &model.Prompt{}))
	t.Cleanup(func() { _ = manager.Close() })
	return manager
}

func createUser(t *testing.T, repo UserRepository, email, username string) *model.User {
	t.Helper()
	user := &model.User{Email: email, Username: username}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}
