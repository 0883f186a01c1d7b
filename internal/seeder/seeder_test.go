package seeder

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareprompts/internal/config"
	"shareprompts/internal/db"
	"shareprompts/internal/errors"
	"shareprompts/internal/model"
	"shareprompts/internal/repository"
)

// newSeedManager returns an unconnected manager on a throwaway sqlite file.
// The file survives the seeder's own close, so tests reopen it to verify.
func newSeedManager(t *testing.T) (*db.Manager, string) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "seed.db")
	return db.NewManager(&config.Config{DatabaseDSN: dsn, DBDriver: config.DriverSQLite}), dsn
}

// openVerifier opens a second connection to inspect what a finished run left
// behind.
func openVerifier(t *testing.T, dsn string) (repository.UserRepository, repository.PromptRepository) {
	t.Helper()
	manager := db.NewManager(&config.Config{DatabaseDSN: dsn, DBDriver: config.DriverSQLite})
	require.NoError(t, manager.Connect())
	gormDB, err := manager.DB()
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.User{}, &model.Prompt{}))
	t.Cleanup(func() { _ = manager.Close() })
	return repository.NewUserRepository(manager), repository.NewPromptRepository(manager)
}

func quietOptions() Options {
	opts := DefaultOptions()
	opts.Verbose = false
	return opts
}

func TestFullReseed(t *testing.T) {
	manager, dsn := newSeedManager(t)
	opts := quietOptions()
	opts.UserCount = 3
	opts.PromptCount = 10

	require.NoError(t, New(manager, opts).Run(context.Background()))

	// The run releases its connection on the way out.
	_, err := manager.DB()
	assert.ErrorIs(t, err, errors.ErrNotConnected)

	users, prompts := openVerifier(t, dsn)
	ctx := context.Background()

	userCount, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, userCount)

	promptCount, err := prompts.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 10, promptCount)

	// Creator assignment is random, so check set membership, not placement.
	ids, err := users.ListIDs(ctx)
	require.NoError(t, err)
	inserted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		inserted[id] = true
	}
	listed, err := prompts.ListWithCreators(ctx)
	require.NoError(t, err)
	for _, p := range listed {
		assert.True(t, inserted[p.CreatorID], "creator %s not among seeded users", p.CreatorID)
		require.NotNil(t, p.Creator)
	}
}

func TestFullReseedClampsToDataset(t *testing.T) {
	manager, dsn := newSeedManager(t)
	opts := quietOptions()
	opts.UserCount = 1000
	opts.PromptCount = 1000

	require.NoError(t, New(manager, opts).Run(context.Background()))

	allUsers, err := loadUsers()
	require.NoError(t, err)
	allPrompts, err := loadPrompts()
	require.NoError(t, err)

	users, prompts := openVerifier(t, dsn)
	ctx := context.Background()

	userCount, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, len(allUsers), userCount)

	promptCount, err := prompts.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, len(allPrompts), promptCount)
}

func TestFullReseedReplacesExistingData(t *testing.T) {
	manager, dsn := newSeedManager(t)
	opts := quietOptions()
	opts.UserCount = 2
	opts.PromptCount = 5
	require.NoError(t, New(manager, opts).Run(context.Background()))

	// Second run clears before inserting, so counts stay exact.
	second := db.NewManager(&config.Config{DatabaseDSN: dsn, DBDriver: config.DriverSQLite})
	require.NoError(t, New(second, opts).Run(context.Background()))

	users, prompts := openVerifier(t, dsn)
	ctx := context.Background()

	userCount, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, userCount)

	promptCount, err := prompts.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, promptCount)
}

func TestSeedPromptsOnlyRequiresUsers(t *testing.T) {
	manager, dsn := newSeedManager(t)

	err := New(manager, quietOptions()).SeedPromptsOnly(context.Background())
	assert.ErrorIs(t, err, errors.ErrNoUsers)

	// Failure still releases the connection and inserts nothing.
	_, dbErr := manager.DB()
	assert.ErrorIs(t, dbErr, errors.ErrNotConnected)

	_, prompts := openVerifier(t, dsn)
	count, err := prompts.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestSeedPromptsOnlyUsesStoredUsers(t *testing.T) {
	manager, dsn := newSeedManager(t)
	opts := quietOptions()
	opts.UserCount = 4
	require.NoError(t, New(manager, opts).SeedUsersOnly(context.Background()))

	promptOpts := quietOptions()
	promptOpts.PromptCount = 6
	require.NoError(t, New(db.NewManager(&config.Config{DatabaseDSN: dsn, DBDriver: config.DriverSQLite}), promptOpts).SeedPromptsOnly(context.Background()))

	users, prompts := openVerifier(t, dsn)
	ctx := context.Background()

	ids, err := users.ListIDs(ctx)
	require.NoError(t, err)
	require.Len(t, ids, 4)
	stored := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		stored[id] = true
	}

	listed, err := prompts.ListWithCreators(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 6)
	for _, p := range listed {
		assert.True(t, stored[p.CreatorID])
	}
}

func TestSeedUsersOnlyLeavesPrompts(t *testing.T) {
	manager, dsn := newSeedManager(t)

	// Plant prompts directly; the store tolerates creators that do not exist.
	users, prompts := openVerifier(t, dsn)
	ctx := context.Background()
	require.NoError(t, prompts.InsertMany(ctx, []model.Prompt{
		{Text: "keep me", Tag: "misc", CreatorID: uuid.New()},
		{Text: "me too", Tag: "misc", CreatorID: uuid.New()},
	}))

	opts := quietOptions()
	opts.ClearDatabase = false
	opts.UserCount = 3
	require.NoError(t, New(manager, opts).SeedUsersOnly(ctx))

	promptCount, err := prompts.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, promptCount)

	userCount, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, userCount)
}
