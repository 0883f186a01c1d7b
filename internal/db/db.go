package db

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"shareprompts/internal/config"
	"shareprompts/internal/errors"
)

// Pool and transport bounds carried by every connection.
const (
	maxOpenConns = 10
	maxIdleConns = 5

	dialTimeout      = "30s"
	readWriteTimeout = "45s"
)

// Conn hands out the live database handle to query layers. Queries made
// before a successful Connect fail with ErrNotConnected instead of at the
// transport.
type Conn interface {
	DB() (*gorm.DB, error)
}

// Manager owns the process-wide database handle. It replaces a hidden global
// "connected" flag with an explicit object so callers share one pool and
// tests can build independent instances.
type Manager struct {
	mu     sync.Mutex
	db     *gorm.DB
	dsn    string
	driver string
}

// NewManager builds an unconnected Manager from configuration.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{dsn: cfg.DatabaseDSN, driver: cfg.DBDriver}
}

// Connect opens the pooled database handle. Safe for concurrent callers; once
// a connection exists further calls return immediately. A missing DSN is
// logged and skipped rather than failed so the process can still start;
// queries then fail with ErrNotConnected. An actual connection failure is
// returned to the caller.
func (m *Manager) Connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return nil
	}
	if m.dsn == "" {
		log.Println("DATABASE_DSN not set, skipping database connection")
		return nil
	}

	var dialector gorm.Dialector
	switch m.driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(m.dsn)
	default:
		dialector = mysql.Open(withTimeouts(m.dsn))
	}

	// The creator reference is intentionally unconstrained at the store:
	// users may be cleared while prompts still point at them, and the join
	// then yields a null creator.
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return fmt.Errorf("connect %s: %w", m.driver, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)

	m.db = gormDB
	return nil
}

// DB returns the live handle, or ErrNotConnected before a successful Connect.
func (m *Manager) DB() (*gorm.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		return nil, errors.ErrNotConnected
	}
	return m.db, nil
}

// Close releases the connection pool. A later Connect reopens from scratch.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		return nil
	}
	sqlDB, err := m.db.DB()
	m.db = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withTimeouts appends dial and socket timeouts to a MySQL DSN unless the
// caller already set them. SQLite has no transport, so it never goes through
// here.
func withTimeouts(dsn string) string {
	var extra []string
	for _, param := range []string{
		"timeout=" + dialTimeout,
		"readTimeout=" + readWriteTimeout,
		"writeTimeout=" + readWriteTimeout,
	} {
		key := param[:strings.IndexByte(param, '=')+1]
		if !strings.Contains(dsn, key) {
			extra = append(extra, param)
		}
	}
	if len(extra) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(extra, "&")
}
