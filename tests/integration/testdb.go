package integration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	mpg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestDB wraps a disposable PostgreSQL container with the schema migrated.
type TestDB struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

var (
	sharedDB   *TestDB
	sharedOnce sync.Once
	sharedErr  error
	sharedMu   sync.Mutex
)

// SetupTestDB returns a database backed by a shared PostgreSQL container.
// The container is started once per test binary and reused; callers are
// expected to clean up their rows via CleanTables.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	sharedOnce.Do(func() {
		sharedDB, sharedErr = startTestDB()
	})
	if sharedErr != nil {
		t.Fatalf("failed to start test database: %v", sharedErr)
	}
	return sharedDB
}

func startTestDB() (*TestDB, error) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("clubpanel_test"),
		tcpostgres.WithUsername("clubpanel"),
		tcpostgres.WithPassword("clubpanel"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("get connection string: %w", err)
	}

	if err := runMigrations(dsn); err != nil {
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm connection: %w", err)
	}

	return &TestDB{Container: container, DB: db, DSN: dsn}, nil
}

func runMigrations(dsn string) error {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open sql connection: %w", err)
	}
	defer sqlDB.Close()

	driver, err := mpg.WithInstance(sqlDB, &mpg.Config{})
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}

	path, err := findMigrationsPath()
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// findMigrationsPath walks up from this file's directory until it finds
// the migrations directory at the repository root.
func findMigrationsPath() (string, error) {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("cannot determine caller path")
	}

	dir := filepath.Dir(thisFile)
	for i := 0; i < 6; i++ {
		candidate := filepath.Join(dir, "migrations")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", errors.New("migrations directory not found")
}

// CleanTables truncates all application tables so each test starts from
// an empty schema. Runs under a mutex since the container is shared.
func (tdb *TestDB) CleanTables(t *testing.T) {
	t.Helper()

	sharedMu.Lock()
	defer sharedMu.Unlock()

	err := tdb.DB.Exec(`TRUNCATE TABLE
		reconciliation_matches,
		bank_movements,
		entries,
		suppliers,
		memberships,
		clubs,
		users
		RESTART IDENTITY CASCADE`).Error
	if err != nil {
		t.Fatalf("failed to clean tables: %v", err)
	}
}
