//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	sharedMongo     *MongoDBContainer
	sharedMongoErr  error
	sharedMongoOnce sync.Once

	sharedPostgres     *PostgresContainer
	sharedPostgresErr  error
	sharedPostgresOnce sync.Once

	sharedMu sync.RWMutex
)

// GetSharedMongoDB returns a MongoDB container shared by every test in the package.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedMongoOnce.Do(func() {
		sharedMu.Lock()
		defer sharedMu.Unlock()
		sharedMongo, sharedMongoErr = SetupMongoDB(ctx)
	})

	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if sharedMongoErr != nil {
		return nil, sharedMongoErr
	}
	return sharedMongo, nil
}

// GetSharedPostgres returns a PostgreSQL container shared by every test in the package.
func GetSharedPostgres(ctx context.Context) (*PostgresContainer, error) {
	sharedPostgresOnce.Do(func() {
		sharedMu.Lock()
		defer sharedMu.Unlock()
		sharedPostgres, sharedPostgresErr = SetupPostgres(ctx)
	})

	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if sharedPostgresErr != nil {
		return nil, sharedPostgresErr
	}
	return sharedPostgres, nil
}

// cleanupShared terminates whichever shared containers were started.
func cleanupShared(ctx context.Context) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sharedMongo != nil {
		if err := sharedMongo.Cleanup(ctx); err != nil {
			// Docker reaps the container anyway
			_, _ = os.Stderr.WriteString("Warning: failed to cleanup shared MongoDB container: " + err.Error() + "\n")
		}
	}
	if sharedPostgres != nil {
		if err := sharedPostgres.Cleanup(ctx); err != nil {
			_, _ = os.Stderr.WriteString("Warning: failed to cleanup shared PostgreSQL container: " + err.Error() + "\n")
		}
	}
}

// SetupTestMainWithMongoDB starts a shared MongoDB container around m.Run.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}
	defer cleanupShared(ctx)
	return m.Run()
}

// SetupTestMainWithPostgres starts a shared PostgreSQL container around m.Run.
func SetupTestMainWithPostgres(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedPostgres(ctx); err != nil {
		panic(err)
	}
	defer cleanupShared(ctx)
	return m.Run()
}

// SetupTestMainWithAll starts shared PostgreSQL and MongoDB containers around m.Run.
func SetupTestMainWithAll(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedPostgres(ctx); err != nil {
		panic(err)
	}
	if _, err := GetSharedMongoDB(ctx); err != nil {
		cleanupShared(ctx)
		panic(err)
	}
	defer cleanupShared(ctx)
	return m.Run()
}

// GetSharedContainerURI returns the URI of the shared MongoDB container.
// Panics if the container is not initialized.
func GetSharedContainerURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if sharedMongo == nil {
		panic("shared MongoDB container not initialized - call GetSharedMongoDB first")
	}
	return sharedMongo.URI
}

// NewPostgresDatabase creates a database private to t in the shared container and returns its DSN.
func NewPostgresDatabase(t *testing.T) string {
	t.Helper()

	sharedMu.RLock()
	pg := sharedPostgres
	sharedMu.RUnlock()
	if pg == nil {
		t.Fatal("shared PostgreSQL container not initialized - call GetSharedPostgres first")
	}

	dsn, err := pg.CreateDatabase(context.Background(), SanitizePostgresName(t.Name()))
	if err != nil {
		t.Fatalf("create test database: %v", err)
	}
	return dsn
}

// SanitizeDBName sanitizes a test name to be a valid MongoDB database name.
// It replaces path separators with underscores, truncates to 50 characters,
// and appends a timestamp suffix for uniqueness.
func SanitizeDBName(testName string) string {
	sanitized := strings.NewReplacer("/", "_", "\\", "_").Replace(testName)
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return sanitized + "_" + fmt.Sprintf("%d", time.Now().UnixNano()%1000000)
}

// SanitizePostgresName turns a test name into a unique lower-case identifier
// within PostgreSQL's 63 byte limit.
func SanitizePostgresName(testName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(testName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	name := b.String()
	if len(name) > 48 {
		name = name[:48]
	}
	return fmt.Sprintf("t_%s_%d", name, time.Now().UnixNano()%1000000000)
}
