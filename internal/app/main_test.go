//go:build integration

package app

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/order-service/internal/testutil"
)

// TestMain shares one PostgreSQL and one MongoDB container across the app integration tests.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithAll(context.Background(), m))
}
