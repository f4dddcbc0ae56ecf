package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// tables in truncation order; CASCADE takes care of the rest.
var tables = []string{
	"timesheets",
	"leaves",
	"leave_balances",
	"employee_reporting",
	"employee_documents",
	"employee_experience",
	"employee_education",
	"company_details",
	"employees",
	"users",
}

// TestDatabaseSetup holds the connection shared by one test.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL, applies migrations and
// empties every table. The test is skipped when the variable is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, database.RunMigrations(dsn))
	db, err := database.NewPostgreSQLDB(context.Background(), dsn)
	require.NoError(t, err)

	setup := &TestDatabaseSetup{DB: db}
	require.NoError(t, setup.TruncateAllTables(context.Background()))
	t.Cleanup(setup.Close)
	return setup
}

// TruncateAllTables removes every row from the schema
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	_, err := s.DB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(tables, ", ")))
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}
	return nil
}

func (s *TestDatabaseSetup) Close() {
	s.DB.Close()
}
