// Command devtoken mints an access token for an existing account. The API
// has no login endpoint; tokens come from an upstream identity provider in
// production and from this tool during development.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/oryfolks/hrms-backend-go/internal/config"
	"github.com/oryfolks/hrms-backend-go/internal/domain/employee"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/jwt"
	"github.com/oryfolks/hrms-backend-go/internal/repository/postgresql"
)

func main() {
	username := flag.String("username", "", "account username to mint a token for")
	flag.Parse()

	if err := run(context.Background(), *username); err != nil {
		fmt.Fprintln(os.Stderr, "devtoken:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, username string) error {
	if username == "" {
		return errors.New("-username is required")
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("devtoken needs the postgres driver, got %q", cfg.Database.Driver)
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	account, err := postgresql.NewUserRepository(db).GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	var employeeID *string
	emp, err := postgresql.NewEmployeeRepository(db).GetByUserID(ctx, account.ID)
	switch {
	case err == nil:
		employeeID = &emp.ID
	case !errors.Is(err, employee.ErrEmployeeNotFound):
		return err
	}

	token, expiresAt, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration).
		GenerateAccessToken(account.ID, account.Username, employeeID, account.Role)
	if err != nil {
		return err
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "role=%s expires_at=%d\n", account.Role, expiresAt)
	return nil
}
