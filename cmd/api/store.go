package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oryfolks/hrms-backend-go/internal/config"
	"github.com/oryfolks/hrms-backend-go/internal/domain/dashboard"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/database"
	"github.com/oryfolks/hrms-backend-go/internal/repository/memory"
	"github.com/oryfolks/hrms-backend-go/internal/repository/postgresql"
	employeeService "github.com/oryfolks/hrms-backend-go/internal/service/employee"
)

// stores is every repository the services need, backed by one driver.
type stores struct {
	tx        database.Transactor
	repos     employeeService.Repositories
	dashboard dashboard.DashboardRepository
	close     func()
}

func openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		s := memory.NewStore()
		slog.Info("Using in-memory store")
		return stores{
			tx: s,
			repos: employeeService.Repositories{
				Employee:      memory.NewEmployeeRepository(s),
				CompanyDetail: memory.NewCompanyDetailRepository(s),
				Profile:       memory.NewProfileRepository(s),
				Document:      memory.NewDocumentRepository(s),
				User:          memory.NewUserRepository(s),
				Balance:       memory.NewBalanceRepository(s),
				Leave:         memory.NewLeaveRepository(s),
				Reporting:     memory.NewReportingRepository(s),
				Timesheet:     memory.NewTimesheetRepository(s),
			},
			dashboard: memory.NewDashboardRepository(s),
			close:     func() {},
		}, nil

	case config.DriverPostgres:
		dsn := cfg.DatabaseURL()
		if cfg.Database.AutoMigrate {
			if err := database.RunMigrations(dsn); err != nil {
				return stores{}, fmt.Errorf("failed to run migrations: %w", err)
			}
		}
		db, err := database.NewPostgreSQLDB(ctx, dsn)
		if err != nil {
			return stores{}, fmt.Errorf("failed to connect to database: %w", err)
		}
		slog.Info("Connected to PostgreSQL", "host", cfg.Database.Host, "database", cfg.Database.Name)
		return stores{
			tx: postgresql.NewTransactor(db),
			repos: employeeService.Repositories{
				Employee:      postgresql.NewEmployeeRepository(db),
				CompanyDetail: postgresql.NewCompanyDetailRepository(db),
				Profile:       postgresql.NewProfileRepository(db),
				Document:      postgresql.NewDocumentRepository(db),
				User:          postgresql.NewUserRepository(db),
				Balance:       postgresql.NewBalanceRepository(db),
				Leave:         postgresql.NewLeaveRepository(db),
				Reporting:     postgresql.NewReportingRepository(db),
				Timesheet:     postgresql.NewTimesheetRepository(db),
			},
			dashboard: postgresql.NewDashboardRepository(db),
			close:     db.Close,
		}, nil
	}
	return stores{}, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
}
