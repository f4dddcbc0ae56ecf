package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/config"
	"github.com/oryfolks/hrms-backend-go/internal/fixtures"
	appHTTP "github.com/oryfolks/hrms-backend-go/internal/handler/http"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/authz"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/cron"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/jwt"
	"github.com/oryfolks/hrms-backend-go/internal/pkg/storage"
	attendanceService "github.com/oryfolks/hrms-backend-go/internal/service/attendance"
	dashboardService "github.com/oryfolks/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/oryfolks/hrms-backend-go/internal/service/employee"
	"github.com/oryfolks/hrms-backend-go/internal/service/leave"
	reportingService "github.com/oryfolks/hrms-backend-go/internal/service/reporting"
	timesheetService "github.com/oryfolks/hrms-backend-go/internal/service/timesheet"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()
	repos := st.repos

	calculator := leave.NewEntitlementCalculator(time.Now)
	balanceSvc := leave.NewBalanceService(st.tx, repos.Balance, repos.Employee, repos.CompanyDetail, calculator)
	leaveSvc := leave.NewLeaveService(st.tx, repos.Leave, repos.Balance, repos.Employee, repos.User, repos.Reporting, balanceSvc)
	reportingSvc := reportingService.NewReportingService(st.tx, repos.Reporting, repos.Employee, repos.CompanyDetail, repos.User)
	files, err := storage.NewLocalStorage(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open document storage: %w", err)
	}
	defer files.Close()

	employeeSvc := employeeService.NewEmployeeService(st.tx, repos, balanceSvc, files, cfg.Bootstrap.DefaultPassword)
	timesheetSvc := timesheetService.NewTimesheetService(st.tx, repos.Timesheet, repos.Employee, repos.User, repos.Reporting)
	attendanceSvc := attendanceService.NewAttendanceService(repos.Leave)
	dashboardSvc := dashboardService.NewDashboardService(st.dashboard, repos.Employee, repos.Reporting)

	bootstrapper := fixtures.NewBootstrapper(st.tx, repos.User, repos.Employee, reportingSvc)
	err = bootstrapper.Run(ctx, fixtures.AdminAccount{
		Username: cfg.Bootstrap.AdminUsername,
		Email:    cfg.Bootstrap.AdminEmail,
		Password: cfg.Bootstrap.AdminPassword,
	})
	if err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}

	scheduler := cron.NewScheduler()
	cron.NewLeaveBalanceJobs(balanceSvc, cfg.Scheduler.LeaveRefreshInterval).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return fmt.Errorf("failed to build authorization policy: %w", err)
	}
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AppName:        cfg.App.Name,
		Version:        cfg.App.Version,
		Env:            cfg.App.Env,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		LogLevel:       cfg.SlogLevel(),
	}, JWTService, enforcer, appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc, cfg.Storage.MaxUploadSize),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc, balanceSvc, enforcer),
		Reporting:  appHTTP.NewReportingHandler(reportingSvc),
		Timesheet:  appHTTP.NewTimesheetHandler(timesheetSvc, enforcer),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc, enforcer),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
