package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/services"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/handlers"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/middleware"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/repositories/database/pgsql"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/pkg/config"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/pkg/database"

	portsrepo "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/repositories"
	portssvc "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/services"
)

// @title Rent Manager Backend API
// @version 1.0
// @description Rent ledger backend: rooms, tenants, payments, rollbacks and reports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := buildServices(cfg, repos)

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices wires the service layer onto the repositories.
func buildServices(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	scheduleSvc := services.NewRentScheduleService(repos.RoomRepo, repos.TenantRepo)
	roomSvc := services.NewRoomService(repos.RoomRepo, repos.TenantRepo)
	tenantSvc := services.NewTenantService(repos.TenantRepo, repos.RoomRepo, repos.LedgerRepo, roomSvc)
	balanceSvc := services.NewBalanceService(repos.TenantRepo, repos.LedgerRepo, scheduleSvc)
	paymentSvc := services.NewPaymentService(repos.TenantRepo, repos.LedgerRepo, scheduleSvc)
	rollbackSvc := services.NewRollbackService(repos.LedgerRepo)
	reportingSvc := services.NewReportingService(repos.TenantRepo, repos.LedgerRepo, scheduleSvc)
	cashbookSvc := services.NewCashbookService(repos.CashbookRepo)
	authSvc := services.NewAuthService(repos.OperatorRepo, cfg.JWTSecret, cfg.JWTExpiryDuration)

	return &portssvc.ServiceContainer{
		Auth:      authSvc,
		Room:      roomSvc,
		Tenant:    tenantSvc,
		Schedule:  scheduleSvc,
		Balance:   balanceSvc,
		Payment:   paymentSvc,
		Rollback:  rollbackSvc,
		Reporting: reportingSvc,
		Cashbook:  cashbookSvc,
	}
}

// runMigrations applies all pending up migrations from ./migrations.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
