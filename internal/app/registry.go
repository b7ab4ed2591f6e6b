package app

import (
	"database/sql"

	"github.com/BMarcano/dispatcher/internal/assignment"
	"github.com/BMarcano/dispatcher/internal/auth"
	"github.com/BMarcano/dispatcher/internal/config"
	"github.com/BMarcano/dispatcher/internal/job"
	"github.com/BMarcano/dispatcher/internal/messaging/kafka"
	"github.com/BMarcano/dispatcher/internal/payroll"
	"github.com/BMarcano/dispatcher/internal/rbac"
	"github.com/BMarcano/dispatcher/internal/rbac/infra"
	"github.com/BMarcano/dispatcher/internal/shared/token"
	"github.com/BMarcano/dispatcher/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	workerRepo := worker.NewRepository(gormDB)
	jobRepo := job.NewRepository(gormDB)
	assignmentRepo := assignment.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(rbac.NewRepository(nil), enforcer)
	if err != nil {
		return err
	}

	// --- Services ---
	issuer := token.NewIssuer(cfg.JWTSecret)
	authService := auth.NewService(authRepo, workerRepo, issuer)
	workerService := worker.NewService(db, workerRepo, rdb)
	jobService := job.NewService(db, jobRepo, assignmentRepo, outboxRepo)
	assignmentService := assignment.NewService(db, assignmentRepo, jobRepo, workerRepo, outboxRepo)
	payrollService := payroll.NewService(payrollRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction())
	workerHandler := worker.NewHandler(workerService)
	jobHandler := job.NewHandler(jobService)
	assignmentHandler := assignment.NewHandler(assignmentService)
	payrollHandler := payroll.NewHandler(payrollService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, cfg.JWTSecret, logger)
		worker.RegisterRoutes(api, workerHandler, rbacService, cfg.JWTSecret, logger)
		job.RegisterRoutes(api, jobHandler, rbacService, rdb, cfg.JWTSecret, logger)
		assignment.RegisterRoutes(api, assignmentHandler, rbacService, rdb, cfg.JWTSecret, logger)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, cfg.JWTSecret, logger)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, cfg.JWTSecret, logger)
	}

	return nil
}
