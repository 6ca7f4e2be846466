package app

import (
	"go-hrms/internal/attendance"
	"go-hrms/internal/audit"
	"go-hrms/internal/config"
	"go-hrms/internal/employee"
	"go-hrms/internal/holiday"
	"go-hrms/internal/leave"
	"go-hrms/internal/leavebalance"
	"go-hrms/internal/leavepolicy"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/notification"
	"go-hrms/internal/payroll"
	"go-hrms/internal/rbac"
	"go-hrms/internal/rbac/infra"
	"go-hrms/internal/regularization"
	"go-hrms/internal/settings"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// TenantModels is migrated into every tenant database on first resolve.
func TenantModels() []any {
	return []any{
		&employee.Employee{},
		&counter.Counter{},
		&settings.AttendanceSettings{},
		&leavepolicy.LeavePolicy{},
		&leavebalance.LeaveBalance{},
		&attendance.Attendance{},
		&holiday.Holiday{},
		&leave.LeaveRequest{},
		&regularization.Regularization{},
		&notification.Notification{},
		&audit.AuditLog{},
		&kafka.OutboxEvent{},
		&payroll.SalaryTemplate{},
		&payroll.Run{},
		&payroll.Payslip{},
	}
}

// services are the tenant scoped workflows shared by the api and the
// consumer.
type services struct {
	settings     settings.Service
	employees    employee.Service
	balances     leavebalance.Service
	policies     leavepolicy.Service
	attendance   attendance.Service
	holidays     holiday.Service
	notification notification.Service
	leaves       leave.Service
	regularize   regularization.Service
	payroll      payroll.Service
}

func buildServices(p *platform, rdb *redis.Client, logger *zap.Logger) services {
	auditStore := audit.NewStore(logger)

	settingsSvc := settings.NewService(p.router, nil, rdb, logger)
	balanceSvc := leavebalance.NewService(p.router, nil, logger)
	policySvc := leavepolicy.NewService(p.router, nil, nil, balanceSvc, settingsSvc, logger)
	attendanceSvc := attendance.NewService(p.router, nil, nil, settingsSvc, auditStore, logger)
	notificationSvc := notification.NewService(p.router, nil, logger)

	leaveSvc := leave.NewService(p.router, leave.Deps{
		Outbox:   kafka.NewOutboxRepository,
		Ledger:   balanceSvc,
		Rules:    policySvc,
		Calendar: attendanceSvc,
		Notifier: notificationSvc,
		Settings: settingsSvc,
	}, logger)

	return services{
		settings:     settingsSvc,
		employees:    employee.NewService(p.router, nil, nil, kafka.NewOutboxRepository, logger),
		balances:     balanceSvc,
		policies:     policySvc,
		attendance:   attendanceSvc,
		holidays:     holiday.NewService(p.router, nil, logger),
		notification: notificationSvc,
		leaves:       leaveSvc,
		regularize: regularization.NewService(p.router, regularization.Deps{
			Outbox:   kafka.NewOutboxRepository,
			Ledger:   balanceSvc,
			Leaves:   leaveSvc,
			Calendar: attendanceSvc,
			Notifier: notificationSvc,
			Audit:    auditStore,
			Settings: settingsSvc,
		}, logger),
		payroll: payroll.NewService(p.router, payroll.Deps{}, logger),
	}
}

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	p *platform,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer("")
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)
	if err := rbacService.LoadDefaultPolicy(); err != nil {
		return err
	}
	can := func(resource, action string) gin.HandlerFunc {
		return middleware.RBACAuthorize(rbacService, resource, action)
	}

	svc := buildServices(p, rdb, logger)
	idempotent := middleware.Idempotency(rdb, logger)
	punchLimit := middleware.RateLimitByUser(rate.Limit(cfg.PunchRateLimit), cfg.PunchRateBurst)

	router.Use(middleware.RequestID())
	router.GET("/healthz", middleware.RateLimitByIP(rate.Limit(5), 10), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "tenants_cached": p.router.Len()})
	})

	api := router.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// registry routes live outside any tenant
	central := api.Group("", middleware.ContextLogger(logger))
	{
		tenant.RegisterRoutes(central, tenant.NewHandler(p.tenants, logger), can("tenant", "manage"))
		rbac.RegisterRoutes(central, rbac.NewHandler(rbacService))
	}

	scoped := api.Group("", middleware.TenantContext(p.router, false), middleware.ContextLogger(logger))
	{
		settings.RegisterRoutes(scoped, settings.NewHandler(svc.settings, logger),
			can("settings", "read"), can("settings", "manage"))
		employee.RegisterRoutes(scoped, employee.NewHandler(svc.employees, logger),
			can("employee", "read"), can("employee", "manage"))
		leavepolicy.RegisterRoutes(scoped, leavepolicy.NewHandler(svc.policies, logger),
			can("leave_policy", "read"), can("leave_policy", "manage"))
		leavebalance.RegisterRoutes(scoped, leavebalance.NewHandler(svc.balances),
			can("leave_balance", "read_own"), can("leave_balance", "read"))
		attendance.RegisterRoutes(scoped, attendance.NewHandler(svc.attendance, logger),
			punchLimit, can("attendance", "punch"), can("attendance", "read_own"),
			can("attendance", "manage"), can("attendance", "import"))
		leave.RegisterRoutes(scoped, leave.NewHandler(svc.leaves, logger),
			can("leave", "create"), can("leave", "read_own"), can("leave", "approve"), idempotent)
		regularization.RegisterRoutes(scoped, regularization.NewHandler(svc.regularize, logger),
			can("regularization", "create"), can("regularization", "read_own"), can("regularization", "approve"))
		holiday.RegisterRoutes(scoped, holiday.NewHandler(svc.holidays, logger),
			can("holiday", "read"), can("holiday", "manage"))
		notification.RegisterRoutes(scoped, notification.NewHandler(svc.notification),
			can("notification", "read"))
		payroll.RegisterRoutes(scoped, payroll.NewHandler(svc.payroll, logger),
			can("payroll", "manage"), can("payroll", "read"), idempotent)
	}

	logger.Info("modules registered", zap.Int("tenant_models", len(TenantModels())))
	return nil
}
