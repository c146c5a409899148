package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	accountingUsecases "fixtrack/internal/application/accounting/usecases"
	notificationUsecases "fixtrack/internal/application/notification/usecases"
	repairUsecases "fixtrack/internal/application/repair/usecases"
	settingUsecases "fixtrack/internal/application/setting/usecases"
	userUsecases "fixtrack/internal/application/user/usecases"
	"fixtrack/internal/domain/shared/events"
	"fixtrack/internal/infrastructure/auth"
	"fixtrack/internal/infrastructure/config"
	"fixtrack/internal/infrastructure/push"
	"fixtrack/internal/infrastructure/ratelimit"
	"fixtrack/internal/infrastructure/repository"
	"fixtrack/internal/interfaces/http/handlers"
	"fixtrack/internal/interfaces/http/middleware"
	"fixtrack/internal/interfaces/http/routes"
	"fixtrack/internal/shared/logger"
)

// Router wires repositories, use cases, handlers and middleware into a
// Gin engine.
type Router struct {
	engine              *gin.Engine
	authHandler         *handlers.AuthHandler
	repairHandler       *handlers.RepairHandler
	technicianHandler   *handlers.TechnicianHandler
	accountHandler      *handlers.AccountHandler
	notificationHandler *handlers.NotificationHandler
	settingHandler      *handlers.SettingHandler
	authMiddleware      *middleware.AuthMiddleware
	loginRateLimiter    *middleware.RateLimitMiddleware
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(
	db *gorm.DB,
	redisClient *redis.Client,
	cfg *config.Config,
	dispatcher events.EventDispatcher,
	log logger.Interface,
) *Router {
	engine := gin.New()

	repairRepo := repository.NewRepairRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	userRepo := repository.NewUserRepository(db)
	logRepo := repository.NewAuditLogRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	pushSubRepo := repository.NewPushSubscriptionRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	txRepo := repository.NewTransactionRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	pushSender := push.NewWebPushSender(cfg.Push)

	fanout := notificationUsecases.NewFanoutService(notificationRepo, pushSubRepo, userRepo, pushSender, log)
	if err := notificationUsecases.NewRepairEventSubscriber(fanout, log).Register(dispatcher); err != nil {
		log.Errorw("failed to register repair event subscriber", "error", err)
	}

	loginUC := userUsecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	authHandler := handlers.NewAuthHandler(loginUC, log)

	createRepairUC := repairUsecases.NewCreateRepairUseCase(repairRepo, counterRepo, userRepo, logRepo, dispatcher, log)
	updateRepairUC := repairUsecases.NewUpdateRepairUseCase(repairRepo, userRepo, logRepo, hasher, dispatcher, log)
	deleteRepairUC := repairUsecases.NewDeleteRepairUseCase(repairRepo, userRepo, logRepo, dispatcher, log)
	getRepairUC := repairUsecases.NewGetRepairUseCase(repairRepo, userRepo, log)
	listRepairsUC := repairUsecases.NewListRepairsUseCase(repairRepo, userRepo, log)
	getRepairLogUC := repairUsecases.NewGetRepairLogUseCase(repairRepo, userRepo, logRepo, log)
	repairHandler := handlers.NewRepairHandler(
		createRepairUC, updateRepairUC, deleteRepairUC,
		getRepairUC, listRepairsUC, getRepairLogUC, log,
	)

	createTechnicianUC := userUsecases.NewCreateTechnicianUseCase(userRepo, hasher, log)
	updateTechnicianUC := userUsecases.NewUpdateTechnicianUseCase(userRepo, hasher, log)
	listTechniciansUC := userUsecases.NewListTechniciansUseCase(userRepo, log)
	getTechnicianUC := userUsecases.NewGetTechnicianUseCase(userRepo, log)
	deleteTechnicianUC := userUsecases.NewDeleteTechnicianUseCase(userRepo, log)
	profileUC := accountingUsecases.NewGetTechnicianProfileUseCase(repairRepo, userRepo, settingRepo, log)
	technicianHandler := handlers.NewTechnicianHandler(
		createTechnicianUC, updateTechnicianUC, listTechniciansUC,
		getTechnicianUC, deleteTechnicianUC, profileUC, log,
	)

	summaryUC := accountingUsecases.NewGetSummaryUseCase(repairRepo, txRepo, userRepo, settingRepo, log)
	partsReportUC := accountingUsecases.NewGetPartsReportUseCase(repairRepo, userRepo, log)
	transactionsUC := accountingUsecases.NewTransactionsUseCase(txRepo, userRepo, log)
	accountHandler := handlers.NewAccountHandler(summaryUC, partsReportUC, transactionsUC, log)

	listNotificationsUC := notificationUsecases.NewListNotificationsUseCase(notificationRepo, log)
	markReadUC := notificationUsecases.NewMarkReadUseCase(notificationRepo, log)
	markAllReadUC := notificationUsecases.NewMarkAllReadUseCase(notificationRepo, log)
	clearNotificationsUC := notificationUsecases.NewClearNotificationsUseCase(notificationRepo, log)
	subscribePushUC := notificationUsecases.NewSubscribePushUseCase(pushSubRepo, log)
	unsubscribePushUC := notificationUsecases.NewUnsubscribePushUseCase(pushSubRepo, log)
	notificationHandler := handlers.NewNotificationHandler(
		listNotificationsUC, markReadUC, markAllReadUC, clearNotificationsUC,
		subscribePushUC, unsubscribePushUC, cfg.Push, log,
	)

	getSettingsUC := settingUsecases.NewGetSettingsUseCase(settingRepo, userRepo, log)
	updateSettingsUC := settingUsecases.NewUpdateSettingsUseCase(settingRepo, userRepo, log)
	settingHandler := handlers.NewSettingHandler(getSettingsUC, updateSettingsUC, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var loginRateLimiter *middleware.RateLimitMiddleware
	if redisClient != nil {
		limiter := ratelimit.NewRedisLimiter(redisClient)
		loginRateLimiter = middleware.NewRateLimitMiddleware(limiter, "login", ratelimit.Limits{
			PerMinute: 10,
			PerHour:   60,
		})
	}

	return &Router{
		engine:              engine,
		authHandler:         authHandler,
		repairHandler:       repairHandler,
		technicianHandler:   technicianHandler,
		accountHandler:      accountHandler,
		notificationHandler: notificationHandler,
		settingHandler:      settingHandler,
		authMiddleware:      authMiddleware,
		loginRateLimiter:    loginRateLimiter,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:      r.authHandler,
		LoginRateLimiter: r.loginRateLimiter,
	})
	routes.SetupRepairRoutes(r.engine, &routes.RepairRouteConfig{
		RepairHandler:  r.repairHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTechnicianRoutes(r.engine, &routes.TechnicianRouteConfig{
		TechnicianHandler: r.technicianHandler,
		AuthMiddleware:    r.authMiddleware,
	})
	routes.SetupAccountRoutes(r.engine, &routes.AccountRouteConfig{
		AccountHandler: r.accountHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler: r.notificationHandler,
		AuthMiddleware:      r.authMiddleware,
	})
	routes.SetupSettingRoutes(r.engine, &routes.SettingRouteConfig{
		SettingHandler: r.settingHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
