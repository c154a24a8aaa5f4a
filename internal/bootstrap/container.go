package bootstrap

import (
	"context"
	"log"

	"afrimigrate-be/internal/config"
	"afrimigrate-be/internal/constant"
	"afrimigrate-be/internal/controller"
	"afrimigrate-be/internal/handler"
	"afrimigrate-be/internal/pkg/logger"
	"afrimigrate-be/internal/pkg/mailer"
	"afrimigrate-be/internal/pkg/metrics"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/repository/cache"
	"afrimigrate-be/internal/repository/memory"
	"afrimigrate-be/internal/repository/unitofwork"
	"afrimigrate-be/internal/service"
	"afrimigrate-be/internal/websocket"
	"afrimigrate-be/pkg/events"
	"afrimigrate-be/pkg/helpdesk"
	pktNats "afrimigrate-be/pkg/nats"
	"afrimigrate-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController  controller.IAssistantController
	PreferenceController controller.IPreferenceController
	VisaController       controller.IVisaController
	JobController        controller.IJobController
	SkillsController     controller.ISkillsController
	ProfileController    controller.IProfileController
	AddonController      controller.IAddonController

	// Handlers outside the JSON API
	AssistantStreamHandler *handler.AssistantStreamHandler
	MetricsHandler         *handler.MetricsHandler

	// Background work, started by Start
	PreferenceSync      service.IPreferenceSyncService
	NotificationService *service.NotificationService
	KnowledgeBase       *helpdesk.KnowledgeBase
	WebSocketHub        *websocket.Hub

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c := &Container{Logger: sysLogger}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	assistantMetrics := metrics.NewAssistantMetrics(registry)

	// 2. Infrastructure
	var publisher events.Publisher = events.NopPublisher{}
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		publisher = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	} else {
		c.closers = append(c.closers, natsSub.Close)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	c.closers = append(c.closers, func() { _ = rdb.Close() })

	// In-process event bus for the preference write-behind.
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	hubLogger := logger.NewIsolatedLogger(cfg.App.HubLogFilePath)
	c.WebSocketHub = websocket.NewHub(rdb, hubLogger)

	// 3. Assistant
	kb, err := helpdesk.NewKnowledgeBase(cfg.Assistant.FAQFilePath, constant.HelpCenterFAQs)
	if err != nil {
		log.Printf("[WARN] Failed to load FAQ file %s: %v. Using built-in FAQs", cfg.Assistant.FAQFilePath, err)
		kb, _ = helpdesk.NewKnowledgeBase("", constant.HelpCenterFAQs)
	}
	c.KnowledgeBase = kb

	sessionRepo := memory.NewSessionRepository(cfg.Assistant.SessionTTL, func(s *store.AssistantSession) {
		assistantMetrics.ActiveSessions.Dec()
		s.Session.Close()
		sysLogger.Debug("ASSISTANT", "Session expired", map[string]interface{}{"session_id": s.ID})
	})

	assistantService := service.NewAssistantService(sessionRepo, kb, c.WebSocketHub, assistantMetrics, sysLogger, service.AssistantOptions{
		HelpReplyDelay:    cfg.Assistant.HelpReplyDelay,
		SupportReplyDelay: cfg.Assistant.SupportReplyDelay,
	})

	// 4. Self-service domain
	c.PreferenceSync = service.NewPreferenceSyncService(pubSub, pubSub, uowFactory, sysLogger)
	preferenceService := service.NewPreferenceService(uowFactory, cache.NewPreferenceCache(rdb), c.PreferenceSync, sysLogger)
	visaService := service.NewVisaService(uowFactory, publisher, sysLogger)
	jobService := service.NewJobService(uowFactory, preferenceService, sysLogger)
	skillsService := service.NewSkillsService()
	profileService := service.NewProfileService(uowFactory)
	serviceRequestService := service.NewServiceRequestService(uowFactory, publisher, sysLogger)

	// 5. Notifications
	if natsSub != nil {
		emailService := mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
			sysLogger,
		)
		c.NotificationService = service.NewNotificationService(natsSub, emailService, cfg.SMTP.SupportTo, sysLogger)
	}

	// 6. Transport
	auth := serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret)
	optionalAuth := serverutils.NewOptionalJwtMiddleware(cfg.Auth.JwtSecret)

	c.AssistantController = controller.NewAssistantController(assistantService)
	c.PreferenceController = controller.NewPreferenceController(preferenceService, auth)
	c.VisaController = controller.NewVisaController(visaService, auth)
	c.JobController = controller.NewJobController(jobService, auth, optionalAuth)
	c.SkillsController = controller.NewSkillsController(skillsService, optionalAuth)
	c.ProfileController = controller.NewProfileController(profileService, auth)
	c.AddonController = controller.NewAddonController(serviceRequestService, auth)

	c.AssistantStreamHandler = handler.NewAssistantStreamHandler(assistantService, c.WebSocketHub, hubLogger)
	c.MetricsHandler = handler.NewMetricsHandler(registry)

	c.closers = append(c.closers, func() {
		_ = hubLogger.Sync()
		_ = sysLogger.Sync()
	})

	return c
}

// Start runs the background workers until ctx is done.
func (c *Container) Start(ctx context.Context) {
	go c.WebSocketHub.Run(ctx)

	if err := c.PreferenceSync.Consume(ctx); err != nil {
		c.Logger.Error("BOOTSTRAP", "Failed to start preference sync", map[string]interface{}{"error": err})
	}

	if c.NotificationService != nil {
		if err := c.NotificationService.Start(ctx); err != nil {
			c.Logger.Error("BOOTSTRAP", "Failed to start notification worker", map[string]interface{}{"error": err})
		}
	}

	err := c.KnowledgeBase.Watch(ctx, func(err error) {
		if err != nil {
			c.Logger.Warn("ASSISTANT", "FAQ reload failed", map[string]interface{}{"error": err.Error()})
			return
		}
		c.Logger.Info("ASSISTANT", "FAQ file reloaded", map[string]interface{}{"count": len(c.KnowledgeBase.FAQs())})
	})
	if err != nil {
		c.Logger.Warn("ASSISTANT", "FAQ hot reload unavailable", map[string]interface{}{"error": err.Error()})
	}
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
