package bootstrap

import (
	"context"
	"log"

	"career-roadmap-be/internal/config"
	"career-roadmap-be/internal/controller"
	"career-roadmap-be/internal/pkg/logger"
	"career-roadmap-be/internal/repository/unitofwork"
	"career-roadmap-be/internal/service"
	"career-roadmap-be/pkg/llm"
	"career-roadmap-be/pkg/llm/factory"
	"career-roadmap-be/pkg/qnet"
	"career-roadmap-be/pkg/roadmap"
	"career-roadmap-be/pkg/websearch"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	RoadmapController      controller.IRoadmapController
	NotificationController controller.INotificationController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	engineLogger := logger.NewEngineLogger(cfg.App.EngineLogFilePath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. External Adapters
	// The engine tolerates a nil provider and nil adapters, every missing
	// collaborator degrades to the rule-based path.
	var llmProvider llm.LLMProvider
	apiKey := cfg.Ai.OpenAI
	if cfg.Ai.Provider == "gemini" {
		apiKey = cfg.Ai.Gemini
	}
	if apiKey != "" {
		var err error
		llmProvider, err = factory.NewLLMProvider(context.Background(), cfg.Ai.Provider, apiKey, cfg.Ai.Model)
		if err != nil {
			log.Printf("[WARN] Failed to initialize LLM Provider, rule-based only: %v", err)
			llmProvider = nil
		} else {
			log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)
		}
	} else {
		log.Printf("[INFO] No LLM API key configured, rule-based roadmaps only")
	}

	adapters := roadmap.Adapters{}

	if cfg.Search.TavilyAPIKey != "" {
		tavily := websearch.NewTavilyClient(cfg.Search.TavilyAPIKey)
		adapters.SearchCompanies = func(ctx context.Context, names []string) ([]websearch.CompanyResult, error) {
			results := make([]websearch.CompanyResult, 0, len(names))
			for _, name := range names {
				res, err := tavily.SearchCompanyInfo(ctx, name)
				if err != nil {
					log.Printf("[WARN] Company search failed for %s: %v", name, err)
					continue
				}
				if res != nil {
					results = append(results, *res)
				}
			}
			return results, nil
		}
		adapters.SearchJob = tavily.SearchJobInfo
	}

	if cfg.Qnet.ServiceKey != "" {
		qnetClient := qnet.NewClient(cfg.Qnet.ServiceKey, engineLogger)
		adapters.FetchQualifications = qnetClient.GetAllQualifications
		adapters.FetchExamSchedules = qnetClient.GetExamSchedules
		adapters.FetchQualSchedule = qnetClient.GetSchedulesForQualification
	}

	engine := roadmap.NewEngine(llmProvider, cfg.Ai.Model, adapters, roadmap.Config{
		SearchTimeout:     cfg.Roadmap.SearchTimeout,
		RuleSearchTimeout: cfg.Roadmap.RuleSearchTimeout,
		RegistryTimeout:   cfg.Roadmap.RegistryTimeout,
		GenerateTimeout:   cfg.Roadmap.GenerateTimeout,
	}, engineLogger)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Roadmap.EventTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Roadmap.EventTopic,
		uowFactory,
	)

	roadmapService := service.NewRoadmapService(uowFactory, engine, publisherService, sysLogger)
	notificationService := service.NewNotificationService(uowFactory)

	// 5. Controllers
	return &Container{
		RoadmapController:      controller.NewRoadmapController(roadmapService, cfg.Auth.JwtSecret, cfg.Auth.RunAPIKey),
		NotificationController: controller.NewNotificationController(notificationService, cfg.Auth.JwtSecret),

		ConsumerService: consumerService,
	}
}
