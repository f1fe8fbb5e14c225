package bootstrap

import (
	"log"

	"phonefinder-be/internal/config"
	"phonefinder-be/internal/controller"
	"phonefinder-be/internal/pkg/logger"
	"phonefinder-be/internal/repository/contract"
	"phonefinder-be/internal/repository/implementation"
	"phonefinder-be/internal/repository/memory"
	"phonefinder-be/internal/service"
	"phonefinder-be/pkg/llm/factory"
	pktNats "phonefinder-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	AdvisorController  controller.IAdvisorController
	ChatController     controller.IChatController
	FavoriteController controller.IFavoriteController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Exposed for graceful shutdown
	Logger  logger.ILogger
	NatsPub *pktNats.Publisher
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Optional NATS sink for external analytics
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// 3. LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Repositories
	resultRepo := memory.NewResultRepository()

	var favoriteRepo contract.FavoriteRepository
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Invalid REDIS_URL, favorites fall back to memory: %v", err)
			favoriteRepo = memory.NewFavoriteRepository()
		} else {
			favoriteRepo = implementation.NewFavoriteRepository(redis.NewClient(opt))
			log.Printf("[INFO] Favorites persisted in Redis")
		}
	} else {
		favoriteRepo = memory.NewFavoriteRepository()
		log.Printf("[INFO] Favorites kept in memory (no REDIS_URL)")
	}

	// 5. Services
	advisorService := service.NewAdvisorService(
		llmProvider,
		resultRepo,
		pubSub,
		cfg.App.SearchTopicName,
		natsPub,
		sysLogger,
	)
	chatService := service.NewChatService(resultRepo, sysLogger)
	favoriteService := service.NewFavoriteService(favoriteRepo)
	consumerService := service.NewConsumerService(pubSub, cfg.App.SearchTopicName, sysLogger)

	// 6. Controllers
	return &Container{
		AdvisorController:  controller.NewAdvisorController(advisorService),
		ChatController:     controller.NewChatController(chatService),
		FavoriteController: controller.NewFavoriteController(favoriteService),
		ConsumerService:    consumerService,
		Logger:             sysLogger,
		NatsPub:            natsPub,
	}
}
