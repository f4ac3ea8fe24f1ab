package main

import (
	"context"
	"fmt"
	"log"

	"github.com/careerpilot/careerpilot/adapters/event"
	httpAdapter "github.com/careerpilot/careerpilot/adapters/http"
	"github.com/careerpilot/careerpilot/adapters/identity"
	"github.com/careerpilot/careerpilot/adapters/llm"
	"github.com/careerpilot/careerpilot/adapters/persistence"
	"github.com/careerpilot/careerpilot/internal/application/service"
	achievementUC "github.com/careerpilot/careerpilot/internal/application/usecase/achievement"
	chatUC "github.com/careerpilot/careerpilot/internal/application/usecase/chat"
	counsellorUC "github.com/careerpilot/careerpilot/internal/application/usecase/counsellor"
	goalUC "github.com/careerpilot/careerpilot/internal/application/usecase/goal"
	profileUC "github.com/careerpilot/careerpilot/internal/application/usecase/profile"
	signupUC "github.com/careerpilot/careerpilot/internal/application/usecase/signup"
	skillUC "github.com/careerpilot/careerpilot/internal/application/usecase/skill"
	"github.com/careerpilot/careerpilot/internal/config"
	"github.com/careerpilot/careerpilot/pkg/logger"
	"github.com/careerpilot/careerpilot/pkg/tracing"
)

func main() {
	fmt.Println("Start CareerPilot API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Tracing is optional: skipped when no collector is configured.
	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "careerpilot-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Initialize dependencies
	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	store := persistence.NewRedisStore(redisClient)

	identityProvider, err := identity.NewSupabaseAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot init identity provider: %v", err)
	}

	llmService, err := llm.NewGeminiLLMAdapter(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot init LLM adapter: %v", err)
	}

	// Events are optional: no-op when no brokers are configured.
	var publisher service.EventPublisher = event.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg)
		if err != nil {
			log.Fatalf("FATAL: cannot init Kafka: %v", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	}

	// Repositories
	profileRepo := persistence.NewKVProfileRepo(store)
	chatRepo := persistence.NewKVChatRepo(store, appLogger)
	skillRepo := persistence.NewKVSkillRepo(store, appLogger)
	goalRepo := persistence.NewKVGoalRepo(store)
	achievementRepo := persistence.NewKVAchievementRepo(store, appLogger)

	// One sequence shared by both message-writing use cases so their
	// keys cannot collide with each other either.
	messageKeys := persistence.NewMessageKeySequence()

	// Use Cases
	profileUseCase := profileUC.NewProfileUseCase(profileRepo)
	chatUseCase := chatUC.NewChatUseCase(chatRepo, messageKeys, appLogger)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo)
	goalUseCase := goalUC.NewGoalUseCase(goalRepo)
	achievementUseCase := achievementUC.NewAchievementUseCase(achievementRepo, publisher, appLogger)
	signupUseCase := signupUC.NewSignupUseCase(identityProvider, appLogger)
	counsellorUseCase := counsellorUC.NewCounsellorUseCase(profileRepo, chatRepo, llmService, publisher, messageKeys, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Profile:     httpAdapter.NewProfileHandler(profileUseCase, appLogger),
		Chat:        httpAdapter.NewChatHandler(chatUseCase, appLogger),
		Skill:       httpAdapter.NewSkillHandler(skillUseCase, appLogger),
		Goal:        httpAdapter.NewGoalHandler(goalUseCase, appLogger),
		Achievement: httpAdapter.NewAchievementHandler(achievementUseCase, appLogger),
		Auth:        httpAdapter.NewAuthHandler(signupUseCase, appLogger),
		Counsellor:  httpAdapter.NewCounsellorHandler(counsellorUseCase, appLogger),
	}

	router := httpAdapter.NewRouter(appLogger, identityProvider, handlers)

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
