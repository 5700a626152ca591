package bootstrap

import (
	"log"
	"time"

	"github.com/DevDad-Main/ServIQ/internal/config"
	"github.com/DevDad-Main/ServIQ/internal/controller"
	"github.com/DevDad-Main/ServIQ/internal/pkg/logger"
	"github.com/DevDad-Main/ServIQ/internal/pkg/session"
	"github.com/DevDad-Main/ServIQ/internal/repository/unitofwork"
	"github.com/DevDad-Main/ServIQ/internal/service"
	"github.com/DevDad-Main/ServIQ/pkg/scalekit"
	"github.com/DevDad-Main/ServIQ/pkg/scraper"
	"github.com/DevDad-Main/ServIQ/pkg/summarizer"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	KnowledgeController controller.IKnowledgeController
	SectionController   controller.ISectionController
	MetadataController  controller.IMetadataController
	ChatbotController   controller.IChatbotController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	codec, err := session.NewCodec(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.SessionTTLHours)*time.Hour)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Outbound Clients
	outboundTimeout := time.Duration(cfg.Outbound.TimeoutSeconds) * time.Second

	identityProvider := scalekit.New(
		cfg.Auth.ScalekitEnvURL,
		cfg.Auth.ScalekitClientID,
		cfg.Auth.ScalekitClientSecret,
		cfg.Auth.ScalekitRedirectURI,
		outboundTimeout,
	)
	webScraper := scraper.New(cfg.Keys.ZenRows, outboundTimeout)
	summaryProvider := summarizer.NewOpenAI(
		cfg.Keys.OpenAIEndpoint,
		cfg.Keys.OpenAI,
		cfg.Keys.OpenAIModel,
		outboundTimeout,
	)

	// Metadata read cache. Short TTL keeps the database authoritative.
	metadataCache := cache.New(5*time.Minute, 10*time.Minute)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.IngestTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.IngestTopic, uowFactory)

	authService := service.NewAuthService(uowFactory, identityProvider, sysLogger)
	knowledgeService := service.NewKnowledgeService(uowFactory, webScraper, summaryProvider, publisherService, sysLogger)
	sectionService := service.NewSectionService(uowFactory)
	metadataService := service.NewMetadataService(uowFactory, metadataCache)
	chatbotService := service.NewChatbotService(uowFactory)

	// 5. Controllers
	secureCookie := cfg.App.Environment == "production"
	stateTTL := time.Duration(cfg.Auth.StateTTLMinutes) * time.Minute

	return &Container{
		AuthController:      controller.NewAuthController(authService, codec, cfg.App.ClientURL, stateTTL, secureCookie),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService, codec),
		SectionController:   controller.NewSectionController(sectionService, codec),
		MetadataController:  controller.NewMetadataController(metadataService, codec, secureCookie),
		ChatbotController:   controller.NewChatbotController(chatbotService, codec),
		ConsumerService:     consumerService,
		Logger:              sysLogger,
	}
}
