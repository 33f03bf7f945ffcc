package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/config"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/database"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/events"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/handlers"
	customMiddleware "github.com/Madhav-Gupta-28/sportsmart-backend-go/middleware"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/repository"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/routes"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/services"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/tracing"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/utils"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := tracing.Init(ctx, "sportsmart-backend", cfg.OTLPEndpoint)
	if err != nil {
		log.Fatal("Failed to init tracing: ", err)
	}

	// Connect to MongoDB
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("Failed to create indexes: ", err)
	}

	rdb := database.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	cache := customMiddleware.NewResponseCache(rdb, cfg.CacheTTL, "sportsmart:http")

	publisher := newPublisher(cfg)

	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	userRepo := repository.NewUserRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	locationRepo := repository.NewLocationRepo(db)

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	images := utils.ImageStore{Dir: cfg.UploadDir + "/products", URLPrefix: "/uploads/products", MaxBytes: cfg.MaxUploadBytes}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))
	e.Use(customMiddleware.Metrics())

	routes.SetupRoutes(e, routes.Deps{
		Handlers: routes.Handlers{
			Categories: handlers.NewCategoryHandler(services.NewCategoryService(categoryRepo, publisher)),
			Products:   handlers.NewProductHandler(services.NewProductService(productRepo, categoryRepo, publisher, cfg.CategoryClosureDepth), images),
			Auth:       handlers.NewAuthHandler(services.NewAuthService(userRepo, tokens, cfg.BcryptCost)),
			Users:      handlers.NewUserHandler(services.NewUserService(userRepo)),
			Orders:     handlers.NewOrderHandler(services.NewOrderService(orderRepo, productRepo, publisher)),
			Locations:  handlers.NewLocationHandler(services.NewLocationService(locationRepo)),
			Health:     handlers.Health(database.Ping(db)),
		},
		Tokens:    tokens,
		Cache:     cache,
		UploadDir: cfg.UploadDir,
	})

	go func() {
		log.Printf("Server starting on port %s...", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	if err := publisher.Close(); err != nil {
		log.Printf("close publishers: %v", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if err := db.Client().Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Printf("tracer shutdown: %v", err)
	}
}

// newPublisher sends catalog changes to Kafka and order events to RabbitMQ.
// Either side falls back to a no-op when it is not configured or unreachable.
func newPublisher(cfg config.Config) events.Publisher {
	router := &events.Router{Orders: events.Noop{}, Catalog: events.Noop{}}
	if len(cfg.KafkaBrokers) > 0 {
		router.Catalog = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, 256)
		log.Printf("Catalog events -> kafka topic %s", cfg.KafkaTopic)
	}
	if cfg.AMQPURL != "" {
		p, err := events.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			log.Printf("RabbitMQ unavailable, order events disabled: %v", err)
		} else {
			router.Orders = p
			log.Println("Order events -> rabbitmq")
		}
	}
	return router
}
