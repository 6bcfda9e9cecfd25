package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jdelort/cafe-manager-api/internal/application/analytics"
	"github.com/jdelort/cafe-manager-api/internal/application/auth"
	"github.com/jdelort/cafe-manager-api/internal/application/inventory"
	"github.com/jdelort/cafe-manager-api/internal/application/news"
	"github.com/jdelort/cafe-manager-api/internal/application/orders"
	"github.com/jdelort/cafe-manager-api/internal/application/shoppinglist"
	infrapdf "github.com/jdelort/cafe-manager-api/internal/infrastructure/pdf"
	"github.com/jdelort/cafe-manager-api/internal/infrastructure/postgres"
	"github.com/jdelort/cafe-manager-api/internal/infrastructure/rediscache"
	httpRouter "github.com/jdelort/cafe-manager-api/internal/interfaces/http"
	"github.com/jdelort/cafe-manager-api/pkg/config"
	"github.com/jdelort/cafe-manager-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement de la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	listRepo := postgres.NewShoppingListRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	newsRepo := postgres.NewNewsRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	inventoryUC := inventory.NewUseCase(itemRepo)
	shoppingListUC := shoppinglist.NewUseCase(listRepo, itemRepo, txRunner)
	physicalCountUC := inventory.NewPhysicalCountUseCase(txRunner, shoppingListUC)
	orderUC := orders.NewUseCase(orderRepo, txRunner)
	newsUC := news.NewUseCase(newsRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Cache Redis du dashboard: optionnel, activé via REDIS_ADDR.
	var summaryCache appanalytics.SummaryCache
	if cfg.Redis.Enabled() {
		cache, err := rediscache.NewDashboardCache(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("Redis indisponible, dashboard sans cache")
		} else {
			defer cache.Close()
			summaryCache = cache
			log.Info().Str("addr", cfg.Redis.Addr).Msg("cache Redis du dashboard activé")
		}
	}
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, summaryCache)

	pdfGenerator := infrapdf.NewMarotoListGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Café Manager API",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC:     inventoryUC,
		PhysicalCountUC: physicalCountUC,
		ShoppingListUC:  shoppingListUC,
		PDFGen:          pdfGenerator,
		OrderUC:         orderUC,
		NewsUC:          newsUC,
		DashboardUC:     dashboardUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
