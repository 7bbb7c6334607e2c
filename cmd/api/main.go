package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/eventosya/marketplace-api/config"
	analyticsHandler "github.com/eventosya/marketplace-api/internal/handler/analytics"
	catalogHandler "github.com/eventosya/marketplace-api/internal/handler/catalog"
	favoriteHandler "github.com/eventosya/marketplace-api/internal/handler/favorite"
	healthHandler "github.com/eventosya/marketplace-api/internal/handler/health"
	packagesHandler "github.com/eventosya/marketplace-api/internal/handler/packages"
	paymentHandler "github.com/eventosya/marketplace-api/internal/handler/payment"
	pricingHandler "github.com/eventosya/marketplace-api/internal/handler/pricing"
	promotionHandler "github.com/eventosya/marketplace-api/internal/handler/promotion"
	providerHandler "github.com/eventosya/marketplace-api/internal/handler/provider"
	subscriptionHandler "github.com/eventosya/marketplace-api/internal/handler/subscription"
	userHandler "github.com/eventosya/marketplace-api/internal/handler/user"
	"github.com/eventosya/marketplace-api/internal/middleware"
	"github.com/eventosya/marketplace-api/internal/repository/postgres"
	"github.com/eventosya/marketplace-api/internal/router"
	analyticsService "github.com/eventosya/marketplace-api/internal/service/analytics"
	catalogService "github.com/eventosya/marketplace-api/internal/service/catalog"
	favoriteService "github.com/eventosya/marketplace-api/internal/service/favorite"
	packagesService "github.com/eventosya/marketplace-api/internal/service/packages"
	paymentService "github.com/eventosya/marketplace-api/internal/service/payment"
	pricingService "github.com/eventosya/marketplace-api/internal/service/pricing"
	promotionService "github.com/eventosya/marketplace-api/internal/service/promotion"
	providerService "github.com/eventosya/marketplace-api/internal/service/provider"
	subscriptionService "github.com/eventosya/marketplace-api/internal/service/subscription"
	userService "github.com/eventosya/marketplace-api/internal/service/user"
	"github.com/eventosya/marketplace-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	baseRepo := postgres.NewBaseRepository(db)
	userRepo := postgres.NewUserRepository(baseRepo)
	categoryRepo := postgres.NewCategoryRepository(baseRepo)
	providerRepo := postgres.NewProviderRepository(baseRepo)
	serviceRepo := postgres.NewServiceRepository(baseRepo)
	reviewRepo := postgres.NewReviewRepository(baseRepo)
	favoriteRepo := postgres.NewFavoriteRepository(baseRepo)
	promotionRepo := postgres.NewPromotionRepository(baseRepo)
	distancePricingRepo := postgres.NewDistancePricingRepository(baseRepo)
	packageRepo := postgres.NewPackageRepository(baseRepo)
	subscriptionRepo := postgres.NewSubscriptionRepository(baseRepo)
	paymentAliasRepo := postgres.NewPaymentAliasRepository(baseRepo)
	analyticsRepo := postgres.NewAnalyticsRepository(baseRepo)
	outboxRepo := postgres.NewOutboxRepository(baseRepo)

	m := metrics.New("marketplace")

	userSvc := userService.NewService(userRepo)
	providerSvc := providerService.NewService(providerRepo, userRepo, serviceRepo, categoryRepo)
	catalogSvc := catalogService.NewService(serviceRepo, categoryRepo, providerRepo, reviewRepo, cfg.Cache.CatalogTTL)
	favoriteSvc := favoriteService.NewService(favoriteRepo, userRepo, serviceRepo, providerRepo)
	promotionSvc := promotionService.NewService(promotionRepo, serviceRepo)
	pricingSvc := pricingService.NewService(distancePricingRepo, providerRepo)
	packagesSvc := packagesService.NewService(packageRepo, providerRepo, serviceRepo)
	subscriptionSvc := subscriptionService.NewService(subscriptionRepo, userRepo)
	paymentSvc := paymentService.NewService(paymentAliasRepo, cfg.Cache.PaymentAliasTTL)
	analyticsSvc := analyticsService.NewService(analyticsRepo, outboxRepo, m, log.Logger)

	r := router.NewRouter(log.Logger, router.Config{
		RateLimitEnabled:  cfg.RateLimit.Enabled,
		RateLimit:         rate.Limit(cfg.RateLimit.RequestsPerSecond),
		RateBurst:         cfg.RateLimit.Burst,
		CORSConfig:        corsConfig(cfg),
		RequestTimeout:    cfg.Server.RequestTimeout,
		PrometheusEnabled: cfg.Monitoring.PrometheusEnabled,
		MetricsPath:       cfg.Monitoring.MetricsPath,
	})

	payH := paymentHandler.NewHandler(paymentSvc)
	r.Register(
		healthHandler.NewHandler(db),
		userHandler.NewHandler(userSvc),
		providerHandler.NewHandler(providerSvc),
		catalogHandler.NewHandler(catalogSvc),
		favoriteHandler.NewHandler(favoriteSvc),
		promotionHandler.NewHandler(promotionSvc),
		pricingHandler.NewHandler(pricingSvc),
		packagesHandler.NewHandler(packagesSvc),
		subscriptionHandler.NewHandler(subscriptionSvc),
		payH,
		analyticsHandler.NewHandler(analyticsSvc),
	)
	payH.RegisterRedirect(r.Engine())

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.Security.AllowedOrigins
	}
	if len(cfg.Security.AllowedMethods) > 0 {
		corsCfg.AllowMethods = cfg.Security.AllowedMethods
	}
	if len(cfg.Security.AllowedHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.Security.AllowedHeaders
	}
	return corsCfg
}
