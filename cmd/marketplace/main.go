package main

import (
	"context"
	"log"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"

	"github.com/piresc/tumpangan/internal/pkg/config"
	"github.com/piresc/tumpangan/internal/pkg/database"
	"github.com/piresc/tumpangan/internal/pkg/health"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/middleware"
	natspkg "github.com/piresc/tumpangan/internal/pkg/nats"
	"github.com/piresc/tumpangan/internal/pkg/retry"
	"github.com/piresc/tumpangan/internal/pkg/server"
	notificationhttp "github.com/piresc/tumpangan/services/notification/handler/http"
	notificationuc "github.com/piresc/tumpangan/services/notification/usecase"
	paymentuc "github.com/piresc/tumpangan/services/payment/usecase"
	revenuehttp "github.com/piresc/tumpangan/services/revenue/handler/http"
	revenueuc "github.com/piresc/tumpangan/services/revenue/usecase"
	reviewshttp "github.com/piresc/tumpangan/services/reviews/handler/http"
	reviewsuc "github.com/piresc/tumpangan/services/reviews/usecase"
	ridesgw "github.com/piresc/tumpangan/services/rides/gateway"
	rideshttp "github.com/piresc/tumpangan/services/rides/handler/http"
	ridesvc "github.com/piresc/tumpangan/services/rides/services"
	ridesuc "github.com/piresc/tumpangan/services/rides/usecase"
	walletgw "github.com/piresc/tumpangan/services/wallet/gateway"
	wallethttp "github.com/piresc/tumpangan/services/wallet/handler/http"
	walletuc "github.com/piresc/tumpangan/services/wallet/usecase"
)

// defaultDistances is the built-in route table the static resolver serves
// until a real geocoding backend replaces it.
var defaultDistances = map[string]float64{
	"jakarta|bandung":    150,
	"jakarta|bogor":      60,
	"bandung|yogyakarta": 390,
	"surabaya|malang":    95,
}

var defaultAreas = map[string]string{
	"jakarta":  "jabodetabek",
	"bogor":    "jabodetabek",
	"bandung":  "bandung-raya",
	"surabaya": "gerbangkertosusila",
}

func main() {
	appName := "marketplace"
	configs := config.InitConfig("config/marketplace.env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Redis and NATS mirrors are best-effort: the engine runs fully in
	// memory, so a missing backend downgrades to a warning after the
	// connect retries run out.
	retrier := retry.New(retry.DefaultConfig(), zapLogger)

	var redisClient *database.RedisClient
	err = retrier.Execute(context.Background(), "redis connect", func(ctx context.Context) error {
		var connErr error
		redisClient, connErr = database.NewRedisClient(configs.Redis)
		return connErr
	})
	if err != nil {
		logger.Warn("Redis unavailable, ride/wallet mirroring disabled", logger.Err(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	var natsClient *natspkg.Client
	err = retrier.Execute(context.Background(), "nats connect", func(ctx context.Context) error {
		var connErr error
		natsClient, connErr = natspkg.NewClient(configs.NATS.URL)
		return connErr
	})
	if err != nil {
		logger.Warn("NATS unavailable, event publishing disabled", logger.Err(err))
		natsClient = nil
	} else {
		defer natsClient.Close()
	}

	clock := clockwork.NewRealClock()

	bus := notificationuc.NewNotificationBus(clock)
	defer bus.Close()

	ledger := walletuc.NewWalletLedger(configs, clock, walletgw.NewWalletGW(redisClient, natsClient))
	defer ledger.Close()
	processor := paymentuc.NewPaymentProcessor(clock, ledger, bus)
	aggregator := revenueuc.NewRevenueAggregator(clock, configs.Marketplace.RevenueHistoryLimit)
	moderator := reviewsuc.NewReviewModerator(clock, bus)

	store := ridesuc.NewRideStore(
		configs,
		clock,
		ledger,
		processor,
		bus,
		aggregator,
		ridesvc.NewStandardPricing(configs.Pricing),
		ridesvc.NewStaticRoutes(defaultDistances, defaultAreas, 25),
		ridesgw.NewRideGW(redisClient, natsClient),
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthSvc := health.NewService(appName, zapLogger)
	healthSvc.AddChecker(health.NewRedisChecker(redisClient))
	healthSvc.AddChecker(health.NewNATSChecker(natsClient))
	health.RegisterEndpoints(e, healthSvc)

	rideshttp.NewRideHandler(store).RegisterRoutes(e)
	wallethttp.NewWalletHandler(ledger, processor).RegisterRoutes(e)
	notificationhttp.NewNotificationHandler(bus).RegisterRoutes(e)
	reviewshttp.NewReviewHandler(moderator).RegisterRoutes(e)
	revenuehttp.NewRevenueHandler(aggregator).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}
}
