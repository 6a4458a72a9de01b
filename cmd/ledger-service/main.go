package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/crewpool/pool-ledger-service/internal/config"
	httpdelivery "github.com/crewpool/pool-ledger-service/internal/delivery/http"
	"github.com/crewpool/pool-ledger-service/internal/delivery/http/handlers"
	publisher "github.com/crewpool/pool-ledger-service/internal/infrastructure/kafka"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/metrics"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/migrate"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres"
	"github.com/crewpool/pool-ledger-service/internal/infrastructure/postgres/repository"
	"github.com/crewpool/pool-ledger-service/internal/usecase"
	betuc "github.com/crewpool/pool-ledger-service/internal/usecase/bet"
	promouc "github.com/crewpool/pool-ledger-service/internal/usecase/promo"
	statementuc "github.com/crewpool/pool-ledger-service/internal/usecase/statement"
	weekuc "github.com/crewpool/pool-ledger-service/internal/usecase/week"
	"github.com/joho/godotenv"
)

func setupLogger(cfg *config.LedgerConfig) {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)

	// Init database
	db := postgres.MustInitDB(cfg)
	if cfg.LedgerDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.LedgerDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Kafka publisher is optional: without a broker the service just
	// skips event publishing.
	var ledgerPublisher *publisher.LedgerPublisher
	if cfg.KafkaService.Host != "" {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		ledgerPublisher = publisher.NewLedgerPublisher(brokers, cfg.KafkaService.Topic)
		defer ledgerPublisher.Close()
	}

	ledgerMetrics := metrics.NewLedgerMetrics()
	metrics.StartMetricsServer(cfg.MetricsServer.Port)

	// Init repositories
	memberRepo := repository.NewDefaultMemberRepository(db)
	weekRepo := repository.NewDefaultWeekRepository(db)
	weekMemberRepo := repository.NewDefaultWeekMemberRepository(db)
	betRepo := repository.NewDefaultBetRepository(db)
	promoRepo := repository.NewDefaultPromoRepository(db)
	awardRepo := repository.NewDefaultAwardRepository(db)
	statementRepo := repository.NewDefaultStatementRepository(db)

	// Init usecases
	memberUsecase := usecase.NewDefaultMemberUsecase(memberRepo)
	ledgerUsecase := usecase.NewDefaultLedgerUsecase(weekMemberRepo, betRepo, memberRepo)
	awardUsecase := usecase.NewDefaultAwardUsecase(awardRepo, weekRepo, weekMemberRepo, ledgerPublisher, ledgerMetrics)
	betUsecase := betuc.NewDefaultBetUsecase(betRepo, weekRepo, weekMemberRepo, ledgerUsecase, ledgerPublisher, ledgerMetrics)
	promoUsecase := promouc.NewDefaultPromoUsecase(promoRepo, weekRepo, weekMemberRepo, betRepo, awardRepo, ledgerMetrics)
	statementUsecase := statementuc.NewDefaultStatementUsecase(statementRepo, weekRepo, weekMemberRepo, betRepo, awardRepo, ledgerMetrics)
	weekUsecase := weekuc.NewDefaultWeekUsecase(
		weekRepo,
		weekMemberRepo,
		betRepo,
		awardRepo,
		promoUsecase,
		statementUsecase,
		cfg.Rebate.DefaultPercent,
		ledgerPublisher,
		ledgerMetrics,
	)

	router := httpdelivery.NewRouter(httpdelivery.Handlers{
		Member:    handlers.NewMemberHandler(memberUsecase),
		Week:      handlers.NewWeekHandler(weekUsecase, ledgerUsecase),
		Bet:       handlers.NewBetHandler(betUsecase),
		Promo:     handlers.NewPromoHandler(promoUsecase),
		Award:     handlers.NewAwardHandler(awardUsecase),
		Statement: handlers.NewStatementHandler(statementUsecase),
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	slog.Info("ledger service listening", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("http server stopped: %v", err)
	}
}
