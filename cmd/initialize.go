package cmd

import (
	"context"
	"fmt"

	"traderdash/api"
	"traderdash/internal/appconfig"
	"traderdash/internal/domain"
	"traderdash/internal/logger"
	"traderdash/internal/repository"
	"traderdash/internal/service"

	"github.com/redis/go-redis/v9"
)

func InitializeDependencies() (*api.ApiHandler, error) {
	cfg := appconfig.New()

	baskets := domain.MarketBaskets
	if cfg.BasketsCSV != "" {
		extra, err := domain.LoadBasketsCSV(cfg.BasketsCSV)
		if err != nil {
			return nil, fmt.Errorf("failed to load baskets from %s: %w", cfg.BasketsCSV, err)
		}
		baskets = append(append([]domain.MarketBasket{}, baskets...), extra...)
		logger.Info("loaded %d extra baskets from %s", len(extra), cfg.BasketsCSV)
	}

	var sessionRepository repository.WizardSessionRepository
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Warn("redis unreachable at %s, wizard sessions will not survive restarts: %v", cfg.RedisAddr, err)
		sessionRepository = repository.NewInMemoryWizardSessionRepository(baskets)
	} else {
		sessionRepository = repository.NewWizardSessionRepository(redisClient, baskets)
	}

	quoteRepository := repository.NewQuoteRepository()
	marketDataRepository := repository.NewMarketDataRepository(cfg.APIBaseURL)
	backtestEngineRepository := repository.NewBacktestEngineRepository(cfg.BackendBaseURL)
	stockPageService := service.NewStockPageService(quoteRepository, marketDataRepository)

	return &api.ApiHandler{
		Config:                   cfg,
		BacktestEngineRepository: backtestEngineRepository,
		MarketDataRepository:     marketDataRepository,
		QuoteRepository:          quoteRepository,
		WizardSessionRepository:  sessionRepository,
		StockPageService:         stockPageService,
		Baskets:                  baskets,
	}, nil
}
