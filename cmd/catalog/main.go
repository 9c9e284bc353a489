package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gravitas-games/knapsack/internal/catalog"
	"github.com/gravitas-games/knapsack/internal/config"
	"github.com/gravitas-games/knapsack/internal/item"
	"github.com/gravitas-games/knapsack/internal/knapsack"
	"github.com/gravitas-games/knapsack/pkg/price"
)

func main() {
	configPath := config.PathFromEnv()
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("configuration loaded", zap.String("path", configPath))

	if err := run(cfg, logger); err != nil {
		logger.Fatal("catalog run failed", zap.Error(err))
	}
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	items, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil && len(items) == 0 {
		return err
	}
	if err != nil {
		// invalid definitions are skipped, not fatal
		logger.Warn("some catalog entries were rejected", zap.Error(err))
	}

	reg := catalog.NewRegistry(catalog.WithLogger(logger))
	if err := reg.RegisterAll(items); err != nil {
		logger.Warn("some items were not registered", zap.Error(err))
	}
	logger.Info("catalog ready", zap.Int("items", reg.Len()))

	for _, e := range reg.Export() {
		_, err := reg.Sell(e.ID)
		if errors.Is(err, item.ErrOutOfStock) {
			continue
		}
		if err != nil {
			return err
		}
	}

	bag := reg.Knapsack()
	logger.Info("knapsack packed", zap.Any("knapsack", bag.Snapshot()))

	light := bag.MakeNewKnapsackWith(cfg.Knapsack.MaxItemWeightGrammes)
	logger.Info("light knapsack",
		zap.Int("max_item_weight_grammes", cfg.Knapsack.MaxItemWeightGrammes),
		zap.Int("items", light.NumberOfItems()),
		zap.Int("total_weight_grammes", light.TotalWeightInGrammes()),
		zap.Float64("average_weight_grammes", light.AverageWeightInGrammes()))

	under, over := bag.Partition(cfg.Knapsack.PartitionGrammes)
	logger.Info("knapsack partitioned",
		zap.Int("threshold_grammes", cfg.Knapsack.PartitionGrammes),
		zap.Stringer("light", under),
		zap.Stringer("heavy", over))

	if greatest := bag.GreatestItem(); greatest != nil {
		logger.Info("greatest item",
			zap.String("item", greatest.Name()),
			zap.String("next_price", price.Format(greatest.ComputePricePence())))
	}

	if heaviest := knapsack.HeaviestKnapsack([]*knapsack.Knapsack{under, over}); heaviest != nil {
		logger.Info("heaviest knapsack",
			zap.String("id", heaviest.ID()),
			zap.Int("total_weight_grammes", heaviest.TotalWeightInGrammes()))
	}
	return nil
}
