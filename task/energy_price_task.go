package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/angas/greenplanet-go/hours"
	"github.com/angas/greenplanet-go/prices"
	"github.com/angas/greenplanet-go/types"
)

func NewEnergyPriceTask(logger *slog.Logger, store *prices.Store, providers []types.PriceProvider) func() {
	if len(providers) == 0 {
		panic("no price providers")
	}

	if needImmediateEnergyPriceUpdate(store) {
		logger.Info("need an immediate update of energy prices")
		runEnergyPriceTask(logger, store, providers)
	} else {
		logger.Debug("no need for immediate update of energy prices")
	}

	return func() { runEnergyPriceTask(logger, store, providers) }
}

func runEnergyPriceTask(logger *slog.Logger, store *prices.Store, providers []types.PriceProvider) {
	logger.Debug("running energy price task...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var series prices.Series
	for _, provider := range providers {
		snapshot, err := provider.GetPriceSnapshot(ctx)
		if err != nil {
			logger.Error("energy price task error, fetching prices", slog.Any("error", err))
			continue
		}
		series = prices.FromKeyed(snapshot)
		break
	}

	if len(series) == 0 {
		logger.Error("energy price task error, no prices fetched")
		return
	}

	store.Set(series)
	logger.Info("energy price task done", slog.Int("noOfHoursUpdated", len(series)))
}

// A refresh is needed right away when the store has no data for the
// current hour, e.g. after a restart.
func needImmediateEnergyPriceUpdate(store *prices.Store) bool {
	slot := hours.Slot{Day: hours.Today, Hour: uint8(time.Now().Hour())}
	_, ok := store.Current().At(slot)
	return !ok
}
