package task

import (
	"context"
	"log/slog"

	"github.com/angas/greenplanet-go/config"
	"github.com/angas/greenplanet-go/prices"
	"github.com/angas/greenplanet-go/types"
	"github.com/robfig/cron/v3"
)

type Tasks struct {
	cron            *cron.Cron
	cnfg            *config.AppConfig
	EnergyPriceTask func()
}

func NewTasks(store *prices.Store, providers []types.PriceProvider, cnfg *config.AppConfig) *Tasks {
	logger := slog.Default().With("module", "tasks")
	return &Tasks{
		cron:            cron.New(),
		cnfg:            cnfg,
		EnergyPriceTask: NewEnergyPriceTask(logger.With(slog.String("task", "energy_price")), store, providers),
	}
}

func (t *Tasks) Run() {
	_, err := t.cron.AddFunc(t.cnfg.GreenPlanet.GetRunAt(), t.EnergyPriceTask)
	if err != nil {
		panic(err)
	}
	t.cron.Start()
}

func (t *Tasks) Stop() context.Context {
	return t.cron.Stop()
}
