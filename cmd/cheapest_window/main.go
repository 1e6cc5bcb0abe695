package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/angas/greenplanet-go/analyze"
	"github.com/angas/greenplanet-go/greenplanet"
	"github.com/angas/greenplanet-go/prices"
	"github.com/lmittmann/tint"
)

// One-shot query tool: fetches the current snapshot from the portal and
// prints today's extremes plus the cheapest window for the given duration.
func main() {
	w := os.Stdout
	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}))
	slog.SetDefault(logger)

	url := flag.String("url", "", "portal endpoint override")
	duration := flag.Float64("duration", 1, "window duration in hours, may be fractional")
	periodArg := flag.String("period", "full", "period to search: day, night or full")
	from := flag.Int("from", -1, "reference hour, hours before it are excluded (-1 = none)")
	flag.Parse()

	var period prices.Period
	switch *periodArg {
	case "day":
		period = prices.PeriodDay
	case "night":
		period = prices.PeriodNight
	case "full":
		period = prices.PeriodFull
	default:
		logger.Error("period must be day, night or full")
		os.Exit(1)
	}

	var referenceHour *int
	if *from >= 0 {
		if *from > 23 {
			logger.Error("reference hour must be 0-23")
			os.Exit(1)
		}
		referenceHour = from
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	gp := greenplanet.New(*url, 30*time.Second)
	snapshot, err := gp.GetPriceSnapshot(ctx)
	if err != nil {
		logger.Error("failed to fetch prices", slog.Any("error", err))
		os.Exit(1)
	}

	series := prices.FromKeyed(snapshot)
	logger.Info("fetched price snapshot", slog.Int("noOfSlots", len(series)))

	if hp, ok := analyze.HighestToday(series); ok {
		fmt.Printf("highest today:  %.4f at %02d:00\n", hp.Price, hp.Hour)
	} else {
		fmt.Println("highest today:  no data")
	}

	if hp, ok := analyze.LowestInPeriod(series, prices.PeriodDay); ok {
		fmt.Printf("lowest day:     %.4f at %02d:00\n", hp.Price, hp.Hour)
	} else {
		fmt.Println("lowest day:     no data")
	}

	if hp, ok := analyze.LowestInPeriod(series, prices.PeriodNight); ok {
		fmt.Printf("lowest night:   %.4f at %02d:00\n", hp.Price, hp.Hour)
	} else {
		fmt.Println("lowest night:   no data")
	}

	if win, ok := analyze.CheapestWindow(series, period, *duration, referenceHour); ok {
		fmt.Printf("cheapest %.2fh window (%s): avg %.4f starting %02d:00\n",
			*duration, period, win.Average, win.StartHour)
	} else {
		fmt.Printf("cheapest %.2fh window (%s): no window found\n", *duration, period)
	}
}
