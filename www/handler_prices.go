package www

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/angas/greenplanet-go/prices"
	"github.com/angas/greenplanet-go/slice"
)

type priceRow struct {
	Key   string  `json:"key"`
	Day   string  `json:"day"`
	Hour  int     `json:"hour"`
	Price float64 `json:"price"`
}

type pricesResponse struct {
	FetchedAt time.Time  `json:"fetchedAt"`
	Prices    []priceRow `json:"prices"`
}

// NewPricesHandler serves the current snapshot in chronological order.
// A POST triggers an immediate refresh.
func NewPricesHandler(logger *slog.Logger, store *prices.Store, refresh func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			go refresh()
			w.WriteHeader(http.StatusAccepted)
			return
		}

		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		points := store.Current().Materialize(prices.PeriodFull, nil)
		resp := pricesResponse{
			FetchedAt: store.FetchedAt(),
			Prices: slice.Map(points, func(p prices.Point) priceRow {
				return priceRow{
					Key:   p.Slot.Key(),
					Day:   p.Slot.Day.String(),
					Hour:  int(p.Slot.Hour),
					Price: p.Price,
				}
			}),
		}

		writeJson(logger, w, resp)
	}
}
