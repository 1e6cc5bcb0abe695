package www

import (
	"log/slog"
	"net/http"

	"github.com/angas/greenplanet-go/analyze"
	"github.com/angas/greenplanet-go/prices"
)

type extremumResponse struct {
	Available bool     `json:"available"`
	Hour      *int     `json:"hour,omitempty"`
	Price     *float64 `json:"price,omitempty"`
}

func newExtremumResponse(hp analyze.HourPrice, ok bool) extremumResponse {
	if !ok {
		return extremumResponse{}
	}
	return extremumResponse{Available: true, Hour: &hp.Hour, Price: &hp.Price}
}

func NewHighestTodayHandler(logger *slog.Logger, store *prices.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		hp, ok := analyze.HighestToday(store.Current())
		writeJson(logger, w, newExtremumResponse(hp, ok))
	}
}

func NewLowestInPeriodHandler(logger *slog.Logger, store *prices.Store, period prices.Period) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		hp, ok := analyze.LowestInPeriod(store.Current(), period)
		writeJson(logger, w, newExtremumResponse(hp, ok))
	}
}
