package www

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/angas/greenplanet-go/analyze"
	"github.com/angas/greenplanet-go/prices"
)

type currentPriceResponse struct {
	Available bool     `json:"available"`
	Hour      int      `json:"hour"`
	Price     *float64 `json:"price,omitempty"`
}

// NewCurrentPriceHandler serves today's price for the requested hour,
// defaulting to the current hour.
func NewCurrentPriceHandler(logger *slog.Logger, store *prices.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		hourArg, err := hourOrNil(r.URL, "hour")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		hour := time.Now().Hour()
		if hourArg != nil {
			hour = *hourArg
		}

		resp := currentPriceResponse{Hour: hour}
		if price, ok := analyze.CurrentPrice(store.Current(), hour); ok {
			resp.Available = true
			resp.Price = &price
		}

		writeJson(logger, w, resp)
	}
}
