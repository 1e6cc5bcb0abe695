package www

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/angas/greenplanet-go/analyze"
	"github.com/angas/greenplanet-go/prices"
)

type cheapestWindowResponse struct {
	Available bool     `json:"available"`
	Period    string   `json:"period"`
	Duration  float64  `json:"duration"`
	StartHour *int     `json:"startHour,omitempty"`
	Average   *float64 `json:"averagePrice,omitempty"`
}

// NewCheapestWindowHandler runs the window search. Query parameters:
// period (day|night|full, default full), duration (hours, may be
// fractional) and from (optional reference hour, excludes today's hours
// before it).
func NewCheapestWindowHandler(logger *slog.Logger, store *prices.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var period prices.Period
		switch r.URL.Query().Get("period") {
		case "day":
			period = prices.PeriodDay
		case "night":
			period = prices.PeriodNight
		case "full", "":
			period = prices.PeriodFull
		default:
			http.Error(w, "parameter period must be day, night or full", http.StatusBadRequest)
			return
		}

		durationStr := r.URL.Query().Get("duration")
		if durationStr == "" {
			http.Error(w, "parameter duration is required", http.StatusBadRequest)
			return
		}
		duration, err := strconv.ParseFloat(durationStr, 64)
		if err != nil {
			http.Error(w, "parameter duration must be a number of hours", http.StatusBadRequest)
			return
		}

		referenceHour, err := hourOrNil(r.URL, "from")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := cheapestWindowResponse{Period: period.String(), Duration: duration}
		if win, ok := analyze.CheapestWindow(store.Current(), period, duration, referenceHour); ok {
			resp.Available = true
			resp.StartHour = &win.StartHour
			resp.Average = &win.Average
		}

		writeJson(logger, w, resp)
	}
}
