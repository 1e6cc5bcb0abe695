package www

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/angas/greenplanet-go/prices"
)

type sysInfoResponse struct {
	Version   string    `json:"version"`
	Healthy   bool      `json:"healthy"`
	FetchedAt time.Time `json:"fetchedAt"`
	NoOfSlots int       `json:"noOfSlots"`
}

func NewSysInfoHandler(logger *slog.Logger, store *prices.Store, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		writeJson(logger, w, sysInfoResponse{
			Version:   version,
			Healthy:   store.Healthy(),
			FetchedAt: store.FetchedAt(),
			NoOfSlots: len(store.Current()),
		})
	}
}
