package www

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

// hourOrNil parses an optional hour query parameter. A missing parameter is
// nil, anything that isn't an hour 0-23 is a caller error.
func hourOrNil(u *url.URL, key string) (*int, error) {
	v := u.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	hour, err := strconv.Atoi(v)
	if err != nil || hour < 0 || hour > 23 {
		return nil, fmt.Errorf("parameter %s must be an hour 0-23", key)
	}
	return &hour, nil
}

func writeJson(logger *slog.Logger, w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("unable to encode response", slog.Any("error", err))
		http.Error(w, "unable to encode response", http.StatusInternalServerError)
	}
}
