package greenplanet

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2025, time.August, 4, 11, 0, 0, 0, time.UTC)

func newTestClient(url string) GreenPlanet {
	gp := New(url, 5*time.Second)
	gp.now = func() time.Time { return testNow }
	return gp
}

func TestGetPriceSnapshot(t *testing.T) {
	var gotReq rpcRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "Mozilla/5.0") {
			t.Errorf("expected a browser user agent, got %q", ua)
		}
		if ref := r.Header.Get("Referer"); ref != refererURL {
			t.Errorf("got referer %q, wanted %q", ref, refererURL)
		}
		if xrw := r.Header.Get("X-Requested-With"); xrw != "XMLHttpRequest" {
			t.Errorf("got X-Requested-With %q", xrw)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"jsonrpc": "2.0",
			"id": 564,
			"result": {
				"errorCode": 0,
				"errorText": "",
				"datum": [
					"04.08.25, 09:00 Uhr",
					"04.08.25, 10:00 Uhr",
					"05.08.25, 00:00 Uhr",
					"06.08.25, 00:00 Uhr",
					"garbage entry"
				],
				"wert": ["0,23446", "0,30", "0,14", "0,99", "x"]
			}
		}`))
	}))
	defer srv.Close()

	snapshot, err := newTestClient(srv.URL).GetPriceSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotReq.Method != "getVerbrauchspreisUndWindsignal" {
		t.Errorf("got method %q", gotReq.Method)
	}
	if gotReq.Params.From != "2025-08-04" || gotReq.Params.To != "2025-08-05" {
		t.Errorf("got von %q bis %q", gotReq.Params.From, gotReq.Params.To)
	}

	// The entry beyond tomorrow and the garbage entry are dropped.
	if len(snapshot) != 3 {
		t.Fatalf("expected 3 prices, got %d: %v", len(snapshot), snapshot)
	}
	if !almostEqual(snapshot["price_09"], 0.2345) {
		t.Errorf("got price_09 %f, wanted 0.2345 (rounded to 4 decimals)", snapshot["price_09"])
	}
	if !almostEqual(snapshot["price_10"], 0.30) {
		t.Errorf("got price_10 %f, wanted 0.30", snapshot["price_10"])
	}
	if !almostEqual(snapshot["price_00_tomorrow"], 0.14) {
		t.Errorf("got price_00_tomorrow %f, wanted 0.14", snapshot["price_00_tomorrow"])
	}
}

func TestGetPriceSnapshotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": {"errorCode": 42, "errorText": "kein Zugriff"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetPriceSnapshot(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Code != 42 || apiErr.Text != "kein Zugriff" {
		t.Errorf("got %+v", apiErr)
	}
}

func TestGetPriceSnapshotHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).GetPriceSnapshot(context.Background()); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestGetPriceSnapshotMissingResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc": "2.0", "id": 564}`))
	}))
	defer srv.Close()

	snapshot, err := newTestClient(srv.URL).GetPriceSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshot) != 0 {
		t.Errorf("expected an empty snapshot, got %v", snapshot)
	}
}

func TestGetPriceSnapshotMismatchedArrays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": {"errorCode": 0, "datum": ["04.08.25, 09:00 Uhr"], "wert": []}}`))
	}))
	defer srv.Close()

	snapshot, err := newTestClient(srv.URL).GetPriceSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshot) != 0 {
		t.Errorf("expected an empty snapshot, got %v", snapshot)
	}
}

func TestParseStamp(t *testing.T) {
	tests := []struct {
		name   string
		stamp  string
		date   string
		hour   int
		wantOk bool
	}{
		{"valid", "04.08.25, 09:00 Uhr", "04.08.25", 9, true},
		{"late hour", "04.08.25, 23:00 Uhr", "04.08.25", 23, true},
		{"no uhr suffix", "04.08.25, 09:00", "", 0, false},
		{"no comma", "04.08.25 09:00 Uhr", "", 0, false},
		{"no colon", "04.08.25, 0900 Uhr", "", 0, false},
		{"hour out of range", "04.08.25, 24:00 Uhr", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, hour, ok := parseStamp(tt.stamp)
			if ok != tt.wantOk {
				t.Fatalf("parseStamp(%q) ok = %v, wanted %v", tt.stamp, ok, tt.wantOk)
			}
			if ok && (date != tt.date || hour != tt.hour) {
				t.Errorf("parseStamp(%q) = (%q, %d), wanted (%q, %d)", tt.stamp, date, hour, tt.date, tt.hour)
			}
		})
	}
}

func almostEqual(f1 float64, f2 float64) bool {
	return math.Abs(f1-f2) < 1e-9
}
