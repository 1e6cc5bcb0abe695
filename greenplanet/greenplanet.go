package greenplanet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/angas/greenplanet-go/convert"
)

const (
	defaultURL = "https://mein.green-planet-energy.de/p2"
	refererURL = "https://mein.green-planet-energy.de/dynamischer-tarif/strompreise"

	// The portal only answers requests that look like they come from the
	// customer portal's own frontend.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/Latest Safari/537.36"
)

// stampLayout matches the vendor's localized timestamps, "04.08.25, 09:00 Uhr".
const stampLayout = "02.01.06"

// APIError is a vendor-reported error (non-zero errorCode in the response).
type APIError struct {
	Code int
	Text string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("green planet api error %d: %s", e.Code, e.Text)
}

type rpcRequest struct {
	JsonRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      int       `json:"id"`
}

type rpcParams struct {
	From            string `json:"von"`
	To              string `json:"bis"`
	AggregatePeriod string `json:"aggregatsZeitraum"`
	AggregateType   string `json:"aggregatsTyp"`
	Source          string `json:"source"`
}

type rpcResponse struct {
	Result *rpcResult `json:"result"`
}

type rpcResult struct {
	ErrorCode int      `json:"errorCode"`
	ErrorText string   `json:"errorText"`
	Stamps    []string `json:"datum"`
	Values    []string `json:"wert"`
}

// GreenPlanet fetches the dynamic tariff from the Green Planet Energy
// customer portal. The portal speaks JSON-RPC and answers with parallel
// timestamp/price arrays in German locale formats; this client normalizes
// them into the canonical string-keyed snapshot ("price_HH" for today,
// "price_HH_tomorrow" for tomorrow).
type GreenPlanet struct {
	url     string
	timeout time.Duration
	now     func() time.Time
}

func New(url string, timeout time.Duration) GreenPlanet {
	if url == "" {
		url = defaultURL
	}
	return GreenPlanet{url: url, timeout: timeout, now: time.Now}
}

func (g GreenPlanet) GetPriceSnapshot(ctx context.Context) (map[string]float64, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	today := g.now()
	tomorrow := today.AddDate(0, 0, 1)

	payload := rpcRequest{
		JsonRPC: "2.0",
		Method:  "getVerbrauchspreisUndWindsignal",
		Params: rpcParams{
			From:   today.Format("2006-01-02"),
			To:     tomorrow.Format("2006-01-02"),
			Source: "Portal",
		},
		ID: 564,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", refererURL)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return g.processResult(rpcResp.Result, today, tomorrow)
}

func (g GreenPlanet) processResult(result *rpcResult, today, tomorrow time.Time) (map[string]float64, error) {
	snapshot := map[string]float64{}

	if result == nil {
		// The portal sometimes answers without a result block, treat
		// it as an empty snapshot rather than a failure.
		return snapshot, nil
	}

	if result.ErrorCode != 0 {
		return nil, &APIError{Code: result.ErrorCode, Text: result.ErrorText}
	}

	if len(result.Stamps) == 0 || len(result.Stamps) != len(result.Values) {
		return snapshot, nil
	}

	todayStr := today.Format(stampLayout)
	tomorrowStr := tomorrow.Format(stampLayout)

	for i, stamp := range result.Stamps {
		datePart, hour, ok := parseStamp(stamp)
		if !ok {
			continue
		}

		var key string
		switch datePart {
		case todayStr:
			key = fmt.Sprintf("price_%02d", hour)
		case tomorrowStr:
			key = fmt.Sprintf("price_%02d_tomorrow", hour)
		default:
			continue // outside the two-day horizon
		}

		price, err := parsePrice(result.Values[i])
		if err != nil {
			continue
		}
		snapshot[key] = convert.RoundFloat64(price, 4)
	}

	return snapshot, nil
}

// parseStamp splits a vendor timestamp like "04.08.25, 09:00 Uhr" into its
// date part and hour.
func parseStamp(stamp string) (string, int, bool) {
	if !strings.HasSuffix(stamp, " Uhr") {
		return "", 0, false
	}
	datePart, timePart, found := strings.Cut(stamp, ", ")
	if !found {
		return "", 0, false
	}
	timePart = strings.TrimSuffix(timePart, " Uhr")
	hourStr, _, found := strings.Cut(timePart, ":")
	if !found {
		return "", 0, false
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 0 || hour > 23 {
		return "", 0, false
	}
	return datePart, hour, true
}

// parsePrice handles the vendor's decimal comma.
func parsePrice(value string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(value, ",", ".", 1), 64)
}
