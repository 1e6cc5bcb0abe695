package types

import (
	"context"
)

// PriceProvider delivers a raw vendor snapshot: the string-keyed two-day
// price map with absent hours omitted (never zero-filled) and decimals
// already normalized.
type PriceProvider interface {
	GetPriceSnapshot(ctx context.Context) (map[string]float64, error)
}
