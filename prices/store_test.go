package prices

import (
	"testing"

	"github.com/angas/greenplanet-go/hours"
)

func TestStoreSetAndCurrent(t *testing.T) {
	store := NewStore()
	if store.Healthy() {
		t.Error("expected a fresh store to be unhealthy")
	}

	s := Series{
		{Day: hours.Today, Hour: 6}: 0.22,
	}
	store.Set(s)

	if !store.Healthy() {
		t.Error("expected store with today's data to be healthy")
	}
	if store.FetchedAt().IsZero() {
		t.Error("expected fetch time to be set")
	}
	if price, ok := store.Current().At(hours.Slot{Day: hours.Today, Hour: 6}); !ok || price != 0.22 {
		t.Errorf("got (%f, %v), wanted (0.22, true)", price, ok)
	}
}

func TestStoreSnapshotIsDetached(t *testing.T) {
	store := NewStore()
	s := Series{
		{Day: hours.Today, Hour: 6}: 0.22,
	}
	store.Set(s)

	// Mutating the source map after Set must not leak into the snapshot.
	s[hours.Slot{Day: hours.Today, Hour: 6}] = 9.99
	s[hours.Slot{Day: hours.Today, Hour: 7}] = 1.00

	snapshot := store.Current()
	if price, _ := snapshot.At(hours.Slot{Day: hours.Today, Hour: 6}); price != 0.22 {
		t.Errorf("snapshot changed after Set, got %f", price)
	}
	if _, ok := snapshot.At(hours.Slot{Day: hours.Today, Hour: 7}); ok {
		t.Error("snapshot grew after Set")
	}
}

func TestStoreHealthyNeedsToday(t *testing.T) {
	store := NewStore()
	store.Set(Series{
		{Day: hours.Tomorrow, Hour: 0}: 0.14,
	})
	if store.Healthy() {
		t.Error("expected store with only tomorrow's data to be unhealthy")
	}
}
