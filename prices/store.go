package prices

import (
	"maps"
	"sync"
	"time"

	"github.com/angas/greenplanet-go/hours"
)

// Store holds the most recent price snapshot. The refresh task swaps in a
// whole new Series, queries always see a consistent immutable snapshot.
type Store struct {
	mu        sync.RWMutex
	series    Series
	fetchedAt time.Time
}

func NewStore() *Store {
	return &Store{series: Series{}}
}

func (st *Store) Set(s Series) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.series = maps.Clone(s)
	st.fetchedAt = time.Now()
}

// Current returns the current snapshot. The returned Series must not be
// mutated by the caller.
func (st *Store) Current() Series {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.series
}

func (st *Store) FetchedAt() time.Time {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.fetchedAt
}

// Healthy reports whether the store has any price data for today.
func (st *Store) Healthy() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for slot := range st.series {
		if slot.Day == hours.Today {
			return true
		}
	}
	return false
}
