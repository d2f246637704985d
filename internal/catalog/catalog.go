package catalog

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/priyanshu/opportunity-board/internal/ingest"
	"github.com/priyanshu/opportunity-board/internal/models"
	"github.com/priyanshu/opportunity-board/internal/source"
)

// Snapshot is one complete catalog state. Readers always see a whole snapshot:
// refreshes build a new one and swap it in atomically, never mutate in place.
type Snapshot struct {
	Records      []models.Opportunity
	RefreshedAt  time.Time
	FromFallback bool
}

// Catalog holds the normalized records and orchestrates refreshes against the
// raw tabular source.
type Catalog struct {
	src     source.Tabular
	norm    *ingest.Normalizer
	timeout time.Duration

	// refreshMu serializes refreshes; readers never take it.
	refreshMu sync.Mutex
	snap      atomic.Pointer[Snapshot]
}

func New(src source.Tabular, norm *ingest.Normalizer, fetchTimeout time.Duration) *Catalog {
	if norm == nil {
		norm = ingest.NewNormalizer()
	}
	if fetchTimeout <= 0 {
		fetchTimeout = 15 * time.Second
	}
	return &Catalog{src: src, norm: norm, timeout: fetchTimeout}
}

// Loaded reports whether at least one refresh has completed. An empty loaded
// catalog is a real "no results" state, distinct from "still loading".
func (c *Catalog) Loaded() bool {
	return c.snap.Load() != nil
}

// Snapshot returns the current state, or an empty unloaded snapshot before
// the first refresh completes.
func (c *Catalog) Snapshot() Snapshot {
	if s := c.snap.Load(); s != nil {
		return *s
	}
	return Snapshot{}
}

// Get finds a record by id in the current snapshot.
func (c *Catalog) Get(id string) (models.Opportunity, bool) {
	for _, rec := range c.Snapshot().Records {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.Opportunity{}, false
}

// Refresh pulls the full table, normalizes every data row in source order and
// replaces the catalog wholesale. A failed fetch falls back to the built-in
// dataset: for a read-mostly display surface stale-but-present beats an error
// banner. The returned snapshot is the one swapped in.
func (c *Catalog) Refresh(ctx context.Context) Snapshot {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	fromFallback := false
	table, err := c.src.Fetch(ctx)
	if err != nil || len(table) == 0 {
		if err != nil {
			log.Printf("source fetch failed, using fallback dataset: %v", err)
		}
		table = source.FallbackTable()
		fromFallback = true
	}

	records := make([]models.Opportunity, 0, len(table))
	for i := 1; i < len(table); i++ { // row 0 is the header
		if rec, ok := c.norm.Normalize(table[i], i); ok {
			records = append(records, *rec)
		}
	}

	snap := &Snapshot{
		Records:      records,
		RefreshedAt:  time.Now(),
		FromFallback: fromFallback,
	}
	c.snap.Store(snap)

	log.Printf("catalog refreshed: %d records (%d rows, fallback=%v)", len(records), len(table)-1, fromFallback)
	return *snap
}

// Prepend puts a locally submitted record at the head of the visible order.
// Copy-on-write: the old snapshot stays intact for in-flight readers. The
// record survives only until the next refresh unless it was also written back
// to the source.
func (c *Catalog) Prepend(rec models.Opportunity) {
	for {
		old := c.snap.Load()
		var base Snapshot
		if old != nil {
			base = *old
		}
		records := make([]models.Opportunity, 0, len(base.Records)+1)
		records = append(records, rec)
		records = append(records, base.Records...)

		next := &Snapshot{
			Records:      records,
			RefreshedAt:  base.RefreshedAt,
			FromFallback: base.FromFallback,
		}
		if c.snap.CompareAndSwap(old, next) {
			return
		}
	}
}
