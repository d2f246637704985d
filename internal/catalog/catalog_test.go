package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/priyanshu/opportunity-board/internal/ingest"
	"github.com/priyanshu/opportunity-board/internal/models"
	"github.com/priyanshu/opportunity-board/internal/source"
)

// failingSource simulates an unreachable remote feed.
type failingSource struct{}

func (failingSource) Fetch(context.Context) ([][]string, error) {
	return nil, errors.New("fetch: connection refused")
}

func quietNormalizer() *ingest.Normalizer {
	n := ingest.NewNormalizer()
	n.Warnf = func(string, ...any) {}
	return n
}

func TestRefreshFallsBackOnFetchFailure(t *testing.T) {
	cat := New(failingSource{}, quietNormalizer(), time.Second)

	if cat.Loaded() {
		t.Fatal("catalog must report unloaded before the first refresh")
	}

	snap := cat.Refresh(context.Background())

	if !snap.FromFallback {
		t.Error("snapshot should be marked as fallback")
	}
	if len(snap.Records) != 9 {
		t.Fatalf("expected 9 fallback records, got %d", len(snap.Records))
	}
	if !cat.Loaded() {
		t.Error("catalog must report loaded after a refresh, even a fallback one")
	}

	counts := map[models.Kind]int{}
	for _, rec := range snap.Records {
		counts[rec.Kind]++
	}
	for _, kind := range []models.Kind{models.KindJob, models.KindInternship, models.KindEvent} {
		if counts[kind] != 3 {
			t.Errorf("expected 3 %s records, got %d", kind, counts[kind])
		}
	}

	// Source order survives normalization.
	wantOrgs := []string{
		"Google", "Microsoft", "Tech Conference 2025", "Amazon", "Meta",
		"Startup Weekend", "Netflix", "Apple", "Hackathon 2025",
	}
	for i, want := range wantOrgs {
		if snap.Records[i].Organization != want {
			t.Errorf("record %d: expected organization %q, got %q", i, want, snap.Records[i].Organization)
		}
	}
}

func TestRefreshNormalizesStaticSource(t *testing.T) {
	cat := New(source.Static{}, quietNormalizer(), time.Second)
	snap := cat.Refresh(context.Background())

	if snap.FromFallback {
		t.Error("a successful fetch must not be marked as fallback")
	}
	if len(snap.Records) != 9 {
		t.Fatalf("expected 9 records, got %d", len(snap.Records))
	}

	first := snap.Records[0]
	if first.Organization != "Google" || first.Kind != models.KindJob {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.Title != "Software Engineer" {
		t.Errorf("role should win the title, got %q", first.Title)
	}
	if first.RegistrationFee != "" {
		t.Errorf("zero fee must stay absent, got %q", first.RegistrationFee)
	}
	if first.CompensationRange != "15-25 LPA" {
		t.Errorf("expected compensation 15-25 LPA, got %q", first.CompensationRange)
	}
	if first.ApplicationDeadline != "September 30, 2025" {
		t.Errorf("expected explicit-date deadline, got %q", first.ApplicationDeadline)
	}

	event := snap.Records[2]
	if event.Kind != models.KindEvent || event.RegistrationFee != "$50" {
		t.Errorf("unexpected event record: %+v", event)
	}
}

func TestGet(t *testing.T) {
	cat := New(source.Static{}, quietNormalizer(), time.Second)
	snap := cat.Refresh(context.Background())

	want := snap.Records[4]
	got, ok := cat.Get(want.ID)
	if !ok || got.ID != want.ID {
		t.Errorf("Get(%q) = (%+v, %v)", want.ID, got, ok)
	}

	if _, ok := cat.Get("opp_404_missing"); ok {
		t.Error("Get must miss on unknown ids")
	}
}

func TestPrepend(t *testing.T) {
	cat := New(source.Static{}, quietNormalizer(), time.Second)
	cat.Refresh(context.Background())

	submitted := models.Opportunity{
		ID:           "new_abc",
		Kind:         models.KindJob,
		Title:        "Platform Engineer",
		Organization: "New Company",
		Description:  "Local submission",
	}
	cat.Prepend(submitted)

	snap := cat.Snapshot()
	if len(snap.Records) != 10 {
		t.Fatalf("expected 10 records after prepend, got %d", len(snap.Records))
	}
	if snap.Records[0].ID != "new_abc" {
		t.Errorf("submitted record should lead the order, got %q first", snap.Records[0].ID)
	}
	if snap.Records[1].Organization != "Google" {
		t.Errorf("existing order disturbed: %q", snap.Records[1].Organization)
	}

	if got, ok := cat.Get("new_abc"); !ok || got.Title != "Platform Engineer" {
		t.Errorf("prepended record not retrievable: (%+v, %v)", got, ok)
	}
}

func TestPrependBeforeFirstRefresh(t *testing.T) {
	cat := New(failingSource{}, quietNormalizer(), time.Second)
	cat.Prepend(models.Opportunity{ID: "new_early"})

	snap := cat.Snapshot()
	if len(snap.Records) != 1 || snap.Records[0].ID != "new_early" {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}
