package intake

import (
	"strings"
	"testing"
	"time"

	"github.com/priyanshu/opportunity-board/internal/models"
)

func validForm(kind models.Kind) Form {
	f := Form{
		Title:       "Platform Engineer",
		Kind:        kind,
		Description: "Build and run the platform",
		Deadline:    "September 30, 2025",
		Link:        "https://example.com/apply",
	}
	switch kind {
	case models.KindJob:
		f.Role = "Platform Engineer"
	case models.KindEvent:
		f.EventDate = "2025-12-01"
	}
	return f
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Form)
		wantOK     bool
		wantFields []string
	}{
		{"valid job", func(f *Form) {}, true, nil},
		{
			"job without role",
			func(f *Form) { f.Role = "" },
			false, []string{"role"},
		},
		{
			"job with whitespace role",
			func(f *Form) { f.Role = "   " },
			false, []string{"role"},
		},
		{
			"missing title",
			func(f *Form) { f.Title = "" },
			false, []string{"title"},
		},
		{
			"missing link and description",
			func(f *Form) { f.Link = ""; f.Description = "" },
			false, []string{"link", "description"},
		},
		{
			"unknown kind",
			func(f *Form) { f.Kind = "gig" },
			false, []string{"kind"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm(models.KindJob)
			tt.mutate(&f)
			res := Validate(f)

			if res.Accepted != tt.wantOK {
				t.Fatalf("Accepted = %v, want %v (errors: %v)", res.Accepted, tt.wantOK, res.FieldErrors)
			}
			for _, field := range tt.wantFields {
				if _, ok := res.FieldErrors[field]; !ok {
					t.Errorf("expected an error for %q, got %v", field, res.FieldErrors)
				}
			}
			if tt.wantOK && len(res.FieldErrors) != 0 {
				t.Errorf("accepted result must carry no errors, got %v", res.FieldErrors)
			}
		})
	}
}

func TestRoleOnlyRequiredForJobs(t *testing.T) {
	for _, kind := range []models.Kind{models.KindInternship, models.KindEvent} {
		f := validForm(kind)
		f.Role = ""
		if res := Validate(f); !res.Accepted {
			t.Errorf("kind %s without role should be accepted, got %v", kind, res.FieldErrors)
		}
	}
}

func TestEventDateOnlyRequiredForEvents(t *testing.T) {
	f := validForm(models.KindEvent)
	f.EventDate = ""
	res := Validate(f)
	if res.Accepted {
		t.Fatal("event without date should be rejected")
	}
	if res.FieldErrors["event_date"] != "Event date is required for events" {
		t.Errorf("unexpected message: %v", res.FieldErrors)
	}

	f = validForm(models.KindJob)
	f.EventDate = ""
	if res := Validate(f); !res.Accepted {
		t.Errorf("job without event date should be accepted, got %v", res.FieldErrors)
	}
}

func TestKindIsCaseInsensitive(t *testing.T) {
	f := validForm(models.KindJob)
	f.Kind = "  Job "
	if res := Validate(f); !res.Accepted {
		t.Errorf("mixed-case kind should validate, got %v", res.FieldErrors)
	}
}

func TestBuildOpportunity(t *testing.T) {
	f := validForm(models.KindJob)
	opp := BuildOpportunity(f)

	if !strings.HasPrefix(opp.ID, "new_") {
		t.Errorf("submitted ids must carry the new_ prefix, got %q", opp.ID)
	}
	if opp.Organization != "New Company" || opp.Location != "Remote/On-site" {
		t.Errorf("placeholder fields wrong: %+v", opp)
	}
	if opp.ImageURL != models.DefaultImage(models.KindJob) {
		t.Errorf("expected kind default image, got %q", opp.ImageURL)
	}
	if opp.Title != "Platform Engineer" {
		t.Errorf("unexpected title %q", opp.Title)
	}

	f = validForm(models.KindInternship)
	f.Link = "example.com/apply"
	opp = BuildOpportunity(f)
	if opp.ApplyURL != "https://example.com/apply" {
		t.Errorf("link must gain a scheme, got %q", opp.ApplyURL)
	}
	if opp.Title != "Platform Engineer" {
		t.Errorf("typed title should be used when no role is given, got %q", opp.Title)
	}

	other := BuildOpportunity(f)
	if other.ID == opp.ID {
		t.Error("ids must be unique per submission")
	}
}

func TestSourceRow(t *testing.T) {
	f := validForm(models.KindEvent)
	now := time.Date(2025, 8, 30, 17, 1, 30, 0, time.UTC)

	row := SourceRow(f, now)
	if len(row) != 10 {
		t.Fatalf("expected 10 columns, got %d", len(row))
	}
	want := []string{
		"30/08/2025 17:01:30", "Platform Engineer", "Build and run the platform",
		"https://example.com/apply", "", "", "event", "", "", "2025-12-01",
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("column %d: got %q, want %q", i, row[i], want[i])
		}
	}
}
