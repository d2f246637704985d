package intake

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/priyanshu/opportunity-board/internal/ingest"
	"github.com/priyanshu/opportunity-board/internal/models"
)

// Form is a user-submitted posting. Validation tags mirror the posting form:
// role only matters for jobs, the event date only for events.
type Form struct {
	Title       string      `json:"title" validate:"required"`
	Kind        models.Kind `json:"kind" validate:"required,oneof=job internship event"`
	Description string      `json:"description" validate:"required"`
	Deadline    string      `json:"deadline" validate:"required"`
	Link        string      `json:"link" validate:"required"`
	Role        string      `json:"role" validate:"required_if=Kind job"`
	EventDate   string      `json:"event_date" validate:"required_if=Kind event"`
}

// Result is either Accepted or carries field-keyed error messages. No record
// is ever built from a rejected form.
type Result struct {
	Accepted    bool              `json:"accepted"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

var fieldMessages = map[string]string{
	"title":       "Title is required",
	"kind":        "A valid kind is required",
	"description": "Description is required",
	"deadline":    "Deadline is required",
	"link":        "Link is required",
	"role":        "Role is required for job postings",
	"event_date":  "Event date is required for events",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Key errors by the json field name the client sent, not the Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// trimmed returns a copy with every field whitespace-trimmed so that
// whitespace-only input fails the required checks.
func (f Form) trimmed() Form {
	f.Title = strings.TrimSpace(f.Title)
	f.Kind = models.Kind(strings.ToLower(strings.TrimSpace(string(f.Kind))))
	f.Description = strings.TrimSpace(f.Description)
	f.Deadline = strings.TrimSpace(f.Deadline)
	f.Link = strings.TrimSpace(f.Link)
	f.Role = strings.TrimSpace(f.Role)
	f.EventDate = strings.TrimSpace(f.EventDate)
	return f
}

// Validate checks a form and reports field-keyed errors.
func Validate(f Form) Result {
	err := validate.Struct(f.trimmed())
	if err == nil {
		return Result{Accepted: true}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Result{FieldErrors: map[string]string{"form": "Invalid submission"}}
	}

	fieldErrors := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		fieldErrors[fe.Field()] = msg
	}
	return Result{FieldErrors: fieldErrors}
}

// BuildOpportunity constructs the record for an accepted form. Unlike
// ingested rows the typed title is used directly when no role is given; the
// organization and location are fixed placeholders and the image is the
// kind-keyed default.
func BuildOpportunity(f Form) models.Opportunity {
	f = f.trimmed()

	title := ingest.SanitizeText(f.Role)
	if title == "" {
		title = ingest.SanitizeText(f.Title)
	}

	opp := models.Opportunity{
		ID:                  "new_" + uuid.NewString(),
		Kind:                f.Kind,
		Title:               title,
		Organization:        "New Company",
		Description:         ingest.SanitizeText(f.Description),
		ApplicationDeadline: f.Deadline,
		Location:            "Remote/On-site",
		ImageURL:            models.DefaultImage(f.Kind),
		ApplyURL:            ingest.EnsureScheme(f.Link),
	}
	if f.Role != "" {
		opp.Role = ingest.SanitizeText(f.Role)
	}
	if f.EventDate != "" {
		opp.EventDate = f.EventDate
	}
	return opp
}

// SourceRow renders an accepted form as a raw feed row for write-back, in the
// sheet's positional column order.
func SourceRow(f Form, now time.Time) []string {
	f = f.trimmed()
	return []string{
		now.Format("02/01/2006 15:04:05"),
		f.Title,
		f.Description,
		f.Link,
		"", // image
		"", // registration fee
		string(f.Kind),
		"", // compensation
		f.Role,
		f.EventDate,
	}
}
