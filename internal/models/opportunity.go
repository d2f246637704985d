package models

import "strings"

// Kind is the closed category of a posting.
type Kind string

const (
	KindJob        Kind = "job"
	KindInternship Kind = "internship"
	KindEvent      Kind = "event"

	// KindAll is a filter value only; no record ever carries it.
	KindAll Kind = "all"
)

// ParseKind maps a filter input to a Kind, defaulting to KindAll.
func ParseKind(s string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindJob:
		return KindJob
	case KindInternship:
		return KindInternship
	case KindEvent:
		return KindEvent
	default:
		return KindAll
	}
}

// Opportunity is a normalized posting. Instances are immutable once built; the
// optional fields are empty only when the source supplied nothing, never as an
// empty-string placeholder for a present value.
type Opportunity struct {
	ID                  string `json:"id"`
	Kind                Kind   `json:"kind"`
	Title               string `json:"title"`
	Organization        string `json:"organization"`
	Description         string `json:"description"`
	ApplicationDeadline string `json:"application_deadline"`
	Location            string `json:"location"`
	ImageURL            string `json:"image_url"`
	ApplyURL            string `json:"apply_url"`
	RegistrationFee     string `json:"registration_fee,omitempty"`
	CompensationRange   string `json:"compensation_range,omitempty"`
	Role                string `json:"role,omitempty"`
	EventDate           string `json:"event_date,omitempty"`
}

var defaultImages = map[Kind]string{
	KindJob:        "https://images.unsplash.com/photo-1521737711867-e3b97375f902?w=400&h=200&fit=crop",
	KindInternship: "https://images.unsplash.com/photo-1552664730-d307ca884978?w=400&h=200&fit=crop",
	KindEvent:      "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=400&h=200&fit=crop",
}

// DefaultImage returns the stock image for a kind. Unknown kinds get the job image.
func DefaultImage(kind Kind) string {
	if url, ok := defaultImages[kind]; ok {
		return url
	}
	return defaultImages[KindJob]
}
