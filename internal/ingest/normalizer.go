package ingest

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/priyanshu/opportunity-board/internal/models"
)

// Column positions in a raw feed row. The sheet is positional; headers are
// display-only.
const (
	colTimestamp = iota
	colName
	colDescription
	colURL
	colImage
	colRegistrationFee
	colCategory
	colCompensation
	colRole
	colEventDate
)

const (
	maxTitleLen     = 50
	defaultLocation = "Remote/On-site"
)

// Normalizer converts raw feed rows into validated Opportunity records.
type Normalizer struct {
	// Warnf receives diagnostic notes (unknown categories and the like).
	// Rows are never rejected for them.
	Warnf func(format string, args ...any)
}

func NewNormalizer() *Normalizer {
	return &Normalizer{Warnf: log.Printf}
}

func (n *Normalizer) warnf(format string, args ...any) {
	if n.Warnf != nil {
		n.Warnf(format, args...)
	}
}

// cell returns the trimmed value at index i, tolerating short rows.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Normalize converts one raw row into a record. The second return is false
// when the row is skipped: a row without an organization or a description can
// never render as a card, so it produces nothing, silently.
func (n *Normalizer) Normalize(row []string, rowIndex int) (*models.Opportunity, bool) {
	organization := SanitizeText(cell(row, colName))
	description := SanitizeText(cell(row, colDescription))
	if organization == "" || description == "" {
		return nil, false
	}

	kind := n.resolveKind(cell(row, colCategory), rowIndex)
	role := SanitizeText(cell(row, colRole))

	applyURL := EnsureScheme(cell(row, colURL))
	if applyURL == "" {
		// A card must stay actionable even when the form left the link
		// blank; point it at a web search for the organization.
		applyURL = fallbackApplyURL(organization)
	}

	// A present role always wins the title, regardless of description
	// length. Kept intentionally; see resolveTitle.
	title := resolveTitle(role, description)

	opp := &models.Opportunity{
		ID:                  fmt.Sprintf("opp_%d_%s", rowIndex, uuid.NewString()),
		Kind:                kind,
		Title:               title,
		Organization:        organization,
		Description:         description,
		ApplicationDeadline: ResolveDeadline(cell(row, colEventDate), cell(row, colTimestamp)),
		Location:            defaultLocation,
		ImageURL:            ResolveImageURL(cell(row, colImage), kind),
		ApplyURL:            applyURL,
	}

	if fee := cell(row, colRegistrationFee); fee != "" && fee != "0" {
		opp.RegistrationFee = "$" + fee
	}
	if comp := cell(row, colCompensation); comp != "" {
		opp.CompensationRange = comp + " LPA"
	}
	if role != "" {
		opp.Role = role
	}
	if eventDate := cell(row, colEventDate); eventDate != "" {
		opp.EventDate = eventDate
	}

	return opp, true
}

// fallbackApplyURL substitutes a web search for the organization when a row
// carries no link at all.
func fallbackApplyURL(organization string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(organization)
}

// resolveTitle prefers the role whenever one is present; otherwise it uses
// the description, truncated past 50 characters.
func resolveTitle(role, description string) string {
	if role != "" {
		return role
	}
	return TruncateText(description, maxTitleLen)
}

// categoryVocabulary maps the case-normalized category cell to a kind. The
// misspellings are real values from the form feed.
var categoryVocabulary = map[string]models.Kind{
	"job":         models.KindJob,
	"jobs":        models.KindJob,
	"internship":  models.KindInternship,
	"internships": models.KindInternship,
	"intership":   models.KindInternship,
	"interships":  models.KindInternship,
	"event":       models.KindEvent,
	"events":      models.KindEvent,
}

func (n *Normalizer) resolveKind(category string, rowIndex int) models.Kind {
	normalized := strings.ToLower(strings.TrimSpace(category))
	if kind, ok := categoryVocabulary[normalized]; ok {
		return kind
	}
	n.warnf("unknown category %q for row %d, defaulting to job", category, rowIndex)
	return models.KindJob
}
