// Package alert builds mail-compose intents for postings. Pure string
// formatting; no mail is sent from here.
package alert

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/priyanshu/opportunity-board/internal/models"
)

// ComposeMailto renders a mailto: URL whose subject and body describe the
// posting. The recipient is left blank for the user's mail client to fill.
func ComposeMailto(opp models.Opportunity) string {
	subject := fmt.Sprintf("Alert: %s at %s", opp.Title, opp.Organization)
	body := "Hi,\n\nI'm interested in this opportunity:\n\n" +
		fmt.Sprintf("Title: %s\n", opp.Title) +
		fmt.Sprintf("Company: %s\n", opp.Organization) +
		fmt.Sprintf("Type: %s\n", opp.Kind) +
		fmt.Sprintf("Description: %s\n", opp.Description) +
		fmt.Sprintf("Deadline: %s\n", opp.ApplicationDeadline) +
		fmt.Sprintf("Link: %s\n\n", opp.ApplyURL) +
		"Please keep me updated on this opportunity.\n\nBest regards"

	return "mailto:?subject=" + escapeComponent(subject) + "&body=" + escapeComponent(body)
}

// escapeComponent percent-encodes for a mailto query. Mail clients expect
// %20 for spaces, not the form-encoding plus sign.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
