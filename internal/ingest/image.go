package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/priyanshu/opportunity-board/internal/models"
)

// driveThumbnailTemplate serves a Drive file as a 400x200 thumbnail, the only
// Drive endpoint that renders reliably inside an <img> tag.
const driveThumbnailTemplate = "https://drive.google.com/thumbnail?id=%s&sz=w400-h200"

// driveIDPatterns cover the sharing-link shapes people paste from Drive.
// Tried in order; the first match wins.
var driveIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`),       // /d/fileId
	regexp.MustCompile(`id=([a-zA-Z0-9-_]+)`),       // ?id=fileId
	regexp.MustCompile(`/open\?id=([a-zA-Z0-9-_]+)`), // /open?id=fileId
	regexp.MustCompile(`/file/d/([a-zA-Z0-9-_]+)`),  // /file/d/fileId
}

// ExtractDriveFileID pulls the file identifier out of a Drive sharing link.
func ExtractDriveFileID(rawURL string) (string, bool) {
	for _, pattern := range driveIDPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// ResolveImageURL rewrites Drive sharing links to the thumbnail endpoint and
// substitutes the kind-keyed default when the cell is empty or the link is a
// Drive URL we cannot decode. The result is never empty.
func ResolveImageURL(raw string, kind models.Kind) string {
	image := strings.TrimSpace(raw)

	if strings.Contains(image, "drive.google.com") {
		if fileID, ok := ExtractDriveFileID(image); ok {
			return fmt.Sprintf(driveThumbnailTemplate, fileID)
		}
		image = ""
	}

	if image == "" {
		return models.DefaultImage(kind)
	}
	return image
}
