package content

import (
	"regexp"

	"riadsiena/models"
)

// Fields that contain image URLs and need conversion to direct-access form.
var imageFields = []string{"Image_URL", "heroImage", "image_url", "image"}

var (
	driveFileRe = regexp.MustCompile(`drive\.google\.com/file/d/([a-zA-Z0-9_-]+)`)
	driveIDRe   = regexp.MustCompile(`drive\.google\.com/[^\s]*[?&]id=([a-zA-Z0-9_-]+)`)
)

// ConvertDriveURL rewrites a Google Drive share link into a directly
// fetchable URL. Unrecognized values pass through unchanged.
func ConvertDriveURL(raw string) string {
	if raw == "" {
		return ""
	}
	if m := driveFileRe.FindStringSubmatch(raw); m != nil {
		return "https://drive.google.com/uc?export=view&id=" + m[1]
	}
	if m := driveIDRe.FindStringSubmatch(raw); m != nil {
		return "https://drive.google.com/uc?export=view&id=" + m[1]
	}
	return raw
}

// processImageURLs rewrites every known image field of a row in place.
func processImageURLs(row models.Row) models.Row {
	for _, field := range imageFields {
		if v, ok := row[field]; ok && v != "" {
			row[field] = ConvertDriveURL(v)
		}
	}
	return row
}
