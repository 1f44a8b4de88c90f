package content

import (
	"testing"

	"riadsiena/models"

	"github.com/stretchr/testify/assert"
)

func TestConvertDriveURL(t *testing.T) {
	assert.Equal(t,
		"https://drive.google.com/uc?export=view&id=1aB_c-2d",
		ConvertDriveURL("https://drive.google.com/file/d/1aB_c-2d/view?usp=sharing"))

	assert.Equal(t,
		"https://drive.google.com/uc?export=view&id=xyz9",
		ConvertDriveURL("https://drive.google.com/open?id=xyz9"))

	// Non-Drive URLs and junk pass through untouched.
	assert.Equal(t, "https://example.com/a.jpg", ConvertDriveURL("https://example.com/a.jpg"))
	assert.Equal(t, "not a url", ConvertDriveURL("not a url"))
	assert.Equal(t, "", ConvertDriveURL(""))
}

func TestProcessImageURLsOnlyTouchesKnownFields(t *testing.T) {
	row := models.Row{
		"Image_URL": "https://drive.google.com/file/d/abc/view",
		"heroImage": "https://drive.google.com/file/d/def/view",
		"Link":      "https://drive.google.com/file/d/ghi/view",
	}
	processImageURLs(row)
	assert.Equal(t, "https://drive.google.com/uc?export=view&id=abc", row["Image_URL"])
	assert.Equal(t, "https://drive.google.com/uc?export=view&id=def", row["heroImage"])
	assert.Equal(t, "https://drive.google.com/file/d/ghi/view", row["Link"])
}
