package content

import (
	"context"
	"errors"
	"strings"

	"riadsiena/services/sheets"
)

// Sentinel errors surfaced as 404s by the handler.
var (
	ErrUnknownSheet = errors.New("unknown sheet")
	ErrPageNotFound = errors.New("page not found")
)

// sheetMap maps URL segments to the underlying sheet names. The set is
// fixed at startup; anything else is a 404.
var sheetMap = map[string]string{
	"amenities":             "Amenities",
	"amenities-hero":        "Amenities_Hero",
	"beyond-the-walls":      "Beyond_The_Walls",
	"beyond-the-walls-hero": "Beyond_The_Walls_Hero",
	"booking-conditions":    "Booking_Conditions",
	"content":               "Content",
	"desert-content":        "Desert_Content",
	"desert-gallery":        "Desert_Gallery",
	"desert-hero":           "Desert_Hero",
	"desert-tents":          "Desert_Tents",
	"directions":            "Directions",
	"directions-settings":   "Directions_Settings",
	"disclaimer":            "Disclaimer",
	"douaria-content":       "Douaria_Content",
	"douaria-gallery":       "Douaria_Gallery",
	"douaria-hero":          "Douaria_Hero",
	"douaria-rooms":         "Douaria_Rooms",
	"faq":                   "FAQ",
	"farm-content":          "Farm_Content",
	"farm-hero":             "Farm_Hero",
	"farm-produce":          "Farm_Produce",
	"home":                  "Home",
	"house-rules":           "House_Rules",
	"journeys":              "Journeys",
	"kasbah-content":        "Kasbah_Content",
	"kasbah-experience":     "Kasbah_Experience",
	"kasbah-gallery":        "Kasbah_Gallery",
	"kasbah-hero":           "Kasbah_Hero",
	"philosophy":            "Philosophy",
	"privacy":               "Privacy",
	"rooms":                 "Rooms",
	"rooms-gallery":         "Rooms_Gallery",
	"rooms-hero":            "Rooms_Hero",
	"settings":              "Settings",
	"terms":                 "Terms",
	"testimonials":          "Testimonials",
	"the-riad":              "The_Riad",
	// Nexus sheets live in a separate spreadsheet.
	"nexus-footer": "Footer",
	"nexus-legal":  "Legal_Pages",
}

// Service resolves a URL segment to transformed sheet content.
type Service interface {
	Get(ctx context.Context, segment, page string) (any, error)
}

// DefaultContentService is the production implementation backed by the
// Google Sheets client.
type DefaultContentService struct {
	Sheets             sheets.Client
	SpreadsheetID      string
	NexusSpreadsheetID string
}

// Get fetches and transforms the sheet behind a URL segment. The optional
// page argument selects a single item by slug on page-like sheets.
func (s *DefaultContentService) Get(ctx context.Context, segment, page string) (any, error) {
	sheetName, ok := sheetMap[segment]
	if !ok {
		return nil, ErrUnknownSheet
	}

	if strings.HasPrefix(segment, "nexus-") {
		return s.nexusSheet(ctx, segment, sheetName, page)
	}

	switch segment {
	case "settings":
		return s.settings(ctx)
	case "rooms":
		return s.rooms(ctx)
	case "the-riad":
		return s.theRiad(ctx)
	case "directions":
		return s.directions(ctx)
	default:
		return s.genericSheet(ctx, sheetName)
	}
}
