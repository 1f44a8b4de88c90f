package content

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"riadsiena/models"
	"riadsiena/services/sheets"
)

// orderValue parses a row's Order column; non-numeric or missing is 0.
func orderValue(row models.Row) int {
	n, err := strconv.Atoi(strings.TrimSpace(row["Order"]))
	if err != nil {
		return 0
	}
	return n
}

// sortByOrder sorts rows ascending by Order, ties keep original order.
func sortByOrder(rows []models.Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return orderValue(rows[i]) < orderValue(rows[j])
	})
}

// genericSheet fetches a sheet, rewrites image URLs, sorts by Order when
// the column is present, and collapses "hero" sheets to their first row.
func (s *DefaultContentService) genericSheet(ctx context.Context, sheetName string) (any, error) {
	raw, err := s.Sheets.FetchRows(ctx, s.SpreadsheetID, sheetName)
	if err != nil {
		return nil, err
	}
	rows := sheets.RowsToMaps(raw)
	for i := range rows {
		rows[i] = processImageURLs(rows[i])
	}

	if len(rows) > 0 {
		if _, ok := rows[0]["Order"]; ok {
			sortByOrder(rows)
		}
	}

	// Hero sheets are singletons: first row, or an empty object.
	if strings.Contains(strings.ToLower(sheetName), "hero") {
		if len(rows) == 0 {
			return models.Row{}, nil
		}
		return rows[0], nil
	}

	return rows, nil
}

// settings collapses the key/value Settings sheet into a flat map. Values
// are returned verbatim; typed parsing belongs to the caller.
func (s *DefaultContentService) settings(ctx context.Context) (any, error) {
	raw, err := s.Sheets.FetchRows(ctx, s.SpreadsheetID, "Settings")
	if err != nil {
		return nil, err
	}
	settings := models.Settings{}
	if len(raw) < 2 {
		return settings, nil
	}
	for _, row := range raw[1:] {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		value := ""
		if len(row) > 1 {
			value = row[1]
		}
		settings[row[0]] = value
	}
	return settings, nil
}

// rooms is the generic transform plus a comma-split Features list per row.
func (s *DefaultContentService) rooms(ctx context.Context) (any, error) {
	raw, err := s.Sheets.FetchRows(ctx, s.SpreadsheetID, "Rooms")
	if err != nil {
		return nil, err
	}
	rows := sheets.RowsToMaps(raw)

	out := make([]models.Room, 0, len(rows))
	for _, row := range rows {
		room := make(models.Room, len(row)+1)
		for k, v := range row {
			room[k] = v
		}
		room["Image_URL"] = ConvertDriveURL(row["Image_URL"])
		room["features"] = splitFeatures(row["Features"])
		out = append(out, room)
	}
	return out, nil
}

// splitFeatures turns a comma-separated Features cell into trimmed parts.
func splitFeatures(features string) []string {
	if features == "" {
		return []string{}
	}
	parts := strings.Split(features, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// theRiad builds both the ordered row list and a Section -> row lookup;
// the last row with a given section wins.
func (s *DefaultContentService) theRiad(ctx context.Context) (any, error) {
	raw, err := s.Sheets.FetchRows(ctx, s.SpreadsheetID, "The_Riad")
	if err != nil {
		return nil, err
	}
	rows := sheets.RowsToMaps(raw)
	for i := range rows {
		rows[i]["Image_URL"] = ConvertDriveURL(rows[i]["Image_URL"])
	}

	sections := make(map[string]models.Row)
	for _, row := range rows {
		if row["Section"] != "" {
			sections[row["Section"]] = row
		}
	}
	return models.SectionedContent{Sections: sections, Items: rows}, nil
}

// directions partitions rows by Building (default "main"), rewrites each
// row's image URL and sorts every partition by Order.
func (s *DefaultContentService) directions(ctx context.Context) (any, error) {
	raw, err := s.Sheets.FetchRows(ctx, s.SpreadsheetID, "Directions")
	if err != nil {
		return nil, err
	}
	rows := sheets.RowsToMaps(raw)

	byBuilding := make(map[string][]models.Row)
	for _, row := range rows {
		building := row["Building"]
		if building == "" {
			building = "main"
		}
		row["Image_URL"] = ConvertDriveURL(row["Image_URL"])
		byBuilding[building] = append(byBuilding[building], row)
	}
	for building := range byBuilding {
		sortByOrder(byBuilding[building])
	}
	return byBuilding, nil
}

// nexusSheet serves the shared Nexus spreadsheet: footer config and legal
// pages with an optional slug lookup.
func (s *DefaultContentService) nexusSheet(ctx context.Context, segment, sheetName, page string) (any, error) {
	raw, err := s.Sheets.FetchRows(ctx, s.NexusSpreadsheetID, sheetName)
	if err != nil {
		return nil, err
	}

	switch segment {
	case "nexus-footer":
		if len(raw) < 2 {
			return map[string]any{"success": false}, nil
		}
		return map[string]any{"success": true, "data": sheets.RowsToMaps(raw)}, nil

	case "nexus-legal":
		pages := sheets.RowsToMaps(raw)
		if page == "" {
			return pages, nil
		}
		for _, p := range pages {
			if p["slug"] == page || p["Slug"] == page {
				return p, nil
			}
		}
		return nil, ErrPageNotFound
	}
	return nil, ErrUnknownSheet
}
