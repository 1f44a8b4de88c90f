package sheets

import "riadsiena/models"

// RowsToMaps converts a raw sheet (header row first) into one map per data
// row. Short rows are padded with empty strings; cells beyond the header
// width are dropped.
func RowsToMaps(rows [][]string) []models.Row {
	if len(rows) < 2 {
		return []models.Row{}
	}
	header := rows[0]
	out := make([]models.Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		row := make(models.Row, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(raw) {
				row[col] = raw[i]
			} else {
				row[col] = ""
			}
		}
		out = append(out, row)
	}
	return out
}
