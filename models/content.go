package models

// Row is one tabular content row, keyed by the sheet's header columns.
// Rows are fetched fresh per request, transformed and discarded.
type Row map[string]string

// Room is a content row flattened together with the parsed feature list
// under the "features" key, so it marshals the way the site expects.
type Room map[string]any

// SectionedContent is the shape of section-discriminated sheets such as
// The_Riad: the ordered rows plus a Section -> row lookup (last row with a
// given section wins).
type SectionedContent struct {
	Sections map[string]Row `json:"sections"`
	Items    []Row          `json:"items"`
}

// Settings is the Settings sheet collapsed into a flat key/value map.
// Values stay verbatim strings; typed access is the caller's concern.
type Settings map[string]string
