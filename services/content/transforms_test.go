package content

import (
	"context"
	"errors"
	"testing"

	"riadsiena/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSheets struct {
	data map[string][][]string
	err  error
}

func (f *fakeSheets) FetchRows(ctx context.Context, spreadsheetID, sheetName string) ([][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data[sheetName], nil
}

func (f *fakeSheets) AppendRow(ctx context.Context, spreadsheetID, sheetName string, values []any) error {
	return nil
}

func newTestService(data map[string][][]string) *DefaultContentService {
	return &DefaultContentService{
		Sheets:             &fakeSheets{data: data},
		SpreadsheetID:      "main",
		NexusSpreadsheetID: "nexus",
	}
}

func TestGetUnknownSheet(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.Get(context.Background(), "no-such-sheet", "")
	assert.ErrorIs(t, err, ErrUnknownSheet)
}

func TestGetPropagatesFetchFailure(t *testing.T) {
	svc := &DefaultContentService{Sheets: &fakeSheets{err: errors.New("boom")}, SpreadsheetID: "main"}
	_, err := svc.Get(context.Background(), "faq", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownSheet)
}

func TestGenericSheetSortsByOrder(t *testing.T) {
	svc := newTestService(map[string][][]string{
		"FAQ": {
			{"Question", "Order"},
			{"C", "3"},
			{"A", "junk"}, // non-numeric Order sorts as 0
			{"B", "1"},
			{"D", ""}, // missing Order sorts as 0, ties keep row order
		},
	})

	out, err := svc.Get(context.Background(), "faq", "")
	require.NoError(t, err)
	rows := out.([]models.Row)
	require.Len(t, rows, 4)
	assert.Equal(t, "A", rows[0]["Question"])
	assert.Equal(t, "D", rows[1]["Question"])
	assert.Equal(t, "B", rows[2]["Question"])
	assert.Equal(t, "C", rows[3]["Question"])
}

func TestGenericSheetWithoutOrderKeepsRowOrder(t *testing.T) {
	svc := newTestService(map[string][][]string{
		"Testimonials": {
			{"Author"},
			{"Z"},
			{"A"},
		},
	})
	out, err := svc.Get(context.Background(), "testimonials", "")
	require.NoError(t, err)
	rows := out.([]models.Row)
	assert.Equal(t, "Z", rows[0]["Author"])
	assert.Equal(t, "A", rows[1]["Author"])
}

func TestHeroSheetReturnsSingleton(t *testing.T) {
	svc := newTestService(map[string][][]string{
		"Rooms_Hero": {
			{"Title", "Image_URL"},
			{"Welcome", "https://drive.google.com/file/d/abc/view"},
			{"Second", ""},
		},
	})
	out, err := svc.Get(context.Background(), "rooms-hero", "")
	require.NoError(t, err)
	row := out.(models.Row)
	assert.Equal(t, "Welcome", row["Title"])
	assert.Equal(t, "https://drive.google.com/uc?export=view&id=abc", row["Image_URL"])
}

func TestHeroSheetWithZeroRowsIsEmptyObject(t *testing.T) {
	svc := newTestService(map[string][][]string{
		"Desert_Hero": {{"Title", "Subtitle"}},
	})
	out, err := svc.Get(context.Background(), "desert-hero", "")
	require.NoError(t, err)
	row, ok := out.(models.Row)
	require.True(t, ok, "hero must be an object, not a list")
	assert.Empty(t, row)
}

func TestSettingsCollapseToFlatMap(t *testing.T) {
	svc := newTestService(map[string][][]string{
		"Settings": {
			{"Setting", "Value"},
			{"Currency_Rate_MAD", "10.85"},
			{"Site_Name", "Riad di Siena"},
			{"Empty_Value"},
		},
	})
	out, err := svc.Get(context.Background(), "settings", "")
	require.NoError(t, err)
	settings := out.(models.Settings)
	assert.Equal(t, "10.85", settings["Currency_Rate_MAD"])
	assert.Equal(t, "Riad di Siena", settings["Site_Name"])
	assert.Equal(t, "", settings["Empty_Value"])
}

func TestRoomsSplitFeatures(t *testing.T) {
	svc := newTestService(map[string][][]string{
		"Rooms": {
			{"Name", "Features", "Image_URL"},
			{"Suite", "Wi-Fi, En-suite bathroom ,Breakfast", "https://drive.google.com/file/d/r1/view"},
			{"Twin", "", ""},
		},
	})
	out, err := svc.Get(context.Background(), "rooms", "")
	require.NoError(t, err)
	rooms := out.([]models.Room)
	require.Len(t, rooms, 2)
	assert.Equal(t, []string{"Wi-Fi", "En-suite bathroom", "Breakfast"}, rooms[0]["features"])
	assert.Equal(t, "https://drive.google.com/uc?export=view&id=r1", rooms[0]["Image_URL"])
	assert.Equal(t, []string{}, rooms[1]["features"])
}

func TestTheRiadSectionsLastWins(t *testing.T) {
	svc := newTestService(map[string][][]string{
		"The_Riad": {
			{"Section", "Title"},
			{"history", "Old title"},
			{"garden", "The garden"},
			{"history", "New title"},
			{"", "Unsectioned"},
		},
	})
	out, err := svc.Get(context.Background(), "the-riad", "")
	require.NoError(t, err)
	sc := out.(models.SectionedContent)
	require.Len(t, sc.Items, 4)
	require.Len(t, sc.Sections, 2)
	assert.Equal(t, "New title", sc.Sections["history"]["Title"])
	assert.Equal(t, "The garden", sc.Sections["garden"]["Title"])
}

func TestDirectionsGroupedAndSorted(t *testing.T) {
	svc := newTestService(map[string][][]string{
		"Directions": {
			{"Building", "Step", "Order"},
			{"riad", "Turn left", "2"},
			{"", "Arrive", "1"}, // empty building goes to "main"
			{"riad", "Start at the square", "1"},
		},
	})
	out, err := svc.Get(context.Background(), "directions", "")
	require.NoError(t, err)
	grouped := out.(map[string][]models.Row)
	require.Len(t, grouped, 2)
	require.Len(t, grouped["riad"], 2)
	assert.Equal(t, "Start at the square", grouped["riad"][0]["Step"])
	assert.Equal(t, "Turn left", grouped["riad"][1]["Step"])
	assert.Equal(t, "Arrive", grouped["main"][0]["Step"])
}

func TestNexusLegalSlugLookup(t *testing.T) {
	svc := newTestService(map[string][][]string{
		"Legal_Pages": {
			{"slug", "Title"},
			{"imprint", "Imprint"},
			{"privacy", "Privacy Policy"},
		},
	})

	out, err := svc.Get(context.Background(), "nexus-legal", "privacy")
	require.NoError(t, err)
	assert.Equal(t, "Privacy Policy", out.(models.Row)["Title"])

	_, err = svc.Get(context.Background(), "nexus-legal", "missing")
	assert.ErrorIs(t, err, ErrPageNotFound)

	out, err = svc.Get(context.Background(), "nexus-legal", "")
	require.NoError(t, err)
	assert.Len(t, out.([]models.Row), 2)
}

func TestNexusFooter(t *testing.T) {
	svc := newTestService(map[string][][]string{
		"Footer": {
			{"Key", "Value"},
			{"contact", "hello@riad.example"},
		},
	})
	out, err := svc.Get(context.Background(), "nexus-footer", "")
	require.NoError(t, err)
	resp := out.(map[string]any)
	assert.Equal(t, true, resp["success"])

	// Header-only sheet reports failure rather than erroring.
	svc = newTestService(map[string][][]string{"Footer": {{"Key", "Value"}}})
	out, err = svc.Get(context.Background(), "nexus-footer", "")
	require.NoError(t, err)
	assert.Equal(t, false, out.(map[string]any)["success"])
}
