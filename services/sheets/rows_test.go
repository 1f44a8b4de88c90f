package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowsToMaps(t *testing.T) {
	rows := [][]string{
		{"Name", "Price_EUR", "Order"},
		{"Suite", "120", "2"},
		{"Double"},                      // short row gets padded
		{"Twin", "90", "1", "overflow"}, // extra cell is dropped
	}

	out := RowsToMaps(rows)
	require.Len(t, out, 3)
	assert.Equal(t, "Suite", out[0]["Name"])
	assert.Equal(t, "2", out[0]["Order"])
	assert.Equal(t, "", out[1]["Price_EUR"])
	assert.Equal(t, "90", out[2]["Price_EUR"])
	_, overflow := out[2]["overflow"]
	assert.False(t, overflow)
}

func TestRowsToMapsHeaderOnly(t *testing.T) {
	assert.Empty(t, RowsToMaps([][]string{{"Name"}}))
	assert.Empty(t, RowsToMaps(nil))
}
