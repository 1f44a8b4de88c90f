package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleNumberAcceptsMixedForms(t *testing.T) {
	var input BookingInput
	body := `{"nights": 3, "guests": "2", "total": 120.5, "totalEUR": null}`
	require.NoError(t, json.Unmarshal([]byte(body), &input))

	assert.Equal(t, "3", input.Nights.String())
	assert.Equal(t, "2", input.Guests.String())
	assert.Equal(t, "120.5", input.Total.String())
	assert.Equal(t, "", input.TotalEUR.String())
}
