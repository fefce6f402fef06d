package awardparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TripDeskHQ/TripDesk/app/models"
)

func TestParseFullPaste(t *testing.T) {
	r := Parse("Virgin Atlantic - JFK–CDG, 50,000 miles + $220, transfer instant")

	require.NotNil(t, r.Program)
	assert.Equal(t, "Virgin Atlantic", *r.Program)

	require.NotNil(t, r.Route)
	assert.Equal(t, "JFK–CDG", *r.Route)

	require.NotNil(t, r.MilesRequired)
	assert.Equal(t, 50000, *r.MilesRequired)

	require.NotNil(t, r.FeesUSD)
	assert.Equal(t, 220.0, *r.FeesUSD)

	require.NotNil(t, r.TransferRequired)
	assert.True(t, *r.TransferRequired)

	require.NotNil(t, r.TransferTime)
	assert.Equal(t, models.TRANSFER_TIME_INSTANT, *r.TransferTime)
}

func TestParseMilesVariants(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"50,000 miles", 50000},
		{"50000 miles", 50000},
		{"85k points", 85000},
		{"12,500 pts", 12500},
		{"1 mile", 1},
		{"booked with 75k", 75000},
		{"110k one way", 110000},
	}
	for _, tc := range cases {
		r := Parse(tc.in)
		require.NotNil(t, r.MilesRequired, "input %q", tc.in)
		assert.Equal(t, tc.want, *r.MilesRequired, "input %q", tc.in)
	}
}

func TestParseMilesAbsent(t *testing.T) {
	r := Parse("no numbers here")
	assert.Nil(t, r.MilesRequired)

	// A bare 4+ digit number without a keyword is not confident enough.
	r = Parse("flight 4720 to somewhere")
	assert.Nil(t, r.MilesRequired)
}

func TestParseFees(t *testing.T) {
	r := Parse("taxes $5.60 surcharge")
	require.NotNil(t, r.FeesUSD)
	assert.Equal(t, 5.6, *r.FeesUSD)

	r = Parse("fees USD 340")
	require.NotNil(t, r.FeesUSD)
	assert.Equal(t, 340.0, *r.FeesUSD)

	r = Parse("no fee info")
	assert.Nil(t, r.FeesUSD)
}

func TestParseRouteSeparators(t *testing.T) {
	for _, in := range []string{"SFO-NRT", "SFO – NRT", "SFO—NRT", "SFO → NRT", "sfo->nrt"} {
		r := Parse(in)
		require.NotNil(t, r.Route, "input %q", in)
		assert.Equal(t, "SFO–NRT", *r.Route, "input %q", in)
	}

	r := Parse("route unknown until search")
	assert.Nil(t, r.Route)
}

func TestParseProgram(t *testing.T) {
	r := Parse("ANA Mileage Club - great availability in J")
	require.NotNil(t, r.Program)
	assert.Equal(t, "ANA Mileage Club", *r.Program)

	r = Parse("no separator in this text")
	assert.Nil(t, r.Program)
}

func TestParseTransferFields(t *testing.T) {
	r := Parse("requires transfer from Amex, 1-2 days")
	require.NotNil(t, r.TransferRequired)
	assert.True(t, *r.TransferRequired)
	require.NotNil(t, r.TransferTime)
	assert.Equal(t, models.TRANSFER_TIME_1_2_DAYS, *r.TransferTime)

	// "transferred" must not trip the standalone-word match.
	r = Parse("points transferred last year")
	assert.Nil(t, r.TransferRequired)

	r = Parse("transfer time unknown")
	require.NotNil(t, r.TransferTime)
	assert.Equal(t, models.TRANSFER_TIME_UNKNOWN, *r.TransferTime)

	// Absent entirely: caller keeps any previously entered value.
	r = Parse("60,000 miles nonstop")
	assert.Nil(t, r.TransferTime)
}

func TestParseNormalizesWhitespace(t *testing.T) {
	r := Parse("  Aeroplan   -   YYZ  –  LHR ,   70,000   miles \n $120 ")
	require.NotNil(t, r.Program)
	assert.Equal(t, "Aeroplan", *r.Program)
	require.NotNil(t, r.Route)
	assert.Equal(t, "YYZ–LHR", *r.Route)
	require.NotNil(t, r.MilesRequired)
	assert.Equal(t, 70000, *r.MilesRequired)
}

func TestParseNeverPanicsOnGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "$", "k", "---", "→→→", "\x00\x01"} {
		assert.NotPanics(t, func() { Parse(in) }, "input %q", in)
	}
}

func TestApplyToMergesNonDestructively(t *testing.T) {
	opt := models.AwardOption{
		Program:      "Manually Entered",
		TransferTime: models.TRANSFER_TIME_INSTANT,
	}

	Parse("55,000 miles $95").ApplyTo(&opt)

	assert.Equal(t, "Manually Entered", opt.Program, "unmatched fields must not be overwritten")
	assert.Equal(t, models.TRANSFER_TIME_INSTANT, opt.TransferTime)
	assert.Equal(t, 55000, opt.MilesRequired)
	assert.Equal(t, 95.0, opt.FeesUSD)
}
