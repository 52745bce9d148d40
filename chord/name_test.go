package chord

import (
	"errors"
	"testing"

	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/stretchr/testify/assert"
)

func TestGetChordName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", GetChordName(model.Chord{Root: 60}))
	assert.Equal("C#m7", GetChordName(model.Chord{Root: 61, Quality: "m7"}))
	assert.Equal("A#maj9", GetChordName(model.Chord{Root: 46, Quality: "maj9"}))
	assert.Equal("B", GetChordName(model.Chord{Root: -1}))
}

func TestGetChordTooltip(t *testing.T) {
	cases := []struct {
		chord    model.Chord
		expected string
	}{
		{model.Chord{Root: 60, Voicing: model.VoicingClose}, ""},
		{model.Chord{Root: 60, Inversion: 1, Voicing: model.VoicingClose}, "First inversion (E in bass)"},
		{model.Chord{Root: 60, Quality: "maj7", Inversion: 2}, "Second inversion (G in bass)"},
		{model.Chord{Root: 60, Quality: "maj7", Inversion: 3}, "Third inversion (B in bass)"},
		{model.Chord{Root: 62, Quality: "m", Inversion: 6}, "Sixth inversion (D in bass)"},
		{model.Chord{Root: 60, Inversion: 7}, "7th inversion (E in bass)"},
	}

	for _, c := range cases {
		t.Run(c.expected, func(t *testing.T) {
			tooltip, err := GetChordTooltip(c.chord)
			assert.NoError(t, err)
			assert.Equal(t, c.expected, tooltip)
		})
	}
}

func TestGetChordTooltipErrors(t *testing.T) {
	_, err := GetChordTooltip(model.Chord{Root: 60, Quality: "x", Inversion: 1})
	assert.True(t, errors.Is(err, ErrInvalidQuality))

	_, err = GetChordTooltip(model.Chord{Root: 60, Inversion: -3})
	assert.True(t, errors.Is(err, ErrInvalidInversion))
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 7: "7th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd",
		101: "101st", 111: "111th", 112: "112th",
	}
	for n, expected := range cases {
		assert.Equal(t, expected, Ordinal(n))
	}
}
