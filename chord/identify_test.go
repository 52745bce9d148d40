package chord

import (
	"testing"

	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/stretchr/testify/assert"
)

func TestIdentifyRootPosition(t *testing.T) {
	c, ok := Identify([]int{67, 60, 64})
	assert.True(t, ok)
	assert.Equal(t, model.Chord{Root: 60, Quality: "", Voicing: model.VoicingClose}, c)
}

func TestIdentifyInversion(t *testing.T) {
	assert := assert.New(t)
	c, ok := Identify([]int{64, 67, 72})
	assert.True(ok)
	assert.Equal(model.Chord{Root: 60, Quality: "", Inversion: 1, Voicing: model.VoicingClose}, c)

	notes, err := GetChordNotes(c)
	assert.NoError(err)
	assert.Equal(model.Notes{64, 67, 72}, notes)
}

func TestIdentifyPrefersBassAsRoot(t *testing.T) {
	// A C E G is both Am7 and C6/A
	c, ok := Identify([]int{57, 60, 64, 67})
	assert.True(t, ok)
	assert.Equal(t, "Am7", GetChordName(c))
	assert.Equal(t, 0, c.Inversion)
}

func TestIdentifyIgnoresDoubling(t *testing.T) {
	c, ok := Identify([]int{48, 60, 64, 67, 72})
	assert.True(t, ok)
	assert.Equal(t, "C", GetChordName(c))
	assert.Equal(t, 48, c.Root)
}

func TestIdentifyBassInversion(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		name      string
		held      []int
		chord     string
		root      int
		inversion int
		tooltip   string
		exact     bool
	}{
		{"seventh in bass", []int{65, 67, 71, 74}, "G7", 55, 3, "Third inversion (F in bass)", true},
		{"ninth in bass", []int{62, 64, 67, 72}, "Cadd9", 60, 3, "Third inversion (D in bass)", false},
		{"thirteenth in bass", []int{57, 60, 64, 67, 70, 74}, "C13", 48, 6, "Sixth inversion (A in bass)", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Identify(tt.held)
			assert.True(ok)
			assert.Equal(tt.chord, GetChordName(c))
			assert.Equal(tt.root, c.Root)
			assert.Equal(tt.inversion, c.Inversion)

			tooltip, err := GetChordTooltip(c)
			assert.NoError(err)
			assert.Equal(tt.tooltip, tooltip)

			notes, err := GetChordNotes(c)
			assert.NoError(err)
			assert.Equal(PitchClass(tt.held[0]), PitchClass(notes[0]))
			assert.Equal(pitchClassSet(tt.held), pitchClassSet(notes))
			if tt.exact {
				assert.Equal(model.Notes(tt.held), notes)
			}
		})
	}
}

func TestIdentifyNoMatch(t *testing.T) {
	_, ok := Identify([]int{60})
	assert.False(t, ok)

	_, ok = Identify([]int{60, 61, 62})
	assert.False(t, ok)
}

func TestCreateChordKey(t *testing.T) {
	notes := model.Notes{67, 60, 64}
	assert.Equal(t, "60-64-67", CreateChordKey(notes))
	assert.Equal(t, model.Notes{67, 60, 64}, notes)
	assert.Equal(t, "", CreateChordKey(nil))
}
