package chord

import (
	"fmt"

	"github.com/abhishekvash/bare-minimum-theory/constants"
	"github.com/abhishekvash/bare-minimum-theory/model"
)

var noteNames = [constants.SemitonesPerOctave]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

var ordinalWords = []string{"First", "Second", "Third", "Fourth", "Fifth", "Sixth"}

// PitchClass folds any pitch number, negative included, into 0..11.
func PitchClass(note int) int {
	return ((note % constants.SemitonesPerOctave) + constants.SemitonesPerOctave) % constants.SemitonesPerOctave
}

func NoteName(note int) string {
	return noteNames[PitchClass(note)]
}

func GetChordName(c model.Chord) string {
	return NoteName(c.Root) + string(c.Quality)
}

// GetChordTooltip describes the inversion and its bass note, e.g.
// "First inversion (E in bass)". Root position gives "".
func GetChordTooltip(c model.Chord) (string, error) {
	if c.Inversion < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidInversion, c.Inversion)
	}
	if c.Inversion == 0 {
		return "", nil
	}
	iv, err := Lookup(c.Quality)
	if err != nil {
		return "", err
	}
	inverted := ApplyInversion(iv, c.Inversion)
	bass := NoteName(c.Root + inverted[0])
	return fmt.Sprintf("%s inversion (%s in bass)", inversionOrdinal(c.Inversion), bass), nil
}

func inversionOrdinal(n int) string {
	if n >= 1 && n <= len(ordinalWords) {
		return ordinalWords[n-1]
	}
	return Ordinal(n)
}

// Ordinal renders n with its English suffix: 1st, 2nd, 3rd, 11th, 22nd...
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
