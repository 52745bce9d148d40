package chord

import (
	"fmt"

	"github.com/abhishekvash/bare-minimum-theory/model"
	"golang.org/x/exp/slices"
)

// qualityOrder is the display order of the interval table. Identify also
// walks it in this order, so plainer shapes win ties.
var qualityOrder = []model.Quality{
	// triads
	"", "m", "dim", "aug", "sus2", "sus4", "5",
	// sevenths
	"maj7", "7", "m7", "dim7", "m7b5", "mMaj7", "maj7#5", "7sus4", "7sus2",
	// sixths
	"6", "m6", "6/9",
	// add chords
	"add9", "madd9", "add11",
	// ninths
	"9", "maj9", "m9",
	// altered dominants
	"7b9", "7#9", "7b5", "7#5", "7#11", "9sus4",
	// elevenths
	"11", "m11", "maj11",
	// thirteenths
	"13", "maj13", "m13",
}

var intervals = map[model.Quality][]int{
	"":     {0, 4, 7},
	"m":    {0, 3, 7},
	"dim":  {0, 3, 6},
	"aug":  {0, 4, 8},
	"sus2": {0, 2, 7},
	"sus4": {0, 5, 7},
	"5":    {0, 7},

	"maj7":   {0, 4, 7, 11},
	"7":      {0, 4, 7, 10},
	"m7":     {0, 3, 7, 10},
	"dim7":   {0, 3, 6, 9},
	"m7b5":   {0, 3, 6, 10},
	"mMaj7":  {0, 3, 7, 11},
	"maj7#5": {0, 4, 8, 11},
	"7sus4":  {0, 5, 7, 10},
	"7sus2":  {0, 2, 7, 10},

	"6":   {0, 4, 7, 9},
	"m6":  {0, 3, 7, 9},
	"6/9": {0, 4, 7, 9, 14},

	"add9":  {0, 4, 7, 14},
	"madd9": {0, 3, 7, 14},
	"add11": {0, 4, 7, 17},

	"9":    {0, 4, 7, 10, 14},
	"maj9": {0, 4, 7, 11, 14},
	"m9":   {0, 3, 7, 10, 14},

	"7b9":   {0, 4, 7, 10, 13},
	"7#9":   {0, 4, 7, 10, 15},
	"7b5":   {0, 4, 6, 10},
	"7#5":   {0, 4, 8, 10},
	"7#11":  {0, 4, 7, 10, 18},
	"9sus4": {0, 5, 7, 10, 14},

	"11":    {0, 4, 7, 10, 14, 17},
	"m11":   {0, 3, 7, 10, 14, 17},
	"maj11": {0, 4, 7, 11, 14, 17},

	"13":    {0, 4, 7, 10, 14, 21},
	"maj13": {0, 4, 7, 11, 14, 21},
	"m13":   {0, 3, 7, 10, 14, 21},
}

// Lookup returns a copy of the semitone offsets for q.
func Lookup(q model.Quality) ([]int, error) {
	iv, ok := intervals[q]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidQuality, string(q))
	}
	return slices.Clone(iv), nil
}

func IsValidQuality(q model.Quality) bool {
	_, ok := intervals[q]
	return ok
}

// Qualities returns every known quality in display order.
func Qualities() []model.Quality {
	return slices.Clone(qualityOrder)
}
