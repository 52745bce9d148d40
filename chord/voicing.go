package chord

import (
	"fmt"

	"github.com/abhishekvash/bare-minimum-theory/constants"
	"github.com/abhishekvash/bare-minimum-theory/model"
	"golang.org/x/exp/slices"
)

// ApplyVoicing spreads already-inverted intervals according to v.
func ApplyVoicing(v model.Voicing, iv []int) ([]int, error) {
	switch v {
	case model.VoicingClose:
		return Close(iv), nil
	case model.VoicingOpen:
		return Open(iv), nil
	case model.VoicingDrop2:
		return Drop2(iv), nil
	case model.VoicingDrop3:
		return Drop3(iv), nil
	case model.VoicingWide:
		return Wide(iv), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidVoicing, string(v))
	}
}

func IsValidVoicing(v model.Voicing) bool {
	return slices.Contains(model.Voicings, v)
}

func clone(iv []int) []int {
	res := make([]int, len(iv))
	copy(res, iv)
	return res
}

func sorted(iv []int) []int {
	res := clone(iv)
	slices.Sort(res)
	return res
}

func Close(iv []int) []int {
	return clone(iv)
}

// Open raises every inner voice an octave, keeping bass and soprano.
func Open(iv []int) []int {
	if len(iv) < 3 {
		return clone(iv)
	}
	res := sorted(iv)
	for i := 1; i < len(res)-1; i++ {
		res[i] += constants.SemitonesPerOctave
	}
	slices.Sort(res)
	return res
}

func Drop2(iv []int) []int {
	if len(iv) < 3 {
		return clone(iv)
	}
	return dropNth(iv, 2)
}

func Drop3(iv []int) []int {
	if len(iv) < 4 {
		return clone(iv)
	}
	return dropNth(iv, 3)
}

// dropNth lowers the nth-highest voice an octave. The voice is picked by its
// sorted position, so duplicate values only move one note.
func dropNth(iv []int, n int) []int {
	res := sorted(iv)
	res[len(res)-n] -= constants.SemitonesPerOctave
	slices.Sort(res)
	return res
}

// Wide stacks each voice one more octave above the previous.
func Wide(iv []int) []int {
	res := clone(iv)
	for i := range res {
		res[i] += constants.SemitonesPerOctave * i
	}
	return res
}
