package chord

import (
	"github.com/abhishekvash/bare-minimum-theory/model"
	"golang.org/x/exp/slices"
)

func pitchClassSet(notes []int) map[int]bool {
	set := make(map[int]bool)
	for _, n := range notes {
		set[PitchClass(n)] = true
	}
	return set
}

func sameSet(a, b map[int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// bassInversion returns the smallest inversion count whose bass has pitch
// class pc, given a root on pitch class 0.
func bassInversion(iv []int, pc int) int {
	for n := 0; n < 4*len(iv); n++ {
		if PitchClass(ApplyInversion(iv, n)[0]) == pc {
			return n
		}
	}
	return 0
}

// Identify names a set of held notes. Root position matches win over
// inversions, then table order decides. The returned root is the closest
// pitch at or below the lowest held note, and its inversion puts the held
// bass first, so the name and tooltip describe what was played. Resolving
// it gives back the held pitch classes, but the held octaves only when no
// interval spans more than an octave.
func Identify(notes []int) (model.Chord, bool) {
	if len(notes) < 2 {
		return model.Chord{}, false
	}
	held := sorted(notes)
	bass := held[0]
	heldSet := pitchClassSet(held)

	// candidate roots, bass first
	var roots []int
	for _, n := range held {
		if !slices.Contains(roots, PitchClass(n)) {
			roots = append(roots, PitchClass(n))
		}
	}

	var found *model.Chord
	for _, pc := range roots {
		for _, q := range qualityOrder {
			iv := intervals[q]
			shape := make([]int, len(iv))
			for i, v := range iv {
				shape[i] = pc + v
			}
			if !sameSet(heldSet, pitchClassSet(shape)) {
				continue
			}
			inversion := bassInversion(iv, PitchClass(bass-pc))
			c := model.Chord{
				Root:      bass - PitchClass(bass-pc),
				Quality:   q,
				Inversion: inversion,
				Voicing:   model.VoicingClose,
			}
			if inversion == 0 {
				return c, true
			}
			if found == nil {
				found = &c
			}
		}
	}
	if found == nil {
		return model.Chord{}, false
	}
	return *found, true
}
