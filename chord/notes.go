package chord

import (
	"fmt"

	"github.com/abhishekvash/bare-minimum-theory/constants"
	"github.com/abhishekvash/bare-minimum-theory/model"
)

// Validate reports whether c can go through the pipeline.
func Validate(c model.Chord) error {
	if !IsValidQuality(c.Quality) {
		return fmt.Errorf("%w: %q", ErrInvalidQuality, string(c.Quality))
	}
	if c.Inversion < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidInversion, c.Inversion)
	}
	if !IsValidVoicing(c.Voicing) {
		return fmt.Errorf("%w: %q", ErrInvalidVoicing, string(c.Voicing))
	}
	return nil
}

// GetChordNotes resolves c into pitch numbers: lookup, inversion, voicing,
// then root and octave offsets, in that order.
func GetChordNotes(c model.Chord) (model.Notes, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	iv, err := Lookup(c.Quality)
	if err != nil {
		return nil, err
	}
	voiced, err := ApplyVoicing(c.Voicing, ApplyInversion(iv, c.Inversion))
	if err != nil {
		return nil, err
	}

	shift := c.Root + c.Octave*constants.SemitonesPerOctave
	notes := make(model.Notes, len(voiced))
	for i, v := range voiced {
		notes[i] = v + shift
	}
	return notes, nil
}

// ProgressionNotes resolves every slot. Rests come back as nil.
func ProgressionNotes(p model.Progression) ([]model.Notes, error) {
	res := make([]model.Notes, len(p.Chords))
	for i, c := range p.Chords {
		if c == nil {
			continue
		}
		notes, err := GetChordNotes(*c)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		res[i] = notes
	}
	return res, nil
}

// Transpose returns a copy of c with the root moved by semitones.
func Transpose(c model.Chord, semitones int) model.Chord {
	c.Root += semitones
	return c
}

// WithDefaults fills a missing voicing, which decoded documents often omit,
// and shifts c by octaves on top of its own octave.
func WithDefaults(c model.Chord, voicing model.Voicing, octaves int) model.Chord {
	if c.Voicing == "" {
		c.Voicing = voicing
	}
	c.Octave += octaves
	return c
}
