package sample

import (
	"github.com/abhishekvash/bare-minimum-theory/constants"
	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/abhishekvash/bare-minimum-theory/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = smf.MetricTicks(960)

type Options struct {
	Name     string
	BPM      int
	Beats    int
	Velocity uint8
	Channel  uint8
}

func (o Options) withDefaults() Options {
	if o.BPM <= 0 {
		o.BPM = 120
	}
	if o.Beats <= 0 {
		o.Beats = 4
	}
	if o.Velocity == 0 {
		o.Velocity = 100
	}
	o.Channel = util.Min(o.Channel, 15)
	o.Velocity = util.Min(o.Velocity, 127)
	return o
}

// Keys clamps notes into the MIDI range and drops repeats, keeping the
// first occurrence.
func Keys(notes model.Notes) []uint8 {
	seen := make(map[uint8]bool)
	var res []uint8
	for _, n := range notes {
		key := uint8(util.Clamp(n, constants.MinMidiNote, constants.MaxMidiNote))
		if !seen[key] {
			seen[key] = true
			res = append(res, key)
		}
	}
	return res
}

// Create lays slots out back to back, each Beats long. A nil slot is a rest.
func Create(slots []model.Notes, opts Options) (*smf.SMF, error) {
	opts = opts.withDefaults()
	res := smf.New()
	res.TimeFormat = ticksPerQuarter

	slotTicks := ticksPerQuarter.Ticks4th() * uint32(opts.Beats)

	var track smf.Track
	if opts.Name != "" {
		track.Add(0, smf.MetaTrackSequenceName(opts.Name))
	}
	track.Add(0, smf.MetaMeter(4, 4))
	track.Add(0, smf.MetaTempo(float64(opts.BPM)))

	var pending uint32
	for _, notes := range slots {
		ks := Keys(notes)
		if len(ks) == 0 {
			pending += slotTicks
			continue
		}
		for i, key := range ks {
			delta := uint32(0)
			if i == 0 {
				delta = pending
			}
			track.Add(delta, midi.NoteOn(opts.Channel, key, opts.Velocity))
		}
		for i, key := range ks {
			delta := uint32(0)
			if i == 0 {
				delta = slotTicks
			}
			track.Add(delta, midi.NoteOff(opts.Channel, key))
		}
		pending = 0
	}
	track.Close(pending)

	if err := res.Add(track); err != nil {
		return nil, errors.Wrap(err, "adding track")
	}
	return res, nil
}

// CreateChord holds one chord for opts.Beats beats.
func CreateChord(notes model.Notes, opts Options) (*smf.SMF, error) {
	return Create([]model.Notes{notes}, opts)
}
