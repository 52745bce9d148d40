package midi

import (
	"context"
	"time"

	"github.com/abhishekvash/bare-minimum-theory/logging"
	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/abhishekvash/bare-minimum-theory/sample"
	"github.com/abhishekvash/bare-minimum-theory/util"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Player sounds chords on a MIDI output.
type Player struct {
	send     func(msg gomidi.Message) error
	closer   func() error
	channel  uint8
	velocity uint8
}

func NewPlayer(send func(msg gomidi.Message) error, channel, velocity uint8) *Player {
	return &Player{
		send:     send,
		channel:  util.Min(channel, 15),
		velocity: util.Min(velocity, 127),
	}
}

// OpenPlayer connects to the output port called portName, or the first port
// when portName is empty. A driver must be registered by the caller.
func OpenPlayer(portName string, channel, velocity uint8) (*Player, error) {
	var out drivers.Out
	var err error
	if portName == "" {
		out, err = gomidi.OutPort(0)
	} else {
		out, err = gomidi.FindOutPort(portName)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "finding midi output %q", portName)
	}
	send, err := gomidi.SendTo(out)
	if err != nil {
		return nil, errors.Wrapf(err, "opening midi output %q", out.String())
	}
	logging.Info("midi output opened", "port", out.String())

	p := NewPlayer(send, channel, velocity)
	p.closer = out.Close
	return p, nil
}

func (p *Player) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}

// PlayChord holds notes for d, or until ctx is done. Note offs are always sent.
func (p *Player) PlayChord(ctx context.Context, notes model.Notes, d time.Duration) error {
	keys := sample.Keys(notes)
	defer func() {
		for _, key := range keys {
			if err := p.send(gomidi.NoteOff(p.channel, key)); err != nil {
				logging.Warn("note off failed", "key", key, "err", err)
			}
		}
	}()
	for _, key := range keys {
		if err := p.send(gomidi.NoteOn(p.channel, key, p.velocity)); err != nil {
			return errors.Wrap(err, "sending note on")
		}
	}
	return wait(ctx, d)
}

// PlayProgression plays every slot for d each. Nil slots are rests.
func (p *Player) PlayProgression(ctx context.Context, slots []model.Notes, d time.Duration) error {
	for _, notes := range slots {
		var err error
		if len(notes) == 0 {
			err = wait(ctx, d)
		} else {
			err = p.PlayChord(ctx, notes, d)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// BeatsDuration converts beats at bpm to wall time.
func BeatsDuration(bpm, beats int) time.Duration {
	if bpm <= 0 {
		bpm = 120
	}
	return time.Duration(beats) * time.Minute / time.Duration(bpm)
}
