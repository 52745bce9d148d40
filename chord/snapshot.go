package chord

import (
	"sort"

	"github.com/abhishekvash/bare-minimum-theory/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Snapshot is the set of notes sounding from Offset (microseconds) on.
type Snapshot struct {
	Offset int64
	Notes  model.Notes
}

type noteEvent struct {
	offset    int64
	isNoteOff bool
	note      int
}

func getNotes(pressed map[int]bool) model.Notes {
	var notes model.Notes
	for note := range pressed {
		notes = append(notes, note)
	}
	return sorted(notes)
}

// GetSnapshots walks every track of s and returns the held-note set at each
// distinct event time, in time order. Silent moments are skipped.
func GetSnapshots(s *smf.SMF) []Snapshot {
	var events []noteEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			msg := midi.Message(event.Message)
			var channel, key, velocity uint8
			switch {
			case msg.GetNoteStart(&channel, &key, &velocity):
				events = append(events, noteEvent{offset: absTime, note: int(key)})
			case msg.GetNoteEnd(&channel, &key):
				events = append(events, noteEvent{offset: absTime, isNoteOff: true, note: int(key)})
			}
		}
	}

	// smaller offsets first, note offs before note ons
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].offset != events[j].offset {
			return events[i].offset < events[j].offset
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})

	var res []Snapshot
	pressed := make(map[int]bool)
	for i, evt := range events {
		if evt.isNoteOff {
			delete(pressed, evt.note)
		} else {
			pressed[evt.note] = true
		}
		last := i == len(events)-1 || events[i+1].offset != evt.offset
		if last && len(pressed) > 0 {
			res = append(res, Snapshot{Offset: evt.offset, Notes: getNotes(pressed)})
		}
	}
	return res
}
