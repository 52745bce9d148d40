package db

import (
	"context"
	"errors"

	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("progression not found")

// Store keeps progressions by ID.
type Store interface {
	// Save stores p, assigning an ID when it has none, and returns the stored copy.
	Save(ctx context.Context, p model.Progression) (model.Progression, error)
	Get(ctx context.Context, id string) (model.Progression, error)
	List(ctx context.Context) ([]model.ProgressionSummary, error)
	Delete(ctx context.Context, id string) error
}

func ensureID(p model.Progression) model.Progression {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return p
}

func summarize(r record) model.ProgressionSummary {
	return model.ProgressionSummary{ID: r.ID, Name: r.Name, NumChords: len(r.Slots)}
}

// slot is the stored form of one progression slot. Gob cannot encode nil
// pointers inside slices, so rests are flagged instead.
type slot struct {
	Rest  bool        `dynamodbav:"rest,omitempty"`
	Chord model.Chord `dynamodbav:"chord"`
}

type record struct {
	ID    string `dynamodbav:"PK"`
	Name  string `dynamodbav:"Name"`
	BPM   int    `dynamodbav:"BPM,omitempty"`
	Slots []slot `dynamodbav:"Slots"`
}

func toRecord(p model.Progression) record {
	r := record{ID: p.ID, Name: p.Name, BPM: p.BPM, Slots: make([]slot, len(p.Chords))}
	for i, c := range p.Chords {
		if c == nil {
			r.Slots[i].Rest = true
			continue
		}
		r.Slots[i].Chord = *c
	}
	return r
}

func fromRecord(r record) model.Progression {
	p := model.Progression{ID: r.ID, Name: r.Name, BPM: r.BPM, Chords: make([]*model.Chord, len(r.Slots))}
	for i, s := range r.Slots {
		if s.Rest {
			continue
		}
		c := s.Chord
		p.Chords[i] = &c
	}
	return p
}
