package model

// Progression is an ordered list of slots. A nil slot is a rest.
type Progression struct {
	ID     string   `json:"id" yaml:"id"`
	Name   string   `json:"name" yaml:"name"`
	BPM    int      `json:"bpm,omitempty" yaml:"bpm,omitempty"`
	Chords []*Chord `json:"chords" yaml:"chords"`
}

// ProgressionSummary is what the library lists without loading every slot.
type ProgressionSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NumChords int    `json:"num_chords"`
}
