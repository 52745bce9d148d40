package model

// Quality identifies a chord shape in the interval table. The empty string is
// a plain major triad.
type Quality string

// Voicing identifies a spacing transform.
type Voicing string

const (
	VoicingClose Voicing = "close"
	VoicingOpen  Voicing = "open"
	VoicingDrop2 Voicing = "drop2"
	VoicingDrop3 Voicing = "drop3"
	VoicingWide  Voicing = "wide"
)

// Voicings lists every preset in display order.
var Voicings = []Voicing{VoicingClose, VoicingOpen, VoicingDrop2, VoicingDrop3, VoicingWide}

type Chord struct {
	Root      int     `json:"root" yaml:"root"`
	Quality   Quality `json:"quality" yaml:"quality"`
	Inversion int     `json:"inversion" yaml:"inversion"`
	Voicing   Voicing `json:"voicing" yaml:"voicing"`
	Octave    int     `json:"octave" yaml:"octave"`
}

// Notes are absolute pitch numbers, 60 = middle C
type Notes = []int
