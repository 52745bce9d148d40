package model

type ChordResponse struct {
	Chord   Chord  `json:"chord"`
	Notes   Notes  `json:"notes"`
	Name    string `json:"name"`
	Tooltip string `json:"tooltip"`
}

type QualityInfo struct {
	Quality   Quality `json:"quality"`
	Intervals []int   `json:"intervals"`
}

// ExportRequestBody carries either a single chord or a progression.
type ExportRequestBody struct {
	Chord       *Chord       `json:"chord,omitempty"`
	Progression *Progression `json:"progression,omitempty"`
	Beats       int          `json:"beats,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
