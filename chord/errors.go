package chord

import "errors"

var (
	ErrInvalidQuality   = errors.New("invalid chord quality")
	ErrInvalidInversion = errors.New("invalid inversion")
	ErrInvalidVoicing   = errors.New("invalid voicing")
)
