package chord

import (
	"bytes"
	"testing"

	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func twoChordSMF(t *testing.T) *smf.SMF {
	var tr smf.Track
	for _, key := range []uint8{60, 64, 67} {
		tr.Add(0, midi.NoteOn(0, key, 100))
	}
	tr.Add(960, midi.NoteOff(0, 60))
	tr.Add(0, midi.NoteOff(0, 64))
	tr.Add(0, midi.NoteOff(0, 67))
	for _, key := range []uint8{65, 69, 72} {
		tr.Add(0, midi.NoteOn(0, key, 100))
	}
	tr.Add(960, midi.NoteOff(0, 65))
	tr.Add(0, midi.NoteOff(0, 69))
	tr.Add(0, midi.NoteOff(0, 72))
	tr.Close(0)

	s := smf.New()
	require.NoError(t, s.Add(tr))

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	parsed, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	return parsed
}

func TestGetSnapshots(t *testing.T) {
	assert := assert.New(t)
	snapshots := GetSnapshots(twoChordSMF(t))

	require.Len(t, snapshots, 2)
	assert.Equal(model.Notes{60, 64, 67}, snapshots[0].Notes)
	assert.Equal(model.Notes{65, 69, 72}, snapshots[1].Notes)
	assert.Greater(snapshots[1].Offset, snapshots[0].Offset)

	c, ok := Identify(snapshots[1].Notes)
	assert.True(ok)
	assert.Equal("F", GetChordName(c))
}
