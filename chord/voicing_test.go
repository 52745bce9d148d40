package chord

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/stretchr/testify/assert"
)

func TestVoicings(t *testing.T) {
	cases := []struct {
		voicing   model.Voicing
		intervals []int
		expected  []int
	}{
		{model.VoicingClose, []int{0, 4, 7}, []int{0, 4, 7}},
		{model.VoicingOpen, []int{0, 4, 7}, []int{0, 7, 16}},
		{model.VoicingOpen, []int{0, 4, 7, 11}, []int{0, 11, 16, 19}},
		{model.VoicingOpen, []int{0, 7}, []int{0, 7}},
		{model.VoicingDrop2, []int{0, 4, 7}, []int{-8, 0, 7}},
		{model.VoicingDrop2, []int{0, 4, 7, 11}, []int{-5, 0, 4, 11}},
		{model.VoicingDrop2, []int{0, 7}, []int{0, 7}},
		{model.VoicingDrop3, []int{0, 4, 7, 11}, []int{-8, 0, 7, 11}},
		{model.VoicingDrop3, []int{0, 4, 7}, []int{0, 4, 7}},
		{model.VoicingWide, []int{0, 4, 7}, []int{0, 16, 31}},
		{model.VoicingWide, []int{4, 7, 12}, []int{4, 19, 36}},
	}

	for _, c := range cases {
		name := fmt.Sprintf("%v of %v", c.voicing, c.intervals)
		t.Run(name, func(t *testing.T) {
			res, err := ApplyVoicing(c.voicing, c.intervals)
			assert.NoError(t, err)
			assert.Equal(t, c.expected, res)
		})
	}
}

func TestDropPicksBySortedPosition(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]int{0, 0, 12}, Drop2([]int{0, 12, 12}))
	assert.Equal([]int{0, 0, 12, 12}, Drop3([]int{0, 12, 12, 12}))
}

func TestVoicingsDoNotMutateInput(t *testing.T) {
	for _, v := range model.Voicings {
		input := []int{7, 0, 4, 11}
		_, err := ApplyVoicing(v, input)
		assert.NoError(t, err)
		assert.Equal(t, []int{7, 0, 4, 11}, input, "voicing %v", v)
	}
}

func TestCloseIsIdentity(t *testing.T) {
	input := []int{3, 1, 2}
	res := Close(input)
	assert.Equal(t, input, res)

	res[0] = 9
	assert.Equal(t, 3, input[0])
}

func TestVoicingsSortAndPreserveSize(t *testing.T) {
	for _, q := range Qualities() {
		iv, _ := Lookup(q)
		for n := 0; n < 7; n++ {
			inverted := ApplyInversion(iv, n)
			for _, v := range model.Voicings {
				res, err := ApplyVoicing(v, inverted)
				assert.NoError(t, err)
				assert.Len(t, res, len(inverted), "%v of %q inversion %d", v, q, n)
				if v == model.VoicingOpen || v == model.VoicingDrop2 || v == model.VoicingDrop3 {
					assert.True(t, sort.IntsAreSorted(res), "%v of %q inversion %d: %v", v, q, n, res)
				}
			}
		}
	}
}

func TestApplyVoicingUnknown(t *testing.T) {
	_, err := ApplyVoicing("spread", []int{0, 4, 7})
	assert.True(t, errors.Is(err, ErrInvalidVoicing))
}
