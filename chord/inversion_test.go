package chord

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyInversion(t *testing.T) {
	cases := []struct {
		intervals []int
		n         int
		expected  []int
	}{
		{[]int{0, 4, 7, 11}, 1, []int{4, 7, 11, 12}},
		{[]int{0, 4, 7}, 1, []int{4, 7, 12}},
		{[]int{0, 4, 7}, 2, []int{7, 12, 16}},
		{[]int{0, 4, 7}, 3, []int{12, 16, 19}},
		{[]int{0, 4, 7}, 4, []int{16, 19, 24}},
		{[]int{0, 7}, 1, []int{7, 12}},
		{[]int{0, 7}, 3, []int{19, 24}},
		{[]int{5}, 2, []int{29}},
		{[]int{}, 3, []int{}},
	}

	for _, c := range cases {
		name := fmt.Sprintf("%v inverted %v times", c.intervals, c.n)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.expected, ApplyInversion(c.intervals, c.n))
		})
	}
}

func TestApplyInversionZeroReturnsNewSlice(t *testing.T) {
	assert := assert.New(t)
	input := []int{0, 4, 7}

	res := ApplyInversion(input, 0)
	assert.Equal(input, res)

	res[0] = 42
	assert.Equal([]int{0, 4, 7}, input)
}

func TestApplyInversionDoesNotMutateInput(t *testing.T) {
	input := []int{0, 3, 7, 10}
	ApplyInversion(input, 5)
	assert.Equal(t, []int{0, 3, 7, 10}, input)
}

func TestApplyInversionNegativeIsIdentity(t *testing.T) {
	assert.Equal(t, []int{0, 4, 7}, ApplyInversion([]int{0, 4, 7}, -2))
}

func TestRotateLowestMovesFirstOccurrenceOnly(t *testing.T) {
	// order of the untouched voices is kept
	assert.Equal(t, []int{4, 0, 12}, rotateLowest([]int{4, 0, 0}))
	assert.Equal(t, []int{9, 3, 12}, rotateLowest([]int{9, 0, 3}))
}

func TestApplyInversionAccumulates(t *testing.T) {
	for _, q := range Qualities() {
		iv, _ := Lookup(q)
		for n := 0; n < 8; n++ {
			for m := 0; m < 8; m++ {
				stepped := ApplyInversion(ApplyInversion(iv, n), m)
				direct := ApplyInversion(iv, n+m)
				assert.Equal(t, direct, stepped, "quality %q, n=%d m=%d", q, n, m)
			}
		}
	}
}

func TestApplyInversionZeroForAllQualities(t *testing.T) {
	for _, q := range Qualities() {
		iv, _ := Lookup(q)
		assert.Equal(t, iv, ApplyInversion(iv, 0), "quality %q", q)
	}
}
