package chord

import (
	"errors"
	"testing"

	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/stretchr/testify/assert"
)

func TestLookupKnownQualities(t *testing.T) {
	assert := assert.New(t)

	cases := map[model.Quality][]int{
		"":     {0, 4, 7},
		"m":    {0, 3, 7},
		"maj7": {0, 4, 7, 11},
		"7":    {0, 4, 7, 10},
		"m7":   {0, 3, 7, 10},
		"9":    {0, 4, 7, 10, 14},
		"13":   {0, 4, 7, 10, 14, 21},
	}
	for q, expected := range cases {
		iv, err := Lookup(q)
		assert.NoError(err)
		assert.Equal(expected, iv, "quality %q", q)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	iv, _ := Lookup("maj7")
	iv[0] = 99

	again, _ := Lookup("maj7")
	assert.Equal(t, []int{0, 4, 7, 11}, again)
}

func TestLookupUnknownQuality(t *testing.T) {
	_, err := Lookup("maj17")
	assert.True(t, errors.Is(err, ErrInvalidQuality))
}

func TestTableShape(t *testing.T) {
	assert := assert.New(t)
	assert.Len(intervals, len(qualityOrder))

	for _, q := range Qualities() {
		iv, err := Lookup(q)
		if !assert.NoError(err) || !assert.NotEmpty(iv) {
			continue
		}
		assert.Equal(0, iv[0], "quality %q must start at the root", q)
		for i := 1; i < len(iv); i++ {
			assert.Less(iv[i-1], iv[i], "quality %q must be ascending", q)
		}
	}
}
