package chord

import "github.com/abhishekvash/bare-minimum-theory/constants"

// ApplyInversion rotates the lowest note up an octave n times. Counts past the
// chord size keep stacking octaves. n <= 0 returns a copy.
func ApplyInversion(iv []int, n int) []int {
	res := clone(iv)
	if len(res) == 0 {
		return res
	}
	for i := 0; i < n; i++ {
		res = rotateLowest(res)
	}
	return res
}

// rotateLowest moves the first lowest-valued element to the end, one octave up.
// Everything else keeps its order.
func rotateLowest(iv []int) []int {
	low := 0
	for i, v := range iv {
		if v < iv[low] {
			low = i
		}
	}
	lowest := iv[low]
	res := make([]int, 0, len(iv))
	res = append(res, iv[:low]...)
	res = append(res, iv[low+1:]...)
	return append(res, lowest+constants.SemitonesPerOctave)
}
