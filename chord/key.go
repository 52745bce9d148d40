package chord

import (
	"fmt"

	"github.com/abhishekvash/bare-minimum-theory/model"
)

// CreateChordKey builds a stable "60-64-67" key from notes in any order.
func CreateChordKey(notes model.Notes) string {
	var res string
	for i, note := range sorted(notes) {
		res += fmt.Sprintf("%v", note)
		if i < len(notes)-1 {
			res += "-"
		}
	}
	return res
}
