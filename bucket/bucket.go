package bucket

import (
	"sort"

	"github.com/abhishekvash/bare-minimum-theory/chord"
)

// Bucket collects every moment one chord name sounds.
type Bucket struct {
	Name    string
	Offsets []int64
}

// Fill sorts snapshots into buckets by identified chord name, most frequent
// first. Snapshots that name nothing are dropped, as are repeats of the
// previous chord.
func Fill(snapshots []chord.Snapshot) []Bucket {
	byName := make(map[string]*Bucket)
	var lastKey string
	for _, snap := range snapshots {
		key := chord.CreateChordKey(snap.Notes)
		if key == lastKey {
			continue
		}
		lastKey = key

		c, ok := chord.Identify(snap.Notes)
		if !ok {
			continue
		}
		name := chord.GetChordName(c)
		b, ok := byName[name]
		if !ok {
			b = &Bucket{Name: name}
			byName[name] = b
		}
		b.Offsets = append(b.Offsets, snap.Offset)
	}

	res := make([]Bucket, 0, len(byName))
	for _, b := range byName {
		res = append(res, *b)
	}
	sort.Slice(res, func(i, j int) bool {
		if len(res[i].Offsets) != len(res[j].Offsets) {
			return len(res[i].Offsets) > len(res[j].Offsets)
		}
		return res[i].Name < res[j].Name
	})
	return res
}
