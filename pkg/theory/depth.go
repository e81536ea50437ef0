package theory

import (
	"fmt"
	"slices"
	"strings"
)

// KeyCandidate is a major key at a signed distance on the circle of fifths
type KeyCandidate struct {
	Depth int        // Fifths from the tonal center, -6..+6
	Root  PitchClass // Absolute key root
	Name  string     // Key root spelling
}

// DepthResult holds the best-matching keys for a chord
type DepthResult struct {
	Candidates []KeyCandidate
	Score      int  // Chord pitch classes inside the best scale
	Total      int  // Distinct chord pitch classes
	Perfect    bool // Score == Total
}

// circleEntry places a key on the circle relative to C
type circleEntry struct {
	depth int
	root  PitchClass
	name  string
}

// Visitation order matters: it decides tie order among equally scored keys.
var circleOfFifths = [13]circleEntry{
	{0, 0, "C"},
	{1, 7, "G"}, {-1, 5, "F"},
	{2, 2, "D"}, {-2, 10, "Bb"},
	{3, 9, "A"}, {-3, 3, "Eb"},
	{4, 4, "E"}, {-4, 8, "Ab"},
	{5, 11, "B"}, {-5, 1, "Db"},
	{6, 6, "F#"}, {-6, 6, "Gb"},
}

// KeyName spells a key root the way the circle table does.
// Pitch class 6 is F# on the sharp side (depth > 0) and Gb otherwise.
func KeyName(root PitchClass, depth int) string {
	root = Mod(int(root))
	if root == 6 {
		if depth > 0 {
			return "F#"
		}
		return "Gb"
	}
	for _, e := range circleOfFifths {
		if e.root == root {
			return e.name
		}
	}
	return root.Name()
}

// NearestKeys searches the circle of fifths centred on C
func NearestKeys(pcs []PitchClass) DepthResult {
	return NearestKeysAround(pcs, 0)
}

// NearestKeysAround searches the circle of fifths centred on center.
// Depths are relative to center and candidate roots are absolute.
// A perfect fit collapses to the candidate closest to the center; an
// imperfect fit returns every tied candidate in visitation order.
func NearestKeysAround(pcs []PitchClass, center PitchClass) DepthResult {
	chord := NewPitchSet(pcs).Transpose(-int(center))
	total := chord.Len()
	if total == 0 {
		return DepthResult{}
	}

	maxScore := 0
	var best []circleEntry
	for _, e := range circleOfFifths {
		score := chord.Intersect(MajorScale(e.root)).Len()
		switch {
		case score > maxScore:
			maxScore = score
			best = append(best[:0], e)
		case score == maxScore:
			best = append(best, e)
		}
	}

	perfect := maxScore == total
	if perfect && len(best) > 1 {
		slices.SortStableFunc(best, func(a, b circleEntry) int {
			return abs(a.depth) - abs(b.depth)
		})
		best = best[:1]
	}

	result := DepthResult{
		Candidates: make([]KeyCandidate, 0, len(best)),
		Score:      maxScore,
		Total:      total,
		Perfect:    perfect,
	}
	for _, e := range best {
		kc := KeyCandidate{Depth: e.depth, Root: e.root.Transpose(int(center)), Name: e.name}
		if center != 0 {
			kc.Name = KeyName(kc.Root, e.depth)
		}
		result.Candidates = append(result.Candidates, kc)
	}
	return result
}

// Primary returns the first candidate, if any
func (r DepthResult) Primary() (KeyCandidate, bool) {
	if len(r.Candidates) == 0 {
		return KeyCandidate{}, false
	}
	return r.Candidates[0], true
}

// DepthString formats the candidate depths as "+0" or "-3 +3"
func (r DepthResult) DepthString() string {
	parts := make([]string, len(r.Candidates))
	for i, c := range r.Candidates {
		parts[i] = fmt.Sprintf("%+d", c.Depth)
	}
	return strings.Join(parts, " ")
}

// KeyString lists the candidate key names separated by spaces
func (r DepthResult) KeyString() string {
	parts := make([]string, len(r.Candidates))
	for i, c := range r.Candidates {
		parts[i] = c.Name
	}
	return strings.Join(parts, " ")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
