package theory

// QualityClass groups the tokens that spell the same sonority
type QualityClass struct {
	Name      string // Human-readable description
	Tokens    []string
	Intervals []int // Semitones above the root, unreduced
}

// PowerChord is returned for tokens missing from the vocabulary
var PowerChord = []int{0, 7}

// Extensions keep 14/17/21 so a 9th, 11th or 13th is distinguishable before reduction.
// Adding a sonority only means adding a row here.
var qualityClasses = []QualityClass{
	// Triads
	{Name: "major", Tokens: []string{"", "M", "maj"}, Intervals: []int{0, 4, 7}},
	{Name: "minor", Tokens: []string{"m", "min", "-"}, Intervals: []int{0, 3, 7}},
	{Name: "diminished", Tokens: []string{"dim", "o"}, Intervals: []int{0, 3, 6}},
	{Name: "augmented", Tokens: []string{"aug", "+"}, Intervals: []int{0, 4, 8}},
	{Name: "suspended 4th", Tokens: []string{"sus4", "sus"}, Intervals: []int{0, 5, 7}},
	{Name: "suspended 2nd", Tokens: []string{"sus2"}, Intervals: []int{0, 2, 7}},

	// Sevenths and sixths
	{Name: "dominant 7th", Tokens: []string{"7", "dom7"}, Intervals: []int{0, 4, 7, 10}},
	{Name: "major 7th", Tokens: []string{"M7", "maj7", "Maj7", "jq"}, Intervals: []int{0, 4, 7, 11}},
	{Name: "minor 7th", Tokens: []string{"m7", "min7", "-7"}, Intervals: []int{0, 3, 7, 10}},
	{Name: "minor-major 7th", Tokens: []string{"mM7", "mMaj7"}, Intervals: []int{0, 3, 7, 11}},
	{Name: "diminished 7th", Tokens: []string{"dim7", "o7"}, Intervals: []int{0, 3, 6, 9}},
	{Name: "half-diminished", Tokens: []string{"m7-5", "m7b5", "half-dim", "ø"}, Intervals: []int{0, 3, 6, 10}},
	{Name: "7th suspended 4th", Tokens: []string{"7sus4"}, Intervals: []int{0, 5, 7, 10}},
	{Name: "major 6th", Tokens: []string{"6"}, Intervals: []int{0, 4, 7, 9}},
	{Name: "minor 6th", Tokens: []string{"m6"}, Intervals: []int{0, 3, 7, 9}},

	// Extended
	{Name: "dominant 9th", Tokens: []string{"9"}, Intervals: []int{0, 4, 7, 10, 14}},
	{Name: "added 9th", Tokens: []string{"add9"}, Intervals: []int{0, 4, 7, 14}},
	{Name: "major 9th", Tokens: []string{"M9", "maj9"}, Intervals: []int{0, 4, 7, 11, 14}},
	{Name: "minor 9th", Tokens: []string{"m9", "min9"}, Intervals: []int{0, 3, 7, 10, 14}},
	{Name: "dominant 11th", Tokens: []string{"11"}, Intervals: []int{0, 4, 7, 10, 14, 17}},
	{Name: "minor 11th", Tokens: []string{"m11"}, Intervals: []int{0, 3, 7, 10, 14, 17}},
	{Name: "dominant 13th", Tokens: []string{"13"}, Intervals: []int{0, 4, 7, 10, 14, 21}},
	{Name: "major 13th", Tokens: []string{"M13"}, Intervals: []int{0, 4, 7, 11, 14, 21}},

	// Altered
	{Name: "7th sharp 9", Tokens: []string{"7#9"}, Intervals: []int{0, 4, 7, 10, 15}},
	{Name: "7th flat 9", Tokens: []string{"7b9"}, Intervals: []int{0, 4, 7, 10, 13}},
	{Name: "augmented 7th", Tokens: []string{"7#5", "aug7"}, Intervals: []int{0, 4, 8, 10}},
}

var qualityIndex = func() map[string]int {
	m := make(map[string]int)
	for i, qc := range qualityClasses {
		for _, tok := range qc.Tokens {
			m[tok] = i
		}
	}
	return m
}()

// Intervals returns the semitone offsets for a quality token.
// Unknown tokens fall back to PowerChord. The slice is a fresh copy.
func Intervals(token string) []int {
	src := PowerChord
	if i, ok := qualityIndex[token]; ok {
		src = qualityClasses[i].Intervals
	}
	out := make([]int, len(src))
	copy(out, src)
	return out
}

// HasQuality reports whether token is part of the vocabulary
func HasQuality(token string) bool {
	_, ok := qualityIndex[token]
	return ok
}

// Qualities returns the vocabulary grouped by alias class
func Qualities() []QualityClass {
	out := make([]QualityClass, len(qualityClasses))
	for i, qc := range qualityClasses {
		out[i] = QualityClass{
			Name:      qc.Name,
			Tokens:    append([]string(nil), qc.Tokens...),
			Intervals: append([]int(nil), qc.Intervals...),
		}
	}
	return out
}
