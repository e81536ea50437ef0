package theory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalsAliases(t *testing.T) {
	halfDim := Intervals("m7b5")
	assert.Equal(t, []int{0, 3, 6, 10}, halfDim)
	assert.Equal(t, halfDim, Intervals("m7-5"))
	assert.Equal(t, halfDim, Intervals("half-dim"))
	assert.Equal(t, halfDim, Intervals("ø"))

	assert.Equal(t, Intervals("M7"), Intervals("maj7"))
	assert.Equal(t, Intervals("maj7"), Intervals("Maj7"))
	assert.Equal(t, Intervals("-"), Intervals("m"))
	assert.Equal(t, Intervals("7#5"), Intervals("aug7"))
	assert.Equal(t, []int{0, 4, 7}, Intervals(""))
}

func TestIntervalsFallback(t *testing.T) {
	assert.Equal(t, []int{0, 7}, Intervals("xyz"))
	assert.Equal(t, []int{0, 7}, Intervals("5"))
	assert.False(t, HasQuality("xyz"))
	assert.True(t, HasQuality("m9"))
	assert.True(t, HasQuality(""))
}

func TestIntervalsReturnsCopy(t *testing.T) {
	iv := Intervals("m9")
	iv[0] = 99
	assert.Equal(t, 0, Intervals("m9")[0])

	pc := Intervals("unknown")
	pc[1] = 99
	assert.Equal(t, []int{0, 7}, PowerChord)
}

func TestQualityTokensUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, qc := range Qualities() {
		require.NotEmpty(t, qc.Intervals, qc.Name)
		assert.Equal(t, 0, qc.Intervals[0], qc.Name)
		for _, tok := range qc.Tokens {
			prev, dup := seen[tok]
			assert.False(t, dup, "token %q in %s and %s", tok, prev, qc.Name)
			seen[tok] = qc.Name
		}
	}
}

func TestParseChord(t *testing.T) {
	tests := []struct {
		input   string
		display string
		quality string
		pcs     []PitchClass
	}{
		{"C", "C", "", []PitchClass{0, 4, 7}},
		{"Fm9", "F", "m9", []PitchClass{5, 8, 0, 3, 7}},
		{"G13", "G", "13", []PitchClass{7, 11, 2, 5, 9, 4}},
		{"Bb7", "Bb", "7", []PitchClass{10, 2, 5, 8}},
		{"F#m7b5", "F#", "m7b5", []PitchClass{6, 9, 0, 4}},
		{"Dbdim7", "Db", "dim7", []PitchClass{1, 4, 7, 10}},
		{"Cxyz", "C", "xyz", []PitchClass{0, 7}},
		{"  Am  ", "A", "m", []PitchClass{9, 0, 4}},
		{"C/Bb", "C/Bb", "", []PitchClass{10, 0, 4, 7}},
		{"C/E", "C/E", "", []PitchClass{0, 4, 7}},
		{"Am7/G", "A/G", "m7", []PitchClass{9, 0, 4, 7}},
		{"C/H", "C/H", "", []PitchClass{0, 4, 7}},
		{"C/", "C", "", []PitchClass{0, 4, 7}},
		{"C/D/E", "C/D", "", []PitchClass{2, 0, 4, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseChord(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.display, c.Display)
			assert.Equal(t, tt.quality, c.Quality)
			assert.Equal(t, tt.pcs, c.PitchClasses)
			assert.True(t, c.Valid())
		})
	}
}

func TestParseChordBass(t *testing.T) {
	c, err := ParseChord("C/Bb")
	require.NoError(t, err)
	assert.True(t, c.HasBass)
	assert.Equal(t, PitchClass(10), c.Bass)
	assert.Equal(t, "Bb", c.BassName)
	assert.Equal(t, PitchClass(0), c.Root)

	c, err = ParseChord("C/H")
	require.NoError(t, err)
	assert.False(t, c.HasBass)
	assert.Equal(t, "H", c.BassName)
}

func TestParseChordUnknownRoot(t *testing.T) {
	for _, input := range []string{"H", "Hm7", "Xb9", "/Bb", "ø7"} {
		t.Run(input, func(t *testing.T) {
			c, err := ParseChord(input)
			var rootErr *UnknownRootError
			require.ErrorAs(t, err, &rootErr)
			assert.Equal(t, "Err:"+rootErr.Token, c.Display)
			assert.Empty(t, c.PitchClasses)
			assert.False(t, c.Valid())
		})
	}

	c, _ := ParseChord("H")
	assert.Equal(t, "Err:H", c.Display)
}

func TestParseChordEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t"} {
		c, err := ParseChord(input)
		assert.True(t, errors.Is(err, ErrEmptySymbol))
		assert.Equal(t, "?", c.Display)
		assert.Empty(t, c.PitchClasses)
	}
}

func TestParseChordEnharmonicRoots(t *testing.T) {
	pairs := [][2]string{{"C#", "Db"}, {"D#", "Eb"}, {"F#", "Gb"}, {"G#", "Ab"}, {"A#", "Bb"}}
	for _, qc := range Qualities() {
		for _, tok := range append(qc.Tokens, "unknown") {
			for _, p := range pairs {
				a, err := ParseChord(p[0] + tok)
				require.NoError(t, err)
				b, err := ParseChord(p[1] + tok)
				require.NoError(t, err)
				assert.Equal(t, a.Set(), b.Set(), "%s%s vs %s%s", p[0], tok, p[1], tok)
				assert.NotEqual(t, a.Display, b.Display)
			}
		}
	}
}

func TestChordSet(t *testing.T) {
	c, err := ParseChord("Fm9")
	require.NoError(t, err)
	assert.Equal(t, 5, c.Set().Len())
	assert.Equal(t, []PitchClass{0, 3, 5, 7, 8}, c.Set().Slice())
}
