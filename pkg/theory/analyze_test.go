package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// C G D G A D, low to high
var testTuning = []PitchClass{0, 7, 2, 7, 9, 2}

func TestLabel(t *testing.T) {
	tests := []struct {
		root, target PitchClass
		want         string
	}{
		{0, 0, "R"},
		{0, 1, "b9"},
		{0, 2, "9"},
		{0, 3, "m3"},
		{0, 4, "M3"},
		{0, 5, "11"},
		{0, 6, "#11"},
		{0, 7, "5"},
		{0, 8, "b13"},
		{0, 9, "13"},
		{0, 10, "m7"},
		{0, 11, "M7"},
		{5, 0, "5"},
		{11, 0, "b9"},
		{7, 19, "R"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.root, tt.target), "Label(%d, %d)", tt.root, tt.target)
	}
}

func TestAnalyzeFm9(t *testing.T) {
	a := AnalyzeSymbol("Fm9", testTuning, 0)
	require.NoError(t, a.Err)

	kc, ok := a.Depth.Primary()
	require.True(t, ok)
	assert.Equal(t, KeyCandidate{-3, 3, "Eb"}, kc)
	assert.Equal(t, ToneFar, a.Tone())
	assert.Equal(t, MajorScale(3), a.Scale)
	assert.Equal(t, "F Ab C Eb G", a.NoteString())

	require.Len(t, a.Strings, 6)
	texts := make([]string, len(a.Strings))
	tones := make([]StringTone, len(a.Strings))
	for i, s := range a.Strings {
		texts[i] = s.Text()
		tones[i] = s.Tone()
	}
	assert.Equal(t, []string{"5", "9", "13", "9", "X(M3)", "13"}, texts)
	assert.Equal(t, []StringTone{ToneInChord, ToneInChord, ToneInScale, ToneInChord, ToneOutside, ToneInScale}, tones)
}

func TestAnalyzeTones(t *testing.T) {
	tests := []struct {
		symbol string
		tone   DepthTone
		depth  string
	}{
		{"C", ToneHome, "+0"},
		{"C/Bb", ToneNear, "-1"},
		{"Fm9", ToneFar, "-3"},
		{"Dbdim7", ToneSuperposed, "-1 +2 -4 +5"},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			a := AnalyzeSymbol(tt.symbol, testTuning, 0)
			assert.Equal(t, tt.tone, a.Tone())
			assert.Equal(t, tt.depth, a.Depth.DepthString())
		})
	}
}

func TestAnalyzeSlashChordNotes(t *testing.T) {
	a := AnalyzeSymbol("C/Bb", testTuning, 0)
	assert.Equal(t, "Bb C E G", a.NoteString())
	assert.Equal(t, "F", a.Depth.KeyString())
	// Labels stay relative to the chord root, not the bass
	assert.Equal(t, "R", a.Strings[0].Label)
}

func TestAnalyzeInvalid(t *testing.T) {
	a := AnalyzeSymbol("H7", testTuning, 0)
	var rootErr *UnknownRootError
	require.ErrorAs(t, a.Err, &rootErr)
	assert.Equal(t, "H", rootErr.Token)
	assert.Equal(t, "Err:H", a.Chord.Display)
	assert.Equal(t, ToneInvalid, a.Tone())
	assert.Empty(t, a.Strings)
	assert.Empty(t, a.Depth.Candidates)

	a = AnalyzeSymbol("", testTuning, 0)
	assert.ErrorIs(t, a.Err, ErrEmptySymbol)
	assert.Equal(t, ToneInvalid, a.Tone())
}

func TestAnalyzeCenter(t *testing.T) {
	a := AnalyzeSymbol("C", testTuning, 7)
	kc, ok := a.Depth.Primary()
	require.True(t, ok)
	assert.Equal(t, KeyCandidate{0, 7, "G"}, kc)
	assert.Equal(t, MajorScale(7), a.Scale)
	assert.Equal(t, ToneHome, a.Tone())

	// D is in G major and not in the C triad
	assert.Equal(t, ToneInScale, a.Strings[2].Tone())
}

func TestAnalyzeEmptyTuning(t *testing.T) {
	a := AnalyzeSymbol("Am", nil, 0)
	assert.Empty(t, a.Strings)
	assert.Equal(t, "+0", a.Depth.DepthString())
}
