package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		name string
		want PitchClass
		ok   bool
	}{
		{"C", 0, true},
		{"C#", 1, true},
		{"Db", 1, true},
		{"D#", 3, true},
		{"Eb", 3, true},
		{"E", 4, true},
		{"F#", 6, true},
		{"Gb", 6, true},
		{"Ab", 8, true},
		{"A#", 10, true},
		{"Bb", 10, true},
		{"B", 11, true},
		{"E#", 0, false},
		{"Cb", 0, false},
		{"H", 0, false},
		{"c", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNote(tt.name)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCanonicalNames(t *testing.T) {
	want := []string{"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}
	for i, name := range want {
		assert.Equal(t, name, PitchClass(i).Name())
	}

	assert.Equal(t, "Db", PitchClass(13).Name())
	assert.Equal(t, "B", PitchClass(-1).Name())
	assert.Equal(t, "F#", PitchClass(6).String())
}

func TestNamesRoundTrip(t *testing.T) {
	for pc := PitchClass(0); pc < 12; pc++ {
		got, ok := ParseNote(pc.Name())
		require.True(t, ok, pc.Name())
		assert.Equal(t, pc, got)
	}
}

func TestModAndTranspose(t *testing.T) {
	assert.Equal(t, PitchClass(11), Mod(-1))
	assert.Equal(t, PitchClass(0), Mod(24))
	assert.Equal(t, PitchClass(2), PitchClass(11).Transpose(3))
	assert.Equal(t, PitchClass(10), PitchClass(1).Transpose(-15))
}

func TestParseNoteWithOctave(t *testing.T) {
	tests := []struct {
		input   string
		pc      PitchClass
		octave  int
		wantErr bool
	}{
		{"D2", 2, 2, false},
		{"C#4", 1, 4, false},
		{"Bb", 10, -1, false},
		{" A3 ", 9, 3, false},
		{"H3", 0, -1, true},
		{"D10", 0, -1, true},
		{"3", 0, -1, true},
		{"", 0, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pc, octave, err := ParseNoteWithOctave(tt.input)
			if tt.wantErr {
				var noteErr *InvalidNoteError
				assert.ErrorAs(t, err, &noteErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.pc, pc)
			assert.Equal(t, tt.octave, octave)
		})
	}
}

func TestPitchSet(t *testing.T) {
	s := NewPitchSet([]PitchClass{0, 4, 7, 12, 4})
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(12))
	assert.False(t, s.Contains(5))
	assert.Equal(t, []PitchClass{0, 4, 7}, s.Slice())

	assert.Equal(t, []PitchClass{2, 7, 11}, s.Transpose(7).Slice())
	assert.Equal(t, 2, s.Intersect(NewPitchSet([]PitchClass{4, 7, 9})).Len())
	assert.Equal(t, 0, PitchSet(0).Len())
}

func TestMajorScale(t *testing.T) {
	assert.Equal(t, []PitchClass{0, 2, 4, 5, 7, 9, 11}, MajorScale(0).Slice())
	assert.Equal(t, []PitchClass{0, 2, 4, 6, 7, 9, 11}, MajorScale(7).Slice())
	assert.Equal(t, []PitchClass{0, 2, 3, 5, 7, 8, 10}, MajorScale(3).Slice())
}
