// Package theory implements chord parsing and tonal depth analysis
package theory

import (
	"fmt"
	"strconv"
	"strings"
)

// PitchClass is a pitch modulo the octave, 0 = C through 11 = B
type PitchClass int

// Mod reduces any integer into a pitch class
func Mod(n int) PitchClass {
	n %= 12
	if n < 0 {
		n += 12
	}
	return PitchClass(n)
}

// Transpose shifts the pitch class by n semitones
func (p PitchClass) Transpose(n int) PitchClass {
	return Mod(int(p) + n)
}

// Name returns the canonical spelling
func (p PitchClass) Name() string {
	return canonicalNames[Mod(int(p))]
}

func (p PitchClass) String() string {
	return p.Name()
}

// Black keys display as flats except 6, which displays as F#
var canonicalNames = [12]string{
	"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B",
}

var noteNames = map[string]PitchClass{
	"C": 0, "C#": 1, "Db": 1,
	"D": 2, "D#": 3, "Eb": 3,
	"E": 4,
	"F": 5, "F#": 6, "Gb": 6,
	"G": 7, "G#": 8, "Ab": 8,
	"A": 9, "A#": 10, "Bb": 10,
	"B": 11,
}

// ParseNote resolves a note spelling such as "C#" or "Bb"
func ParseNote(name string) (PitchClass, bool) {
	pc, ok := noteNames[name]
	return pc, ok
}

// InvalidNoteError reports a note spelling that does not resolve
type InvalidNoteError struct {
	Note string
}

func (e *InvalidNoteError) Error() string {
	return fmt.Sprintf("invalid note %q", e.Note)
}

// ParseNoteWithOctave parses a spelling with an optional trailing octave ("D2").
// The octave is -1 when absent.
func ParseNoteWithOctave(s string) (PitchClass, int, error) {
	s = strings.TrimSpace(s)
	split := strings.IndexAny(s, "0123456789")
	if split < 0 {
		pc, ok := ParseNote(s)
		if !ok {
			return 0, -1, &InvalidNoteError{Note: s}
		}
		return pc, -1, nil
	}

	pc, ok := ParseNote(s[:split])
	if !ok {
		return 0, -1, &InvalidNoteError{Note: s}
	}
	octave, err := strconv.Atoi(s[split:])
	if err != nil || octave > 9 {
		return 0, -1, &InvalidNoteError{Note: s}
	}
	return pc, octave, nil
}

// PitchSet is a set of pitch classes stored as a 12-bit mask
type PitchSet uint16

// NewPitchSet builds a set from a sequence, dropping duplicates
func NewPitchSet(pcs []PitchClass) PitchSet {
	var s PitchSet
	for _, pc := range pcs {
		s = s.Add(pc)
	}
	return s
}

// Add returns the set with pc included
func (s PitchSet) Add(pc PitchClass) PitchSet {
	return s | 1<<uint(Mod(int(pc)))
}

// Contains reports whether pc is in the set
func (s PitchSet) Contains(pc PitchClass) bool {
	return s&(1<<uint(Mod(int(pc)))) != 0
}

// Len returns the number of distinct pitch classes
func (s PitchSet) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Intersect returns the pitch classes present in both sets
func (s PitchSet) Intersect(o PitchSet) PitchSet {
	return s & o
}

// Transpose rotates every member by n semitones
func (s PitchSet) Transpose(n int) PitchSet {
	var out PitchSet
	for pc := PitchClass(0); pc < 12; pc++ {
		if s.Contains(pc) {
			out = out.Add(pc.Transpose(n))
		}
	}
	return out
}

// Slice lists the members in ascending order
func (s PitchSet) Slice() []PitchClass {
	out := make([]PitchClass, 0, s.Len())
	for pc := PitchClass(0); pc < 12; pc++ {
		if s.Contains(pc) {
			out = append(out, pc)
		}
	}
	return out
}

var majorSteps = [7]int{0, 2, 4, 5, 7, 9, 11}

// MajorScale returns the seven pitch classes of the major scale on root
func MajorScale(root PitchClass) PitchSet {
	var s PitchSet
	for _, step := range majorSteps {
		s = s.Add(root.Transpose(step))
	}
	return s
}
