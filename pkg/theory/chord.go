package theory

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrEmptySymbol is returned for blank chord input
var ErrEmptySymbol = errors.New("empty chord symbol")

// UnknownRootError reports a root spelling missing from the note table
type UnknownRootError struct {
	Token string
}

func (e *UnknownRootError) Error() string {
	return fmt.Sprintf("unknown chord root %q", e.Token)
}

// Chord is the parsed form of a chord symbol such as "Fm9" or "C/Bb"
type Chord struct {
	Symbol   string // Trimmed input
	Display  string // Root spelling, "root/bass", "?" or "Err:<root>"
	RootName string
	Root     PitchClass
	Quality  string
	BassName string // Bass spelling as typed, empty when none
	Bass     PitchClass
	HasBass  bool // Bass spelling resolved

	// In interval order, bass first when it was added.
	// May hold duplicates for extended qualities.
	PitchClasses []PitchClass
}

// Valid reports whether the chord carries pitch content
func (c Chord) Valid() bool {
	return len(c.PitchClasses) > 0
}

// Set returns the distinct pitch classes of the chord
func (c Chord) Set() PitchSet {
	return NewPitchSet(c.PitchClasses)
}

// ParseChord parses a chord symbol. It never fails hard: on an unknown root
// the returned Chord is degraded (Display "Err:<root>", no pitch classes) and
// the error is an *UnknownRootError. Unknown qualities fall back to a power
// chord and unresolvable bass notes are dropped, neither is an error.
func ParseChord(input string) (Chord, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Chord{Display: "?"}, ErrEmptySymbol
	}

	symbol, bassName, _ := strings.Cut(s, "/")
	if i := strings.IndexByte(bassName, '/'); i >= 0 {
		bassName = bassName[:i]
	}

	rootName, quality := splitRoot(symbol)
	root, ok := ParseNote(rootName)
	if !ok {
		return Chord{
			Symbol:   s,
			Display:  "Err:" + rootName,
			RootName: rootName,
			Quality:  quality,
			BassName: bassName,
		}, &UnknownRootError{Token: rootName}
	}

	intervals := Intervals(quality)
	pcs := make([]PitchClass, 0, len(intervals)+1)
	for _, iv := range intervals {
		pcs = append(pcs, root.Transpose(iv))
	}

	c := Chord{
		Symbol:   s,
		Display:  rootName,
		RootName: rootName,
		Root:     root,
		Quality:  quality,
		BassName: bassName,
	}

	if bassName != "" {
		c.Display = rootName + "/" + bassName
		if bass, ok := ParseNote(bassName); ok {
			c.Bass = bass
			c.HasBass = true
			if !slices.Contains(pcs, bass) {
				pcs = append([]PitchClass{bass}, pcs...)
			}
		}
	}

	c.PitchClasses = pcs
	return c, nil
}

// splitRoot separates the root spelling from the quality token.
// A second character of '#' or 'b' belongs to the root.
func splitRoot(symbol string) (string, string) {
	runes := []rune(symbol)
	switch {
	case len(runes) == 0:
		return "", ""
	case len(runes) == 1:
		return symbol, ""
	case runes[1] == '#' || runes[1] == 'b':
		return string(runes[:2]), string(runes[2:])
	default:
		return string(runes[:1]), string(runes[1:])
	}
}
