package theory

import "strings"

// DepthTone is the styling hint for a depth cell
type DepthTone int

const (
	ToneHome       DepthTone = iota // Perfect fit in the tonal center
	ToneNear                        // Perfect fit one fifth away
	ToneFar                         // Perfect fit further away
	ToneSuperposed                  // No key fits every note
	ToneInvalid                     // Chord did not parse
)

// StringTone is the styling hint for one reference pitch
type StringTone int

const (
	ToneInChord StringTone = iota
	ToneInScale
	ToneOutside
)

// StringLabel describes one reference pitch against a chord
type StringLabel struct {
	Note    PitchClass
	Label   string // Degree above the chord root
	InChord bool
	InScale bool
}

// Tone picks the styling hint; chord membership wins over scale membership
func (s StringLabel) Tone() StringTone {
	switch {
	case s.InChord:
		return ToneInChord
	case s.InScale:
		return ToneInScale
	default:
		return ToneOutside
	}
}

// Text is the cell text, "X(<label>)" when the pitch is outside chord and scale
func (s StringLabel) Text() string {
	if s.Tone() == ToneOutside {
		return "X(" + s.Label + ")"
	}
	return s.Label
}

// Analysis is the full result for one chord against a tuning
type Analysis struct {
	Chord   Chord
	Err     error // Parse error carried over from ParseChord
	Center  PitchClass
	Depth   DepthResult
	Scale   PitchSet // Scale of the primary key, or of the center without candidates
	Strings []StringLabel
}

// Analyze runs the depth search and labels every reference pitch.
// A chord that failed to parse yields no candidates and no labels.
func Analyze(chord Chord, tuning []PitchClass, center PitchClass) Analysis {
	a := Analysis{
		Chord:  chord,
		Center: Mod(int(center)),
	}
	if !chord.Valid() {
		return a
	}

	a.Depth = NearestKeysAround(chord.PitchClasses, a.Center)
	scaleRoot := a.Center
	if kc, ok := a.Depth.Primary(); ok {
		scaleRoot = kc.Root
	}
	a.Scale = MajorScale(scaleRoot)

	set := chord.Set()
	a.Strings = make([]StringLabel, len(tuning))
	for i, pc := range tuning {
		pc = Mod(int(pc))
		a.Strings[i] = StringLabel{
			Note:    pc,
			Label:   Label(chord.Root, pc),
			InChord: set.Contains(pc),
			InScale: a.Scale.Contains(pc),
		}
	}
	return a
}

// AnalyzeSymbol parses text and analyzes it in one step
func AnalyzeSymbol(text string, tuning []PitchClass, center PitchClass) Analysis {
	chord, err := ParseChord(text)
	a := Analyze(chord, tuning, center)
	a.Err = err
	return a
}

// Tone picks the styling hint for the depth cell
func (a Analysis) Tone() DepthTone {
	kc, ok := a.Depth.Primary()
	switch {
	case !ok:
		return ToneInvalid
	case !a.Depth.Perfect:
		return ToneSuperposed
	case kc.Depth == 0:
		return ToneHome
	case abs(kc.Depth) <= 1:
		return ToneNear
	default:
		return ToneFar
	}
}

// NoteString spells the chord's pitch classes in chord order
func (a Analysis) NoteString() string {
	names := make([]string, len(a.Chord.PitchClasses))
	for i, pc := range a.Chord.PitchClasses {
		names[i] = pc.Name()
	}
	return strings.Join(names, " ")
}
