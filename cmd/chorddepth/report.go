package main

import (
	"github.com/oisee/chorddepth/pkg/theory"
)

// report is the YAML form of an analyze run
type report struct {
	Tuning string        `yaml:"tuning"`
	Notes  []string      `yaml:"notes"`
	Center string        `yaml:"center"`
	Chords []chordReport `yaml:"chords"`
}

type chordReport struct {
	Symbol  string         `yaml:"symbol"`
	Display string         `yaml:"display"`
	Error   string         `yaml:"error,omitempty"`
	Notes   []string       `yaml:"notes,omitempty"`
	Keys    []keyReport    `yaml:"keys,omitempty"`
	Score   int            `yaml:"score"`
	Total   int            `yaml:"total"`
	Perfect bool           `yaml:"perfect"`
	Strings []stringReport `yaml:"strings,omitempty"`
}

type keyReport struct {
	Depth int    `yaml:"depth"`
	Key   string `yaml:"key"`
}

type stringReport struct {
	String  int    `yaml:"string"`
	Note    string `yaml:"note"`
	Label   string `yaml:"label"`
	InChord bool   `yaml:"in_chord"`
	InScale bool   `yaml:"in_scale"`
}

func newReport(tuningName string, tuning []theory.PitchClass, center theory.PitchClass, analyses []theory.Analysis) report {
	r := report{
		Tuning: tuningName,
		Notes:  make([]string, len(tuning)),
		Center: center.Name(),
		Chords: make([]chordReport, len(analyses)),
	}
	for i, pc := range tuning {
		r.Notes[i] = pc.Name()
	}

	for i, a := range analyses {
		cr := chordReport{
			Symbol:  a.Chord.Symbol,
			Display: a.Chord.Display,
			Score:   a.Depth.Score,
			Total:   a.Depth.Total,
			Perfect: a.Depth.Perfect,
		}
		if a.Err != nil {
			cr.Error = a.Err.Error()
		}
		for _, pc := range a.Chord.PitchClasses {
			cr.Notes = append(cr.Notes, pc.Name())
		}
		for _, kc := range a.Depth.Candidates {
			cr.Keys = append(cr.Keys, keyReport{Depth: kc.Depth, Key: kc.Name})
		}
		for j, s := range a.Strings {
			cr.Strings = append(cr.Strings, stringReport{
				String:  len(a.Strings) - j,
				Note:    s.Note.Name(),
				Label:   s.Label,
				InChord: s.InChord,
				InScale: s.InScale,
			})
		}
		r.Chords[i] = cr
	}
	return r
}
