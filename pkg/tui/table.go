package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/oisee/chorddepth/pkg/theory"
)

// Styles holds the colours used for analysis cells
type Styles struct {
	Header     lipgloss.Style
	Chord      lipgloss.Style
	Notes      lipgloss.Style
	Border     lipgloss.Style
	Error      lipgloss.Style
	Home       lipgloss.Style
	Near       lipgloss.Style
	Far        lipgloss.Style
	Superposed lipgloss.Style
	InChord    lipgloss.Style
	InScale    lipgloss.Style
	Outside    lipgloss.Style
}

// DefaultStyles returns the standard palette
func DefaultStyles() Styles {
	return Styles{
		Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		Chord:      lipgloss.NewStyle().Bold(true),
		Notes:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Border:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Home:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Near:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Far:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Superposed: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Italic(true),
		InChord:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		InScale:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Outside:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (s Styles) depthStyle(tone theory.DepthTone) lipgloss.Style {
	switch tone {
	case theory.ToneHome:
		return s.Home
	case theory.ToneNear:
		return s.Near
	case theory.ToneFar:
		return s.Far
	case theory.ToneSuperposed:
		return s.Superposed
	default:
		return s.Error
	}
}

func (s Styles) stringStyle(tone theory.StringTone) lipgloss.Style {
	switch tone {
	case theory.ToneInChord:
		return s.InChord
	case theory.ToneInScale:
		return s.InScale
	default:
		return s.Outside
	}
}

// Headers returns the column titles. Strings are numbered from the highest
// (1) down to the lowest, which is listed first.
func Headers(tuning []theory.PitchClass) []string {
	headers := []string{"Chord", "Depth", "Local Key", "Notes"}
	for i, pc := range tuning {
		headers = append(headers, fmt.Sprintf("%d(%s)", len(tuning)-i, pc.Name()))
	}
	return headers
}

// Row returns the plain cell text for one analysis
func Row(a theory.Analysis, n int) []string {
	cells := make([]string, 4+n)
	cells[0] = a.Chord.Symbol
	if !a.Chord.Valid() {
		cells[1] = a.Chord.Display
		return cells
	}

	cells[1] = a.Depth.DepthString()
	cells[2] = a.Depth.KeyString()
	cells[3] = a.NoteString()
	for i, s := range a.Strings {
		if 4+i < len(cells) {
			cells[4+i] = s.Text()
		}
	}
	return cells
}

func (s Styles) styledRow(a theory.Analysis, n int) []string {
	cells := Row(a, n)
	cells[0] = s.Chord.Render(cells[0])
	if !a.Chord.Valid() {
		cells[1] = s.Error.Render(cells[1])
		return cells
	}

	cells[1] = s.depthStyle(a.Tone()).Render(cells[1])
	cells[3] = s.Notes.Render(cells[3])
	for i, sl := range a.Strings {
		if 4+i < len(cells) {
			cells[4+i] = s.stringStyle(sl.Tone()).Render(cells[4+i])
		}
	}
	return cells
}

// RenderTable draws the analyses as a bordered table
func RenderTable(analyses []theory.Analysis, tuning []theory.PitchClass, styles Styles) string {
	headers := Headers(tuning)
	for i, h := range headers {
		headers[i] = styles.Header.Render(h)
	}

	rows := make([][]string, len(analyses))
	for i, a := range analyses {
		rows[i] = styles.styledRow(a, len(tuning))
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		StyleFunc(func(row, col int) lipgloss.Style { return cell }).
		Headers(headers...).
		Rows(rows...).
		Render()
}
