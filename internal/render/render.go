// Package render draws solver rounds and shortlists as terminal tiles.
//
// The theme is passed in explicitly; nothing here reads global UI state.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle-solver/internal/session"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

// Theme selects the tile palette.
type Theme struct {
	Dark bool
}

type palette struct {
	green, yellow, grey, blank, suggestion lipgloss.Style
}

func (t Theme) palette() palette {
	tile := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF"))
	p := palette{
		green:      tile.Background(lipgloss.Color("#16A34A")),
		yellow:     tile.Background(lipgloss.Color("#EAB308")),
		grey:       tile.Background(lipgloss.Color("#6B7280")),
		suggestion: tile.Background(lipgloss.Color("#2563EB")),
	}
	if t.Dark {
		p.blank = tile.Foreground(lipgloss.Color("#F3F4F6")).Background(lipgloss.Color("#1F2937"))
	} else {
		p.blank = tile.Foreground(lipgloss.Color("#111827")).Background(lipgloss.Color("#E5E7EB"))
	}
	return p
}

// Round renders one round: green, yellow, or grey per guessed cell.
func (t Theme) Round(r solver.Round) string {
	p := t.palette()
	tiles := make([]string, 0, len(r.Guess))
	for i, g := range r.Guess {
		l := strings.ToUpper(strings.TrimSpace(g))
		style := p.grey
		switch {
		case l == "":
			l, style = " ", p.blank
		case i < len(r.Correct) && r.Correct[i] != "":
			style = p.green
		case i < len(r.Present) && r.Present[i] != "":
			style = p.yellow
		}
		tiles = append(tiles, style.Render(l))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// Word renders a suggested word as blue tiles.
func (t Theme) Word(w string) string {
	p := t.palette()
	tiles := make([]string, 0, len(w))
	for _, r := range w {
		tiles = append(tiles, p.suggestion.Render(string(r)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// Snapshot renders completed rounds, the best guess, and the shortlist.
func (t Theme) Snapshot(s session.Snapshot) string {
	var b strings.Builder
	for i, r := range s.Rounds {
		fmt.Fprintf(&b, "%d  %s\n", i+1, t.Round(r))
	}
	b.WriteString("\n")
	switch {
	case s.Solved:
		b.WriteString("solved\n")
	case s.Exhausted:
		b.WriteString("no candidates remain\n")
	default:
		fmt.Fprintf(&b, "best guess  %s   (%d candidates", t.Word(s.Suggestion), s.Remaining)
		if s.UsedFallback {
			b.WriteString(", extended word list")
		}
		b.WriteString(")\n")
		for i, w := range s.Shortlist {
			fmt.Fprintf(&b, "%d  %s\n", i+1, t.Word(w))
		}
	}
	return b.String()
}
