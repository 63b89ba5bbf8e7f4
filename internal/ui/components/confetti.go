package components

import (
	"image/color"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

const (
	confettiFrames   = 25
	confettiInterval = 100 * time.Millisecond
	confettiPieces   = 30
)

// confetti glyphs cycle as pieces "fall"
var confettiGlyphs = []string{"●", "▪", "★", "◆", "✦"}

var confettiColors = []color.Color{
	theme.Primary,
	theme.Secondary,
	theme.Success,
	theme.Pink,
	theme.Accent,
	theme.Error,
}

// ConfettiTickMsg advances the confetti animation.
type ConfettiTickMsg time.Time

type confettiPiece struct {
	col   int // horizontal position as a permille of the width
	phase int
	tint  color.Color
	glyph string
}

// Confetti is the celebratory burst shown over the feedback view when
// the learner clears the passing threshold.
type Confetti struct {
	pieces []confettiPiece
	frame  int
	active bool
}

// Start launches a new burst and returns the first animation tick.
func (c *Confetti) Start() tea.Cmd {
	c.pieces = make([]confettiPiece, confettiPieces)
	for i := range c.pieces {
		c.pieces[i] = confettiPiece{
			col:   rand.IntN(1000),
			phase: rand.IntN(confettiFrames),
			tint:  confettiColors[rand.IntN(len(confettiColors))],
			glyph: confettiGlyphs[rand.IntN(len(confettiGlyphs))],
		}
	}
	c.frame = 0
	c.active = true
	return confettiTick()
}

// Update advances the animation and schedules the next tick until the
// burst completes.
func (c *Confetti) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(ConfettiTickMsg); !ok {
		return nil
	}
	if !c.active {
		return nil
	}
	c.frame++
	if c.frame >= confettiFrames {
		c.active = false
		return nil
	}
	return confettiTick()
}

// Active reports whether a burst is in progress.
func (c *Confetti) Active() bool {
	return c.active
}

// View renders the current animation frame as a band of drifting
// pieces across the given width.
func (c *Confetti) View(width int) string {
	if !c.active || width <= 0 {
		return ""
	}

	const rows = 3
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, width)
		for i := range grid[r] {
			grid[r][i] = " "
		}
	}

	for _, p := range c.pieces {
		row := (p.phase + c.frame) % rows
		col := (p.col*width/1000 + c.frame + p.phase) % width
		grid[row][col] = lipgloss.NewStyle().Foreground(p.tint).Render(p.glyph)
	}

	lines := make([]string, rows)
	for r := range grid {
		lines[r] = strings.Join(grid[r], "")
	}
	return strings.Join(lines, "\n")
}

func confettiTick() tea.Cmd {
	return tea.Tick(confettiInterval, func(t time.Time) tea.Msg {
		return ConfettiTickMsg(t)
	})
}
