package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoval/flapdash/internal/core"
	"github.com/dkoval/flapdash/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Visual characters for world drawing.
const (
	pipeChar   = '█'
	groundChar = '═'
	tokenChar  = '◉'
	bodyChar   = '●'
)

// drawWorld scales the simulation snapshot from playfield pixels to
// terminal cells and draws it. The simulation knows nothing about this
// mapping; it is purely a display concern.
func drawWorld(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()
	if w <= 0 || h <= 1 || snap.FieldW <= 0 || snap.FieldH <= 0 {
		return
	}

	groundRow := h - 1
	sx := float64(w) / snap.FieldW
	sy := float64(groundRow) / snap.FieldH

	cellX := func(px float64) int { return int(px * sx) }
	cellY := func(px float64) int { return int(px * sy) }

	// Pipes
	px0 := cellX(snap.ObstacleX)
	px1 := cellX(snap.ObstacleX + snap.ObstacleWidth)
	gapTopRow := cellY(snap.GapTop)
	gapBotRow := cellY(snap.GapTop + snap.GapSize)
	dst.FillRect(px0, 0, px1-px0, gapTopRow, pipeChar, core.ColorGreen)
	dst.FillRect(px0, gapBotRow, px1-px0, groundRow-gapBotRow, pipeChar, core.ColorGreen)

	// Tokens
	for _, t := range snap.Tokens {
		if t.Collected {
			continue
		}
		half := snap.TokenSize / 2
		dst.SetColored(cellX(t.X+half), cellY(t.Y+half), tokenChar, core.ColorBrightYellow)
	}

	// Player: filled body with a beak glyph showing the tilt.
	py0 := cellY(snap.PlayerY)
	py1 := core.Max(py0+1, cellY(snap.PlayerY+snap.PlayerSize))
	bx0 := cellX(snap.PlayerX)
	bx1 := core.Max(bx0+1, cellX(snap.PlayerX+snap.PlayerSize))
	dst.FillRect(bx0, py0, bx1-bx0, py1-py0, bodyChar, core.ColorBrightYellow)
	dst.SetColored(bx1-1, py0, beakFor(snap.PlayerRotation), core.ColorOrange)

	// Ground
	dst.DrawHLine(0, groundRow, w, groundChar, core.ColorGray)
}

// beakFor picks the directional glyph for the current rotation.
func beakFor(rotation float64) rune {
	switch {
	case rotation < 0:
		return '◥'
	case rotation > 45:
		return '◢'
	default:
		return '▶'
	}
}

// formatMS renders a millisecond score as m:ss.mmm.
func formatMS(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, (ms%60000)/1000, ms%1000)
}
