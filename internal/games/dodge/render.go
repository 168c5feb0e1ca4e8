package dodge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/games/dodge/sim"
)

// BorderColor is the palette color of the board frame.
const BorderColor = core.ColorGray

// BoardSize returns the terminal cells needed to draw an n×n board with its
// frame, using tiles two characters wide.
func BoardSize(n int) (w, h int) {
	return 2*n + 2, n + 2
}

// Render draws the board, the entities and the HUD to a terminal screen.
// Cells are two characters wide when the screen allows it, one otherwise.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	n := snap.Grid.Size()
	if n == 0 {
		return
	}

	tileW := 2
	if dst.Width() < 2*n+2 {
		tileW = 1
	}
	boxW, boxH := tileW*n+2, n+2
	if dst.Width() < boxW || dst.Height() < boxH {
		w, h := BoardSize(n)
		drawCenteredMessage(dst, "TERMINAL TOO SMALL", fmt.Sprintf("Need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()))
		return
	}

	ox := (dst.Width() - boxW) / 2
	oy := (dst.Height() - boxH) / 2
	dst.DrawBox(core.NewRect(ox, oy, boxW, boxH), BorderColor)
	dst.DrawText(ox+2, oy, " DODGE ")
	if snap.LevelName != "" {
		label := " " + snap.LevelName + " "
		dst.DrawTextColored(ox+boxW-2-len(label), oy, label, snap.LevelColor)
	}

	// Project the logical grid onto the inner area of the frame.
	project := snap.Grid.WithScreen(float64(tileW*n), float64(n))
	for _, a := range snap.Asteroids {
		if x, y, ok := tileAt(project, a.Pos, tileW); ok {
			dst.SetColored(ox+1+x, oy+1+y, g.asteroidGlyph, a.Color)
		}
	}
	if x, y, ok := tileAt(project, snap.Player.Pos, tileW); ok {
		dst.SetColored(ox+1+x, oy+1+y, g.playerGlyph, snap.Player.Color)
	}

	score := fmt.Sprintf(" Score: %d ", snap.Score)
	dst.DrawText(ox+boxW-2-len(score), oy+boxH-1, score)

	if snap.Lost {
		drawCenteredMessage(dst, "YOU LOST", fmt.Sprintf("Score: %d  |  R restart  |  Q quit", snap.Score))
	}
}

// tileAt returns the top-left terminal cell of the tile containing p.
// Points off the grid are not drawn.
func tileAt(project sim.Grid, p core.Vec, tileW int) (x, y int, ok bool) {
	center, err := project.TranslateToScreen(p)
	if err != nil {
		return 0, 0, false
	}
	return int(math.Floor(center.X - float64(tileW)/2)), int(math.Floor(center.Y - 0.5)), true
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawTextColored((w-len(title))/2, boxY+1, title, core.ColorRed)
	dst.DrawTextCentered(boxY+3, subtitle)
}
