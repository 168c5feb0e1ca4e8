// Package window runs the dodge game in a desktop window with Ebiten.
// The window uses the configured pixel screen, so what is drawn is exactly
// what collision is measured on.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/games/dodge"
)

// Game is what the window host drives each frame.
type Game interface {
	Title() string
	Reset(cfg core.RuntimeConfig) error
	Step(in core.InputFrame) core.StepResult
	Snapshot() dodge.Snapshot
}

// Debug font cell, used to right-align labels.
const (
	glyphW = 6
	glyphH = 16
)

var actionKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL},
	core.ActionUp:      {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK},
	core.ActionDown:    {ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyQ, ebiten.KeyEscape},
}

// frameFrom builds the input frame of one tick from a key predicate.
func frameFrom(pressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for action, keys := range actionKeys {
		for _, k := range keys {
			if pressed(k) {
				in.Set(action)
				break
			}
		}
	}
	return in
}

// Host implements ebiten.Game around a dodge game.
type Host struct {
	game    Game
	config  core.RuntimeConfig
	logger  *log.Logger
	pressed func(ebiten.Key) bool
	state   core.GameState
}

// NewHost creates a host and starts the first session.
func NewHost(game Game, cfg core.RuntimeConfig, logger *log.Logger) (*Host, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := game.Reset(cfg); err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	return &Host{
		game:    game,
		config:  cfg,
		logger:  logger,
		pressed: inpututil.IsKeyJustPressed,
	}, nil
}

// Update runs one simulation tick. Returning an error stops RunGame.
func (h *Host) Update() error {
	in := frameFrom(h.pressed)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if in.Has(core.ActionRestart) && h.state.GameOver {
		h.config.Seed = time.Now().UnixNano()
		if err := h.game.Reset(h.config); err != nil {
			return err
		}
		h.state = core.GameState{}
		h.logger.Info("restarted", "seed", h.config.Seed)
		return nil
	}

	res := h.game.Step(in)
	if res.Err != nil {
		return res.Err
	}
	h.state = res.State
	return nil
}

// Draw renders the board, the entities and the labels.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(Background)

	snap := h.game.Snapshot()
	g := snap.Grid
	if g.Size() == 0 {
		return
	}
	w, hgt := screenSize(snap)
	tile := g.TileSize()

	vector.StrokeRect(screen, 1, 1, float32(w)-2, float32(hgt)-2, 2, RGBA(core.ColorGray), false)

	radius := float32(tile.X / 2 * 0.8)
	for _, a := range snap.Asteroids {
		p, err := g.TranslateToScreen(a.Pos)
		if err != nil {
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), radius, RGBA(a.Color), true)
	}

	if p, err := g.TranslateToScreen(snap.Player.Pos); err == nil {
		side := float32(tile.X * 0.7)
		vector.DrawFilledRect(screen, float32(p.X)-side/2, float32(p.Y)-side/2, side, side, RGBA(snap.Player.Color), false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  wave %d", snap.LevelName, snap.Waves), 8, 4)
	score := fmt.Sprintf("Score: %d", snap.Score)
	ebitenutil.DebugPrintAt(screen, score, w-len(score)*glyphW-8, hgt-glyphH-4)

	if snap.Lost {
		msg := "YOU LOST - R to restart, Q to quit"
		ebitenutil.DebugPrintAt(screen, msg, (w-len(msg)*glyphW)/2, hgt/2-glyphH/2)
	}
}

// Layout fixes the logical screen to the grid's pixel surface.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize(h.game.Snapshot())
}

func screenSize(snap dodge.Snapshot) (int, int) {
	s := snap.Grid.Screen()
	return int(s.X), int(s.Y)
}

// Run opens the window and blocks until it is closed, the player quits or the
// game fails.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	host, err := NewHost(game, cfg, logger)
	if err != nil {
		return err
	}

	w, hgt := screenSize(game.Snapshot())
	ebiten.SetWindowSize(w, hgt)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
