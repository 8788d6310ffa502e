// Package render hosts a scene in an ebiten window: it feeds keyboard state
// in, steps the scene once per tick and draws bodies, counters and the
// status line, plus the debug overlay when enabled.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/carryloop/ecs/debugui"
	debugui_ebiten "github.com/plus3/carryloop/ecs/debugui/ebiten"
	"github.com/plus3/carryloop/internal/logging"
	"github.com/plus3/carryloop/internal/scene"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	colorBackground = color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}
	colorStatus     = color.RGBA{R: 0xff, A: 0xff}
	colorCoins      = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

type Options struct {
	Title  string
	Width  int
	Height int
	TPS    int
	Debug  bool
	Logger *logging.Logger
}

// Game implements ebiten.Game around one scene.
type Game struct {
	scene    *scene.Scene
	queries  *spriteQueries
	keyboard *Keyboard
	dt       time.Duration

	worldW, worldH int

	labelFace  *text.GoTextFace
	statusFace *text.GoTextFace

	backend *debugui_ebiten.ImguiBackend
}

// New builds the scene described by sceneOpts with an ebiten keyboard and
// prepares the window.
func New(opts Options, sceneOpts scene.Options) (*Game, error) {
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	g := &Game{
		keyboard:   &Keyboard{},
		dt:         time.Second / time.Duration(opts.TPS),
		labelFace:  &text.GoTextFace{Source: source, Size: 16},
		statusFace: &text.GoTextFace{Source: source, Size: 15},
	}

	if opts.Debug {
		g.backend = debugui_ebiten.NewImguiBackend(opts.Title, opts.Width, opts.Height)
	}

	sceneOpts.Keyboard = g.keyboard
	if sceneOpts.Logger == nil {
		sceneOpts.Logger = opts.Logger
	}
	s, err := scene.New(sceneOpts)
	if err != nil {
		return nil, err
	}
	g.scene = s
	g.queries = newSpriteQueries(s.Storage())

	bounds := sceneOpts.Layout.Bounds()
	g.worldW, g.worldH = int(bounds.W), int(bounds.H)

	if g.backend != nil {
		scheduler := s.Scheduler()
		debugui.Install(scheduler)
		debugui.NewPerformanceStats(120).Spawn(scheduler)
		debugui.NewEntityInspector().Spawn(scheduler)
		spawnInspector(s)
		g.keyboard.Captured = func() bool {
			return debugui.KeyboardCaptured(s.Storage())
		}
		if opts.Logger != nil {
			opts.Logger.Info("debug overlay enabled")
		}
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.TPS)
	return g, nil
}

// Scene returns the hosted scene.
func (g *Game) Scene() *scene.Scene {
	return g.scene
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.backend != nil {
		g.backend.BeginFrame()
	}
	g.scene.Update(g.dt)
	if g.backend != nil {
		g.backend.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	sprites, captions := g.queries.collect()
	for _, s := range sprites {
		vector.DrawFilledRect(screen,
			float32(s.Rect.X), float32(s.Rect.Y), float32(s.Rect.W), float32(s.Rect.H),
			s.Color, false)
	}

	for _, c := range captions {
		op := &text.DrawOptions{}
		op.GeoM.Translate(c.Center.X, c.Center.Y)
		op.ColorScale.ScaleWithColor(c.Color)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, c.Text, g.labelFace, op)
	}

	hud := g.scene.HUD()
	g.drawText(screen, hud.Status, 100, 100, colorStatus)
	g.drawText(screen, hud.Coins, 100, 124, colorCoins)

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.statusFace, op)
}

// Layout keeps the logical screen at world size; ebiten scales it to the
// window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.worldW, g.worldH
}

// Run blocks until the window closes or Esc/Q is pressed.
func Run(g *Game) error {
	return ebiten.RunGame(g)
}
