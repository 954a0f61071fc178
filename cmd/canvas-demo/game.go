package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bthesorceror/canvas-experiments/canvas"
	"github.com/bthesorceror/canvas-experiments/debugui"
	"github.com/bthesorceror/canvas-experiments/frame"
	"github.com/bthesorceror/canvas-experiments/scene"
)

// Game drives a scene from ebiten: it measures frame time, pauses while
// the window is unfocused and maps a few keys to scene controls.
type Game struct {
	sceneName string
	scene     *scene.Scene
	keyboard  *canvas.Keyboard
	canvas    *canvas.Canvas
	driver    *frame.Driver
	watcher   *scene.Watcher
	overlay   *debugui.Overlay

	lastUpdate time.Time
	boxes      bool
}

func NewGame(sceneName string) (*Game, error) {
	g := &Game{
		sceneName: sceneName,
		keyboard:  canvas.NewKeyboard(),
		canvas:    canvas.NewCanvas(nil),
		driver:    frame.NewDriver(),
	}

	s, err := g.build()
	if err != nil {
		return nil, err
	}
	g.scene = s

	g.driver.Register(frame.Named("scene", frame.SystemFunc(func(f *frame.Frame) {
		g.scene.Execute(f)
	})))

	return g, nil
}

func (g *Game) build() (*scene.Scene, error) {
	def, err := scene.LoadDefinition(g.sceneName)
	if err != nil {
		return nil, err
	}
	return scene.Build(def, g.keyboard.Keys())
}

// Watch reloads the scene whenever its file on disk changes.
func (g *Game) Watch() error {
	if _, err := os.Stat(g.sceneName); err != nil {
		return fmt.Errorf("scene is not on disk: %w", err)
	}

	w, err := scene.NewWatcher(filepath.Dir(g.sceneName))
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) reloadIfChanged() {
	if g.watcher == nil {
		return
	}

	select {
	case name := <-g.watcher.Events:
		if filepath.Clean(name) != filepath.Clean(g.sceneName) {
			return
		}
		s, err := g.build()
		if err != nil {
			log.Printf("keeping previous scene, reload of %s failed: %v", name, err)
			return
		}
		g.scene = s
		g.scene.SetBoundingBoxes(g.boxes)
		log.Printf("reloaded scene %q", s.Name)
	case err := <-g.watcher.Errors:
		log.Printf("scene watcher: %v", err)
	default:
	}
}

func (g *Game) handleInput() error {
	if g.overlay != nil && g.overlay.WantsKeyboard() {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if groups := g.scene.Groups(); len(groups) > 0 {
			if _, err := g.scene.Cycle(groups[0]); err != nil {
				log.Printf("cycle %s: %v", groups[0], err)
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.boxes = !g.boxes
		g.scene.SetBoundingBoxes(g.boxes)
	}

	return nil
}

func (g *Game) Update() error {
	now := time.Now()
	if g.lastUpdate.IsZero() {
		g.lastUpdate = now
	}

	if !ebiten.IsFocused() {
		g.driver.Pause()
		g.lastUpdate = now
		g.updateOverlay(0)
		return nil
	}
	if g.driver.Paused() {
		g.driver.Resume()
		g.lastUpdate = now
	}

	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now

	g.reloadIfChanged()

	if err := g.handleInput(); err != nil {
		return err
	}

	g.driver.Once(dt)
	g.updateOverlay(dt)

	return nil
}

func (g *Game) updateOverlay(dt float64) {
	if g.overlay != nil {
		g.overlay.Update(g.scene, g.driver, float32(dt))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Reset(screen)
	g.scene.Draw(g.canvas)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  [Tab] switch  [B] boxes", ebiten.ActualFPS()))

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return g.scene.Width, g.scene.Height
}
