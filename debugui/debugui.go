// Package debugui draws Dear ImGui debug windows over a running scene.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bthesorceror/canvas-experiments/frame"
	"github.com/bthesorceror/canvas-experiments/scene"
)

// Overlay owns the ImGui ebiten backend and the debug windows.
type Overlay struct {
	backend   *ebitenbackend.EbitenBackend
	inspector *Inspector
	stats     *PerformanceStats
}

// NewOverlay creates the ImGui backend and its window. Call it before
// ebiten.RunGame.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		backend:   backend,
		inspector: NewInspector(),
		stats:     NewPerformanceStats(120),
	}
}

// Update builds this frame's windows. Call it once per ebiten Update.
func (o *Overlay) Update(s *scene.Scene, driver *frame.Driver, deltaTime float32) {
	o.backend.BeginFrame()
	o.inspector.Render(s)
	o.stats.Render(driver.Stats(), deltaTime)
	o.backend.EndFrame()
}

// Draw renders the windows on top of screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}

// WantsKeyboard reports whether ImGui is consuming keyboard input, in
// which case the scene should not react to it.
func (o *Overlay) WantsKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}
