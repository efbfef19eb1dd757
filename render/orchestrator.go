package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/star-defense/parameter"
)

// Shaker supplies the field offset for screen shake
type Shaker interface {
	Offset() (dx, dy int)
}

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	buffer    *Buffer
	renderers []rendererEntry
	regCount  int
	shake     Shaker
}

// NewOrchestrator creates an orchestrator sized to the screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	w, h := screen.Size()
	return &Orchestrator{
		screen:    screen,
		buffer:    NewBuffer(w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{renderer: r, priority: priority, index: o.regCount}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}
	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// SetShaker installs the screen shake source
func (o *Orchestrator) SetShaker(s Shaker) {
	o.shake = s
}

// Resize updates buffer dimensions and syncs the screen
func (o *Orchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Viewport is the current cell grid
func (o *Orchestrator) Viewport() Viewport {
	w, h := o.buffer.Size()
	return Viewport{Cols: w, Rows: h}
}

// RenderFrame composes all visible renderers and shows the result
func (o *Orchestrator) RenderFrame(ctx Context) {
	o.buffer.Clear()
	for _, e := range o.renderers {
		if v, ok := e.renderer.(VisibilityToggle); ok && !v.IsVisible() {
			continue
		}
		e.renderer.Render(ctx, o.buffer)
	}

	var dx, dy int
	if o.shake != nil {
		dx, dy = o.shake.Offset()
	}
	o.screen.Fill(' ', StyleField)
	o.buffer.Flush(o.screen, parameter.HUDRows, dx, dy)
	o.screen.Show()
}
