package render

import (
	"time"

	"github.com/lixenwraith/star-defense/engine"
)

// Context is the read-only frame state handed to every renderer
type Context struct {
	Game  *engine.Game
	View  Viewport
	Phase engine.Phase
	Debug bool
	// Wall time since start, drives blink and spin animations independent of pause
	Now time.Duration
}

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx Context, buf *Buffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
