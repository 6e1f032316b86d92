package components

import (
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData tracks the top-left corner of the view in world space.
type CameraData struct {
	Position math.Vec2
	Width    float64
	Height   float64
	Zoom     float64
}

// View returns the visible world rect.
func (c *CameraData) View() gamemath.Rect {
	zoom := c.zoom()
	return gamemath.NewRect(c.Position.X, c.Position.Y, c.Width/zoom, c.Height/zoom)
}

// WorldToScreen converts a world point to screen pixels.
func (c *CameraData) WorldToScreen(p gamemath.Vector2) gamemath.Vector2 {
	zoom := c.zoom()
	return gamemath.Vector2{X: (p.X - c.Position.X) * zoom, Y: (p.Y - c.Position.Y) * zoom}
}

// ScreenToWorld converts screen pixels to a world point.
func (c *CameraData) ScreenToWorld(p gamemath.Vector2) gamemath.Vector2 {
	zoom := c.zoom()
	return gamemath.Vector2{X: p.X/zoom + c.Position.X, Y: p.Y/zoom + c.Position.Y}
}

func (c *CameraData) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

var Camera = donburi.NewComponentType[CameraData]()
