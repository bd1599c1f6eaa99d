// Package camera maps the toroidal world onto the window.
package camera

import "math"

// Camera fits the whole world to the viewport at zoom 1 and magnifies
// around a movable center above that. Views wrap across world edges.
type Camera struct {
	// Center of the view in world coordinates
	X, Y float32

	// Magnification over the fitted scale (1 = whole world visible)
	Zoom    float32
	MaxZoom float32

	ViewportW, ViewportH float32
	WorldW, WorldH       float32
}

// New creates a camera showing the whole world.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	return &Camera{
		X:         worldW / 2,
		Y:         worldH / 2,
		Zoom:      1,
		MaxZoom:   8,
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
	}
}

// Scale returns screen pixels per world unit.
func (c *Camera) Scale() float32 {
	return min(c.ViewportW/c.WorldW, c.ViewportH/c.WorldH) * c.Zoom
}

// WorldToScreen converts world coordinates to screen coordinates, taking
// the shorter way around each axis.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	s := c.Scale()
	sx = c.ViewportW/2 + toroidalDelta(wx, c.X, c.WorldW)*s
	sy = c.ViewportH/2 + toroidalDelta(wy, c.Y, c.WorldH)*s
	return sx, sy
}

// ScreenToWorld converts screen coordinates to wrapped world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	s := c.Scale()
	wx = wrap(c.X+(sx-c.ViewportW/2)/s, c.WorldW)
	wy = wrap(c.Y+(sy-c.ViewportH/2)/s, c.WorldH)
	return wx, wy
}

// IsVisible reports whether a circle of the given world radius at (wx, wy)
// may overlap the viewport.
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	s := c.Scale()
	halfW := c.ViewportW/(2*s) + radius
	halfH := c.ViewportH/(2*s) + radius
	return absf(toroidalDelta(wx, c.X, c.WorldW)) <= halfW &&
		absf(toroidalDelta(wy, c.Y, c.WorldH)) <= halfH
}

// Resize updates the viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan moves the view by a delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	s := c.Scale()
	c.X = wrap(c.X+dx/s, c.WorldW)
	c.Y = wrap(c.Y+dy/s, c.WorldH)
}

// SetZoom sets the zoom level, clamped to [1, MaxZoom].
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = min(max(zoom, 1), c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset shows the whole world again.
func (c *Camera) Reset() {
	c.X = c.WorldW / 2
	c.Y = c.WorldH / 2
	c.Zoom = 1
}

// toroidalDelta computes the shortest signed distance from 'from' to 'to'
// in a toroidal space of the given size.
func toroidalDelta(to, from, size float32) float32 {
	d := to - from
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

// wrap maps x into [0, m).
func wrap(x, m float32) float32 {
	r := float32(math.Mod(float64(x), float64(m)))
	if r < 0 {
		r += m
	}
	if r >= m {
		r -= m
	}
	return r
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
