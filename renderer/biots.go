package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/biots/camera"
	"github.com/pthm-cable/biots/traits"
)

// Background is the clear color behind the world.
var Background = rl.Color{R: 0, G: 0, B: 25, A: 255}

// BodyScale converts trait weight to drawn radius in world units.
const BodyScale = 7

// BiotRenderer draws biots as concentric trait rings through a camera.
type BiotRenderer struct {
	cam *camera.Camera
}

// NewBiotRenderer creates a renderer drawing through cam.
func NewBiotRenderer(cam *camera.Camera) *BiotRenderer {
	return &BiotRenderer{cam: cam}
}

// Draw renders one biot. Rings from outside in: full body (green),
// attack+defense+motion (red), defense+motion (dark blue), motion (blue).
// Intelligent biots sit on a green square.
func (r *BiotRenderer) Draw(x, y float32, t traits.Traits) {
	weight := t.Weight()
	// The square's half-diagonal bounds everything drawn.
	if !r.cam.IsVisible(x, y, 1.5*BodyScale*weight) {
		return
	}

	sx, sy := r.cam.WorldToScreen(x, y)
	center := rl.Vector2{X: sx, Y: sy}
	unit := BodyScale * r.cam.Scale()

	if t.Intelligent() {
		size := 2 * unit * weight
		rl.DrawRectangleV(
			rl.Vector2{X: sx - size/2, Y: sy - size/2},
			rl.Vector2{X: size, Y: size},
			rl.Green,
		)
	}

	rl.DrawCircleV(center, unit*weight, rl.Green)
	rl.DrawCircleV(center, unit*(t.Attack+t.Defense+t.Motion), rl.Red)
	rl.DrawCircleV(center, unit*(t.Defense+t.Motion), rl.DarkBlue)
	rl.DrawCircleV(center, unit*t.Motion, rl.Blue)
}
