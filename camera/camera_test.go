package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNewFitsWorld(t *testing.T) {
	cam := New(960, 600, 1920, 1200)

	if cam.X != 960 || cam.Y != 600 {
		t.Errorf("expected camera at world center (960, 600), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Scale() != 0.5 {
		t.Errorf("expected scale 0.5, got %f", cam.Scale())
	}

	// World corners land on the viewport corners.
	sx, sy := cam.WorldToScreen(0, 0)
	if !near(sx, 0) || !near(sy, 0) {
		t.Errorf("expected world origin at (0, 0), got (%f, %f)", sx, sy)
	}
	sx, sy = cam.WorldToScreen(1919, 1199)
	if !near(sx, 959.5) || !near(sy, 599.5) {
		t.Errorf("expected far corner at (959.5, 599.5), got (%f, %f)", sx, sy)
	}
}

func TestScaleLetterboxes(t *testing.T) {
	// Wider viewport than the world's aspect: height limits the scale.
	cam := New(2000, 600, 1920, 1200)
	if cam.Scale() != 0.5 {
		t.Errorf("expected scale 0.5, got %f", cam.Scale())
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 800, 1920, 1200)
	cam.SetZoom(2)
	cam.X, cam.Y = 300, 900

	testCases := []struct{ sx, sy float32 }{
		{640, 400},
		{100, 100},
		{1200, 700},
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		if wx < 0 || wx >= cam.WorldW || wy < 0 || wy >= cam.WorldH {
			t.Errorf("ScreenToWorld(%f, %f) = (%f, %f), outside world", tc.sx, tc.sy, wx, wy)
		}
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestToroidalWrap(t *testing.T) {
	cam := New(1280, 800, 1920, 1200)
	cam.SetZoom(2)
	cam.X = 100 // near left edge

	// A biot at the right edge is closer going left.
	sx, _ := cam.WorldToScreen(1900, 600)
	if sx >= 640 {
		t.Errorf("expected biot left of screen center, got x=%f", sx)
	}
	if !cam.IsVisible(1900, 600, 5) {
		t.Error("expected biot across the seam to be visible")
	}
}

func TestIsVisibleWhenZoomed(t *testing.T) {
	cam := New(1280, 800, 1920, 1200)
	cam.SetZoom(4)

	if !cam.IsVisible(cam.X, cam.Y, 1) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(cam.X+500, cam.Y, 1) {
		t.Error("far point should be culled at zoom 4")
	}
}

func TestPanWraps(t *testing.T) {
	cam := New(960, 600, 1920, 1200)
	cam.X = 10

	cam.Pan(-10, 0) // 20 world units at scale 0.5
	if !near(cam.X, 1910) {
		t.Errorf("expected X to wrap to 1910, got %f", cam.X)
	}
}

func TestZoomClamp(t *testing.T) {
	tests := []struct {
		name string
		set  float32
		want float32
	}{
		{"below fit", 0.5, 1},
		{"inside", 3, 3},
		{"above max", 100, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := New(960, 600, 1920, 1200)
			cam.SetZoom(tt.set)
			if cam.Zoom != tt.want {
				t.Errorf("SetZoom(%v) -> %v, want %v", tt.set, cam.Zoom, tt.want)
			}
		})
	}
}

func TestReset(t *testing.T) {
	cam := New(960, 600, 1920, 1200)
	cam.ZoomBy(3)
	cam.Pan(100, 50)
	cam.Reset()

	if cam.Zoom != 1 || cam.X != 960 || cam.Y != 600 {
		t.Errorf("Reset left camera at (%f, %f) zoom %f", cam.X, cam.Y, cam.Zoom)
	}
}
