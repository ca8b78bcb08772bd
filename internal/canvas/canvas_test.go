package canvas

import (
	"image/color"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// The tests use zero-sized canvases, which own no GPU image. Vertex output
// is checked through shade directly.

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCanvasZeroSizeIsInert(t *testing.T) {
	c := New(0, 0)

	if c.Image() != nil {
		t.Fatal("zero-sized canvas allocated an image")
	}
	w, h := c.Size()
	if w != 0 || h != 0 {
		t.Errorf("Size: got (%v, %v), want (0, 0)", w, h)
	}

	// None of these may panic.
	c.ClearRect(0, 0, 100, 100)
	c.SetFillColor(color.RGBA{R: 255, A: 255})
	c.FillRect(-5, -5, 10, 10)
	c.FillBezier(Point{0, 1}, Cubic{Point{-1, -1}, Point{-1, -2}, Point{0, -2}})
	c.Dispose()
	c.Dispose()
}

func TestCanvasNegativeResizeClamps(t *testing.T) {
	c := New(0, 0)
	c.Resize(-10, -20)

	w, h := c.Size()
	if w != 0 || h != 0 {
		t.Errorf("Size: got (%v, %v), want (0, 0)", w, h)
	}
}

func TestCanvasTranslateThenRotate(t *testing.T) {
	c := New(0, 0)

	c.Translate(100, 50)
	c.Rotate(math.Pi / 2)

	// Local +x points down after a quarter turn, origin sits at the translation.
	x, y := c.Apply(10, 0)
	if !near(x, 100) || !near(y, 60) {
		t.Errorf("Apply(10, 0): got (%v, %v), want (100, 60)", x, y)
	}
	x, y = c.Apply(0, 0)
	if !near(x, 100) || !near(y, 50) {
		t.Errorf("Apply(0, 0): got (%v, %v), want (100, 50)", x, y)
	}
}

func TestCanvasSaveRestore(t *testing.T) {
	c := New(0, 0)
	c.SetGlobalAlpha(0.5)

	c.Save()
	c.Translate(30, 40)
	c.SetGlobalAlpha(0.25)
	if c.Depth() != 1 {
		t.Errorf("Depth after Save: got %d, want 1", c.Depth())
	}
	c.Restore()

	x, y := c.Apply(1, 2)
	if !near(x, 1) || !near(y, 2) {
		t.Errorf("Apply after Restore: got (%v, %v), want (1, 2)", x, y)
	}
	if c.Alpha() != 0.5 {
		t.Errorf("Alpha after Restore: got %v, want 0.5", c.Alpha())
	}
	if c.Depth() != 0 {
		t.Errorf("Depth after Restore: got %d, want 0", c.Depth())
	}
}

func TestCanvasRestoreWithoutSave(t *testing.T) {
	c := New(0, 0)
	c.Translate(5, 5)
	c.Restore()

	x, y := c.Apply(0, 0)
	if !near(x, 5) || !near(y, 5) {
		t.Errorf("unbalanced Restore changed the transform: got (%v, %v)", x, y)
	}
}

func TestCanvasGlobalAlphaRange(t *testing.T) {
	tests := []struct {
		name string
		set  float64
		want float64
	}{
		{"in range", 0.3, 0.3},
		{"zero", 0, 0},
		{"one", 1, 1},
		{"negative ignored", -0.5, 1},
		{"above one ignored", 1.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0, 0)
			c.SetGlobalAlpha(tt.set)
			if c.Alpha() != tt.want {
				t.Errorf("Alpha: got %v, want %v", c.Alpha(), tt.want)
			}
		})
	}
}

func TestCanvasSetFillColorStraightAlpha(t *testing.T) {
	c := New(0, 0)

	// Premultiplied half-transparent red.
	c.SetFillColor(color.RGBA{R: 0x80, A: 0x80})
	if f := c.state.fill; f[0] != 1 || f[1] != 0 || f[2] != 0 || math.Abs(float64(f[3])-0x80/255.0) > 1e-3 {
		t.Errorf("fill: got %v, want [1 0 0 ~0.5]", f)
	}

	c.SetFillColor(color.Transparent)
	if f := c.state.fill; f != [4]float32{} {
		t.Errorf("transparent fill: got %v, want zero", f)
	}
}

func TestShadeTransformsAndColors(t *testing.T) {
	c := New(0, 0)
	c.Translate(100, 50)
	c.Rotate(math.Pi / 2)
	c.SetGlobalAlpha(0.5)
	c.SetFillColor(color.RGBA{R: 0xFF, G: 0x69, B: 0xB4, A: 0xFF})

	vertices := []ebiten.Vertex{
		{DstX: 0, DstY: 0},
		{DstX: 10, DstY: 0},
		{DstX: 0, DstY: -4, SrcX: 7, SrcY: 9},
	}
	shade(vertices, c.state)

	want := [][2]float64{{100, 50}, {100, 60}, {104, 50}}
	for i, v := range vertices {
		if !near32(v.DstX, want[i][0]) || !near32(v.DstY, want[i][1]) {
			t.Errorf("vertex %d: got (%v, %v), want (%v, %v)", i, v.DstX, v.DstY, want[i][0], want[i][1])
		}
		if v.SrcX != 1 || v.SrcY != 1 {
			t.Errorf("vertex %d source: got (%v, %v), want (1, 1)", i, v.SrcX, v.SrcY)
		}
		if v.ColorR != 1 || !near32(v.ColorG, 0x69/255.0) || !near32(v.ColorB, 0xB4/255.0) {
			t.Errorf("vertex %d color: got (%v, %v, %v)", i, v.ColorR, v.ColorG, v.ColorB)
		}
		if v.ColorA != 0.5 {
			t.Errorf("vertex %d alpha: got %v, want 0.5", i, v.ColorA)
		}
	}
}

func TestShadeCombinesFillAndGlobalAlpha(t *testing.T) {
	c := New(0, 0)
	c.SetGlobalAlpha(0.5)
	c.SetFillColor(color.RGBA{R: 0x80, A: 0x80})

	vertices := []ebiten.Vertex{{DstX: 3, DstY: 4}}
	shade(vertices, c.state)

	v := vertices[0]
	if v.DstX != 3 || v.DstY != 4 {
		t.Errorf("identity transform moved the vertex to (%v, %v)", v.DstX, v.DstY)
	}
	if v.ColorR != 1 {
		t.Errorf("red: got %v, want straight 1", v.ColorR)
	}
	if !near32(v.ColorA, 0.5*0x80/255.0) {
		t.Errorf("alpha: got %v, want %v", v.ColorA, 0.5*0x80/255.0)
	}
}

func near32(a float32, b float64) bool {
	return math.Abs(float64(a)-b) < 1e-4
}
