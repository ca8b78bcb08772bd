package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteSubImage *ebiten.Image

// whitePixel returns a 1x1 white source image for DrawTriangles. The inner
// pixel of a 3x3 image is used so that filtering never samples outside it.
func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

type drawState struct {
	geom  ebiten.GeoM
	alpha float64
	fill  [4]float32 // straight RGBA
}

func defaultState() drawState {
	return drawState{alpha: 1, fill: [4]float32{0, 0, 0, 1}}
}

// Canvas is a Surface backed by an offscreen ebiten image. A canvas with a
// zero dimension owns no image and ignores drawing.
type Canvas struct {
	img    *ebiten.Image
	width  int
	height int

	state drawState
	stack []drawState

	vertices []ebiten.Vertex
	indices  []uint16
}

func New(width, height int) *Canvas {
	c := &Canvas{state: defaultState()}
	c.Resize(width, height)
	return c
}

func (c *Canvas) Size() (float64, float64) {
	return float64(c.width), float64(c.height)
}

// Resize replaces the backing image. Contents and transform state are reset.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if c.img != nil && width == c.width && height == c.height {
		return
	}
	c.Dispose()
	c.width, c.height = width, height
	c.state = defaultState()
	c.stack = c.stack[:0]
	if width > 0 && height > 0 {
		c.img = ebiten.NewImage(width, height)
	}
}

// Image returns the backing image, nil for a zero-sized canvas.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

func (c *Canvas) Dispose() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
}

func (c *Canvas) ClearRect(x, y, width, height float64) {
	if c.img == nil {
		return
	}
	r := image.Rect(int(x), int(y), int(x+width), int(y+height)).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	if r == c.img.Bounds() {
		c.img.Clear()
		return
	}
	c.img.SubImage(r).(*ebiten.Image).Clear()
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the last saved state. Restoring with nothing saved is a no-op.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	m.Concat(c.state.geom)
	c.state.geom = m
}

func (c *Canvas) Rotate(theta float64) {
	var m ebiten.GeoM
	m.Rotate(theta)
	m.Concat(c.state.geom)
	c.state.geom = m
}

func (c *Canvas) SetGlobalAlpha(alpha float64) {
	if alpha < 0 || alpha > 1 {
		// Out-of-range values are ignored, the current alpha stays.
		return
	}
	c.state.alpha = alpha
}

func (c *Canvas) SetFillColor(clr color.Color) {
	r, g, b, a := clr.RGBA()
	if a == 0 {
		c.state.fill = [4]float32{}
		return
	}
	c.state.fill = [4]float32{
		float32(r) / float32(a),
		float32(g) / float32(a),
		float32(b) / float32(a),
		float32(a) / 0xffff,
	}
}

// Apply maps a point in the current local frame to surface coordinates.
func (c *Canvas) Apply(x, y float64) (float64, float64) {
	return c.state.geom.Apply(x, y)
}

// Alpha returns the current global alpha.
func (c *Canvas) Alpha() float64 {
	return c.state.alpha
}

// Depth returns the number of saved states.
func (c *Canvas) Depth() int {
	return len(c.stack)
}

func (c *Canvas) FillBezier(start Point, curves ...Cubic) {
	if c.img == nil {
		return
	}
	var path vector.Path
	path.MoveTo(float32(start.X), float32(start.Y))
	for _, cv := range curves {
		path.CubicTo(
			float32(cv.C1.X), float32(cv.C1.Y),
			float32(cv.C2.X), float32(cv.C2.Y),
			float32(cv.To.X), float32(cv.To.Y),
		)
	}
	path.Close()
	c.fillPath(&path)
}

func (c *Canvas) FillRect(x, y, width, height float64) {
	if c.img == nil || width <= 0 || height <= 0 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(x), float32(y))
	path.LineTo(float32(x+width), float32(y))
	path.LineTo(float32(x+width), float32(y+height))
	path.LineTo(float32(x), float32(y+height))
	path.Close()
	c.fillPath(&path)
}

func (c *Canvas) fillPath(path *vector.Path) {
	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	if len(c.indices) == 0 {
		return
	}

	shade(c.vertices, c.state)

	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.NonZero,
		AntiAlias: true,
	}
	c.img.DrawTriangles(c.vertices, c.indices, whitePixel(), op)
}

// shade maps tessellated vertices from the local frame to surface
// coordinates and paints them with the fill color scaled by the global alpha.
// Sources point at the white pixel.
func shade(vertices []ebiten.Vertex, st drawState) {
	alpha := st.fill[3] * float32(st.alpha)
	for i := range vertices {
		v := &vertices[i]
		dx, dy := st.geom.Apply(float64(v.DstX), float64(v.DstY))
		v.DstX, v.DstY = float32(dx), float32(dy)
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = st.fill[0]
		v.ColorG = st.fill[1]
		v.ColorB = st.fill[2]
		v.ColorA = alpha
	}
}
