package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/heartfield/internal/canvas"
	"github.com/iburimskiy/heartfield/internal/config"
	"github.com/iburimskiy/heartfield/internal/frame"
	"github.com/iburimskiy/heartfield/internal/music"
	"github.com/iburimskiy/heartfield/internal/page"
	"github.com/iburimskiy/heartfield/internal/particle"
)

// Options configures a Game.
type Options struct {
	Page  *page.Page
	Track music.Track // nil when no background music could be loaded
	Rand  particle.Rand

	Width, Height int // initial viewport size
}

// Game hosts the page, the particle overlay and the music control in an
// ebiten window.
type Game struct {
	page     *page.Page
	layout   page.Layout
	scroller *page.Scroller
	reveal   *page.Observer

	frames *frame.Loop
	canvas *canvas.Canvas
	field  *particle.Animator

	player *music.Player
	face   text.Face

	width, height int
	time          float64

	buttonHovered bool
	hoverLink     int

	lastErr error
	closed  bool
}

func New(opts Options) *Game {
	g := &Game{
		page:      opts.Page,
		layout:    opts.Page.Layout(config.NavHeight),
		scroller:  page.NewScroller(config.ScrollDuration),
		reveal:    page.NewObserver(config.RevealThreshold, config.RevealBottomMargin, config.RevealDuration),
		frames:    frame.NewLoop(),
		canvas:    canvas.New(opts.Width, opts.Height),
		player:    music.NewPlayer(opts.Track),
		face:      text.NewGoXFace(basicfont.Face7x13),
		width:     opts.Width,
		height:    opts.Height,
		hoverLink: -1,
	}

	for i, s := range g.page.Sections {
		if s.Reveal {
			g.reveal.Observe(s.ID, g.layout.Blocks[i])
		}
	}
	g.scroller.Resize(float64(g.height), g.layout.Height)

	g.field = particle.NewAnimator(g.canvas, g.frames, opts.Rand, particle.DefaultConfig())
	g.field.Start()
	g.player.Arm()

	return g
}

func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		if err := g.Close(); err != nil {
			log.Printf("[Game] Warning: teardown: %v", err)
		}
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.player.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.chooseTrack(); err != nil {
			g.lastErr = err
		}
	}
	g.handleScrollKeys()

	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = g.buttonRect().contains(mouseX, mouseY)
	g.hoverLink = g.linkAt(mouseX, mouseY)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(mouseX, mouseY)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scroller.ScrollBy(-dy * config.WheelStep)
	}

	g.step(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) handleScrollKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.scroller.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.scroller.ScrollTo(g.scroller.MaxOffset())
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.scroller.ScrollTo(g.scroller.Offset() + float64(g.height)*0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.scroller.ScrollTo(g.scroller.Offset() - float64(g.height)*0.9)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.scroller.ScrollBy(config.WheelStep / 4)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.scroller.ScrollBy(-config.WheelStep / 4)
	}
}

// step advances everything that moves by dt seconds and runs the frame
// callbacks, which tick the particle field.
func (g *Game) step(dt float64) {
	g.time += dt
	g.scroller.Update(dt)
	g.reveal.Check(g.scroller.Offset(), float64(g.height))
	g.reveal.Update(dt)
	g.frames.Advance()
}

// click routes a left click: the music control toggles playback, anything
// else counts as a page interaction, and nav links also scroll.
func (g *Game) click(x, y int) {
	if g.buttonRect().contains(x, y) {
		g.player.Toggle()
		return
	}
	g.player.Interact()
	if i := g.linkAt(x, y); i >= 0 {
		g.scrollToAnchor(g.page.Links[i].Href)
	}
}

func (g *Game) scrollToAnchor(href string) {
	i, ok := g.page.Anchor(href)
	if !ok {
		return
	}
	g.scroller.ScrollTo(g.layout.Blocks[i].Top - config.NavHeight)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if w != g.width || h != g.height {
		g.resize(w, h)
	}
	return w, h
}

func (g *Game) resize(w, h int) {
	if g.closed {
		return
	}
	g.width = w
	g.field.Resize(w, h)
	g.resizeView(h)
}

func (g *Game) resizeView(h int) {
	g.height = h
	g.scroller.Resize(float64(h), g.layout.Height)
}

func (g *Game) buttonRect() rect {
	return rect{
		x: float64(g.width - config.ButtonWidth - config.ButtonMargin),
		y: float64(g.height - config.ButtonHeight - config.ButtonMargin),
		w: config.ButtonWidth,
		h: config.ButtonHeight,
	}
}

const (
	linkPadding = 12.0
	linkStart   = 16.0
)

func (g *Game) linkRects() []rect {
	rects := make([]rect, len(g.page.Links))
	x := linkStart
	for i, l := range g.page.Links {
		w := text.Advance(l.Label, g.face) + 2*linkPadding
		rects[i] = rect{x: x, y: 0, w: w, h: config.NavHeight}
		x += w
	}
	return rects
}

func (g *Game) linkAt(x, y int) int {
	for i, r := range g.linkRects() {
		if r.contains(x, y) {
			return i
		}
	}
	return -1
}

// Close stops the particle field before its surface goes away and releases
// the music. Safe to call more than once.
func (g *Game) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	g.field.Stop()
	g.canvas.Dispose()
	return g.player.Close()
}
