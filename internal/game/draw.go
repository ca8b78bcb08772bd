package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/heartfield/internal/config"
)

var (
	cardColor    = color.RGBA{R: 255, G: 250, B: 252, A: 230}
	headingColor = color.RGBA{R: 0xD6, G: 0x33, B: 0x84, A: 255}
	bodyColor    = color.RGBA{R: 0x5A, G: 0x3A, B: 0x4A, A: 255}
	navColor     = withAlpha(color.RGBA{R: 255, G: 255, B: 255, A: 255}, 220.0/255)
	navHover     = color.RGBA{R: 0xFF, G: 0xD6, B: 0xE8, A: 255}
	buttonBase   = color.RGBA{R: 0xFF, G: 0x69, B: 0xB4, A: 255}
	buttonHover  = color.RGBA{R: 0xFF, G: 0x14, B: 0x93, A: 255}
)

const (
	cardMargin   = 48.0
	headingScale = 2.0
	bodyScale    = 1.4
	bandHeight   = 8
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawSections(screen)

	// Particle overlay
	if img := g.canvas.Image(); img != nil {
		screen.DrawImage(img, nil)
	}

	g.drawNav(screen)
	g.drawButton(screen)

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, g.height-20)
	}
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	// Slowly shifting pink gradient, drawn in bands
	for y := 0; y < g.height; y += bandHeight {
		ratio := float64(y) / float64(g.height)
		hue := 330 + 15*math.Sin(g.time*0.2+ratio*math.Pi)
		r, gv, b := hsvToRgb(hue, 0.12+0.08*ratio, 1)
		vector.DrawFilledRect(screen, 0, float32(y), float32(g.width), bandHeight, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

func (g *Game) drawSections(screen *ebiten.Image) {
	offset := g.scroller.Offset()
	for i, s := range g.page.Sections {
		block := g.layout.Blocks[i]
		top := block.Top - offset
		if top > float64(g.height) || top+block.Height < 0 {
			continue
		}

		p := g.reveal.Progress(s.ID)
		if p <= 0 {
			continue
		}
		top += (1 - p) * config.RevealSlide

		vector.DrawFilledRect(screen,
			float32(cardMargin), float32(top),
			float32(float64(g.width)-2*cardMargin), float32(block.Height),
			withAlpha(cardColor, p), true)

		y := top + config.SectionPadding
		g.drawText(screen, s.Heading, cardMargin+config.SectionPadding, y, headingScale, withAlpha(headingColor, p))
		y += config.HeadingHeight
		for _, line := range s.Lines {
			g.drawText(screen, line, cardMargin+config.SectionPadding, y, bodyScale, withAlpha(bodyColor, p))
			y += config.LineHeight
		}
	}
}

func (g *Game) drawNav(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), config.NavHeight, navColor, false)
	for i, r := range g.linkRects() {
		if i == g.hoverLink {
			vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), navHover, false)
		}
		g.drawText(screen, g.page.Links[i].Label, r.x+linkPadding, r.y+(r.h-13)/2, 1, headingColor)
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	r := g.buttonRect()

	// Glow follows the playback level.
	if level := g.player.Level(); level > 0 {
		pulse := float32(6 + 10*level)
		glow := withAlpha(buttonBase, 0.25+0.35*level)
		vector.DrawFilledRect(screen, float32(r.x)-pulse, float32(r.y)-pulse, float32(r.w)+2*pulse, float32(r.h)+2*pulse, glow, true)
	}

	bg := buttonBase
	if g.buttonHovered {
		bg = buttonHover
	}
	vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), bg, true)
	vector.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), 2, color.White, true)

	label := g.player.Label()
	if g.player.HasTrack() && g.player.Playing() {
		label += "  " + formatDuration(g.player.Position())
	}
	w := text.Advance(label, g.face)
	g.drawText(screen, label, r.x+(r.w-w)/2, r.y+(r.h-13)/2, 1, color.White)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}
