package page

import "github.com/iburimskiy/heartfield/internal/config"

// Block is the vertical extent of a section in page coordinates.
type Block struct {
	Top    float64
	Height float64
}

func (b Block) Bottom() float64 {
	return b.Top + b.Height
}

// Layout is the result of stacking the sections.
type Layout struct {
	Blocks []Block
	Height float64 // total content height
}

// Layout stacks the sections vertically starting at top.
func (p *Page) Layout(top float64) Layout {
	l := Layout{Blocks: make([]Block, len(p.Sections))}
	y := top
	for i, s := range p.Sections {
		h := 2*config.SectionPadding + config.HeadingHeight + float64(len(s.Lines))*config.LineHeight
		l.Blocks[i] = Block{Top: y, Height: h}
		y += h + config.SectionGap
	}
	l.Height = y
	return l
}
