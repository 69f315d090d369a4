package mapraster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type alignment uint8

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

// drawText paints s in black with the builtin 7x13 face; (x, y) is
// the baseline position, interpreted according to align.
func (f *Figure) drawText(s string, x, y float64, align alignment) {
	d := font.Drawer{
		Dst:  f.img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(x+0.5), int(y+0.5)),
	}
	switch align {
	case alignCenter:
		d.Dot.X -= d.MeasureString(s) / 2
	case alignRight:
		d.Dot.X -= d.MeasureString(s)
	}
	d.DrawString(s)
}
