package render

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/iafilius/HydrogenSpecificHeat/src/heat"
)

// DrawCaption draws a small caption onto img near the bottom-left corner.
func DrawCaption(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 4
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 40, G: 40, B: 40, A: 255})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	// light backing so the caption stays readable over gridlines
	bg := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 220})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

// ResidualCaption summarizes how far the model sits from the experimental table.
func ResidualCaption() string {
	rs := heat.Residuals(heat.DefaultParams, heat.ExperimentalPoints())
	return "sigmoid vs experiment: RMS " + FormatValue(heat.RMS(rs)) + " C/R over " + strconv.Itoa(len(rs)) + " points"
}
