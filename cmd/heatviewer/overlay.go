package main

import (
	"image/color"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/HydrogenSpecificHeat/cmd/heatviewer/uihelpers"
	"github.com/iafilius/HydrogenSpecificHeat/src/render"
)

// hoverOverlay sits on top of the chart image and shows a guide line plus a tooltip for
// the curve sample nearest to the mouse.
type hoverOverlay struct {
	widget.BaseWidget
	state    *viewerState
	mouse    fyne.Position
	hovering bool
}

var _ desktop.Hoverable = (*hoverOverlay)(nil)

func newHoverOverlay(state *viewerState) *hoverOverlay {
	o := &hoverOverlay{state: state}
	o.ExtendBaseWidget(o)
	return o
}

func (o *hoverOverlay) MouseIn(e *desktop.MouseEvent) {
	o.hovering = true
	o.mouse = e.Position
	o.Refresh()
}

func (o *hoverOverlay) MouseMoved(e *desktop.MouseEvent) {
	o.mouse = e.Position
	o.Refresh()
}

func (o *hoverOverlay) MouseOut() {
	o.hovering = false
	o.Refresh()
}

func (o *hoverOverlay) CreateRenderer() fyne.WidgetRenderer {
	// transparent background gives the overlay a full hit-area for hover events
	bg := canvas.NewRectangle(color.RGBA{})
	guide := canvas.NewLine(color.RGBA{R: 120, G: 120, B: 120, A: 200})
	guide.StrokeWidth = 1
	dot := canvas.NewCircle(color.RGBA{R: 200, G: 30, B: 30, A: 230})
	labelBG := canvas.NewRectangle(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	line1 := canvas.NewText("", color.White)
	line2 := canvas.NewText("", color.White)
	line1.TextSize = 12
	line2.TextSize = 12
	return &hoverRenderer{
		o: o, bg: bg, guide: guide, dot: dot, labelBG: labelBG, line1: line1, line2: line2,
		objs: []fyne.CanvasObject{bg, guide, dot, labelBG, line1, line2},
	}
}

type hoverRenderer struct {
	o       *hoverOverlay
	bg      *canvas.Rectangle
	guide   *canvas.Line
	dot     *canvas.Circle
	labelBG *canvas.Rectangle
	line1   *canvas.Text
	line2   *canvas.Text
	objs    []fyne.CanvasObject
}

func (r *hoverRenderer) Destroy() {}

func (r *hoverRenderer) MinSize() fyne.Size { return fyne.NewSize(0, 0) }

func (r *hoverRenderer) Objects() []fyne.CanvasObject { return r.objs }

func (r *hoverRenderer) Refresh() {
	r.Layout(r.o.Size())
	for _, obj := range r.objs {
		canvas.Refresh(obj)
	}
}

func (r *hoverRenderer) hide() {
	off := fyne.NewPos(-1000, -1000)
	r.guide.Position1 = off
	r.guide.Position2 = off
	r.dot.Move(off)
	r.labelBG.Resize(fyne.NewSize(0, 0))
	r.labelBG.Move(off)
	r.line1.Move(off)
	r.line2.Move(off)
}

func (r *hoverRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	st := r.o.state
	if !r.o.hovering || st == nil || st.rendered == nil || st.rendered.Image == nil {
		r.hide()
		return
	}
	b := st.rendered.Image.Bounds()
	imgW, imgH := float32(b.Dx()), float32(b.Dy())
	ix, iy, ok := uihelpers.ViewToImage(r.o.mouse.X, r.o.mouse.Y, imgW, imgH, size.Width, size.Height)
	g := st.rendered.Geometry
	if !ok || !g.Contains(float64(ix), float64(iy)) {
		r.hide()
		return
	}
	sample, text, ok := render.Hover(g, st.samples, float64(ix))
	if !ok {
		r.hide()
		return
	}

	px := float32(g.PixelX(sample.Temperature))
	py := float32(g.PixelY(sample.SpecificHeat))
	gx, gTop := uihelpers.ImageToView(px, float32(g.Plot.Top), imgW, imgH, size.Width, size.Height)
	_, gBottom := uihelpers.ImageToView(px, float32(g.Plot.Bottom), imgW, imgH, size.Width, size.Height)
	dx, dy := uihelpers.ImageToView(px, py, imgW, imgH, size.Width, size.Height)

	r.guide.Position1 = fyne.NewPos(gx, gTop)
	r.guide.Position2 = fyne.NewPos(gx, gBottom)
	const dotSize = 8
	r.dot.Resize(fyne.NewSize(dotSize, dotSize))
	r.dot.Move(fyne.NewPos(dx-dotSize/2, dy-dotSize/2))

	parts := strings.SplitN(text, "\n", 2)
	r.line1.Text = parts[0]
	r.line2.Text = ""
	if len(parts) > 1 {
		r.line2.Text = parts[1]
	}
	s1, s2 := r.line1.MinSize(), r.line2.MinSize()
	const pad = 4
	boxW := s1.Width
	if s2.Width > boxW {
		boxW = s2.Width
	}
	boxW += 2 * pad
	boxH := s1.Height + s2.Height + 2*pad

	// keep the tooltip inside the overlay, flipping to the left of the cursor near the edge
	lx := r.o.mouse.X + 12
	if lx+boxW > size.Width {
		lx = r.o.mouse.X - 12 - boxW
	}
	ly := r.o.mouse.Y - boxH - 8
	if ly < 0 {
		ly = r.o.mouse.Y + 12
	}
	r.labelBG.Resize(fyne.NewSize(boxW, boxH))
	r.labelBG.Move(fyne.NewPos(lx, ly))
	r.line1.Move(fyne.NewPos(lx+pad, ly+pad))
	r.line2.Move(fyne.NewPos(lx+pad, ly+pad+s1.Height))
}
