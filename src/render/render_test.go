package render

import (
	"bytes"
	"image"
	_ "image/png" // register PNG decoder
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"
)

func seriesByName(t *testing.T, ch chart.Chart, name string) chart.ContinuousSeries {
	t.Helper()
	for _, s := range ch.Series {
		if cs, ok := s.(chart.ContinuousSeries); ok && cs.Name == name {
			return cs
		}
	}
	t.Fatalf("series %q not found", name)
	return chart.ContinuousSeries{}
}

func TestBuildChart_AxesAndSeries(t *testing.T) {
	ch, err := BuildChart(DefaultOptions())
	require.NoError(t, err)

	xr, ok := ch.XAxis.Range.(*chart.ContinuousRange)
	require.True(t, ok)
	assert.Equal(t, 0.0, xr.Min)
	assert.Equal(t, 300.0, xr.Max)
	yr, ok := ch.YAxis.Range.(*chart.ContinuousRange)
	require.True(t, ok)
	assert.Equal(t, 1.5, yr.Min)
	assert.Equal(t, 2.5, yr.Max)

	var xs []float64
	for _, tk := range ch.XAxis.Ticks {
		xs = append(xs, tk.Value)
	}
	assert.Equal(t, []float64{0, 50, 100, 150, 200, 250, 300}, xs)
	var ylabels []string
	for _, tk := range ch.YAxis.Ticks {
		ylabels = append(ylabels, tk.Label)
	}
	assert.Equal(t, []string{"1.5", "2.0", "2.5"}, ylabels)

	require.Len(t, ch.Series, 2)
	model := seriesByName(t, ch, SeriesModel)
	assert.Len(t, model.XValues, 301)
	assert.Len(t, model.YValues, 301)
	assert.Equal(t, 2.0, model.Style.StrokeWidth)
	exp := seriesByName(t, ch, SeriesExperimental)
	assert.Len(t, exp.XValues, 12)
	assert.Equal(t, float64(chart.Disabled), exp.Style.StrokeWidth)
}

func TestBuildChart_OptionalSeries(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowExperimental = false
	ch, err := BuildChart(opts)
	require.NoError(t, err)
	assert.Len(t, ch.Series, 1)

	opts.ShowReference = true
	ch, err = BuildChart(opts)
	require.NoError(t, err)
	require.Len(t, ch.Series, 2)
	ref := seriesByName(t, ch, SeriesReference)
	assert.Len(t, ref.XValues, 301)
}

func TestBuildChart_InvalidSize(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 0
	_, err := BuildChart(opts)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestRenderImage_SizeAndPlotBox(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 900, 360
	r, err := RenderImage(opts)
	require.NoError(t, err)
	b := r.Image.Bounds()
	assert.Equal(t, 900, b.Dx())
	assert.Equal(t, 360, b.Dy())

	g := r.Geometry
	require.True(t, g.Valid())
	assert.GreaterOrEqual(t, g.Plot.Left, 0)
	assert.LessOrEqual(t, g.Plot.Right, 900)
	assert.GreaterOrEqual(t, g.Plot.Top, 0)
	assert.LessOrEqual(t, g.Plot.Bottom, 360)
}

func TestRender_PNGAndSVG(t *testing.T) {
	var png bytes.Buffer
	require.NoError(t, Render(&png, FormatPNG, DefaultOptions()))
	img, format, err := image.Decode(&png)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, DefaultWidth, img.Bounds().Dx())

	var svg bytes.Buffer
	opts := DefaultOptions()
	opts.Caption = "ignored"
	require.NoError(t, Render(&svg, FormatSVG, opts))
	assert.True(t, strings.Contains(svg.String(), "<svg"))

	err = Render(&svg, Format("gif"), opts)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteFile_CreatesDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "heat.png")
	opts := DefaultOptions()
	opts.Caption = ResidualCaption()
	require.NoError(t, WriteFile(out, FormatPNG, opts))
	st, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(0))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" SVG ")
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, f)
	_, err = ParseFormat("jpeg")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, FormatSVG, FormatFromPath("out/chart.SVG"))
	assert.Equal(t, FormatPNG, FormatFromPath("chart"))
}

func TestDrawCaption_KeepsBounds(t *testing.T) {
	base := Blank(400, 200)
	out := DrawCaption(base, "hello")
	assert.Equal(t, base.Bounds(), out.Bounds())
	assert.Same(t, base, DrawCaption(base, "  "))
	assert.Contains(t, ResidualCaption(), "12 points")
}

func TestBuildChart_GridLineAtEveryInteriorTick(t *testing.T) {
	ch, err := BuildChart(DefaultOptions())
	require.NoError(t, err)
	var xs, ys []float64
	for _, gl := range ch.XAxis.GridLines {
		assert.False(t, gl.IsMinor)
		xs = append(xs, gl.Value)
	}
	for _, gl := range ch.YAxis.GridLines {
		ys = append(ys, gl.Value)
	}
	assert.Equal(t, []float64{50, 100, 150, 200, 250}, xs)
	assert.Equal(t, []float64{2.0}, ys)
}

// drawnShare returns the fraction of pixels along a line of the plot box that are darker
// than the background, checking one pixel either side for anti-aliasing.
func drawnShare(img image.Image, g Geometry, vertical bool, at float64) float64 {
	const background = 64000
	pos := int(math.Round(at))
	var from, to int
	if vertical {
		from, to = g.Plot.Top+1, g.Plot.Bottom-1
	} else {
		from, to = g.Plot.Left+1, g.Plot.Right-1
	}
	hit := 0
	for i := from; i <= to; i++ {
		for d := -1; d <= 1; d++ {
			x, y := pos+d, i
			if !vertical {
				x, y = i, pos+d
			}
			r, _, _, _ := img.At(x, y).RGBA()
			if r < background {
				hit++
				break
			}
		}
	}
	return float64(hit) / float64(to-from+1)
}

func TestRenderImage_GridLinesVisible(t *testing.T) {
	r, err := RenderImage(DefaultOptions())
	require.NoError(t, err)
	g := r.Geometry
	for _, temp := range []float64{50, 100, 150, 200, 250} {
		share := drawnShare(r.Image, g, true, g.PixelX(temp))
		assert.Greater(t, share, 0.5, "no gridline at %.0f K", temp)
	}
	share := drawnShare(r.Image, g, false, g.PixelY(2.0))
	assert.Greater(t, share, 0.5, "no gridline at C/R 2.0")
	// a column between ticks only crosses the curve
	assert.Less(t, drawnShare(r.Image, g, true, g.PixelX(125)), 0.5)
}
