package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Format is an output encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrInvalidSize   = errors.New("chart size must be positive")
)

// ParseFormat accepts "png" or "svg" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath infers the format from a file extension, defaulting to PNG.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return FormatSVG
	}
	return FormatPNG
}

// Rendered is a decoded chart image plus the plot area go-chart drew the series into.
type Rendered struct {
	Image    image.Image
	Geometry Geometry
}

// capturePlotBox records the canvas box go-chart hands to chart elements, which is
// exactly the area the axes ranges were mapped onto.
func capturePlotBox(dst *chart.Box) chart.Renderable {
	return func(_ chart.Renderer, canvasBox chart.Box, _ chart.Style) {
		*dst = canvasBox
	}
}

func renderChart(ch chart.Chart, provider chart.RendererProvider, w io.Writer) (chart.Box, error) {
	var plot chart.Box
	ch.Elements = append(ch.Elements, capturePlotBox(&plot))
	if err := ch.Render(provider, w); err != nil {
		return chart.Box{}, err
	}
	return plot, nil
}

// RenderImage renders the chart to a decoded PNG image, with the caption applied.
func RenderImage(opts Options) (*Rendered, error) {
	defer TimeTrack(time.Now(), "render image")
	ch, err := BuildChart(opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	plot, err := renderChart(ch, chart.PNG, &buf)
	if err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	if opts.Caption != "" {
		img = DrawCaption(img, opts.Caption)
	}
	return &Rendered{Image: img, Geometry: NewGeometry(plot)}, nil
}

// Render writes the chart to w in the requested format. Captions are only drawn on PNG.
func Render(w io.Writer, format Format, opts Options) error {
	switch format {
	case FormatPNG:
		r, err := RenderImage(opts)
		if err != nil {
			return err
		}
		if err := png.Encode(w, r.Image); err != nil {
			return fmt.Errorf("png encode: %w", err)
		}
		return nil
	case FormatSVG:
		ch, err := BuildChart(opts)
		if err != nil {
			return err
		}
		if opts.Caption != "" {
			Debugf("caption ignored for svg output")
		}
		if _, err := renderChart(ch, chart.SVG, w); err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}

// WriteFile renders into path, creating the parent directory when needed.
func WriteFile(path string, format Format, opts Options) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create out dir: %w", err)
		}
	}
	var buf bytes.Buffer
	if err := Render(&buf, format, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	Infof("wrote %s chart to %s (%d bytes)", format, path, buf.Len())
	return nil
}

// Blank returns a plain light image, used when a chart cannot be rendered.
func Blank(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		w, h = DefaultWidth, DefaultHeight
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := color.RGBA{R: 250, G: 250, B: 250, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, bg)
		}
	}
	return img
}
