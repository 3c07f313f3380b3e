package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/iafilius/HydrogenSpecificHeat/src/heat"
)

func TestFormatting(t *testing.T) {
	assert.Equal(t, "1.96", FormatValue(1.96))
	assert.Equal(t, "1.51", FormatValue(heat.SpecificHeat(0)))
	assert.Equal(t, "150 K", FormatTemperature(150))
	assert.Equal(t, "12.5 K", FormatTemperature(12.5))
	assert.Equal(t, "150 K\nC/R: 1.96", Tooltip(heat.Sample{Temperature: 150, SpecificHeat: heat.SpecificHeat(150)}))
}

func TestGeometry_RoundTrip(t *testing.T) {
	g := NewGeometry(chart.Box{Top: 10, Left: 40, Right: 640, Bottom: 310})
	assert.InDelta(t, 40, g.PixelX(0), 1e-9)
	assert.InDelta(t, 640, g.PixelX(300), 1e-9)
	assert.InDelta(t, 340, g.PixelX(150), 1e-9)
	assert.InDelta(t, 150, g.TemperatureAt(340), 1e-9)
	assert.Equal(t, 0.0, g.TemperatureAt(-50))
	assert.Equal(t, 300.0, g.TemperatureAt(5000))
	assert.InDelta(t, 310, g.PixelY(1.5), 1e-9)
	assert.InDelta(t, 10, g.PixelY(2.5), 1e-9)
	assert.True(t, g.Contains(100, 100))
	assert.False(t, g.Contains(10, 100))
	assert.False(t, Geometry{}.Valid())
}

func TestHover_NearestSample(t *testing.T) {
	g := NewGeometry(chart.Box{Top: 0, Left: 0, Right: 600, Bottom: 300})
	samples := heat.Curve()
	s, text, ok := Hover(g, samples, 300) // middle of the plot -> 150 K
	assert.True(t, ok)
	assert.Equal(t, 150.0, s.Temperature)
	assert.Equal(t, "150 K\nC/R: 1.96", text)

	_, _, ok = Hover(Geometry{}, samples, 10)
	assert.False(t, ok)
	_, _, ok = Hover(g, nil, 10)
	assert.False(t, ok)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(&bytes.Buffer{})
	prev := GetLogLevel()
	defer SetLogLevel(levelName(prev))

	SetLogLevel("warn")
	Infof("hidden %d", 1)
	Warnf("shown %d%%", 50)
	literal := "literal 100%"
	logf(LevelError, literal)
	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.Contains(t, out, "shown 50%")
	assert.Contains(t, out, "literal 100%")

	SetLogLevel("bogus")
	assert.Equal(t, LevelWarn, GetLogLevel())
	assert.Equal(t, zerolog.WarnLevel, baseLogger.Load().GetLevel())

	// swapping the output keeps the level
	var next bytes.Buffer
	SetLogOutput(&next)
	Infof("still hidden")
	Debugf("also hidden")
	assert.Empty(t, next.String())
	SetLogLevel("debug")
	Debugf("now shown")
	assert.Contains(t, next.String(), "now shown")
	assert.True(t, ValidLogLevel("DEBUG"))
	assert.False(t, ValidLogLevel("trace"))
}

func levelName(l LogLevel) string {
	for k, v := range levelNames {
		if v == l && k != "warning" {
			return k
		}
	}
	return "info"
}
