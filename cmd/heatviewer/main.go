// heatviewer shows the hydrogen specific-heat chart in a desktop window. Hovering the plot
// shows the temperature and C/R of the nearest curve sample.
package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/pflag"

	"github.com/iafilius/HydrogenSpecificHeat/cmd/heatviewer/uihelpers"
	"github.com/iafilius/HydrogenSpecificHeat/src/config"
	"github.com/iafilius/HydrogenSpecificHeat/src/heat"
	"github.com/iafilius/HydrogenSpecificHeat/src/render"
)

type viewerState struct {
	app    fyne.App
	window fyne.Window

	opts       render.Options
	exportName string

	rendered *render.Rendered
	samples  []heat.Sample

	imgCanvas *canvas.Image
	overlay   *hoverOverlay
}

func main() {
	fs := pflag.NewFlagSet("heatviewer", pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])
	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	render.SetLogLevel(cfg.LogLevel)

	a := app.NewWithID("com.hydrogenheat.viewer")
	w := a.NewWindow("Hydrogen specific heat")

	opts := cfg.Options()
	opts.Width, opts.Height = uihelpers.ChartSize(cfg.Width, cfg.Height)
	state := &viewerState{
		app:        a,
		window:     w,
		opts:       opts,
		exportName: filepath.Base(cfg.Output),
		samples:    heat.Curve(),
	}
	loadPrefs(state)

	state.imgCanvas = canvas.NewImageFromImage(render.Blank(opts.Width, opts.Height))
	state.imgCanvas.FillMode = canvas.ImageFillContain
	state.imgCanvas.SetMinSize(fyne.NewSize(float32(opts.Width)*0.6, float32(opts.Height)*0.6))
	state.overlay = newHoverOverlay(state)

	expChk := widget.NewCheck("Experimental points", func(on bool) {
		state.opts.ShowExperimental = on
		savePrefs(state)
		redraw(state)
	})
	expChk.SetChecked(state.opts.ShowExperimental)
	refChk := widget.NewCheck("Reference spline", func(on bool) {
		state.opts.ShowReference = on
		savePrefs(state)
		redraw(state)
	})
	refChk.SetChecked(state.opts.ShowReference)
	exportBtn := widget.NewButton("Export PNG…", func() { exportChartPNG(state) })

	top := container.NewHBox(expChk, refChk, exportBtn)
	w.SetContent(container.NewBorder(top, nil, nil, nil, container.NewStack(state.imgCanvas, state.overlay)))
	w.Resize(fyne.NewSize(float32(opts.Width)+24, float32(opts.Height)+80))

	redraw(state)
	w.ShowAndRun()
}

// redraw re-renders the chart image and resets the hover overlay.
func redraw(state *viewerState) {
	r, err := render.RenderImage(state.opts)
	if err != nil {
		render.Errorf("chart render error: %v; showing blank fallback", err)
		r = &render.Rendered{Image: render.Blank(state.opts.Width, state.opts.Height)}
	}
	state.rendered = r
	if state.imgCanvas != nil {
		state.imgCanvas.Image = r.Image
		state.imgCanvas.Refresh()
	}
	if state.overlay != nil {
		state.overlay.Refresh()
	}
}

func exportChartPNG(state *viewerState) {
	if state.rendered == nil || state.rendered.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, state.rendered.Image); err != nil {
			render.Errorf("export %s: %v", wc.URI().Path(), err)
			dialog.ShowError(err, state.window)
			return
		}
		render.Infof("exported chart to %s", wc.URI().Path())
	}, state.window)
	fd.SetFileName(state.exportName)
	fd.Show()
}

func savePrefs(state *viewerState) {
	prefs := state.app.Preferences()
	prefs.SetBool("showExperimental", state.opts.ShowExperimental)
	prefs.SetBool("showReference", state.opts.ShowReference)
}

func loadPrefs(state *viewerState) {
	prefs := state.app.Preferences()
	state.opts.ShowExperimental = prefs.BoolWithFallback("showExperimental", state.opts.ShowExperimental)
	state.opts.ShowReference = prefs.BoolWithFallback("showReference", state.opts.ShowReference)
}
