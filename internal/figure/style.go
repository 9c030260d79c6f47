package figure

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/zonksoft/plotkit/internal/preset"
)

// SetGlobalDefaults overwrites gonum/plot's package-level style defaults
// (font family, font size and line width) with the given parameters.
//
// The effect is process-wide and last-write-wins: plotters constructed
// after a later call pick up the later style, even when they are added to
// a figure built earlier. Content already drawn is unaffected. Callers
// building figures with different styles in one process should finish
// drawing on a figure before building the next one, or apply styles
// per-plotter explicitly.
func SetGlobalDefaults(p preset.Params) {
	fnt := font.From(font.Font{
		Typeface: font.Typeface(p.Typeface),
		Variant:  font.Variant(p.Variant),
	}, vg.Points(p.FontSize))
	plot.DefaultFont = fnt
	plotter.DefaultFont = fnt
	plotter.DefaultLineStyle.Width = vg.Points(p.LineWidth)
}

// applyToPlot applies the style parameters to one plot handle, so the
// figure keeps its style regardless of later global default changes.
func applyToPlot(p *plot.Plot, params preset.Params) {
	base := font.Font{
		Typeface: font.Typeface(params.Typeface),
		Variant:  font.Variant(params.Variant),
	}
	labelFont := font.From(base, vg.Points(params.FontSize))

	p.Title.TextStyle.Font = font.From(base, vg.Points(params.TitleSize))
	p.Legend.TextStyle.Font = labelFont

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font = labelFont
		ax.Tick.Label.Font = labelFont
		ax.LineStyle.Width = vg.Points(params.LineWidth)
		ax.Tick.LineStyle.Width = vg.Points(params.TickWidth)
	}
}
