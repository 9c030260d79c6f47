// Package figure builds publication-sized gonum/plot figures from a
// resolved configuration and saves them to extension-inferred formats.
package figure

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/zonksoft/plotkit/internal/logger"
	"github.com/zonksoft/plotkit/internal/preset"
	"github.com/zonksoft/plotkit/internal/resolver"
)

// WidthMode selects between single- and double-column figure width.
type WidthMode int

const (
	// Normal is the single-column width of the size preset.
	Normal WidthMode = iota
	// Wide is the double-column width of the size preset.
	Wide
)

func (m WidthMode) String() string {
	if m == Wide {
		return "wide"
	}
	return "normal"
}

// ParseWidthMode parses a width mode name. Both the plotkit names
// (normal, wide) and the column aliases (single, double) are accepted.
func ParseWidthMode(s string) (WidthMode, error) {
	switch strings.ToLower(s) {
	case "normal", "single":
		return Normal, nil
	case "wide", "double":
		return Wide, nil
	}
	return Normal, fmt.Errorf("unknown width mode %q: want 'normal' or 'wide'", s)
}

// InvalidHeightError is returned when an explicit figure height is not a
// positive number.
type InvalidHeightError struct {
	Height float64
}

func (e *InvalidHeightError) Error() string {
	return fmt.Sprintf("invalid figure height %v: must be a positive number of inches", e.Height)
}

// Figure is a styled drawing surface with fixed physical dimensions.
// The dimensions are baked in at build time and used at save time.
type Figure struct {
	Plot   *plot.Plot
	Width  vg.Length
	Height vg.Length

	params preset.Params
}

// Option customizes a single Build call.
type Option func(*buildConfig)

type buildConfig struct {
	height    float64
	hasHeight bool
}

// WithHeight sets an explicit figure height in inches instead of the size
// preset's default.
func WithHeight(inches float64) Option {
	return func(c *buildConfig) {
		c.height = inches
		c.hasHeight = true
	}
}

// Factory builds figures for one resolved configuration at a time.
type Factory struct {
	log *logger.Logger

	// DPI is used for raster output formats only.
	DPI int

	fontSize float64 // manual override, 0 means preset value
}

// NewFactory creates a figure factory. A nil logger falls back to the
// default logger.
func NewFactory(log *logger.Logger) *Factory {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Factory{log: log, DPI: DefaultDPI}
}

// SetFontSize overrides the preset font size (in points) for subsequent
// Build calls. A non-positive value restores the preset value.
func (f *Factory) SetFontSize(points float64) {
	f.fontSize = points
}

// Build constructs a figure sized to the configuration's size preset and
// the given width mode, and applies the resolved style parameters.
//
// Building also overwrites gonum/plot's package-level style defaults so
// that plotters created afterward inherit the style. This is process-wide
// and last-write-wins: see SetGlobalDefaults.
func (f *Factory) Build(cfg *resolver.Configuration, mode WidthMode, opts ...Option) (*Figure, error) {
	var bc buildConfig
	for _, opt := range opts {
		opt(&bc)
	}

	size, err := preset.LookupSize(cfg.Size)
	if err != nil {
		return nil, err
	}
	params, err := preset.Resolve(cfg.Style, cfg.Size)
	if err != nil {
		return nil, err
	}
	if f.fontSize > 0 {
		params.FontSize = f.fontSize
	}

	wide := mode == Wide
	width := size.Width(wide)
	height := size.DefaultHeight(wide)
	if bc.hasHeight {
		if bc.height <= 0 || math.IsNaN(bc.height) {
			return nil, &InvalidHeightError{Height: bc.height}
		}
		height = bc.height
	}

	SetGlobalDefaults(params)

	p := plot.New()
	applyToPlot(p, params)

	f.log.Debugw("figure built",
		"style", cfg.Style,
		"size", cfg.Size,
		"mode", mode.String(),
		"width_in", width,
		"height_in", height,
	)

	return &Figure{
		Plot:   p,
		Width:  vg.Length(width) * vg.Inch,
		Height: vg.Length(height) * vg.Inch,
		params: params,
	}, nil
}

// BuildSingleAxes builds a figure with one axes spanning the whole
// drawing area and returns both, for the common single-plot case.
func (f *Factory) BuildSingleAxes(cfg *resolver.Configuration, mode WidthMode, opts ...Option) (*Figure, *plot.Plot, error) {
	fig, err := f.Build(cfg, mode, opts...)
	if err != nil {
		return nil, nil, err
	}
	return fig, fig.Plot, nil
}

// Save writes the figure to path using the factory's DPI for raster
// formats.
func (f *Factory) Save(fig *Figure, path string) error {
	if err := Save(fig, path, f.DPI); err != nil {
		return err
	}
	f.log.Infow("figure saved", "output", path)
	return nil
}
