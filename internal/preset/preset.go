// Package preset defines the fixed style and size tables for plotkit.
package preset

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
)

// StylePreset is a named bundle of typographic rendering parameters.
// Styles carry the font choice; the per-style point sizes and line widths
// live on the size presets, which scale them to the target medium.
type StylePreset struct {
	Name     string
	Typeface string // renderer typeface name
	Variant  string // "Serif" or "Sans"
}

// SizePreset is a named bundle of physical figure dimensions matching a
// target publication format. Widths and heights are in inches (original
// values were specified in points, hence the /72 fractions).
type SizePreset struct {
	Name                string
	NormalWidth         float64
	WideWidth           float64
	NormalDefaultHeight float64
	WideDefaultHeight   float64

	// Intensive properties in points, keyed by style name.
	FontSize  map[string]float64
	TitleSize map[string]float64
	LineWidth map[string]float64
}

// Width returns the single- or double-column width in inches.
func (s SizePreset) Width(wide bool) float64 {
	if wide {
		return s.WideWidth
	}
	return s.NormalWidth
}

// DefaultHeight returns the default height in inches for the given mode.
func (s SizePreset) DefaultHeight(wide bool) float64 {
	if wide {
		return s.WideDefaultHeight
	}
	return s.NormalDefaultHeight
}

// Params is the flattened set of rendering parameters for one
// (style, size) combination, ready for the figure factory to apply.
type Params struct {
	Typeface  string
	Variant   string
	FontSize  float64 // points
	TitleSize float64 // points
	LineWidth float64 // points
	TickWidth float64 // points, follows the line width
}

// UnknownStyleError is returned when a style name is not in the style table.
type UnknownStyleError struct {
	Name string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown style %q (known: %v)", e.Name, StyleNames())
}

// UnknownSizeError is returned when a size name is not in the size table.
type UnknownSizeError struct {
	Name string
}

func (e *UnknownSizeError) Error() string {
	return fmt.Sprintf("unknown size %q (known: %v)", e.Name, SizeNames())
}

// The tables are populated once at process start and never mutated.
// Insertion order is preserved so listings stay deterministic.
var (
	styles = newStyleTable()
	sizes  = newSizeTable()
)

func newStyleTable() *orderedmap.OrderedMap[string, StylePreset] {
	m := orderedmap.NewOrderedMap[string, StylePreset]()
	for _, s := range []StylePreset{
		{Name: "latex", Typeface: "Liberation", Variant: "Serif"},
		{Name: "matlab", Typeface: "Liberation", Variant: "Sans"},
	} {
		m.Set(s.Name, s)
	}
	return m
}

func newSizeTable() *orderedmap.OrderedMap[string, SizePreset] {
	m := orderedmap.NewOrderedMap[string, SizePreset]()
	for _, s := range []SizePreset{
		{
			// Single-column REVTeX article figure.
			Name:                "revtex",
			NormalWidth:         243.0 / 72.0,
			WideWidth:           482.0 / 72.0,
			NormalDefaultHeight: 2.0,
			WideDefaultHeight:   4.0,
			FontSize:            map[string]float64{"matlab": 7, "latex": 8},
			TitleSize:           map[string]float64{"matlab": 8, "latex": 9},
			LineWidth:           map[string]float64{"matlab": 0.4, "latex": 0.4},
		},
		{
			Name:                "a0poster",
			NormalWidth:         700.0 / 72.0,
			WideWidth:           1400.0 / 72.0,
			NormalDefaultHeight: 500.0 / 72.0,
			WideDefaultHeight:   500.0 / 72.0,
			FontSize:            map[string]float64{"matlab": 14, "latex": 16},
			TitleSize:           map[string]float64{"matlab": 16, "latex": 18},
			LineWidth:           map[string]float64{"matlab": 1, "latex": 1},
		},
		{
			// Half- and full-width figures on a 4:3 slide.
			Name:                "presentation",
			NormalWidth:         5.0,
			WideWidth:           10.0,
			NormalDefaultHeight: 3.75,
			WideDefaultHeight:   5.5,
			FontSize:            map[string]float64{"matlab": 10, "latex": 12},
			TitleSize:           map[string]float64{"matlab": 12, "latex": 14},
			LineWidth:           map[string]float64{"matlab": 0.8, "latex": 0.8},
		},
		{
			// Standard LaTeX article on A4 paper (345pt text width).
			Name:                "latexa4",
			NormalWidth:         345.0 / 72.0,
			WideWidth:           522.0 / 72.0,
			NormalDefaultHeight: 2.5,
			WideDefaultHeight:   4.0,
			FontSize:            map[string]float64{"matlab": 9, "latex": 10},
			TitleSize:           map[string]float64{"matlab": 10, "latex": 11},
			LineWidth:           map[string]float64{"matlab": 0.5, "latex": 0.5},
		},
	} {
		m.Set(s.Name, s)
	}
	return m
}

// LookupStyle returns the style preset for the given name.
// Matching is exact and case-sensitive.
func LookupStyle(name string) (StylePreset, error) {
	s, ok := styles.Get(name)
	if !ok {
		return StylePreset{}, &UnknownStyleError{Name: name}
	}
	return s, nil
}

// LookupSize returns the size preset for the given name.
// Matching is exact and case-sensitive.
func LookupSize(name string) (SizePreset, error) {
	s, ok := sizes.Get(name)
	if !ok {
		return SizePreset{}, &UnknownSizeError{Name: name}
	}
	return s, nil
}

// StyleNames returns all style names in table order.
func StyleNames() []string {
	return styles.Keys()
}

// SizeNames returns all size names in table order.
func SizeNames() []string {
	return sizes.Keys()
}

// Styles returns all style presets in table order.
func Styles() []StylePreset {
	out := make([]StylePreset, 0, styles.Len())
	for _, name := range styles.Keys() {
		s, _ := styles.Get(name)
		out = append(out, s)
	}
	return out
}

// Sizes returns all size presets in table order.
func Sizes() []SizePreset {
	out := make([]SizePreset, 0, sizes.Len())
	for _, name := range sizes.Keys() {
		s, _ := sizes.Get(name)
		out = append(out, s)
	}
	return out
}

// Resolve combines a style and a size into the flattened rendering
// parameters for that pair.
func Resolve(styleName, sizeName string) (Params, error) {
	style, err := LookupStyle(styleName)
	if err != nil {
		return Params{}, err
	}
	size, err := LookupSize(sizeName)
	if err != nil {
		return Params{}, err
	}
	lw := size.LineWidth[styleName]
	return Params{
		Typeface:  style.Typeface,
		Variant:   style.Variant,
		FontSize:  size.FontSize[styleName],
		TitleSize: size.TitleSize[styleName],
		LineWidth: lw,
		TickWidth: lw,
	}, nil
}
