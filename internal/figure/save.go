package figure

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultDPI is the resolution used for raster formats when none is
// configured.
const DefaultDPI = 300

// UnsupportedFormatError is returned when the output filename extension
// does not name a supported format.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format %q (supported: %s)", e.Ext, strings.Join(SupportedFormats(), ", "))
}

var vectorFormats = map[string]bool{
	".eps": true,
	".pdf": true,
	".svg": true,
	".tex": true,
}

var rasterFormats = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".tif":  true,
	".tiff": true,
}

// SupportedFormats returns the supported filename extensions, sorted.
func SupportedFormats() []string {
	out := make([]string, 0, len(vectorFormats)+len(rasterFormats))
	for ext := range vectorFormats {
		out = append(out, ext)
	}
	for ext := range rasterFormats {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Save writes the figure to path, inferring the format from the filename
// extension. The format check happens before any file is created, so an
// unsupported extension never leaves a partial file behind. Filesystem
// errors are wrapped and propagated, never retried.
//
// Vector formats delegate to gonum/plot's writer; raster formats render
// at the given DPI (DefaultDPI when dpi is not positive).
func Save(fig *Figure, path string, dpi int) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case vectorFormats[ext]:
		if err := fig.Plot.Save(fig.Width, fig.Height, path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		return nil
	case rasterFormats[ext]:
		return saveRaster(fig, path, ext, dpi)
	default:
		return &UnsupportedFormatError{Ext: ext}
	}
}

func saveRaster(fig *Figure, path, ext string, dpi int) error {
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	c := vgimg.NewWith(
		vgimg.UseWH(fig.Width, fig.Height),
		vgimg.UseDPI(dpi),
	)
	fig.Plot.Draw(draw.New(c))

	var wt io.WriterTo
	switch ext {
	case ".png":
		wt = vgimg.PngCanvas{Canvas: c}
	case ".jpg", ".jpeg":
		wt = vgimg.JpegCanvas{Canvas: c}
	case ".tif", ".tiff":
		wt = vgimg.TiffCanvas{Canvas: c}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if _, err := wt.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
