package figure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonksoft/plotkit/internal/resolver"
)

func buildTestFigure(t *testing.T) *Figure {
	t.Helper()
	f := NewFactory(nil)
	cfg, err := resolver.Resolve("out.pdf", "latex,revtex", "")
	require.NoError(t, err)
	fig, err := f.Build(cfg, Normal)
	require.NoError(t, err)
	fig.Plot.Title.Text = "test figure"
	return fig
}

func TestSaveVector(t *testing.T) {
	fig := buildTestFigure(t)
	dir := t.TempDir()

	for _, name := range []string{"fig.pdf", "fig.svg", "fig.eps"} {
		path := filepath.Join(dir, name)
		err := Save(fig, path, 0)
		require.NoError(t, err, "saving %s", name)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), "%s is empty", name)
	}
}

func TestSaveRaster(t *testing.T) {
	fig := buildTestFigure(t)
	dir := t.TempDir()

	for _, name := range []string{"fig.png", "fig.jpg", "fig.tiff"} {
		path := filepath.Join(dir, name)
		err := Save(fig, path, 150)
		require.NoError(t, err, "saving %s", name)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), "%s is empty", name)
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	fig := buildTestFigure(t)
	path := filepath.Join(t.TempDir(), "fig.docx")

	err := Save(fig, path, 0)
	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".docx", unsupported.Ext)

	// The format check happens before file creation.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file must be written for unsupported formats")
}

func TestSaveNoExtension(t *testing.T) {
	fig := buildTestFigure(t)

	err := Save(fig, filepath.Join(t.TempDir(), "figure"), 0)
	var unsupported *UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
}

func TestSaveMissingDirectory(t *testing.T) {
	fig := buildTestFigure(t)

	err := Save(fig, filepath.Join(t.TempDir(), "no", "such", "dir", "fig.png"), 0)
	assert.Error(t, err)
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	assert.Contains(t, formats, ".pdf")
	assert.Contains(t, formats, ".png")
	assert.Contains(t, formats, ".svg")
	assert.NotContains(t, formats, ".docx")
}

func TestFactorySaveUsesDPI(t *testing.T) {
	f := NewFactory(nil)
	cfg, err := resolver.Resolve("out.png", "latex,revtex", "")
	require.NoError(t, err)
	fig, err := f.Build(cfg, Normal)
	require.NoError(t, err)

	dir := t.TempDir()
	lowPath := filepath.Join(dir, "low.png")
	highPath := filepath.Join(dir, "high.png")

	f.DPI = 72
	require.NoError(t, f.Save(fig, lowPath))
	f.DPI = 300
	require.NoError(t, f.Save(fig, highPath))

	low, err := os.Stat(lowPath)
	require.NoError(t, err)
	high, err := os.Stat(highPath)
	require.NoError(t, err)
	assert.Greater(t, high.Size(), low.Size(), "higher DPI should produce a larger raster file")
}
