package cmd

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/zonksoft/plotkit/internal/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the available style and size presets",
	Long: `Presets prints the fixed style and size tables, including the
physical figure dimensions and the per-style typographic parameters.

Example:
  plotkit presets`,
	RunE: runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

// pad right-pads s to display width w, runewidth-aware.
func pad(s string, w int) string {
	return runewidth.FillRight(s, w)
}

func runPresets(cmd *cobra.Command, args []string) error {
	header := color.Bold.Render

	cmd.Println(header("Styles"))
	cmd.Printf("  %s %s\n", pad("NAME", 14), "FONT")
	for _, s := range preset.Styles() {
		cmd.Printf("  %s %s %s\n", pad(s.Name, 14), s.Typeface, s.Variant)
	}

	cmd.Println()
	cmd.Println(header("Sizes"))
	cmd.Printf("  %s %s %s %s\n",
		pad("NAME", 14), pad("NORMAL", 16), pad("WIDE", 16), "FONT/TITLE/LINE (by style)")
	for _, s := range preset.Sizes() {
		normal := dims(s.Width(false), s.DefaultHeight(false))
		wideDims := dims(s.Width(true), s.DefaultHeight(true))
		cmd.Printf("  %s %s %s", pad(s.Name, 14), pad(normal, 16), pad(wideDims, 16))
		for _, style := range preset.StyleNames() {
			p, err := preset.Resolve(style, s.Name)
			if err != nil {
				return err
			}
			cmd.Printf(" %s=%g/%g/%g", style, p.FontSize, p.TitleSize, p.LineWidth)
		}
		cmd.Println()
	}
	return nil
}

func dims(w, h float64) string {
	return fmt.Sprintf("%.2fx%.2fin", w, h)
}
