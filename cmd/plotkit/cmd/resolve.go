package cmd

import (
	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/zonksoft/plotkit/internal/figure"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [output] [style,size] [flag]",
	Short: "Resolve tokens into a concrete plot configuration",
	Long: `Resolve parses positional tokens into a validated configuration and
prints the rendering parameters it would produce, without building or
saving a figure.

Tokens are positional and individually optional:
  output      output filename, format inferred from the extension
  style,size  e.g. latex,revtex or matlab,a0poster
  flag        opaque string for the plot script

Examples:
  plotkit resolve
  plotkit resolve out.png matlab,presentation plot_more`,
	Args: cobra.MaximumNArgs(3),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	c, err := cfg.ResolverDefaults().ResolveFromTokens(args)
	if err != nil {
		return err
	}

	params, err := c.Params()
	if err != nil {
		return err
	}

	mode := figure.Normal
	if GetCLIOverrides().Wide {
		mode = figure.Wide
	}

	bold := color.Bold.Render
	cmd.Printf("%s %s\n", bold("Output:"), c.OutputPath)
	cmd.Printf("%s  %s\n", bold("Style:"), c.Style)
	cmd.Printf("%s   %s\n", bold("Size:"), c.Size)
	cmd.Printf("%s   %s\n", bold("Mode:"), mode)
	if c.Flag != "" {
		cmd.Printf("%s   %s\n", bold("Flag:"), c.Flag)
	}
	cmd.Printf("\n%s\n", bold("Rendering parameters"))
	cmd.Printf("  font:       %s %s, %gpt\n", params.Typeface, params.Variant, params.FontSize)
	cmd.Printf("  title:      %gpt\n", params.TitleSize)
	cmd.Printf("  line width: %gpt\n", params.LineWidth)
	return nil
}
