// Package resolver turns user-supplied plot tokens into a validated
// Configuration. Two entry points exist: Resolve for explicit arguments
// and ResolveFromTokens for positional CLI-style token lists.
package resolver

import (
	"fmt"
	"strings"

	"github.com/zonksoft/plotkit/internal/preset"
)

// Compiled-in defaults used when a token is absent.
const (
	DefaultOutputPath = "plot.pdf"
	DefaultSpec       = "latex,revtex"
	DefaultFlag       = ""
)

// Configuration is the resolved unit of work for one plot script run.
// Style and Size are guaranteed to exist in the preset tables.
// It is created once per invocation and never mutated afterward.
type Configuration struct {
	OutputPath string
	Style      string
	Size       string

	// Flag is an opaque string interpreted by the plot script, not by
	// plotkit itself (e.g. "do_legend" to toggle a legend on or off).
	Flag string
}

// Spec returns the configuration's "style,size" string.
func (c *Configuration) Spec() string {
	return c.Style + "," + c.Size
}

// Params returns the flattened rendering parameters for the
// configuration's style/size pair.
func (c *Configuration) Params() (preset.Params, error) {
	return preset.Resolve(c.Style, c.Size)
}

// MalformedSpecError is returned when a spec string does not split into
// exactly two comma-separated fields.
type MalformedSpecError struct {
	Spec string
}

func (e *MalformedSpecError) Error() string {
	return fmt.Sprintf("malformed spec %q: want exactly <style>,<size>", e.Spec)
}

// ParseSpec splits a "style,size" spec into its two fields. The fields are
// not checked against the preset tables here; Resolve does that.
func ParseSpec(spec string) (style, size string, err error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return "", "", &MalformedSpecError{Spec: spec}
	}
	return parts[0], parts[1], nil
}

// Resolve builds a Configuration from explicit arguments. The spec must
// follow the <style>,<size> grammar and both fields must name existing
// presets. The flag is stored verbatim, uninterpreted.
func Resolve(outputPath, spec, flag string) (*Configuration, error) {
	style, size, err := ParseSpec(spec)
	if err != nil {
		return nil, err
	}
	if _, err := preset.LookupStyle(style); err != nil {
		return nil, err
	}
	if _, err := preset.LookupSize(size); err != nil {
		return nil, err
	}
	return &Configuration{
		OutputPath: outputPath,
		Style:      style,
		Size:       size,
		Flag:       flag,
	}, nil
}

// Defaults are the fallback values used by ResolveFromTokens for absent
// tokens. A supplied token always wins over a default; an absent token
// falls back to the default, never to a previous partial configuration.
type Defaults struct {
	OutputPath string
	Spec       string
	Flag       string
}

// CompiledDefaults returns the compiled-in defaults.
func CompiledDefaults() Defaults {
	return Defaults{
		OutputPath: DefaultOutputPath,
		Spec:       DefaultSpec,
		Flag:       DefaultFlag,
	}
}

// ResolveFromTokens resolves a positional token list
//
//	[output] [style,size] [flag]
//
// against the compiled-in defaults. The list must not include the
// invoking program's own name; callers taking os.Args pass os.Args[1:].
func ResolveFromTokens(tokens []string) (*Configuration, error) {
	return CompiledDefaults().ResolveFromTokens(tokens)
}

// ResolveFromTokens resolves a positional token list against d. Each
// position is individually optional; an empty token counts as absent.
// Tokens beyond the third are ignored.
func (d Defaults) ResolveFromTokens(tokens []string) (*Configuration, error) {
	output := d.OutputPath
	spec := d.Spec
	flag := d.Flag

	if len(tokens) > 0 && tokens[0] != "" {
		output = tokens[0]
	}
	if len(tokens) > 1 && tokens[1] != "" {
		spec = tokens[1]
	}
	if len(tokens) > 2 && tokens[2] != "" {
		flag = tokens[2]
	}

	return Resolve(output, spec, flag)
}
