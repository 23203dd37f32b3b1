package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/segmentio/encoding/json"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/xiam/sexpr/internal/config"
)

// IsColorEnabled determines if color should be enabled based on mode and writer.
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// palette holds the colors used by diagnostics and diffs.
type palette struct {
	Error    *color.Color
	Location *color.Color
	Caret    *color.Color
	Add      *color.Color
	Remove   *color.Color
	Header   *color.Color
	Type     *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		Error:    color.New(color.FgRed, color.Bold),
		Location: color.New(color.Bold),
		Caret:    color.New(color.FgRed),
		Add:      color.New(color.FgGreen),
		Remove:   color.New(color.FgRed),
		Header:   color.New(color.Bold),
		Type:     color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.Error, p.Location, p.Caret, p.Add, p.Remove, p.Header, p.Type} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (g *globals) palette(w io.Writer) *palette {
	return newPalette(IsColorEnabled(g.cfg.Color, w))
}

// encode writes v to w in the given output format.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputMsgpack:
		return msgpack.NewEncoder(w).Encode(v)
	}
	return fmt.Errorf("unknown output format %q", format)
}
