// Package output renders command results for terminals, pipes and machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Mode selects how results are printed.
type Mode string

// Output modes.
const (
	ModeAuto Mode = "auto" // styled text on a TTY, plain text otherwise
	ModeText Mode = "text"
	ModeJSON Mode = "json"
	ModeYAML Mode = "yaml"
)

// Modes returns every accepted mode name, in display order.
func Modes() []string {
	return []string{string(ModeAuto), string(ModeText), string(ModeJSON), string(ModeYAML)}
}

// IsValid reports whether m is a known mode. The empty mode counts as auto.
func (m Mode) IsValid() bool {
	switch m {
	case "", ModeAuto, ModeText, ModeJSON, ModeYAML:
		return true
	}
	return false
}

// Renderer writes command output according to a Mode.
type Renderer struct {
	out    io.Writer
	mode   Mode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
func NewRendererWithTTY(out io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	lr := lipgloss.NewRenderer(out)
	if !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		out:    out,
		mode:   mode,
		isTTY:  isTTY,
		styles: NewStyles(lr),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// EffectiveMode resolves auto to a concrete mode.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// Styled reports whether text output carries styling.
func (r *Renderer) Styled() bool {
	return r.isTTY && r.EffectiveMode() == ModeText
}

// Styles returns the style set bound to this renderer.
func (r *Renderer) Styles() *Styles { return r.styles }

// Writer returns the primary output writer.
func (r *Renderer) Writer() io.Writer { return r.out }

// Println writes a line to the output.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// Structured encodes v as a single JSON or YAML document depending on the mode.
// Text modes fall back to JSON.
func (r *Renderer) Structured(v any) error {
	if r.EffectiveMode() == ModeYAML {
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// IsStructured reports whether the mode emits a machine-readable document.
func (r *Renderer) IsStructured() bool {
	m := r.EffectiveMode()
	return m == ModeJSON || m == ModeYAML
}
