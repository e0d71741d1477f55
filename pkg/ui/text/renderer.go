// Package text provides plain text output without any styling.
// Tables are written one row per line with tab-separated fields so the
// output can be piped into cut or awk.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/petrovich/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.Declension:
		cols := v.Columns()
		for _, f := range v.Forms {
			fields := []string{f.Case}
			for _, kind := range cols {
				fields = append(fields, f.Part(kind))
			}
			if err := r.line(fields...); err != nil {
				return err
			}
		}
		return nil
	case *display.GenderReport:
		for _, g := range v.Guesses {
			if err := r.line(g.Name, g.Gender); err != nil {
				return err
			}
		}
		return nil
	case *display.RulesSummary:
		if err := r.line("source", v.Source); err != nil {
			return err
		}
		if err := r.line("format", v.Format); err != nil {
			return err
		}
		if err := r.line("checksum", v.Checksum); err != nil {
			return err
		}
		for _, g := range v.Groups {
			if err := r.line(g.Kind, fmt.Sprint(g.Exceptions), fmt.Sprint(g.Suffixes)); err != nil {
				return err
			}
		}
		return nil
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) line(fields ...string) error {
	_, err := fmt.Fprintln(r.output, strings.Join(fields, "\t"))
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
