// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/petrovich/pkg/errors"
	"github.com/arthur-debert/petrovich/pkg/ui/display"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output: pterm tables with lipgloss
// headings
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.Declension:
		return r.renderDeclension(v)
	case *display.GenderReport:
		return r.renderGenders(v)
	case *display.RulesSummary:
		return r.renderRules(v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderDeclension(d *display.Declension) error {
	title := titleStyle.Render("Declension") + " " +
		labelStyle.Render("gender:") + " " + genderStyle(d.Gender).Render(d.Gender)
	if _, err := fmt.Fprintln(r.output, title); err != nil {
		return err
	}

	cols := d.Columns()
	header := []string{"Case"}
	for _, kind := range cols {
		header = append(header, columnTitle(string(kind)))
	}

	data := pterm.TableData{header}
	for _, f := range d.Forms {
		row := []string{f.Case}
		for _, kind := range cols {
			row = append(row, f.Part(kind))
		}
		data = append(data, row)
	}
	return r.table(data)
}

func (r *Renderer) renderGenders(g *display.GenderReport) error {
	data := pterm.TableData{{"Patronymic", "Gender"}}
	for _, guess := range g.Guesses {
		data = append(data, []string{guess.Name, genderStyle(guess.Gender).Render(guess.Gender)})
	}
	return r.table(data)
}

func (r *Renderer) renderRules(s *display.RulesSummary) error {
	lines := []string{
		titleStyle.Render("Rules"),
		labelStyle.Render("source:   ") + s.Source,
		labelStyle.Render("format:   ") + s.Format,
		labelStyle.Render("checksum: ") + s.Checksum,
	}
	if _, err := fmt.Fprintln(r.output, strings.Join(lines, "\n")); err != nil {
		return err
	}

	data := pterm.TableData{{"Group", "Exceptions", "Suffixes"}}
	for _, g := range s.Groups {
		data = append(data, []string{g.Kind, fmt.Sprint(g.Exceptions), fmt.Sprint(g.Suffixes)})
	}
	return r.table(data)
}

func (r *Renderer) table(data pterm.TableData) error {
	out, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(data).
		Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, out)
	return err
}

// RenderError renders an error with its code highlighted
func (r *Renderer) RenderError(err error) error {
	msg := err.Error()
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		msg = pterm.Error.MessageStyle.Sprint(string(code)) + " " + msg
	}
	_, err2 := fmt.Fprintf(r.output, "%s %s\n", pterm.Error.Prefix.Text, msg)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n", pterm.Info.Prefix.Text, msg)
	return err
}

func columnTitle(kind string) string {
	switch kind {
	case "lastname":
		return "Last name"
	case "firstname":
		return "First name"
	case "middlename":
		return "Patronymic"
	}
	return kind
}
