// Package xml provides machine-readable XML output
package xml

import (
	"fmt"
	"io"

	"github.com/arthur-debert/petrovich/pkg/errors"
	"github.com/arthur-debert/petrovich/pkg/types"
	"github.com/arthur-debert/petrovich/pkg/ui/display"
	"github.com/beevik/etree"
)

// Renderer writes each result as a standalone XML document
type Renderer struct {
	output io.Writer
}

// New creates a new XML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders a display result as XML
func (r *Renderer) RenderResult(result interface{}) error {
	doc := newDocument()

	switch v := result.(type) {
	case *display.Declension:
		root := doc.CreateElement("declension")
		root.CreateAttr("gender", v.Gender)
		for _, f := range v.Forms {
			form := root.CreateElement("form")
			form.CreateAttr("case", f.Case)
			for _, kind := range v.Columns() {
				form.CreateElement(partElement(kind)).SetText(f.Part(kind))
			}
		}
	case *display.GenderReport:
		root := doc.CreateElement("genders")
		for _, g := range v.Guesses {
			name := root.CreateElement("name")
			name.CreateAttr("gender", g.Gender)
			name.SetText(g.Name)
		}
	case *display.RulesSummary:
		root := doc.CreateElement("rules")
		root.CreateAttr("source", v.Source)
		root.CreateAttr("format", v.Format)
		root.CreateAttr("checksum", v.Checksum)
		for _, g := range v.Groups {
			group := root.CreateElement("group")
			group.CreateAttr("kind", g.Kind)
			group.CreateAttr("exceptions", fmt.Sprint(g.Exceptions))
			group.CreateAttr("suffixes", fmt.Sprint(g.Suffixes))
		}
	default:
		doc.CreateElement("result").SetText(fmt.Sprintf("%+v", result))
	}

	return r.write(doc)
}

// RenderError renders an error element carrying the error code
func (r *Renderer) RenderError(err error) error {
	doc := newDocument()
	el := doc.CreateElement("error")
	el.CreateAttr("code", string(errors.GetErrorCode(err)))
	el.SetText(err.Error())
	return r.write(doc)
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	doc := newDocument()
	doc.CreateElement("message").SetText(msg)
	return r.write(doc)
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc
}

func (r *Renderer) write(doc *etree.Document) error {
	doc.Indent(2)
	_, err := doc.WriteTo(r.output)
	return err
}

// partElement maps a name kind to its element name
func partElement(kind types.NameKind) string {
	switch kind {
	case types.Lastname:
		return "last"
	case types.Firstname:
		return "first"
	case types.Middlename:
		return "middle"
	}
	return string(kind)
}
