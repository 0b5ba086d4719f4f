package fetchxml

import (
	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// ToString serializes the current document to an XML string. With pretty set
// to false the output is the canonical compact form with no whitespace
// between tags and no declaration. With pretty set to true the output starts
// with an XML declaration and nests children under a two-space indent.
// Serialization works on a copy of the tree, so calling ToString never
// mutates the builder and repeated calls yield identical text.
func (b *Builder) ToString(pretty bool) (string, error) {
	out := etree.NewDocument()
	if pretty {
		out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	}
	out.SetRoot(b.root.Copy())
	if pretty {
		out.Indent(2)
	}
	return out.WriteToString()
}

// LoadFromString parses text as an XML document and replaces the builder's
// tree with the parsed one. Content built through prior method calls is
// abandoned, not merged. The builder's entity reference is repointed to the
// first entity element found in document order; its filter reference to the
// first filter child of that entity, so later AddFilter calls extend an
// existing filter rather than orphaning conditions; and its selected
// attribute record is rebuilt from the plain attribute elements found.
//
// A *ParseError is returned when the text is not well-formed XML and a
// *StructuralError when the parsed document contains no entity element. On
// either failure the builder's previous tree is left intact.
func (b *Builder) LoadFromString(text string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return &ParseError{Err: err}
	}
	entity := doc.FindElement("//entity")
	if entity == nil {
		return &StructuralError{Message: "no entity element found"}
	}

	b.doc = doc
	b.root = doc.Root()
	b.entity = entity
	b.filter = entity.FindElement("filter")
	b.selected = plainAttributeNames(entity)

	b.logger.Info("loaded document",
		zap.String("entity", b.EntityName()),
		zap.Int("attributes", len(b.selected)))
	b.emit(EventLoad, map[string]any{"attributes": b.selected})
	return nil
}

// FromString constructs a builder from an existing FetchXML document. The
// root entity name is read from the first entity element found, then the full
// tree is adopted as by LoadFromString. It fails with a *ParseError on
// malformed XML and a *StructuralError when no entity element exists, since
// this path cannot produce a builder without one.
func FromString(text string) (*Builder, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, &ParseError{Err: err}
	}
	entity := doc.FindElement("//entity")
	if entity == nil {
		return nil, &StructuralError{Message: "no entity element found"}
	}

	b := New(entity.SelectAttrValue("name", ""))
	if err := b.LoadFromString(text); err != nil {
		return nil, err
	}
	return b, nil
}

// plainAttributeNames collects the names of attribute elements that carry
// neither an aggregate nor a groupby marker, i.e. plain selections.
func plainAttributeNames(entity *etree.Element) []string {
	var names []string
	for _, child := range entity.ChildElements() {
		if child.Tag != "attribute" {
			continue
		}
		if child.SelectAttr("aggregate") != nil || child.SelectAttr("groupby") != nil {
			continue
		}
		if name := child.SelectAttrValue("name", ""); name != "" {
			names = append(names, name)
		}
	}
	return names
}
