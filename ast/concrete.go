package ast

import (
	"github.com/segmentio/encoding/json"
	"github.com/vmihailenco/msgpack/v5"
)

// Concrete is the tagged view of a tree. Every node keeps its Meta, which
// is what formatters and linters need to point back into the source.
type Concrete struct {
	Type NodeType

	Number float64
	Text   string
	Items  []*Concrete

	Meta Meta
}

// Value returns the payload matching c.Type: a float64, a string or a
// []*Concrete.
func (c *Concrete) Value() any {
	switch c.Type {
	case NodeTypeNumber:
		return c.Number
	case NodeTypeString, NodeTypeSymbol:
		return c.Text
	case NodeTypeList:
		return c.Items
	}
	return nil
}

type concreteWire struct {
	Type  string `json:"type" yaml:"type" msgpack:"type"`
	Value any    `json:"value" yaml:"value" msgpack:"value"`
	Meta  Meta   `json:"meta" yaml:"meta" msgpack:"meta"`
}

func (c *Concrete) wire() concreteWire {
	return concreteWire{
		Type:  c.Type.String(),
		Value: c.Value(),
		Meta:  c.Meta,
	}
}

// MarshalJSON encodes c as {"type": ..., "value": ..., "meta": ...}.
func (c *Concrete) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.wire())
}

// MarshalYAML encodes c with the same shape as MarshalJSON.
func (c *Concrete) MarshalYAML() (any, error) {
	return c.wire(), nil
}

// EncodeMsgpack encodes c with the same shape as MarshalJSON.
func (c *Concrete) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(c.wire())
}

type concreter struct{}

func withComments(meta Meta) Meta {
	if meta.Comments == nil {
		meta.Comments = []string{}
	}
	return meta
}

func (concreter) Number(v float64, meta Meta) *Concrete {
	return &Concrete{Type: NodeTypeNumber, Number: v, Meta: withComments(meta)}
}

func (concreter) String(v string, meta Meta) *Concrete {
	return &Concrete{Type: NodeTypeString, Text: v, Meta: withComments(meta)}
}

func (concreter) Symbol(v string, meta Meta) *Concrete {
	return &Concrete{Type: NodeTypeSymbol, Text: v, Meta: withComments(meta)}
}

func (concreter) List(items []*Concrete, meta Meta) *Concrete {
	return &Concrete{Type: NodeTypeList, Items: items, Meta: withComments(meta)}
}

// ToConcrete re-expresses n as a tagged tree that keeps every node's Meta.
func ToConcrete(n Node) *Concrete {
	return Fold[*Concrete](n, concreter{})
}
