package ast

// NodeType represents the type of the AST node
type NodeType uint8

// Node types
const (
	NodeTypeInvalid NodeType = iota
	NodeTypeNumber
	NodeTypeString
	NodeTypeSymbol
	NodeTypeList
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

// MarshalText encodes the node type as its name.
func (nt NodeType) MarshalText() ([]byte, error) {
	return []byte(nt.String()), nil
}

var nodeTypeName = map[NodeType]string{
	NodeTypeNumber: "Number",
	NodeTypeString: "String",
	NodeTypeSymbol: "Symbol",
	NodeTypeList:   "List",
}
