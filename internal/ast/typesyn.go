package ast

import (
	"lunar/internal/token"
)

// Extended-dialect type annotation syntax. Types are recursive (a table type
// holds more types), so they live in an arena and reference each other by
// TypeID instead of nested ownership.

// TypeID addresses a TypeInfo inside a TypeArena. Zero means absent.
type TypeID = uint32

// TypeArena owns every type node of one tree.
type TypeArena = Arena[TypeInfo]

// TypeInfoKind tags the TypeInfo variant.
type TypeInfoKind uint8

const (
	// TypeBasic is a plain name: 'number', 'Point'.
	TypeBasic TypeInfoKind = iota
	// TypeModule is a dotted name: 'socket.tcp'.
	TypeModule
	// TypeGeneric is a parameterized name: 'Array<number>'.
	TypeGeneric
	// TypeTable is a table shape: '{ x: number, y: number }'.
	TypeTable
)

// TypeInfo is one arena-allocated type node. Fields are used per kind:
// Basic/Module/Generic use Base (and Dot/Index for Module, Lt/Params/Gt for
// Generic); Table uses Braces/Fields.
type TypeInfo struct {
	Kind TypeInfoKind

	Base  *token.Reference // name token (Basic, Module prefix, Generic base)
	Dot   *token.Reference // Module: the '.'
	Index *token.Reference // Module: the name after the dot

	LtToken *token.Reference      // Generic: '<'
	Params  Punctuated[TypeID]    // Generic: parameter types
	GtToken *token.Reference      // Generic: '>'
	Braces  ContainedSpan         // Table: '{' '}'
	Fields  Punctuated[TypeField] // Table: name: type pairs
}

// TypeField is one 'name: type' entry of a table type.
type TypeField struct {
	Name  *token.Reference
	Colon *token.Reference
	Type  TypeID
}

// TypeSpecifier is the ': T' annotation attached to a local name or function
// parameter. It carries the arena its TypeID resolves in so the node can
// render itself.
type TypeSpecifier struct {
	Colon *token.Reference
	Type  TypeID
	Types *TypeArena
}

// TypeDeclaration is the extended-dialect statement 'type Name = T'.
// TypeToken is a contextual identifier, not a keyword.
type TypeDeclaration struct {
	TypeToken *token.Reference
	Name      *token.Reference
	Equal     *token.Reference
	Type      TypeID
	Types     *TypeArena
}

func (*TypeDeclaration) node()     {}
func (*TypeDeclaration) stmtNode() {}
func (*TypeSpecifier) node()       {}
