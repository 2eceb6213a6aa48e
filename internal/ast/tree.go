package ast

import (
	"lunar/internal/source"
	"lunar/internal/token"
)

// Tree is one fully parsed chunk: the root block, the flat token-reference
// sequence it was built from (EOF last), and the arena for extended-dialect
// type nodes. A freshly parsed tree borrows file for position resolution;
// Detach removes that dependency.
type Tree struct {
	Block *Block
	Refs  []*token.Reference
	Types *TypeArena

	file *source.File
}

// NewTree assembles a parsed tree. refs must end with the EOF reference.
func NewTree(block *Block, refs []*token.Reference, types *TypeArena, file *source.File) *Tree {
	return &Tree{Block: block, Refs: refs, Types: types, file: file}
}

func (*Tree) node() {}

// Eof returns the end-of-input reference.
func (t *Tree) Eof() *token.Reference {
	return t.Refs[len(t.Refs)-1]
}

// Tokens returns the ordered token-reference sequence, EOF included, for
// tools that need raw lexical data independent of tree structure.
func (t *Tree) Tokens() []*token.Reference {
	return t.Refs
}

// File returns the borrowed source file, nil after Detach.
func (t *Tree) File() *source.File {
	return t.file
}

// String renders the tree back to the exact source text.
func (t *Tree) String() string {
	return Print(t)
}

// Detach converts the borrowing tree into a self-contained one: every
// reference gets baked positions and the file handle is dropped. One-way and
// O(tree size).
func (t *Tree) Detach() {
	if t.file == nil {
		return
	}
	for _, r := range t.Refs {
		r.Detach(t.file)
	}
	t.file = nil
}

// Detached reports whether Detach has run.
func (t *Tree) Detached() bool {
	return t.file == nil
}
