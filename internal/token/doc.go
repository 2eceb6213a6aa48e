// Package token defines lexical token kinds, trivia classification, and the
// token references the parser consumes.
// Invariants:
//   - Token.Span matches Token.Text exactly (Start..End, in bytes).
//   - Trivia (whitespace, comments, a shebang line) appears in the flat token
//     stream like any other token; Attach folds it into Reference leading and
//     trailing slices, and the grammar never sees it.
//   - A whitespace token contains at most one newline, and only as its final
//     character. The attachment rule relies on this.
//   - Concatenating every Reference of a parsed tree in order reproduces the
//     source text byte for byte.
//   - Contextual words of the extended dialect ('type') are identifiers; the
//     parser recognizes them by text, not the lexer.
package token
