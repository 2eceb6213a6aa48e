package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwElseIf represents the 'elseif' keyword.
	KwElseIf // elseif
	// KwEnd represents the 'end' keyword.
	KwEnd // end
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwLocal represents the 'local' keyword.
	KwLocal // local
	// KwNil represents the 'nil' keyword.
	KwNil // nil
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwRepeat represents the 'repeat' keyword.
	KwRepeat // repeat
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwUntil represents the 'until' keyword.
	KwUntil // until
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	// Number represents a numeric literal token.
	Number
	// StringLit represents a short or long-bracket string literal token.
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Caret represents the caret operator token.
	Caret // ^
	// Hash represents the hash (length) operator token.
	Hash // #
	// Assign represents the assign operator token.
	Assign // =
	// EqEq represents the equality operator token.
	EqEq // ==
	// TildeEq represents the inequality operator token.
	TildeEq // ~=
	// Lt represents the lt operator token.
	Lt // <
	// LtEq represents the lt eq operator token.
	LtEq // <=
	// Gt represents the gt operator token.
	Gt // >
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Colon represents the colon token.
	Colon // :
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// DotDot represents the concatenation operator token.
	DotDot // ..
	// Ellipsis represents the vararg token.
	Ellipsis // ...

	// Whitespace represents a run of spaces/tabs with at most one trailing newline.
	Whitespace
	// Comment represents a short '--' or long '--[[ ]]' comment.
	Comment
	// Shebang represents a '#!' line at the very start of the input.
	Shebang
)

var kindNames = map[Kind]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	KwAnd:      "KwAnd",
	KwBreak:    "KwBreak",
	KwDo:       "KwDo",
	KwElse:     "KwElse",
	KwElseIf:   "KwElseIf",
	KwEnd:      "KwEnd",
	KwFalse:    "KwFalse",
	KwFor:      "KwFor",
	KwFunction: "KwFunction",
	KwIf:       "KwIf",
	KwIn:       "KwIn",
	KwLocal:    "KwLocal",
	KwNil:      "KwNil",
	KwNot:      "KwNot",
	KwOr:       "KwOr",
	KwRepeat:   "KwRepeat",
	KwReturn:   "KwReturn",
	KwThen:     "KwThen",
	KwTrue:     "KwTrue",
	KwUntil:    "KwUntil",
	KwWhile:    "KwWhile",
	Number:     "Number",
	StringLit:  "StringLit",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	Percent:    "Percent",
	Caret:      "Caret",
	Hash:       "Hash",
	Assign:     "Assign",
	EqEq:       "EqEq",
	TildeEq:    "TildeEq",
	Lt:         "Lt",
	LtEq:       "LtEq",
	Gt:         "Gt",
	GtEq:       "GtEq",
	LParen:     "LParen",
	RParen:     "RParen",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
	Semicolon:  "Semicolon",
	Colon:      "Colon",
	Comma:      "Comma",
	Dot:        "Dot",
	DotDot:     "DotDot",
	Ellipsis:   "Ellipsis",
	Whitespace: "Whitespace",
	Comment:    "Comment",
	Shebang:    "Shebang",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}

// IsTrivia reports whether tokens of this kind carry no grammatical meaning
// and exist only for exact reconstruction.
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, Comment, Shebang:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the kind is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwAnd && k <= KwWhile
}

// IsSymbol reports whether the kind is an operator or punctuation.
func (k Kind) IsSymbol() bool {
	return k >= Plus && k <= Ellipsis
}
