package lexer

// ASCII classifiers. Lua identifiers are ASCII only.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// isLongBracketStart checks for '[' '='* '[' at the cursor without moving it.
func (lx *Lexer) isLongBracketStart() bool {
	if lx.cursor.Peek() != '[' {
		return false
	}
	n := uint32(1)
	for lx.cursor.PeekAt(n) == '=' {
		n++
	}
	return lx.cursor.PeekAt(n) == '['
}
