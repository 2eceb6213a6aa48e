package token

// Attach folds trivia tokens into references around the significant tokens.
// It is a total function: any token slice ending in EOF produces a reference
// slice ending in the EOF reference, and concatenating the references
// reproduces the input tokens in order.
//
// The split is deterministic: after a significant token, trivia is consumed as
// its trailing trivia until (but not including) the first whitespace token
// that contains a newline. That token and everything after it accumulate as
// leading trivia of the next significant token. Trailing trivia therefore
// never crosses a line boundary.
func Attach(tokens []Token) []*Reference {
	refs := make([]*Reference, 0, len(tokens)/2+1)
	var leading []Token

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if tok.IsTrivia() {
			leading = append(leading, tok)
			i++
			continue
		}

		ref := &Reference{Leading: leading, Token: tok}
		leading = nil
		i++

		for i < len(tokens) && tokens[i].IsTrivia() && !tokens[i].SpansNewline() {
			ref.Trailing = append(ref.Trailing, tokens[i])
			i++
		}

		refs = append(refs, ref)
	}

	// Dangling trivia with no significant token after it can only happen when
	// the input does not end in EOF; keep it anyway so nothing is lost.
	if len(leading) > 0 {
		refs = append(refs, &Reference{Leading: leading, Token: Token{Kind: Invalid}})
	}

	return refs
}
