package lex

// isSymbolByte reports whether ch belongs to the symbol class that forms
// maximal-run OPERATOR tokens. '#' is included here since it is only
// special-cased for comment-start priority at the beginning of a token;
// isCommentStart is checked before the driver ever reaches the operator
// path, so a '#' reached mid-run via scanOperatorRun is just another
// symbol byte.
func isSymbolByte(ch byte) bool {
	switch ch {
	case '&', '|', '^', '=', '<', '>', '*', '/', '%', '#':
		return true
	default:
		return false
	}
}

// scanOperatorRun consumes the maximal run of isSymbolByte bytes starting
// at the cursor. The caller must have confirmed the first byte qualifies
// and that it is not the start of a comment.
func scanOperatorRun(cur *cursor) string {
	var buf []byte
	for {
		ch, ok := cur.peek()
		if !ok || !isSymbolByte(ch) {
			return string(buf)
		}
		buf = append(buf, cur.bump())
	}
}
