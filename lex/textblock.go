package lex

// startsTextBlock reports whether the cursor is sitting on the opening
// "|||\n" of a text block. It does not consume anything.
func startsTextBlock(cur *cursor) bool {
	a, ok := cur.peekAt(0)
	if !ok || a != '|' {
		return false
	}
	b, ok := cur.peekAt(1)
	if !ok || b != '|' {
		return false
	}
	c, ok := cur.peekAt(2)
	if !ok || c != '|' {
		return false
	}
	d, ok := cur.peekAt(3)
	return ok && d == '\n'
}

// scanTextBlock consumes a "|||\n" ... "|||" text-block literal. The
// cursor must be positioned on the first '|' of the opener; startsTextBlock
// must have already confirmed the shape.
//
// The whitespace prefix that every body line must share is derived only
// from the block's first body line. A later body line whose indentation is
// a proper extension of that prefix (more spaces/tabs than the first line
// had) keeps its extra indentation in the output rather than having it
// stripped — this is not an accident of a simpler stripping rule, it falls
// out of doing the prefix match byte-for-byte only up to the original
// prefix's length, and is preserved deliberately rather than "fixed" to
// strip a maximal common prefix across all lines.
func scanTextBlock(cur *cursor, ts tokenStart) (string, error) {
	cur.bump() // '|'
	cur.bump() // '|'
	cur.bump() // '|'
	cur.bump() // '\n'

	prefix := scanWhitespacePrefix(cur)
	if len(prefix) == 0 {
		return "", ts.err("Text block's first line must start with whitespace.")
	}

	// The first body line's prefix has already been consumed by
	// scanWhitespacePrefix; every later line must match it again.
	var out []byte
	for {
		for {
			ch, ok := cur.peek()
			if !ok {
				return "", ts.err("Unexpected EOF")
			}
			out = append(out, cur.bump())
			if ch == '\n' {
				break
			}
		}
		if !consumePrefix(cur, prefix) {
			break
		}
	}

	for {
		ch, ok := cur.peek()
		if !ok || (ch != ' ' && ch != '\t') {
			break
		}
		cur.bump()
	}

	if !matchesLiteral(cur, "|||") {
		return "", ts.err("Text block not terminated with |||")
	}
	cur.bump() // first '|'
	cur.bump() // second '|'
	// The third '|' is consumed here too: the driver does not advance past
	// a token on its own, so the token's End falls one past the closer.
	cur.bump()

	return string(out), nil
}

// scanWhitespacePrefix consumes and returns the longest run of spaces and
// tabs starting at the cursor.
func scanWhitespacePrefix(cur *cursor) string {
	var buf []byte
	for {
		ch, ok := cur.peek()
		if !ok || (ch != ' ' && ch != '\t') {
			break
		}
		buf = append(buf, cur.bump())
	}
	return string(buf)
}

// consumePrefix reports whether the current line continues the block: if
// the line begins with prefix byte-for-byte, those bytes are consumed and
// true is returned; otherwise nothing is consumed and false is returned
// (the text block has ended).
func consumePrefix(cur *cursor, prefix string) bool {
	for i := 0; i < len(prefix); i++ {
		ch, ok := cur.peekAt(i)
		if !ok || ch != prefix[i] {
			return false
		}
	}
	for i := 0; i < len(prefix); i++ {
		cur.bump()
	}
	return true
}

// matchesLiteral reports whether the upcoming bytes equal lit, without
// consuming anything.
func matchesLiteral(cur *cursor, lit string) bool {
	for i := 0; i < len(lit); i++ {
		ch, ok := cur.peekAt(i)
		if !ok || ch != lit[i] {
			return false
		}
	}
	return true
}
