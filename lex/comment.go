package lex

// isCommentStart reports whether the cursor is positioned at the start of
// one of the three comment styles. It does not consume anything.
func isCommentStart(cur *cursor) bool {
	ch, ok := cur.peek()
	if !ok {
		return false
	}
	if ch == '#' {
		return true
	}
	if ch != '/' {
		return false
	}
	next, ok := cur.peekAt(1)
	return ok && (next == '/' || next == '*')
}

// skipComment consumes exactly one comment, dispatching on its opening
// spelling. The caller must have already confirmed isCommentStart.
func skipComment(cur *cursor, ts tokenStart) error {
	ch, _ := cur.peek()
	if ch == '#' {
		skipLineComment(cur)
		return nil
	}
	// ch == '/'
	next, _ := cur.peekAt(1)
	if next == '/' {
		skipLineComment(cur)
		return nil
	}
	return skipBlockComment(cur, ts)
}

// skipLineComment consumes up to but not including the terminating '\n',
// leaving it for the main driver so its own whitespace handling advances
// the line counter.
func skipLineComment(cur *cursor) {
	for {
		ch, ok := cur.peek()
		if !ok || ch == '\n' {
			return
		}
		cur.bump()
	}
}

// skipBlockComment consumes a /* ... */ comment. The opening "/*" is
// consumed eagerly as a pair so that "/*/" is not mistaken for a
// self-closing comment (the scanner must see a '*' immediately followed
// by a '/' that was not itself the opener's own '*').
func skipBlockComment(cur *cursor, ts tokenStart) error {
	cur.bump() // '/'
	cur.bump() // '*'

	for {
		ch, ok := cur.peek()
		if !ok {
			return ts.err("Multi-line comment has no terminating */.")
		}
		if ch == '*' {
			next, ok := cur.peekAt(1)
			if ok && next == '/' {
				cur.bump() // '*'
				// The trailing '/' is consumed here too; the driver does
				// not advance past a comment on its own.
				cur.bump()
				return nil
			}
		}
		cur.bump()
	}
}
