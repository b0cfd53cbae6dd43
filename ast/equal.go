package ast

// DeepEqual reports whether two trees are structurally identical: same
// kinds, same token text and trivia at every terminal, same children
// throughout. Source positions are ignored, so a freshly built node
// compares equal to a parsed one with the same shape. Two independent
// parses of the same source are DeepEqual without being the same pointers.
func DeepEqual(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	if ta, ok := a.(Terminal); ok {
		tb := b.(Terminal)
		return ta.LeadingTrivia() == tb.LeadingTrivia() && ta.TokenText() == tb.TokenText()
	}
	if ma, ok := a.(*Module); ok {
		if ma.Footer != b.(*Module).Footer {
			return false
		}
	}
	ca, cb := a.Children(), b.Children()
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if !DeepEqual(ca[i], cb[i]) {
			return false
		}
	}
	return true
}
