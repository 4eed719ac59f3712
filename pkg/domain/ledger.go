package domain

// Ledger is the pass-scoped match accumulator: a running total plus the
// ordered, deduplicated set of original field texts that contained at least
// one match. Insertion order follows traversal order. A fresh ledger is
// created for every pass; it is never persisted between passes.
type Ledger struct {
	count   int
	seen    map[string]struct{}
	matches []string
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{seen: make(map[string]struct{})}
}

// Record adds n matches found inside the given original field text.
// The entire pre-substitution text is recorded, not the matched substring;
// duplicate texts are suppressed but still counted.
func (l *Ledger) Record(original string, n int) {
	if n <= 0 {
		return
	}
	l.count += n
	if _, dup := l.seen[original]; dup {
		return
	}
	l.seen[original] = struct{}{}
	l.matches = append(l.matches, original)
}

// Count returns the total number of matches recorded so far.
func (l *Ledger) Count() int {
	return l.count
}

// Matches returns the distinct matched texts in insertion order.
// The returned slice is a copy and never nil.
func (l *Ledger) Matches() []string {
	out := make([]string, len(l.matches))
	copy(out, l.matches)
	return out
}

// Reset empties the ledger for reuse.
func (l *Ledger) Reset() {
	l.count = 0
	l.seen = make(map[string]struct{})
	l.matches = nil
}
