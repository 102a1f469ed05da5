package dedupe

// Predicate decides, one line at a time and in input order, whether a line survives.
// Implementations are stateful: a Predicate records what it has been offered and
// must not be shared between passes.
type Predicate interface {
	// Keep reports whether line should be emitted
	Keep(line string) bool
}

// PredicateFunc adapts an ordinary function to the Predicate interface
type PredicateFunc func(line string) bool

// Keep calls f(line)
func (f PredicateFunc) Keep(line string) bool {
	return f(line)
}
