package dedupe

import "strings"

// seenSet records every line it has been offered, exactly once per distinct value
type seenSet map[string]struct{}

// insert records line and reports whether it was new
func (s seenSet) insert(line string) bool {
	if _, ok := s[line]; ok {
		return false
	}
	s[line] = struct{}{}
	return true
}

type keepFirst struct {
	seen seenSet
}

// KeepFirst returns a Predicate that keeps a line the first time it is seen
// and drops every later occurrence
func KeepFirst() Predicate {
	return &keepFirst{seen: make(seenSet)}
}

func (p *keepFirst) Keep(line string) bool {
	return p.seen.insert(line)
}

type keepRepeats struct {
	seen seenSet
}

// KeepRepeats returns a Predicate that drops a line the first time it is seen
// and keeps every later occurrence, so a line seen N times is kept N-1 times
func KeepRepeats() Predicate {
	return &keepRepeats{seen: make(seenSet)}
}

func (p *keepRepeats) Keep(line string) bool {
	return !p.seen.insert(line)
}

type allowBlanks struct {
	next Predicate
}

// AllowBlanks wraps p so that lines which are empty after trimming whitespace always survive.
// Blank lines are never passed to p, so they never enter its seen-set.
func AllowBlanks(p Predicate) Predicate {
	return &allowBlanks{next: p}
}

func (p *allowBlanks) Keep(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}
	return p.next.Keep(line)
}

// NewPredicate builds a fresh Predicate for the mode and blank handling in opts.
// The variant is chosen here once so the per-line pass does not branch on options.
func NewPredicate(opts *Options) Predicate {
	o := mergeOptions(opts)
	var p Predicate
	switch o.Mode {
	case Invert:
		p = KeepRepeats()
	default:
		p = KeepFirst()
	}
	if o.AllowBlanks {
		p = AllowBlanks(p)
	}
	return p
}
