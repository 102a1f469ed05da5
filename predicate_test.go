package dedupe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		input string
		want  []string
	}{
		{"unique", Options{}, "a,b,a,c,b", []string{"a", "b", "c"}},
		{"unique empty", Options{}, "", []string{}},
		{"unique case sensitive", Options{}, "a,A,a", []string{"a", "A"}},
		{"unique blanks collapse", Options{}, "a,,b,,", []string{"a", "", "b"}},
		{"invert", Options{Mode: Invert}, "a,a,a,b", []string{"a", "a"}},
		{"invert order", Options{Mode: Invert}, "x,y,x,z,y,x", []string{"x", "y", "x"}},
		{"invert no repeats", Options{Mode: Invert}, "a,b,c", []string{}},
		{"unique allow blanks", Options{AllowBlanks: true}, ",a,,a,", []string{"", "a", "", ""}},
		{"invert allow blanks", Options{Mode: Invert, AllowBlanks: true}, ",a,,a,b", []string{"", "", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(split(tt.input), NewPredicate(&tt.opts))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	in := []string{"b", "a", "b"}
	Filter(in, KeepFirst())
	assert.Equal(t, []string{"b", "a", "b"}, in)
}

func TestUniqueIdempotent(t *testing.T) {
	in := split("q,w,e,q,r,w,,t,,e,y")
	once := Filter(in, KeepFirst())
	twice := Filter(once, KeepFirst())
	assert.Equal(t, once, twice)
}

func TestUniqueEachLineOnce(t *testing.T) {
	in := split("5,3,5,1,3,3,9,1,5")
	out := Filter(in, KeepFirst())

	counts := map[string]int{}
	for _, l := range out {
		counts[l]++
	}
	for l, n := range counts {
		assert.Equal(t, 1, n, "line %q", l)
	}
	assert.Equal(t, []string{"5", "3", "1", "9"}, out)
}

func TestInvertCounts(t *testing.T) {
	in := split("a,b,a,c,a,b,d,a")
	want := map[string]int{}
	for _, l := range in {
		want[l]++
	}
	for l := range want {
		want[l]--
	}

	got := map[string]int{}
	for _, l := range Filter(in, KeepRepeats()) {
		got[l]++
	}
	for l, n := range want {
		assert.Equal(t, n, got[l], "line %q", l)
	}
}

func TestAllowBlanksNeverRecorded(t *testing.T) {
	var offered []string
	inner := PredicateFunc(func(line string) bool {
		offered = append(offered, line)
		return true
	})
	p := AllowBlanks(inner)

	for _, l := range []string{"", "a", "  ", "\t", "b"} {
		assert.True(t, p.Keep(l))
	}
	assert.Equal(t, []string{"a", "b"}, offered)
}

func TestNewPredicateFresh(t *testing.T) {
	opts := &Options{}
	p1 := NewPredicate(opts)
	assert.True(t, p1.Keep("a"))
	assert.False(t, p1.Keep("a"))

	p2 := NewPredicate(opts)
	assert.True(t, p2.Keep("a"), "predicates must not share state")

	assert.True(t, NewPredicate(nil).Keep("x"))
}
