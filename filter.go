package dedupe

// Filter runs lines through p in order and returns the lines it keeps.
// The input slice is not modified.
func Filter(lines []string, p Predicate) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if p.Keep(line) {
			out = append(out, line)
		}
	}
	return out
}
