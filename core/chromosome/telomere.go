// core/chromosome/telomere.go
package chromosome

import "strings"

// Telomere is the repeat marking both ends of a chromosome.
const Telomere = "TTAGGG"

var (
	// A sequence may open part way into its first repeat.
	leadingFragments = [...]string{"TAGGG", "AGGG", "GGG", "GG", "G"}
	// A sequence may close part way into its last repeat;
	// trailingFragments[len(Telomere)-1-n] is the n-letter fragment.
	trailingFragments = [...]string{"TTAGG", "TTAG", "TTA", "TT", "T"}
)

// leadingFragment returns the length of the partial repeat chars opens with.
func leadingFragment(chars string) int {
	for _, f := range leadingFragments {
		if strings.HasPrefix(chars, f) {
			return len(f)
		}
	}
	return 0
}

// skipRepeats consumes whole repeats from chars[start:]. It returns the
// letters left over and whether the leading region may continue into the
// next chunk: true when nothing or less than one repeat is left.
func skipRepeats(chars string, start int) (string, bool) {
	for strings.HasPrefix(chars[start:], Telomere) {
		start += len(Telomere)
	}
	rest := chars[start:]
	return rest, len(rest) < len(Telomere)
}

// trailingStart reports where the trailing telomere region begins in
// chars, or -1. A repeat opens the region when another full repeat
// follows it anywhere in the chunk, or when the chunk ends on the matching
// partial repeat.
func trailingStart(chars string) int {
	at := strings.Index(chars, Telomere)
	if at < 0 {
		return -1
	}
	after := chars[at+len(Telomere):]
	switch {
	case len(after) >= len(Telomere):
		if strings.Contains(after, Telomere) {
			return at
		}
	case len(after) > 0:
		if after == trailingFragments[len(Telomere)-1-len(after)] {
			return at
		}
	}
	return -1
}
