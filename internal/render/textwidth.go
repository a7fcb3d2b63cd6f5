package render

// Monospace display-width heuristic shared by the table layout. The
// classification is intentionally a fixed subset of Unicode wide-character
// blocks rather than a full East-Asian-width table: the publishing platform's
// monospace rendering was calibrated against exactly these ranges, so
// characters outside them (including most CJK ideographs above U+3000)
// measure as width 1. Known approximation, not a defect.

// minColumnWidth floors every table column at the width of the minimal
// separator dash run "---".
const minColumnWidth = 3

// Width returns the monospace display width of s.
//
// Zero-width format characters (variation selectors, zero-width joiner,
// Mongolian variation selectors) count as 0; supplementary-plane code points
// (most pictographic emoji) and the common wide symbol blocks count as 2;
// everything else, including invalid UTF-8 bytes decoded as U+FFFD, counts
// as 1.
func Width(s string) int {
	w := 0
	for _, r := range s {
		switch {
		case isZeroWidth(r):
			// skip
		case r > 0xFFFF:
			w += 2
		case isWideSymbol(r):
			w += 2
		default:
			w++
		}
	}
	return w
}

func isZeroWidth(r rune) bool {
	return r == 0xFE0E || r == 0xFE0F || // variation selectors
		r == 0x200D || // zero-width joiner
		(r >= 0x180B && r <= 0x180D) // Mongolian variation selectors
}

func isWideSymbol(r rune) bool {
	return (r >= 0x2600 && r <= 0x27BF) || // miscellaneous symbols, dingbats
		(r >= 0x2300 && r <= 0x23FF) || // miscellaneous technical
		(r >= 0x2B00 && r <= 0x2BFF) // miscellaneous symbols and arrows
}
