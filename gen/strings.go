package gen

// StringOf builds a string generator out of a rune generator by
// drawing a list of runes and converting. Domain extension (not named
// in spec §4.2) grounded in the same left-to-right composition rule
// as every other combinator here.
func StringOf(runeGen Generator[rune]) Generator[string] {
	return Map1(List(runeGen), func(rs []rune) string { return string(rs) })
}

const alphaLower = "abcdefghijklmnopqrstuvwxyz"
const alphaUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const digits = "0123456789"

func runeFromAlphabet(alphabet string) Generator[rune] {
	return Map1(RangeN(len(alphabet)), func(i int) rune { return rune(alphabet[i]) })
}

// AlphaString generates strings drawn only from ASCII letters.
func AlphaString() Generator[string] {
	return StringOf(runeFromAlphabet(alphaLower + alphaUpper))
}

// IdentifierString generates strings shaped like a typical
// identifier: a letter or underscore followed by letters, digits, or
// underscores.
func IdentifierString() Generator[string] {
	head := runeFromAlphabet(alphaLower + alphaUpper + "_")
	tail := runeFromAlphabet(alphaLower + alphaUpper + digits + "_")
	return Map2(head, List(tail), func(h rune, t []rune) string {
		return string(h) + string(t)
	})
}
