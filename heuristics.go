package inflect

// Default English suffixation rules, used as fallbacks when the store has no
// explicit entry for a word. Suffix tests are case-insensitive; output keeps
// the input's case. Irregular forms (go→went, child→children) are expected to
// come from the store, never from here.

// lowerByte folds an ASCII letter to lower case.
func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// isVowel reports whether b is an ASCII vowel, case-insensitively.
func isVowel(b byte) bool {
	switch lowerByte(b) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// hasSuffixFold reports whether word ends in suffix, ignoring ASCII case.
// suffix must already be lower case.
func hasSuffixFold(word, suffix string) bool {
	if len(word) < len(suffix) {
		return false
	}
	tail := word[len(word)-len(suffix):]
	for i := 0; i < len(suffix); i++ {
		if lowerByte(tail[i]) != suffix[i] {
			return false
		}
	}
	return true
}

// endsInSpirant reports a final o, s, ch, sh or x.
func endsInSpirant(word string) bool {
	return hasSuffixFold(word, "o") || hasSuffixFold(word, "s") ||
		hasSuffixFold(word, "ch") || hasSuffixFold(word, "sh") ||
		hasSuffixFold(word, "x")
}

// endsInVowelY reports a final vowel+y.
func endsInVowelY(word string) bool {
	return len(word) >= 2 && isVowel(word[len(word)-2]) && lowerByte(word[len(word)-1]) == 'y'
}

// finalInflectableConsonant reports whether the last character is a
// consonant other than y or x, the kind subject to vowel-cluster rules.
func finalInflectableConsonant(word string) bool {
	if word == "" {
		return false
	}
	c := lowerByte(word[len(word)-1])
	return !isVowel(word[len(word)-1]) && c != 'y' && c != 'x'
}

// endsInLongVowelConsonant reports two or more vowels followed by one
// consonant (not y, not x) at the end of the word.
func endsInLongVowelConsonant(word string) bool {
	n := len(word)
	return n >= 3 && finalInflectableConsonant(word) && isVowel(word[n-2]) && isVowel(word[n-3])
}

// endsInShortVowelConsonant reports a single vowel followed by one consonant
// (not y, not x) at the end of the word. Callers check the long-vowel form
// first where the distinction matters.
func endsInShortVowelConsonant(word string) bool {
	n := len(word)
	return n >= 2 && finalInflectableConsonant(word) && isVowel(word[n-2])
}

// doubleFinal repeats the word's final character and appends suffix.
func doubleFinal(word, suffix string) string {
	return word + word[len(word)-1:] + suffix
}

// NounPlural generates the regular plural of a single noun word.
func NounPlural(word string) string {
	if hasSuffixFold(word, "fe") {
		return word[:len(word)-2] + "ves"
	}
	if hasSuffixFold(word, "f") {
		return word[:len(word)-1] + "ves"
	}
	if endsInSpirant(word) {
		return word + "es"
	}
	if endsInVowelY(word) {
		return word + "s"
	}
	if hasSuffixFold(word, "y") {
		return word[:len(word)-1] + "ies"
	}
	return word + "s"
}

// VerbSingular generates the third-person singular present form of a single
// verb word.
func VerbSingular(word string) string {
	if endsInSpirant(word) {
		return word + "es"
	}
	if endsInVowelY(word) {
		return word + "s"
	}
	if hasSuffixFold(word, "y") {
		return word[:len(word)-1] + "ies"
	}
	return word + "s"
}

// VerbPresentParticiple generates the present participle (gerund) form of a
// single verb word.
func VerbPresentParticiple(word string) string {
	if hasSuffixFold(word, "ie") {
		return word[:len(word)-2] + "ying"
	}
	if hasSuffixFold(word, "e") {
		return word[:len(word)-1] + "ing"
	}
	if endsInLongVowelConsonant(word) {
		return word + "ing"
	}
	if endsInShortVowelConsonant(word) {
		return doubleFinal(word, "ing")
	}
	return word + "ing"
}

// VerbPast generates the past form of a single verb word.
func VerbPast(word string) string {
	if endsInVowelY(word) {
		return word + "ed"
	}
	if hasSuffixFold(word, "y") {
		return word[:len(word)-1] + "ied"
	}
	if endsInLongVowelConsonant(word) {
		return word + "ed"
	}
	if endsInShortVowelConsonant(word) {
		return doubleFinal(word, "ed")
	}
	if hasSuffixFold(word, "e") {
		return word + "d"
	}
	return word + "ed"
}

// VerbPastParticiple generates the past participle form of a single verb
// word. Regular past participles coincide with the past form.
func VerbPastParticiple(word string) string {
	return VerbPast(word)
}

// AdjectiveComparative generates the comparative form of a single adjective
// word.
func AdjectiveComparative(word string) string {
	if endsInVowelY(word) {
		return word + "er"
	}
	if hasSuffixFold(word, "y") {
		return word[:len(word)-1] + "ier"
	}
	if endsInLongVowelConsonant(word) {
		return word + "er"
	}
	if endsInShortVowelConsonant(word) {
		return doubleFinal(word, "er")
	}
	if hasSuffixFold(word, "e") {
		return word + "r"
	}
	return word + "er"
}

// AdjectiveSuperlative generates the superlative form of a single adjective
// word.
func AdjectiveSuperlative(word string) string {
	if endsInVowelY(word) {
		return word + "est"
	}
	if hasSuffixFold(word, "y") {
		return word[:len(word)-1] + "iest"
	}
	if endsInLongVowelConsonant(word) {
		return word + "est"
	}
	if endsInShortVowelConsonant(word) {
		return doubleFinal(word, "est")
	}
	if hasSuffixFold(word, "e") {
		return word + "st"
	}
	return word + "est"
}

// AdverbComparative generates the comparative form of a single adverb word.
// Adverbs follow the adjective rules.
func AdverbComparative(word string) string {
	return AdjectiveComparative(word)
}

// AdverbSuperlative generates the superlative form of a single adverb word.
// Adverbs follow the adjective rules.
func AdverbSuperlative(word string) string {
	return AdjectiveSuperlative(word)
}
