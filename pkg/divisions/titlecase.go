package divisions

import (
	"strings"
	"unicode"
)

// titleStopWords are the words kept lowercase in title-cased headings:
// articles, short prepositions, and conjunctions. The list is closed.
var titleStopWords = map[string]bool{
	"a": true, "an": true, "at": true, "as": true, "and": true,
	"are": true, "but": true, "by": true, "ere": true, "for": true,
	"from": true, "in": true, "into": true, "is": true, "of": true,
	"on": true, "onto": true, "or": true, "over": true, "per": true,
	"the": true, "to": true, "that": true, "than": true, "until": true,
	"unto": true, "upon": true, "via": true, "with": true,
	"while": true, "whilst": true, "within": true, "without": true,
}

// TitleCase converts a trimmed heading to the legacy title-case form:
// every word capitalized except stop words, which stay lowercase. A
// heading consisting of a single word keeps its capital even when
// that word is a stop word.
//
// The second half of a contraction is never capitalized: a letter run
// opening directly after an apostrophe is left alone, so "member's"
// becomes "Member's", not "Member'S". Word splitting is
// whitespace-delimited and internal whitespace collapses to single
// spaces; punctuation attached to a word is part of the word for the
// stop-word comparison.
func TitleCase(text string) string {
	runes := []rune(strings.ToLower(text))

	var prev rune
	for i, r := range runes {
		if unicode.IsLetter(r) && !unicode.IsLetter(prev) && !isApostrophe(prev) {
			runes[i] = unicode.ToUpper(r)
		}
		prev = r
	}

	words := strings.Fields(string(runes))
	if len(words) > 1 {
		for i, word := range words {
			if titleStopWords[strings.ToLower(word)] {
				words[i] = strings.ToLower(word)
			}
		}
	}
	return strings.Join(words, " ")
}

// isApostrophe reports whether r is an apostrophe-like rune that can
// open the second half of a contraction.
func isApostrophe(r rune) bool {
	return r == '\'' || r == '’' || r == 'ʼ'
}
