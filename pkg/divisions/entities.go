package divisions

import "strings"

// entitySubstitutions are applied in order. The space substitution
// must run last: it applies to every literal space remaining in the
// text, and none of the earlier references introduce one.
var entitySubstitutions = []struct {
	from string
	to   string
}{
	{"—", "&#8212;"}, // em dash
	{"‘", "&#8216;"}, // left single quote
	{"’", "&#8217;"}, // right single quote
	{"“", "&#8220;"}, // left double quote
	{"”", "&#8221;"}, // right double quote
	{" ", "&#160;"},       // non-breaking space, always last
}

// EncodeEntities replaces typographic punctuation with numeric
// character references and every space with a non-breaking-space
// reference, matching the legacy published format. The transform is
// total and ordered, and it is not idempotent: spaces inside
// already-encoded text are replaced like any other. It is applied
// exactly once per motion text.
func EncodeEntities(text string) string {
	for _, sub := range entitySubstitutions {
		text = strings.ReplaceAll(text, sub.from, sub.to)
	}
	return text
}
