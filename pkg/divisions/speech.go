package divisions

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/jamezpolley/publicwhip/pkg/debate"
)

// MemberLookup resolves a speaker identifier to a member's display
// name. A miss is an expected outcome, not an error: the formatter
// falls back to the literal speaker name in the markup.
type MemberLookup interface {
	NameForID(id string) (string, bool)
}

// formatSpeech renders one speech node into the legacy motion-text
// markup: a speaker attribution paragraph, a blank line, then the
// speech body with embedded newlines removed and a blank line after
// every closing paragraph tag. The exact blank-line placement matches
// the legacy renderer and must not change.
func formatSpeech(speech *html.Node, lookup MemberLookup) string {
	label := debate.Attr(speech, "speakername")
	if id := debate.Attr(speech, "speakerid"); id != "" && lookup != nil {
		if name, ok := lookup.NameForID(id); ok {
			label = name
		}
	}

	body := debate.RenderChildren(speech)
	body = strings.ReplaceAll(body, "\n", "")
	body = strings.ReplaceAll(body, "</p>", "</p>\n\n")

	return fmt.Sprintf("<p class=\"speaker\">%s</p>\n\n%s", label, body)
}
