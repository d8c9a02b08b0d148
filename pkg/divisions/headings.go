package divisions

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/jamezpolley/publicwhip/pkg/debate"
)

// Heading tags the locator searches for. Every division is preceded,
// at some point in its sibling chain, by one of each; a transcript
// violating that is malformed.
const (
	majorHeadingTag = "major-heading"
	minorHeadingTag = "minor-heading"
)

// precedingOfTag scans backward through n's preceding siblings only,
// never its ancestors, and returns the nearest element with the given
// tag. Exhausting the sibling chain without a match is a
// StructuralError: returning a partial result here would attach a
// division to the wrong debate.
func precedingOfTag(n *html.Node, tag string) (*html.Node, error) {
	for sibling := n.PrevSibling; sibling != nil; sibling = sibling.PrevSibling {
		if sibling.Type == html.ElementNode && sibling.Data == tag {
			return sibling, nil
		}
	}
	return nil, debate.Structural("no <%s> precedes node %q", tag, debate.Attr(n, "id"))
}

// headingText returns a heading element's descendant text, trimmed at
// both ends.
func headingText(n *html.Node) string {
	return strings.TrimSpace(debate.Text(n))
}
