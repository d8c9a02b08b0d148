package divisions

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/jamezpolley/publicwhip/pkg/debate"
)

// motionMarkerAttr marks a paragraph as carrying the official motion
// wording.
const motionMarkerAttr = "pwmotiontext"

// collectMotion recovers the motion text for a division by scanning
// backward through its preceding siblings. The scan stops, exclusive,
// at the first sibling whose tag contains "heading" or "division";
// exhausting the sibling chain without reaching such a boundary is a
// StructuralError.
//
// Marked motion paragraphs win over speeches: when any visited
// sibling carries marker paragraphs, the motion is those paragraphs'
// own markup, each followed by a blank line. Only when no marker
// paragraph exists anywhere in the scan does the motion fall back to
// the formatted text of the visited speech nodes. The two sources are
// never mixed.
//
// Both buffers accumulate in backward-scan order (paragraphs within
// one sibling in forward order) and are reversed as a whole before
// rendering. That reproduces the legacy ordering exactly, including
// its quirk of reversing multiple marker paragraphs found inside a
// single sibling.
func collectMotion(division *html.Node, lookup MemberLookup) (string, error) {
	var motionParagraphs []*html.Node
	var speeches []*html.Node

	bounded := false
	for sibling := division.PrevSibling; sibling != nil; sibling = sibling.PrevSibling {
		if sibling.Type != html.ElementNode {
			continue
		}
		if strings.Contains(sibling.Data, "heading") || strings.Contains(sibling.Data, "division") {
			bounded = true
			break
		}

		for _, paragraph := range debate.ChildElements(sibling, "p") {
			if debate.HasAttr(paragraph, motionMarkerAttr) {
				motionParagraphs = append(motionParagraphs, paragraph)
			}
		}
		if sibling.Data == "speech" {
			speeches = append(speeches, sibling)
		}
	}
	if !bounded {
		return "", debate.Structural("no heading bounds the motion scan before division %q",
			debate.Attr(division, "id"))
	}

	var builder strings.Builder
	if len(motionParagraphs) > 0 {
		reverseNodes(motionParagraphs)
		for _, paragraph := range motionParagraphs {
			builder.WriteString(debate.Render(paragraph))
			builder.WriteString("\n\n")
		}
	} else {
		reverseNodes(speeches)
		for _, speech := range speeches {
			builder.WriteString(formatSpeech(speech, lookup))
		}
	}

	return EncodeEntities(builder.String()), nil
}

// reverseNodes restores document order for a buffer built during a
// backward scan.
func reverseNodes(nodes []*html.Node) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}
