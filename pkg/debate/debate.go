// Package debate models a parsed parliamentary transcript as a markup
// tree and provides the node queries the division extraction engine
// depends on: tag lookup in document order, attribute access,
// descendant text, and markup serialization. The tree is read-only
// once parsed.
package debate

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
)

// ContainerTag is the element every transcript must contain. Parsing
// fails with a StructuralError when it is absent.
const ContainerTag = "publicwhip"

// StructuralError reports transcript markup that violates the
// invariants the extraction engine depends on. It is fatal for the
// document being processed: no partial records are produced.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string {
	return "malformed transcript: " + e.Msg
}

// Structural creates a StructuralError with a formatted message.
func Structural(format string, args ...interface{}) *StructuralError {
	return &StructuralError{Msg: fmt.Sprintf(format, args...)}
}

// Document is a parsed transcript. It owns its node tree; callers
// only read it.
type Document struct {
	container *html.Node
}

// Parse converts raw transcript markup into a Document. Legacy
// transcripts declare ISO-8859-1; those are decoded to UTF-8 before
// parsing. The markup must contain a ContainerTag element.
func Parse(data []byte) (*Document, error) {
	decoded := data
	if declaresLatin1(data) {
		decoder := charmap.ISO8859_1.NewDecoder()
		converted, err := decoder.Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode ISO-8859-1 transcript: %w", err)
		}
		decoded = converted
	}

	root, err := html.Parse(bytes.NewReader(decoded))
	if err != nil {
		return nil, fmt.Errorf("failed to parse transcript markup: %w", err)
	}

	container := findElement(root, ContainerTag)
	if container == nil {
		return nil, Structural("no <%s> container element", ContainerTag)
	}

	return &Document{container: container}, nil
}

// declaresLatin1 reports whether the XML declaration names an
// ISO-8859-1 encoding. Only the prolog is inspected.
func declaresLatin1(data []byte) bool {
	prolog := data
	if len(prolog) > 120 {
		prolog = prolog[:120]
	}
	lowered := strings.ToLower(string(prolog))
	return strings.Contains(lowered, "iso-8859-1") || strings.Contains(lowered, "latin-1")
}

// Container returns the transcript's container element.
func (d *Document) Container() *html.Node {
	return d.container
}

// FindAll returns every element with the given tag beneath the
// container, in document order.
func (d *Document) FindAll(tag string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.container)
	return found
}

// findElement returns the first element with the given tag at or
// beneath n, or nil.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// Attr returns the value of the named attribute on n, or "" when the
// attribute is absent.
func Attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present on n,
// regardless of its value.
func HasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// Text returns the concatenated text of all of n's descendants.
func Text(n *html.Node) string {
	var builder strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			builder.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return builder.String()
}

// Render serializes n, including its own tags, back to markup.
func Render(n *html.Node) string {
	var builder strings.Builder
	if err := html.Render(&builder, n); err != nil {
		return ""
	}
	return builder.String()
}

// RenderChildren serializes n's children, in order, without n's own
// tags.
func RenderChildren(n *html.Node) string {
	var builder strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&builder, c); err != nil {
			return ""
		}
	}
	return builder.String()
}

// ChildElements returns n's direct child elements with the given tag,
// in document order.
func ChildElements(n *html.Node, tag string) []*html.Node {
	var found []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			found = append(found, c)
		}
	}
	return found
}
