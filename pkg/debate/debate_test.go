package debate

import (
	"errors"
	"strings"
	"testing"
)

const testTranscript = `<?xml version="1.0" encoding="UTF-8"?>
<publicwhip scraperversion="a" latest="yes">
<major-heading id="uk.org.publicwhip/debate/2003-01-29.1.0" url="http://example.org/d1">BUSINESS OF THE HOUSE</major-heading>
<speech id="uk.org.publicwhip/debate/2003-01-29.1.1" speakerid="member/123" speakername="Jo Bloggs" url="http://example.org/s1">
<p>I beg to move.</p>
</speech>
<division id="uk.org.publicwhip/debate/2003-01-29.1.2" divdate="2003-01-29" divnumber="1" time="14:00" url="http://example.org/v1">
<divisioncount ayes="10" noes="5"/>
</division>
</publicwhip>`

func TestParseFindsContainer(t *testing.T) {
	doc, err := Parse([]byte(testTranscript))
	if err != nil {
		t.Fatalf("failed to parse transcript: %v", err)
	}
	if doc.Container() == nil {
		t.Fatal("expected a container node")
	}
	if doc.Container().Data != ContainerTag {
		t.Errorf("expected container tag %q, got %q", ContainerTag, doc.Container().Data)
	}
}

func TestParseMissingContainer(t *testing.T) {
	_, err := Parse([]byte("<html><body><p>not a transcript</p></body></html>"))
	if err == nil {
		t.Fatal("expected an error for markup without a container")
	}
	var structural *StructuralError
	if !errors.As(err, &structural) {
		t.Errorf("expected a StructuralError, got %T: %v", err, err)
	}
}

func TestParseDecodesLatin1(t *testing.T) {
	raw := []byte(`<?xml version="1.0" encoding="ISO-8859-1"?><publicwhip><minor-heading id="h1">Caf`)
	raw = append(raw, 0xe9) // e-acute in ISO-8859-1
	raw = append(raw, []byte(`</minor-heading></publicwhip>`)...)

	doc, err := Parse(raw)
	if err != nil {
		t.Fatalf("failed to parse latin-1 transcript: %v", err)
	}
	headings := doc.FindAll("minor-heading")
	if len(headings) != 1 {
		t.Fatalf("expected 1 minor-heading, got %d", len(headings))
	}
	if text := strings.TrimSpace(Text(headings[0])); text != "Café" {
		t.Errorf("expected decoded heading 'Café', got %q", text)
	}
}

func TestFindAllDocumentOrder(t *testing.T) {
	doc, err := Parse([]byte(`<publicwhip>
<division id="first"></division><speech id="x"><p>a</p></speech><division id="second"></division>
</publicwhip>`))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	divisions := doc.FindAll("division")
	if len(divisions) != 2 {
		t.Fatalf("expected 2 divisions, got %d", len(divisions))
	}
	if Attr(divisions[0], "id") != "first" || Attr(divisions[1], "id") != "second" {
		t.Errorf("divisions out of document order: %q then %q",
			Attr(divisions[0], "id"), Attr(divisions[1], "id"))
	}
}

func TestAttrAndHasAttr(t *testing.T) {
	doc, err := Parse([]byte(`<publicwhip><p pwmotiontext="yes" class="">text</p></publicwhip>`))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	paragraph := doc.FindAll("p")[0]

	if !HasAttr(paragraph, "pwmotiontext") {
		t.Error("expected pwmotiontext attribute to be present")
	}
	if HasAttr(paragraph, "speakerid") {
		t.Error("did not expect a speakerid attribute")
	}
	if Attr(paragraph, "pwmotiontext") != "yes" {
		t.Errorf("expected pwmotiontext='yes', got %q", Attr(paragraph, "pwmotiontext"))
	}
	if Attr(paragraph, "missing") != "" {
		t.Errorf("expected empty value for missing attribute")
	}
}

func TestTextConcatenatesDescendants(t *testing.T) {
	doc, err := Parse([]byte(`<publicwhip><speech><p>One <b>two</b> three.</p></speech></publicwhip>`))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	speech := doc.FindAll("speech")[0]
	if text := Text(speech); text != "One two three." {
		t.Errorf("expected concatenated text 'One two three.', got %q", text)
	}
}

func TestRenderRoundtripsParagraph(t *testing.T) {
	doc, err := Parse([]byte(`<publicwhip><p pwmotiontext="yes">I move the motion.</p></publicwhip>`))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	paragraph := doc.FindAll("p")[0]
	rendered := Render(paragraph)
	if rendered != `<p pwmotiontext="yes">I move the motion.</p>` {
		t.Errorf("unexpected rendering: %q", rendered)
	}
}

func TestRenderChildren(t *testing.T) {
	doc, err := Parse([]byte(`<publicwhip><speech><p>First.</p><p>Second.</p></speech></publicwhip>`))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	speech := doc.FindAll("speech")[0]
	rendered := RenderChildren(speech)
	if rendered != "<p>First.</p><p>Second.</p>" {
		t.Errorf("unexpected children rendering: %q", rendered)
	}
}

func TestChildElements(t *testing.T) {
	doc, err := Parse([]byte(`<publicwhip><speech><p>a</p><i>x</i><p>b</p></speech></publicwhip>`))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	speech := doc.FindAll("speech")[0]
	paragraphs := ChildElements(speech, "p")
	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraph children, got %d", len(paragraphs))
	}
	if Text(paragraphs[0]) != "a" || Text(paragraphs[1]) != "b" {
		t.Errorf("paragraph children out of order: %q, %q", Text(paragraphs[0]), Text(paragraphs[1]))
	}
}
