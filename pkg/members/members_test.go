package members

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testMembersXML = `<?xml version="1.0" encoding="UTF-8"?>
<publicwhip>
<member id="member/100" house="representatives" title="Hon" firstname="Alex" lastname="Example" fromdate="2001-11-10" todate="9999-12-31"/>
<member id="member/101" house="senate" title="Senator" firstname="Sam" lastname="Specimen" fromdate="1998-10-03" todate="2004-06-30"/>
<member id="" firstname="No" lastname="Identifier"/>
</publicwhip>`

func TestParseDirectory(t *testing.T) {
	directory, err := ParseDirectory(strings.NewReader(testMembersXML))
	if err != nil {
		t.Fatalf("failed to parse members XML: %v", err)
	}

	if directory.Len() != 2 {
		t.Errorf("expected 2 members (entries without an id are dropped), got %d", directory.Len())
	}

	name, ok := directory.NameForID("member/100")
	if !ok {
		t.Fatal("expected member/100 to resolve")
	}
	if name != "Alex Example" {
		t.Errorf("expected display name without title 'Alex Example', got %q", name)
	}

	if _, ok := directory.NameForID("member/999"); ok {
		t.Error("unknown identifier should miss, not resolve")
	}
}

func TestParseDirectoryLatin1(t *testing.T) {
	raw := `<?xml version="1.0" encoding="ISO-8859-1"?><publicwhip><member id="member/1" firstname="Ren` +
		string([]byte{0xe9}) + `" lastname="Martin"/></publicwhip>`

	directory, err := ParseDirectory(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to parse latin-1 members XML: %v", err)
	}
	name, ok := directory.NameForID("member/1")
	if !ok {
		t.Fatal("expected member/1 to resolve")
	}
	if name != "René Martin" {
		t.Errorf("expected decoded name 'René Martin', got %q", name)
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "members.xml")
	if err := os.WriteFile(path, []byte(testMembersXML), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	directory, err := LoadDirectory(path)
	if err != nil {
		t.Fatalf("failed to load members file: %v", err)
	}
	if _, ok := directory.NameForID("member/101"); !ok {
		t.Error("expected member/101 to resolve")
	}

	if _, err := LoadDirectory(filepath.Join(dir, "missing.xml")); err == nil {
		t.Error("expected an error for a missing members file")
	}
}
