package docmodel

import (
	"bytes"
	"testing"
)

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body><w:p><w:r><w:t>hello</w:t></w:r></w:p></w:body>
</w:document>`

func TestParse_ValidDocument(t *testing.T) {
	doc, err := Parse([]byte(testDocumentXML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	paragraphs := doc.Paragraphs()
	if len(paragraphs) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(paragraphs))
	}
	if got := paragraphs[0].Runs()[0].Text(); got != "hello" {
		t.Errorf("paragraph text = %q, want %q", got, "hello")
	}
}

func TestParse_RejectsNonDocumentRoot(t *testing.T) {
	_, err := Parse([]byte(`<w:comments xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"/>`))
	if err == nil {
		t.Fatal("expected an error for a non-w:document root")
	}
}

func TestParse_RejectsMalformedXML(t *testing.T) {
	_, err := Parse([]byte(`not xml at all <<<`))
	if err == nil {
		t.Fatal("expected an error for malformed xml")
	}
}

func TestSerialize_RoundTrips(t *testing.T) {
	doc, err := Parse([]byte(testDocumentXML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := doc.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !bytes.Contains(out, []byte("hello")) {
		t.Error("expected serialized output to still contain the original text")
	}
}
