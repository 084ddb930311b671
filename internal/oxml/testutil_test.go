package oxml

import (
	"testing"

	"github.com/beevik/etree"
)

func mustParseXML(t *testing.T, xml string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("parsing xml: %v", err)
	}
	root := doc.Root()
	if root == nil {
		t.Fatal("no root element")
	}
	return root
}

func makeR(t *testing.T, innerXML string) *CT_R {
	t.Helper()
	xml := `<w:r xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + innerXML + `</w:r>`
	return NewCT_R(mustParseXML(t, xml))
}

func makeP(t *testing.T, innerXML string) *CT_P {
	t.Helper()
	xml := `<w:p xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + innerXML + `</w:p>`
	return NewCT_P(mustParseXML(t, xml))
}

func makeDocument(t *testing.T, bodyInnerXML string) *CT_Document {
	t.Helper()
	xml := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + bodyInnerXML + `</w:body></w:document>`
	return NewCT_Document(mustParseXML(t, xml))
}
